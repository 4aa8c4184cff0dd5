package link

import (
	"time"

	"github.com/relayworks/actuator-agent/internal/constants"
)

type Timing struct {
	RetryBaseDelay time.Duration
	RetryMaxDelay  time.Duration
	ProbeInterval  time.Duration
}

func DefaultTiming() Timing {
	return Timing{
		RetryBaseDelay: constants.LinkRetryBaseDelay,
		RetryMaxDelay:  constants.LinkRetryMaxDelay,
		ProbeInterval:  constants.LinkProbeInterval,
	}
}
