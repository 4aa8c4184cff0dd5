package prober

import (
	"context"
	"fmt"
	"time"

	probing "github.com/prometheus-community/pro-bing"

	"github.com/relayworks/actuator-agent/internal/errs"
)

const (
	probePacketCount = 3
	probeTimeout     = time.Second * 5
)

// Service checks wireless reachability by pinging a well-known host. An
// associated interface with no packets back is treated as a dropped link.
type Service struct {
	host string
}

func NewService(host string) *Service {
	return &Service{
		host: host,
	}
}

func (s *Service) Probe(ctx context.Context) error {
	pinger, err := probing.NewPinger(s.host)
	if err != nil {
		return fmt.Errorf("Probe: %w", err)
	}

	pinger.Count = probePacketCount
	pinger.Timeout = probeTimeout
	pinger.SetPrivileged(true)

	if err = pinger.RunWithContext(ctx); err != nil {
		return fmt.Errorf("Probe: %w", err)
	}

	if pinger.Statistics().PacketsRecv == 0 {
		return fmt.Errorf("Probe: %s unreachable: %w", s.host, errs.ErrLinkProbeFailed)
	}

	return nil
}
