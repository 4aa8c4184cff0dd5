package infrastructure

import (
	"sync"
	"time"

	"github.com/samber/lo"

	"github.com/relayworks/actuator-agent/internal/constants"
	"github.com/relayworks/actuator-agent/internal/domains/actuator"
	"github.com/relayworks/actuator-agent/internal/domains/actuator/gpio"
	"github.com/relayworks/actuator-agent/internal/domains/alert"
	"github.com/relayworks/actuator-agent/internal/domains/alert/webhook"
	"github.com/relayworks/actuator-agent/internal/domains/command"
	"github.com/relayworks/actuator-agent/internal/domains/journal"
	"github.com/relayworks/actuator-agent/internal/domains/link"
	"github.com/relayworks/actuator-agent/internal/domains/link/prober"
	"github.com/relayworks/actuator-agent/internal/domains/link/transport"
	"github.com/relayworks/actuator-agent/internal/domains/mq"
	"github.com/relayworks/actuator-agent/internal/domains/schedule"
	"github.com/relayworks/actuator-agent/internal/domains/stream"
	"github.com/relayworks/actuator-agent/internal/entities"
)

const (
	scheduleEvalInterval = time.Second * 30
)

var (
	linkService     *link.Service
	linkServiceOnce sync.Once
)

func (k *Kernel) InjectLinkService() *link.Service {
	linkServiceOnce.Do(func() {
		linkService = link.NewService(
			k.InjectTransportService(),
			k.InjectLinkProber(),
			k.InjectAlertService(),
			entities.WirelessCredentials{
				SSID: k.env.Agent.WirelessSSID,
				PSK:  k.env.Agent.WirelessPSK,
			},
			link.DefaultTiming(),
		)
	})

	return linkService
}

var (
	transportService     *transport.Service
	transportServiceOnce sync.Once
)

func (k *Kernel) InjectTransportService() *transport.Service {
	transportServiceOnce.Do(func() {
		transportService = transport.NewService()
	})

	return transportService
}

var (
	linkProber     *prober.Service
	linkProberOnce sync.Once
)

func (k *Kernel) InjectLinkProber() *prober.Service {
	linkProberOnce.Do(func() {
		linkProber = prober.NewService(k.env.Agent.ProbeHost)
	})

	return linkProber
}

var (
	pinDriver     *gpio.Service
	pinDriverOnce sync.Once
)

func (k *Kernel) InjectPinDriver() *gpio.Service {
	pinDriverOnce.Do(func() {
		pinDriver = gpio.NewService(k.env.Agent.OutputPin)
	})

	return pinDriver
}

var (
	actuatorService     *actuator.Service
	actuatorServiceOnce sync.Once
)

func (k *Kernel) InjectActuatorService() *actuator.Service {
	actuatorServiceOnce.Do(func() {
		actuatorService = actuator.NewService(
			k.InjectPinDriver(),
			k.InjectAlertService(),
		)
	})

	return actuatorService
}

var (
	commandService     *command.Service
	commandServiceOnce sync.Once
)

func (k *Kernel) InjectCommandService() *command.Service {
	commandServiceOnce.Do(func() {
		commandService = command.NewService(
			k.InjectLinkService(),
			k.InjectActuatorService(),
		)
	})

	return commandService
}

var (
	alertService     *alert.Service
	alertServiceOnce sync.Once
)

func (k *Kernel) InjectAlertService() *alert.Service {
	alertServiceOnce.Do(func() {
		sinks := []alert.ISink{
			k.InjectJournalService(),
			k.InjectStreamService(),
		}

		if lo.IsNotEmpty(k.env.Agent.WebhookURL) {
			sinks = append(sinks, webhook.NewService(k.env.Agent.WebhookURL))
		}

		if lo.IsNotEmpty(k.env.Agent.NATSURL) {
			sinks = append(sinks, k.InjectMQService())
		}

		alertService = alert.NewService(constants.AlertDeliverTimeout, sinks...)
	})

	return alertService
}

var (
	mqService     *mq.Service
	mqServiceOnce sync.Once
)

func (k *Kernel) InjectMQService() *mq.Service {
	mqServiceOnce.Do(func() {
		mqService = mq.NewService(k.env.Agent.NATSURL)
	})

	return mqService
}

var (
	journalService     *journal.Service
	journalServiceOnce sync.Once
)

func (k *Kernel) InjectJournalService() *journal.Service {
	journalServiceOnce.Do(func() {
		journalService = journal.NewService(k.DB, constants.JournalRetentionLimit)
	})

	return journalService
}

var (
	streamService     *stream.Service
	streamServiceOnce sync.Once
)

func (k *Kernel) InjectStreamService() *stream.Service {
	streamServiceOnce.Do(func() {
		streamService = stream.NewService()
	})

	return streamService
}

var (
	scheduleService     *schedule.Service
	scheduleServiceOnce sync.Once
)

func (k *Kernel) InjectScheduleService() *schedule.Service {
	scheduleServiceOnce.Do(func() {
		scheduleService = schedule.NewService(
			k.InjectCommandService(),
			scheduleEvalInterval,
		)
	})

	return scheduleService
}
