package alert

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/pool"

	"github.com/relayworks/actuator-agent/internal/constants"
	"github.com/relayworks/actuator-agent/internal/entities"
)

type (
	ISink interface {
		Name() string
		Deliver(ctx context.Context, event entities.NotificationEvent) error
	}
)

// Service delivers notification events to all registered sinks. Delivery is
// fire-and-forget from the caller's point of view: a sink failure is logged and
// dropped, never retried and never surfaced to the control path.
type Service struct {
	sinks          []ISink
	deliverTimeout time.Duration

	eventChan chan entities.NotificationEvent
}

func NewService(deliverTimeout time.Duration, sinks ...ISink) *Service {
	return &Service{
		sinks:          sinks,
		deliverTimeout: deliverTimeout,

		eventChan: make(chan entities.NotificationEvent, constants.AlertQueueSize),
	}
}

// Notify queues an event for delivery. The call never blocks the caller beyond
// the channel send attempt; on overflow the event is dropped with a log line.
func (s *Service) Notify(event entities.NotificationEvent) {
	select {
	case s.eventChan <- event:
	default:
		log.Warn().
			Str("kind", string(event.Kind)).
			Str("payload", event.Payload).
			Msg("Notify: alert queue full, event dropped")
	}
}

// Run delivers queued events until the context is canceled.
func (s *Service) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case event := <-s.eventChan:
			s.deliver(ctx, event)
		}
	}
}

func (s *Service) deliver(ctx context.Context, event entities.NotificationEvent) {
	if len(s.sinks) == 0 {
		return
	}

	p := pool.New().WithMaxGoroutines(len(s.sinks))
	for _, sink := range s.sinks {
		p.Go(func() {
			deliverCtx, cancelFunc := context.WithTimeout(ctx, s.deliverTimeout)
			defer cancelFunc()

			if err := sink.Deliver(deliverCtx, event); err != nil {
				log.Error().
					Err(err).
					Str("sink", sink.Name()).
					Str("kind", string(event.Kind)).
					Msg("deliver: delivery error")
			}
		})
	}

	p.Wait()
}
