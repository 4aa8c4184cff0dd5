package link

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/relayworks/actuator-agent/internal/entities"
)

type (
	ITransport interface {
		Associate(ctx context.Context, creds entities.WirelessCredentials) error
	}

	ILinkProber interface {
		Probe(ctx context.Context) error
	}

	IAlertService interface {
		Notify(event entities.NotificationEvent)
	}
)

type Service struct {
	transport    ITransport
	prober       ILinkProber
	alertService IAlertService
	creds        entities.WirelessCredentials
	timing       Timing

	mx    sync.RWMutex
	state entities.LinkState

	connectChan chan struct{}
}

func NewService(transport ITransport, prober ILinkProber, alertService IAlertService, creds entities.WirelessCredentials, timing Timing) *Service {
	return &Service{
		transport:    transport,
		prober:       prober,
		alertService: alertService,
		creds:        creds,
		timing:       timing,

		state:       entities.LinkStateDisconnected,
		connectChan: make(chan struct{}, 1),
	}
}

// CurrentState returns the link state as last committed by the run loop.
func (s *Service) CurrentState() entities.LinkState {
	s.mx.RLock()
	defer s.mx.RUnlock()

	return s.state
}

// Connect requests association and returns immediately. Calling it while an
// attempt is in flight simply re-enters the connecting state; the previous
// attempt is superseded, not canceled.
func (s *Service) Connect() {
	s.setState(entities.LinkStateConnecting)

	select {
	case s.connectChan <- struct{}{}:
	default:
	}
}

// Run owns the link state machine. There is no terminal failure state: failed
// association attempts are retried forever with capped exponential backoff.
func (s *Service) Run(ctx context.Context) {
	retryDelay := s.timing.RetryBaseDelay

	for {
		if ctx.Err() != nil {
			return
		}

		switch s.CurrentState() {
		case entities.LinkStateDisconnected:
			select {
			case <-ctx.Done():
				return
			case <-s.connectChan:
			}

		case entities.LinkStateConnecting, entities.LinkStateReconnecting:
			if err := s.associate(ctx); err != nil {
				if ctx.Err() != nil {
					return
				}

				log.Warn().
					Err(err).
					Str("retry in", retryDelay.String()).
					Msg("Run: association attempt failed")

				if !sleep(ctx, retryDelay) {
					return
				}

				retryDelay = min(retryDelay*2, s.timing.RetryMaxDelay)
				break
			}

			retryDelay = s.timing.RetryBaseDelay
			s.setState(entities.LinkStateConnected)

		case entities.LinkStateConnected:
			select {
			case <-ctx.Done():
				return
			case <-s.connectChan:
				// superseding Connect already moved the state
			case <-time.After(s.timing.ProbeInterval):
				s.checkLink(ctx)
			}
		}
	}
}

func (s *Service) associate(ctx context.Context) error {
	if err := s.transport.Associate(ctx, s.creds); err != nil {
		return fmt.Errorf("associate: %w", err)
	}

	return nil
}

// checkLink probes reachability and moves to reconnecting on a dropped link.
// The drop is reported as a fault notification, never as a command failure.
func (s *Service) checkLink(ctx context.Context) {
	err := s.prober.Probe(ctx)
	if err == nil || ctx.Err() != nil {
		return
	}

	log.Warn().
		Err(err).
		Msg("checkLink: wireless link lost")

	s.setState(entities.LinkStateReconnecting)
	s.alertService.Notify(entities.NewFaultEvent(
		fmt.Sprintf("wireless link lost: %v", err),
		time.Now(),
	))
}

func (s *Service) setState(newState entities.LinkState) {
	s.mx.Lock()
	defer s.mx.Unlock()

	if s.state == newState {
		return
	}

	log.Info().
		Str("old state", s.state.String()).
		Str("new state", newState.String()).
		Msg("setState: link state changed")

	s.state = newState
}

func sleep(ctx context.Context, d time.Duration) bool {
	select {
	case <-ctx.Done():
		return false
	case <-time.After(d):
		return true
	}
}
