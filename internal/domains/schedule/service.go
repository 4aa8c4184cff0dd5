package schedule

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/relayworks/actuator-agent/internal/entities"
	"github.com/relayworks/actuator-agent/internal/errs"
)

const (
	timeLayout = "15:04"
	fireLayout = "2006-01-02 15:04"
)

type (
	ICommandService interface {
		Dispatch(command entities.Command) (state entities.ActuatorState, err error)
	}
)

// Service fires turn-on/turn-off commands for a daily on/off window. Scheduled
// commands go through the same dispatch gate as HTTP ones, so a device with a
// down link refuses them instead of queueing them.
type Service struct {
	commandService ICommandService
	evalInterval   time.Duration

	mx        sync.Mutex
	window    *Window
	lastFired string
}

func NewService(commandService ICommandService, evalInterval time.Duration) *Service {
	return &Service{
		commandService: commandService,
		evalInterval:   evalInterval,
	}
}

func (s *Service) SetWindow(window Window) {
	s.mx.Lock()
	defer s.mx.Unlock()

	s.window = &window

	log.Info().
		Str("on", window.OnTime).
		Str("off", window.OffTime).
		Msg("SetWindow: schedule updated")
}

func (s *Service) Window() (Window, error) {
	s.mx.Lock()
	defer s.mx.Unlock()

	if s.window == nil {
		return Window{}, fmt.Errorf("Window: %w", errs.ErrScheduleNotSet)
	}

	return *s.window, nil
}

func (s *Service) Run(ctx context.Context) {
	ticker := time.NewTicker(s.evalInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.evaluate(time.Now())
		}
	}
}

// evaluate fires at most once per matching minute. Dispatch happens outside
// the lock so a slow command cannot hold up schedule updates.
func (s *Service) evaluate(now time.Time) {
	command, fire := s.match(now)
	if !fire {
		return
	}

	if _, err := s.commandService.Dispatch(command); err != nil {
		log.Error().
			Err(err).
			Str("command", command.String()).
			Msg("evaluate: scheduled command refused")
	}
}

func (s *Service) match(now time.Time) (command entities.Command, fire bool) {
	s.mx.Lock()
	defer s.mx.Unlock()

	if s.window == nil {
		return command, false
	}

	switch now.Format(timeLayout) {
	case s.window.OnTime:
		command = entities.CommandTurnOn
	case s.window.OffTime:
		command = entities.CommandTurnOff
	default:
		return command, false
	}

	fireKey := fmt.Sprintf("%s/%s", now.Format(fireLayout), command)
	if fireKey == s.lastFired {
		return command, false
	}

	s.lastFired = fireKey

	// a one-shot window retires once it has switched the output back off
	if command == entities.CommandTurnOff && s.window.Repeat == RepeatOnce {
		s.window = nil
	}

	return command, true
}
