package command

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/relayworks/actuator-agent/internal/entities"
	"github.com/relayworks/actuator-agent/internal/errs"
)

type (
	ILinkService interface {
		CurrentState() entities.LinkState
	}

	IActuatorService interface {
		SetState(target entities.ActuatorState) (entities.ActuatorState, error)
		State() entities.ActuatorState
	}
)

// Service dispatches commands to the actuator one at a time, in arrival order.
// Serialization happens on the command channel; an accepted command cannot be
// canceled.
type Service struct {
	linkService     ILinkService
	actuatorService IActuatorService

	commandChan chan commandData
	stoppedChan chan struct{}
}

func NewService(linkService ILinkService, actuatorService IActuatorService) *Service {
	return &Service{
		linkService:     linkService,
		actuatorService: actuatorService,

		commandChan: make(chan commandData),
		stoppedChan: make(chan struct{}),
	}
}

// Dispatch refuses commands until the link is associated; a refused command
// never touches the actuator. There is no backlog: the caller blocks until the
// run loop takes the command.
func (s *Service) Dispatch(command entities.Command) (state entities.ActuatorState, err error) {
	if linkState := s.linkService.CurrentState(); linkState != entities.LinkStateConnected {
		return state, fmt.Errorf("Dispatch: link is %s: %w", linkState, errs.ErrNotReady)
	}

	data := newCommandData(command)
	select {
	case s.commandChan <- data:
	case <-s.stoppedChan:
		return state, fmt.Errorf("Dispatch: dispatcher stopped: %w", errs.ErrNotReady)
	}

	result := <-data.resultChan
	if result.err != nil {
		return result.state, fmt.Errorf("Dispatch: %w", result.err)
	}

	return result.state, nil
}

// Run processes queued commands until the context is canceled. Once it
// returns, pending and future Dispatch calls fail instead of parking forever.
func (s *Service) Run(ctx context.Context) {
	defer close(s.stoppedChan)

	for {
		select {
		case <-ctx.Done():
			return
		case data := <-s.commandChan:
			result := s.execute(data.command)
			if result.err != nil {
				log.Error().
					Err(result.err).
					Str("command", data.command.String()).
					Msg("Run: command execution error")
			}

			data.resultChan <- result
		}
	}
}

func (s *Service) execute(command entities.Command) (result commandResult) {
	switch command {
	case entities.CommandTurnOn:
		result.state, result.err = s.actuatorService.SetState(entities.ActuatorStateOn)
	case entities.CommandTurnOff:
		result.state, result.err = s.actuatorService.SetState(entities.ActuatorStateOff)
	case entities.CommandQuery:
		result.state = s.actuatorService.State()
	default:
		result.err = fmt.Errorf("execute: %s: %w", command, errs.ErrUnsupportedCommand)
	}

	return result
}
