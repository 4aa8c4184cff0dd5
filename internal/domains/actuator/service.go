package actuator

import (
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/relayworks/actuator-agent/internal/entities"
	"github.com/relayworks/actuator-agent/internal/errs"
)

type (
	IPinDriver interface {
		Drive(on bool) error
	}

	IAlertService interface {
		Notify(event entities.NotificationEvent)
	}
)

// Service owns the logical output state and the pin that backs it. The pin is
// driven before the state is committed, so the physical output always reflects
// the last committed state.
type Service struct {
	pinDriver    IPinDriver
	alertService IAlertService

	mx    sync.Mutex
	state entities.ActuatorState
}

func NewService(pinDriver IPinDriver, alertService IAlertService) *Service {
	return &Service{
		pinDriver:    pinDriver,
		alertService: alertService,

		state: entities.ActuatorStateOff,
	}
}

// Init drives the output to its fail-safe default (off) at boot.
func (s *Service) Init() error {
	s.mx.Lock()
	defer s.mx.Unlock()

	if err := s.pinDriver.Drive(false); err != nil {
		return fmt.Errorf("Init: %w: %v", errs.ErrOutputDrive, err)
	}

	s.state = entities.ActuatorStateOff
	return nil
}

// State returns the last committed output state.
func (s *Service) State() entities.ActuatorState {
	s.mx.Lock()
	defer s.mx.Unlock()

	return s.state
}

// SetState drives the output synchronously and commits the new state.
// Setting the current state again is a no-op that still succeeds and still
// raises a confirmation, so every accepted command is acknowledged.
func (s *Service) SetState(target entities.ActuatorState) (entities.ActuatorState, error) {
	s.mx.Lock()
	defer s.mx.Unlock()

	if err := s.pinDriver.Drive(target == entities.ActuatorStateOn); err != nil {
		return s.failSafe(err)
	}

	s.state = target
	s.alertService.Notify(entities.NewStateChangedEvent(
		fmt.Sprintf("actuator output switched %s", s.state.Text()),
		time.Now(),
	))

	return s.state, nil
}

// failSafe forces the output off after a drive fault so the hardware is left in
// a known state, and raises the fault instead of dropping it.
func (s *Service) failSafe(driveErr error) (entities.ActuatorState, error) {
	if err := s.pinDriver.Drive(false); err != nil {
		log.Error().
			Err(err).
			Msg("failSafe: forcing output off failed")
	}

	s.state = entities.ActuatorStateOff
	s.alertService.Notify(entities.NewFaultEvent(
		fmt.Sprintf("output drive failed, output forced off: %v", driveErr),
		time.Now(),
	))

	return s.state, fmt.Errorf("SetState: %w: %v", errs.ErrOutputDrive, driveErr)
}
