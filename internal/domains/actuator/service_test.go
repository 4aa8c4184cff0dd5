package actuator_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/relayworks/actuator-agent/internal/domains/actuator"
	"github.com/relayworks/actuator-agent/internal/domains/actuator/actuator_mocks"
	"github.com/relayworks/actuator-agent/internal/entities"
	"github.com/relayworks/actuator-agent/internal/errs"
)

type serviceFields struct {
	pinDriver    *actuator_mocks.MockIPinDriver
	alertService *actuator_mocks.MockIAlertService
}

func newServiceFields(t *testing.T) *serviceFields {
	return &serviceFields{
		pinDriver:    actuator_mocks.NewMockIPinDriver(t),
		alertService: actuator_mocks.NewMockIAlertService(t),
	}
}

func matchKind(kind entities.EventKind) interface{} {
	return mock.MatchedBy(func(event entities.NotificationEvent) bool {
		return event.Kind == kind
	})
}

func Test_SetState(t *testing.T) {
	t.Parallel()

	testTable := []struct {
		name          string
		target        entities.ActuatorState
		prepare       func(f *serviceFields)
		expectedState entities.ActuatorState
		expectedError error
	}{
		{
			name:   "turn on drives pin high and confirms",
			target: entities.ActuatorStateOn,
			prepare: func(f *serviceFields) {
				f.pinDriver.EXPECT().
					Drive(true).
					Return(nil).
					Times(1)

				f.alertService.EXPECT().
					Notify(matchKind(entities.EventKindStateChanged)).
					Return().
					Times(1)
			},
			expectedState: entities.ActuatorStateOn,
		},
		{
			name:   "turn off drives pin low and confirms",
			target: entities.ActuatorStateOff,
			prepare: func(f *serviceFields) {
				f.pinDriver.EXPECT().
					Drive(false).
					Return(nil).
					Times(1)

				f.alertService.EXPECT().
					Notify(matchKind(entities.EventKindStateChanged)).
					Return().
					Times(1)
			},
			expectedState: entities.ActuatorStateOff,
		},
		{
			name:   "drive fault forces output off and raises fault",
			target: entities.ActuatorStateOn,
			prepare: func(f *serviceFields) {
				f.pinDriver.EXPECT().
					Drive(true).
					Return(errors.New("hardware not ready")).
					Times(1)

				f.pinDriver.EXPECT().
					Drive(false).
					Return(nil).
					Times(1)

				f.alertService.EXPECT().
					Notify(matchKind(entities.EventKindFault)).
					Return().
					Times(1)
			},
			expectedState: entities.ActuatorStateOff,
			expectedError: errs.ErrOutputDrive,
		},
	}
	for _, testCase := range testTable {
		t.Run(testCase.name, func(t *testing.T) {
			f := newServiceFields(t)
			if testCase.prepare != nil {
				testCase.prepare(f)
			}

			service := actuator.NewService(f.pinDriver, f.alertService)

			state, err := service.SetState(testCase.target)
			if testCase.expectedError != nil {
				require.ErrorIs(t, err, testCase.expectedError)
			} else {
				require.NoError(t, err)
			}

			require.Equal(t, testCase.expectedState, state)
			require.Equal(t, testCase.expectedState, service.State())
		})
	}
}

func Test_SetState_Idempotent(t *testing.T) {
	t.Parallel()

	f := newServiceFields(t)
	f.pinDriver.EXPECT().
		Drive(true).
		Return(nil).
		Times(2)

	// repeating a command still acknowledges it
	f.alertService.EXPECT().
		Notify(matchKind(entities.EventKindStateChanged)).
		Return().
		Times(2)

	service := actuator.NewService(f.pinDriver, f.alertService)

	for range 2 {
		state, err := service.SetState(entities.ActuatorStateOn)
		require.NoError(t, err)
		require.Equal(t, entities.ActuatorStateOn, state)
	}
}

func Test_Init(t *testing.T) {
	t.Parallel()

	f := newServiceFields(t)
	f.pinDriver.EXPECT().
		Drive(false).
		Return(nil).
		Times(1)

	service := actuator.NewService(f.pinDriver, f.alertService)

	require.NoError(t, service.Init())
	require.Equal(t, entities.ActuatorStateOff, service.State())
}
