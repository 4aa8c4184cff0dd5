package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/relayworks/actuator-agent/internal/domains/schedule/schedule_mocks"
	"github.com/relayworks/actuator-agent/internal/entities"
	"github.com/relayworks/actuator-agent/internal/errs"
)

var testWindow = Window{
	OnTime:  "06:00",
	OffTime: "18:00",
	Repeat:  "daily",
}

func Test_Evaluate(t *testing.T) {
	t.Parallel()

	testTable := []struct {
		name    string
		window  *Window
		now     time.Time
		prepare func(m *schedule_mocks.MockICommandService)
	}{
		{
			name:   "on time fires turn on",
			window: &testWindow,
			now:    time.Date(2026, 8, 30, 6, 0, 30, 0, time.UTC),
			prepare: func(m *schedule_mocks.MockICommandService) {
				m.EXPECT().
					Dispatch(entities.CommandTurnOn).
					Return(entities.ActuatorStateOn, nil).
					Times(1)
			},
		},
		{
			name:   "off time fires turn off",
			window: &testWindow,
			now:    time.Date(2026, 8, 30, 18, 0, 0, 0, time.UTC),
			prepare: func(m *schedule_mocks.MockICommandService) {
				m.EXPECT().
					Dispatch(entities.CommandTurnOff).
					Return(entities.ActuatorStateOff, nil).
					Times(1)
			},
		},
		{
			name:   "outside the window nothing fires",
			window: &testWindow,
			now:    time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
		},
		{
			name: "no window set nothing fires",
			now:  time.Date(2026, 8, 30, 6, 0, 0, 0, time.UTC),
		},
		{
			name:   "refused dispatch is swallowed",
			window: &testWindow,
			now:    time.Date(2026, 8, 30, 6, 0, 0, 0, time.UTC),
			prepare: func(m *schedule_mocks.MockICommandService) {
				m.EXPECT().
					Dispatch(entities.CommandTurnOn).
					Return(entities.ActuatorState(""), errs.ErrNotReady).
					Times(1)
			},
		},
	}
	for _, testCase := range testTable {
		t.Run(testCase.name, func(t *testing.T) {
			commandService := schedule_mocks.NewMockICommandService(t)
			if testCase.prepare != nil {
				testCase.prepare(commandService)
			}

			service := NewService(commandService, time.Second)
			if testCase.window != nil {
				service.SetWindow(*testCase.window)
			}

			service.evaluate(testCase.now)
		})
	}
}

func Test_Evaluate_FiresOncePerMinute(t *testing.T) {
	t.Parallel()

	commandService := schedule_mocks.NewMockICommandService(t)
	commandService.EXPECT().
		Dispatch(entities.CommandTurnOn).
		Return(entities.ActuatorStateOn, nil).
		Times(2)

	service := NewService(commandService, time.Second)
	service.SetWindow(testWindow)

	// several evaluation ticks inside the same minute fire once
	for seconds := range 3 {
		service.evaluate(time.Date(2026, 8, 30, 6, 0, seconds*10, 0, time.UTC))
	}

	// the next day the same minute fires again
	service.evaluate(time.Date(2026, 8, 31, 6, 0, 0, 0, time.UTC))
}

func Test_Evaluate_OnceWindowRetires(t *testing.T) {
	t.Parallel()

	commandService := schedule_mocks.NewMockICommandService(t)
	commandService.EXPECT().
		Dispatch(entities.CommandTurnOn).
		Return(entities.ActuatorStateOn, nil).
		Times(1)

	commandService.EXPECT().
		Dispatch(entities.CommandTurnOff).
		Return(entities.ActuatorStateOff, nil).
		Times(1)

	service := NewService(commandService, time.Second)
	service.SetWindow(Window{OnTime: "06:00", OffTime: "18:00", Repeat: RepeatOnce})

	service.evaluate(time.Date(2026, 8, 30, 6, 0, 0, 0, time.UTC))
	service.evaluate(time.Date(2026, 8, 30, 18, 0, 0, 0, time.UTC))

	// the retired window does not fire again the next day
	service.evaluate(time.Date(2026, 8, 31, 6, 0, 0, 0, time.UTC))

	_, err := service.Window()
	require.ErrorIs(t, err, errs.ErrScheduleNotSet)
}

func Test_Window(t *testing.T) {
	t.Parallel()

	service := NewService(schedule_mocks.NewMockICommandService(t), time.Second)

	_, err := service.Window()
	require.ErrorIs(t, err, errs.ErrScheduleNotSet)

	service.SetWindow(testWindow)

	window, err := service.Window()
	require.NoError(t, err)
	require.Equal(t, testWindow, window)
}
