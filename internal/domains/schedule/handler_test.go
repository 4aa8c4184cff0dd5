package schedule

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/relayworks/actuator-agent/internal/domains/schedule/schedule_mocks"
)

func newTestHandler(t *testing.T) (*Handler, *Service) {
	service := NewService(schedule_mocks.NewMockICommandService(t), time.Second)

	return NewHandler(service), service
}

func Test_SetSchedule(t *testing.T) {
	t.Parallel()

	testTable := []struct {
		name           string
		requestBody    string
		expectedStatus int
	}{
		{
			name:           "valid window is accepted",
			requestBody:    `{"on_time":"06:00","off_time":"18:00","repeat":"daily"}`,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "valid window without repeat is accepted",
			requestBody:    `{"on_time":"23:30","off_time":"07:15"}`,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "one-shot window is accepted",
			requestBody:    `{"on_time":"06:00","off_time":"18:00","repeat":"once"}`,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "malformed json is rejected",
			requestBody:    `{"on_time":`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid time of day is rejected",
			requestBody:    `{"on_time":"25:99","off_time":"18:00"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing off time is rejected",
			requestBody:    `{"on_time":"06:00"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "unknown repeat mode is rejected",
			requestBody:    `{"on_time":"06:00","off_time":"18:00","repeat":"weekly"}`,
			expectedStatus: http.StatusBadRequest,
		},
	}
	for _, testCase := range testTable {
		t.Run(testCase.name, func(t *testing.T) {
			handler, service := newTestHandler(t)

			recorder := httptest.NewRecorder()
			handler.SetSchedule(recorder, httptest.NewRequest(http.MethodPost, "/schedule", strings.NewReader(testCase.requestBody)))

			require.Equal(t, testCase.expectedStatus, recorder.Code)

			_, err := service.Window()
			if testCase.expectedStatus == http.StatusOK {
				require.NoError(t, err)
			} else {
				// a rejected request leaves the schedule untouched
				require.Error(t, err)
			}
		})
	}
}

func Test_GetSchedule(t *testing.T) {
	t.Parallel()

	handler, service := newTestHandler(t)

	recorder := httptest.NewRecorder()
	handler.GetSchedule(recorder, httptest.NewRequest(http.MethodGet, "/schedule", nil))
	require.Equal(t, http.StatusNotFound, recorder.Code)

	service.SetWindow(Window{OnTime: "06:00", OffTime: "18:00"})

	recorder = httptest.NewRecorder()
	handler.GetSchedule(recorder, httptest.NewRequest(http.MethodGet, "/schedule", nil))
	require.Equal(t, http.StatusOK, recorder.Code)
	require.JSONEq(t, `{"on_time":"06:00","off_time":"18:00","repeat":""}`, recorder.Body.String())
}
