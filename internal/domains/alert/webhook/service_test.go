package webhook_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/relayworks/actuator-agent/internal/domains/alert/webhook"
	"github.com/relayworks/actuator-agent/internal/entities"
	"github.com/relayworks/actuator-agent/internal/errs"
)

func Test_Deliver(t *testing.T) {
	t.Parallel()

	var received struct {
		Kind    string `json:"kind"`
		Message string `json:"message"`
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	service := webhook.NewService(server.URL)
	require.Equal(t, "webhook", service.Name())

	err := service.Deliver(context.Background(), entities.NewFaultEvent("output drive failed", time.Now()))
	require.NoError(t, err)
	require.Equal(t, "fault", received.Kind)
	require.Equal(t, "output drive failed", received.Message)
}

func Test_Deliver_GatewayError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	service := webhook.NewService(server.URL)

	err := service.Deliver(context.Background(), entities.NewFaultEvent("wireless link lost", time.Now()))
	require.ErrorIs(t, err, errs.ErrAPIError)
}

func Test_Deliver_Unreachable(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close()

	service := webhook.NewService(server.URL)

	require.Error(t, service.Deliver(context.Background(), entities.NewFaultEvent("wireless link lost", time.Now())))
}
