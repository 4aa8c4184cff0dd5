package alert_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/relayworks/actuator-agent/internal/domains/alert"
	"github.com/relayworks/actuator-agent/internal/entities"
)

type recordSink struct {
	name string
	err  error

	mx        sync.Mutex
	delivered []entities.NotificationEvent
}

func (s *recordSink) Name() string {
	return s.name
}

func (s *recordSink) Deliver(_ context.Context, event entities.NotificationEvent) error {
	s.mx.Lock()
	defer s.mx.Unlock()

	s.delivered = append(s.delivered, event)

	return s.err
}

func (s *recordSink) count() int {
	s.mx.Lock()
	defer s.mx.Unlock()

	return len(s.delivered)
}

func Test_Notify_DeliversToAllSinks(t *testing.T) {
	t.Parallel()

	first := &recordSink{name: "first"}
	second := &recordSink{name: "second"}

	service := alert.NewService(100*time.Millisecond, first, second)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go service.Run(ctx)

	service.Notify(entities.NewStateChangedEvent("actuator output switched ON", time.Now()))

	require.Eventually(t, func() bool {
		return first.count() == 1 && second.count() == 1
	}, time.Second, time.Millisecond)
}

func Test_Notify_SinkFailureIsIsolated(t *testing.T) {
	t.Parallel()

	failing := &recordSink{name: "failing", err: errors.New("endpoint unreachable")}
	healthy := &recordSink{name: "healthy"}

	service := alert.NewService(100*time.Millisecond, failing, healthy)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go service.Run(ctx)

	for range 3 {
		service.Notify(entities.NewFaultEvent("wireless link lost", time.Now()))
	}

	// the failing sink never blocks or poisons the healthy one
	require.Eventually(t, func() bool {
		return healthy.count() == 3
	}, time.Second, time.Millisecond)
	require.Eventually(t, func() bool {
		return failing.count() == 3
	}, time.Second, time.Millisecond)
}

func Test_Notify_NeverBlocksCaller(t *testing.T) {
	t.Parallel()

	// no run loop draining the queue
	service := alert.NewService(100 * time.Millisecond)

	done := make(chan struct{})
	go func() {
		defer close(done)

		for range 200 {
			service.Notify(entities.NewFaultEvent("probe failed", time.Now()))
		}
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Notify blocked the caller")
	}
}
