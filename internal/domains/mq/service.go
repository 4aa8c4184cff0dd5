package mq

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/relayworks/actuator-agent/internal/constants"
	"github.com/relayworks/actuator-agent/internal/entities"
)

const (
	sinkName      = "mq"
	reconnectWait = time.Second * 2
)

// Service publishes agent events to the message broker. It doubles as an alert
// sink on the device.alert subject.
type Service struct {
	url string

	mx   sync.Mutex
	conn *nats.Conn
}

func NewService(url string) *Service {
	return &Service{
		url: url,
	}
}

func (s *Service) Connect() (err error) {
	s.mx.Lock()
	defer s.mx.Unlock()

	if s.conn != nil {
		return nil
	}

	if s.conn, err = nats.Connect(s.url,
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(reconnectWait),
	); err != nil {
		return fmt.Errorf("Connect: %w", err)
	}

	return nil
}

func (s *Service) Publish(subject string, body any) error {
	s.mx.Lock()
	conn := s.conn
	s.mx.Unlock()

	if conn == nil {
		return fmt.Errorf("Publish: broker connection not established")
	}

	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("Publish: %w", err)
	}

	if err = conn.Publish(subject, data); err != nil {
		return fmt.Errorf("Publish: %w", err)
	}

	return nil
}

func (s *Service) Close() error {
	s.mx.Lock()
	defer s.mx.Unlock()

	if s.conn == nil {
		return nil
	}

	if err := s.conn.Drain(); err != nil {
		return fmt.Errorf("Close: %w", err)
	}

	s.conn = nil
	return nil
}

func (s *Service) Name() string {
	return sinkName
}

func (s *Service) Deliver(_ context.Context, event entities.NotificationEvent) error {
	if err := s.Publish(constants.MQDeviceAlert, event); err != nil {
		return fmt.Errorf("Deliver: %w", err)
	}

	return nil
}
