package webhook

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/relayworks/actuator-agent/internal/entities"
	"github.com/relayworks/actuator-agent/internal/errs"
)

const (
	sinkName   = "webhook"
	reqTimeout = time.Second * 5
)

// Service posts notification events to the configured recipient gateway. The
// gateway owns addressing and message formatting; this side only ships the
// semantic payload.
type Service struct {
	client *resty.Client
	url    string
}

func NewService(url string) *Service {
	// no automatic retries, a lost notification stays lost
	client := resty.New().
		SetRetryCount(0).
		SetTimeout(reqTimeout)

	return &Service{
		client: client,
		url:    url,
	}
}

func (s *Service) Name() string {
	return sinkName
}

func (s *Service) Deliver(ctx context.Context, event entities.NotificationEvent) error {
	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(deliverRequest{
			Kind:      string(event.Kind),
			Message:   event.Payload,
			Timestamp: event.Timestamp,
		}).
		Post(s.url)
	if err != nil {
		return fmt.Errorf("Deliver: %w", err)
	}

	if resp.IsError() {
		return fmt.Errorf("Deliver: %d %s: %w", resp.StatusCode(), resp.Status(), errs.ErrAPIError)
	}

	return nil
}

type deliverRequest struct {
	Kind      string    `json:"kind"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}
