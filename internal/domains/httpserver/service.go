package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	readHeaderTimeout = time.Second * 10
	shutdownTimeout   = time.Second * 5
)

// Service wraps the command channel HTTP server with a graceful stop.
type Service struct {
	server *http.Server
}

func NewService(addr string, handler http.Handler) *Service {
	return &Service{
		server: &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: readHeaderTimeout,
		},
	}
}

func (s *Service) Start() {
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().
				Err(err).
				Msg("Start: http server error")
		}
	}()
}

func (s *Service) Stop() error {
	ctx, cancelFunc := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelFunc()

	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("Stop: %w", err)
	}

	return nil
}
