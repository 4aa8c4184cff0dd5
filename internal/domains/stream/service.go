package stream

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/relayworks/actuator-agent/internal/entities"
)

const (
	sinkName = "stream"

	writeWait = time.Second * 5
)

// Service pushes every notification event to connected websocket clients, the
// live counterpart of the /events journal view.
type Service struct {
	upgrader websocket.Upgrader

	mx      sync.Mutex
	clients map[*websocket.Conn]struct{}
}

func NewService() *Service {
	return &Service{
		upgrader: websocket.Upgrader{
			CheckOrigin: func(_ *http.Request) bool { return true },
		},

		clients: make(map[*websocket.Conn]struct{}),
	}
}

// Subscribe upgrades the request and registers the client for broadcasts.
func (s *Service) Subscribe(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error().
			Err(err).
			Msg("Subscribe: upgrade error")

		return
	}

	s.mx.Lock()
	s.clients[conn] = struct{}{}
	s.mx.Unlock()

	go s.readLoop(conn)
}

// Broadcast writes the event to every client; a failing or stalled client is
// dropped.
func (s *Service) Broadcast(event entities.NotificationEvent) {
	s.broadcast(event, time.Now().Add(writeWait))
}

// broadcast bounds every write with a deadline so a client that stopped
// reading cannot hold the mutex and stall deliveries behind it.
func (s *Service) broadcast(event entities.NotificationEvent, deadline time.Time) {
	s.mx.Lock()
	defer s.mx.Unlock()

	for conn := range s.clients {
		err := conn.SetWriteDeadline(deadline)
		if err == nil {
			err = conn.WriteJSON(event)
		}

		if err != nil {
			log.Debug().
				Err(err).
				Msg("broadcast: client write error, dropping client")

			delete(s.clients, conn)
			_ = conn.Close()
		}
	}
}

// Stop closes all client connections.
func (s *Service) Stop() {
	s.mx.Lock()
	defer s.mx.Unlock()

	for conn := range s.clients {
		_ = conn.Close()
	}

	s.clients = make(map[*websocket.Conn]struct{})
}

func (s *Service) Name() string {
	return sinkName
}

func (s *Service) Deliver(ctx context.Context, event entities.NotificationEvent) error {
	deadline, ok := ctx.Deadline()
	if !ok {
		deadline = time.Now().Add(writeWait)
	}

	s.broadcast(event, deadline)
	return nil
}

// readLoop drains inbound frames so closes are noticed; clients only listen.
func (s *Service) readLoop(conn *websocket.Conn) {
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			s.mx.Lock()
			delete(s.clients, conn)
			s.mx.Unlock()

			_ = conn.Close()
			return
		}
	}
}
