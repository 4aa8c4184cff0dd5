package journal

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/relayworks/actuator-agent/internal/entities"
)

const (
	defaultEventsLimit = 50
)

type (
	IJournalService interface {
		Recent(limit int) (events []entities.NotificationEvent, err error)
	}

	Handler struct {
		journalService IJournalService
	}
)

func NewHandler(journalService IJournalService) *Handler {
	return &Handler{
		journalService: journalService,
	}
}

// RecentEvents returns the latest journaled notification events.
func (h *Handler) RecentEvents(w http.ResponseWriter, _ *http.Request) {
	events, err := h.journalService.Recent(defaultEventsLimit)
	if err != nil {
		log.Error().
			Err(err).
			Msg("RecentEvents: read journal error")

		http.Error(w, "read journal error", http.StatusInternalServerError)
		return
	}

	if events == nil {
		events = []entities.NotificationEvent{}
	}

	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(events); err != nil {
		log.Error().
			Err(err).
			Msg("RecentEvents: response write error")
	}
}
