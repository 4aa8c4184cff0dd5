package command

import (
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/relayworks/actuator-agent/internal/entities"
	"github.com/relayworks/actuator-agent/internal/errs"
)

type (
	ICommandService interface {
		Dispatch(command entities.Command) (state entities.ActuatorState, err error)
	}

	Handler struct {
		commandService ICommandService
		linkService    ILinkService

		startedAt time.Time
	}
)

func NewHandler(commandService ICommandService, linkService ILinkService) *Handler {
	return &Handler{
		commandService: commandService,
		linkService:    linkService,

		startedAt: time.Now(),
	}
}

// TurnOn switches the output on and reports the resulting state.
func (h *Handler) TurnOn(w http.ResponseWriter, _ *http.Request) {
	h.exec(w, entities.CommandTurnOn)
}

// TurnOff switches the output off and reports the resulting state.
func (h *Handler) TurnOff(w http.ResponseWriter, _ *http.Request) {
	h.exec(w, entities.CommandTurnOff)
}

// Status reports link state, output state and uptime as a text table.
func (h *Handler) Status(w http.ResponseWriter, _ *http.Request) {
	state, err := h.commandService.Dispatch(entities.CommandQuery)
	if err != nil {
		h.writeError(w, err)
		return
	}

	writeText(w, http.StatusOK, renderStatus(h.linkService.CurrentState(), state, time.Since(h.startedAt)))
}

// NotFound rejects every path outside the command surface. Unknown commands
// must never take the server down.
func (h *Handler) NotFound(w http.ResponseWriter, _ *http.Request) {
	writeText(w, http.StatusNotFound, "unsupported command")
}

func (h *Handler) exec(w http.ResponseWriter, command entities.Command) {
	state, err := h.commandService.Dispatch(command)
	if err != nil {
		h.writeError(w, err)
		return
	}

	writeText(w, http.StatusOK, state.Text())
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	log.Error().
		Err(err).
		Msg("writeError: command refused")

	switch {
	case errors.Is(err, errs.ErrNotReady):
		writeText(w, http.StatusServiceUnavailable, "not ready")
	case errors.Is(err, errs.ErrUnsupportedCommand):
		writeText(w, http.StatusNotFound, "unsupported command")
	default:
		writeText(w, http.StatusInternalServerError, err.Error())
	}
}

func writeText(w http.ResponseWriter, statusCode int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(statusCode)
	if _, err := w.Write([]byte(body)); err != nil {
		log.Error().
			Err(err).
			Msg("writeText: response write error")
	}
}
