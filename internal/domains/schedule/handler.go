package schedule

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"github.com/relayworks/actuator-agent/internal/errs"
)

type (
	IScheduleService interface {
		SetWindow(window Window)
		Window() (Window, error)
	}

	Handler struct {
		scheduleService IScheduleService

		validate *validator.Validate
	}
)

func NewHandler(scheduleService IScheduleService) *Handler {
	return &Handler{
		scheduleService: scheduleService,

		validate: validator.New(),
	}
}

// SetSchedule replaces the daily on/off window.
func (h *Handler) SetSchedule(w http.ResponseWriter, r *http.Request) {
	var requestBody Window
	if err := json.NewDecoder(r.Body).Decode(&requestBody); err != nil {
		h.writeJSON(w, http.StatusBadRequest, statusResponse{Status: "error", Message: err.Error()})
		return
	}

	if err := h.validate.Struct(requestBody); err != nil {
		h.writeJSON(w, http.StatusBadRequest, statusResponse{Status: "error", Message: err.Error()})
		return
	}

	h.scheduleService.SetWindow(requestBody)
	h.writeJSON(w, http.StatusOK, statusResponse{Status: "success"})
}

// GetSchedule returns the active window, if one was set.
func (h *Handler) GetSchedule(w http.ResponseWriter, _ *http.Request) {
	window, err := h.scheduleService.Window()
	if err != nil {
		if errors.Is(err, errs.ErrScheduleNotSet) {
			h.writeJSON(w, http.StatusNotFound, statusResponse{Status: "error", Message: "schedule not set"})
			return
		}

		h.writeJSON(w, http.StatusInternalServerError, statusResponse{Status: "error", Message: err.Error()})
		return
	}

	h.writeJSON(w, http.StatusOK, window)
}

func (h *Handler) writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error().
			Err(err).
			Msg("writeJSON: response write error")
	}
}

type statusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}
