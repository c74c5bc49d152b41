package http

import (
	"net/http"

	"github.com/fiumana/guestdesk/internal/logger"
	"github.com/fiumana/guestdesk/internal/utils"
	"github.com/go-chi/chi/v5"
)

// connectionTestResponse is the verdict of a portal connectivity check.
type connectionTestResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (h *Handler) listPendingSubmissions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	pending, err := h.services.AlloggiatiService.ListPending(ctx)
	if err != nil {
		log.Err(err).Msg("failed to list pending submissions")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, pending, http.StatusOK)
}

func (h *Handler) sendToAlloggiati(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	bookingID := chi.URLParam(r, "bookingID")

	result, err := h.services.AlloggiatiService.Submit(ctx, bookingID)
	if err != nil {
		log.Err(err).Str("booking_id", bookingID).Msg("portal submission failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) sendAllToAlloggiati(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	report, err := h.services.AlloggiatiService.SubmitAll(ctx)
	if err != nil {
		log.Err(err).Msg("batch portal submission failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, report, http.StatusOK)
}

func (h *Handler) testAlloggiatiConnection(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	success, message := h.services.AlloggiatiService.TestConnection(ctx)

	utils.WriteJSON(w, connectionTestResponse{Success: success, Message: message}, http.StatusOK)
}
