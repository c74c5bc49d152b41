package http

import (
	"encoding/json"
	"net"
	"net/http"

	"github.com/fiumana/guestdesk/internal/logger"
	"github.com/fiumana/guestdesk/internal/utils"
	"github.com/fiumana/guestdesk/models"
	"github.com/go-chi/chi/v5"
)

// checkInPageResponse is the payload backing the public check-in page: the
// booking summary plus the current eligibility verdict.
type checkInPageResponse struct {
	Booking     models.BookingSummary `json:"booking"`
	Eligibility models.Eligibility    `json:"eligibility"`
}

// accessLinkResponse carries a freshly generated guest check-in URL.
type accessLinkResponse struct {
	Link string `json:"link"`
}

func (h *Handler) getCheckInPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	bookingID := chi.URLParam(r, "bookingID")

	summary, err := h.services.CheckInService.GetBookingSummary(ctx, bookingID)
	if err != nil {
		log.Err(err).Str("booking_id", bookingID).Msg("failed to load booking for check-in page")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	eligibility, err := h.services.CheckInService.ValidateEligibility(ctx, bookingID)
	if err != nil {
		log.Err(err).Str("booking_id", bookingID).Msg("failed to evaluate check-in eligibility")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, checkInPageResponse{Booking: summary, Eligibility: eligibility}, http.StatusOK)
}

func (h *Handler) submitCheckIn(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	bookingID := chi.URLParam(r, "bookingID")

	var request models.SubmitCheckInRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	meta := models.SubmissionMeta{
		IPAddress: clientIP(r),
		UserAgent: r.UserAgent(),
	}

	response, err := h.services.CheckInService.Submit(ctx, bookingID, request, meta)
	if err != nil {
		log.Err(err).Str("booking_id", bookingID).Msg("check-in submission rejected")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, response, http.StatusOK)
}

func (h *Handler) getCheckInData(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	bookingID := chi.URLParam(r, "bookingID")

	record, err := h.services.CheckInService.Retrieve(ctx, bookingID)
	if err != nil {
		log.Err(err).Str("booking_id", bookingID).Msg("failed to retrieve check-in record")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, record, http.StatusOK)
}

func (h *Handler) deleteCheckInData(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	bookingID := chi.URLParam(r, "bookingID")

	if err := h.services.CheckInService.DeleteRecord(ctx, bookingID); err != nil {
		log.Err(err).Str("booking_id", bookingID).Msg("failed to delete check-in record")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) generateAccessLink(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	bookingID := chi.URLParam(r, "bookingID")

	link, err := h.services.CheckInService.GenerateAccessLink(ctx, bookingID)
	if err != nil {
		log.Err(err).Str("booking_id", bookingID).Msg("failed to generate access link")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, accessLinkResponse{Link: link}, http.StatusOK)
}

// clientIP prefers the X-Forwarded-For chain set by the reverse proxy and
// falls back to the connection's remote address.
func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		return forwarded
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
