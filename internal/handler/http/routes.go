package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// guest-facing routes, reachable from the check-in link without a token
	router.Group(func(r chi.Router) {
		r.Get("/api/checkin/{bookingID}", h.getCheckInPage)
		r.Post("/api/checkin/{bookingID}", h.submitCheckIn)
	})

	router.Post("/api/admin/login", h.login)

	// back-office routes
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/admin/checkin/{bookingID}", h.getCheckInData)
		r.Delete("/api/admin/checkin/{bookingID}", h.deleteCheckInData)
		r.Post("/api/admin/checkin/{bookingID}/link", h.generateAccessLink)

		r.Get("/api/admin/alloggiati/pending", h.listPendingSubmissions)
		r.Post("/api/admin/alloggiati/send/{bookingID}", h.sendToAlloggiati)
		r.Post("/api/admin/alloggiati/send-all", h.sendAllToAlloggiati)
		r.Get("/api/admin/alloggiati/test", h.testAlloggiatiConnection)
	})

	return router
}
