package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func NewRouter(h *Handler, mw *Middleware) http.Handler {
	mux := chi.NewRouter()
	mux.Use(mw.Log, mw.Recover, mw.Cors)

	mux.Route("/api", func(r chi.Router) {
		r.HandleFunc("/health", h.HealthHandler)

		r.Group(func(r chi.Router) {
			r.Use(mw.APIKeyAuth, mw.Identity)

			r.Get("/dashboard/summary", h.DashboardSummary)

			r.Route("/clients", func(r chi.Router) {
				r.Post("/", h.CreateClient)
				r.Get("/", h.Clients)
				r.Get("/{client_id}", h.Client)
				r.Put("/{client_id}", h.UpdateClient)
				r.Get("/{client_id}/summary", h.ClientSummary)
				r.Get("/{client_id}/credits", h.ClientCredits)
				r.Get("/{client_id}/payments", h.ClientPayments)
				r.Get("/{client_id}/history", h.ClientHistory)
				r.Post("/{client_id}/payments", h.CreateGeneralPayment)
				r.Post("/{client_id}/statement", h.SendStatement)
				r.Get("/{client_id}/notifications", h.ClientNotifications)
				r.Post("/{client_id}/reset", h.ResetClientAccount)
			})

			r.Route("/credits", func(r chi.Router) {
				r.Post("/", h.CreateCredit)
				r.Get("/{credit_id}", h.Credit)
				r.Post("/{credit_id}/payments", h.CreatePayment)
				r.Get("/{credit_id}/history", h.CreditHistory)
			})
		})
	})

	return mux
}
