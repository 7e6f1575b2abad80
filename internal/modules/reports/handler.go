package reports

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/arjunalabs/pos-backend/internal/apierr"
	"github.com/arjunalabs/pos-backend/internal/envelope"
)

// Handler exposes report HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/v1/reports", func(r chi.Router) {
		r.Get("/history", h.history)           // GET  /v1/reports/history?period=today
		r.Get("/summary", h.summary)           // GET  /v1/reports/summary?period=today
		r.Post("/reprint/{id}", h.reprint)     // POST /v1/reports/reprint/{id}
	})
}

func (h *Handler) history(w http.ResponseWriter, r *http.Request) {
	entries, err := h.service.History(r.Context(), periodParam(r), time.Now())
	if err != nil {
		respondErr(w, err)
		return
	}
	respond(w, http.StatusOK, envelope.OKList("Operation successful", entries, len(entries)))
}

func (h *Handler) summary(w http.ResponseWriter, r *http.Request) {
	sum, err := h.service.Summarize(r.Context(), periodParam(r), time.Now())
	if err != nil {
		respondErr(w, err)
		return
	}
	respond(w, http.StatusOK, envelope.OK("Operation successful", sum))
}

func (h *Handler) reprint(w http.ResponseWriter, r *http.Request) {
	trx, err := h.service.Reprint(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondErr(w, err)
		return
	}
	respond(w, http.StatusOK, envelope.OK("Reprint ready", trx))
}

func periodParam(r *http.Request) Period {
	switch Period(r.URL.Query().Get("period")) {
	case PeriodToday:
		return PeriodToday
	case PeriodWeek:
		return PeriodWeek
	case PeriodMonth:
		return PeriodMonth
	default:
		return PeriodAll
	}
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func respondErr(w http.ResponseWriter, err error) {
	respond(w, apierr.StatusOf(err), envelope.Fail(err.Error()))
}
