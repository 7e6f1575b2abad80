package invoice

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/arjunalabs/pos-backend/internal/apierr"
	"github.com/arjunalabs/pos-backend/internal/envelope"
	"github.com/arjunalabs/pos-backend/internal/localstore"
	"github.com/arjunalabs/pos-backend/internal/modules/checkout"
	"github.com/arjunalabs/pos-backend/internal/modules/settings"
)

// Handler exposes the invoice endpoint.
type Handler struct {
	store    localstore.Store
	settings settings.Service
}

func NewHandler(store localstore.Store, settings settings.Service) *Handler {
	return &Handler{store: store, settings: settings}
}

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Get("/v1/invoice/last", h.last) // GET /v1/invoice/last
}

type invoiceResponse struct {
	Transaction *checkout.Transaction `json:"transaction"`
	ShareText   string                `json:"share_text"`
	Receipt     string                `json:"receipt"`
}

func (h *Handler) last(w http.ResponseWriter, r *http.Request) {
	trx, err := LoadLast(h.store)
	if err != nil {
		respond(w, apierr.StatusOf(err), envelope.Fail(err.Error()))
		return
	}
	body := invoiceResponse{
		Transaction: trx,
		ShareText:   ShareText(trx),
		Receipt:     Receipt(trx, h.settings.StoreInfo(r.Context()), h.settings.Printer(r.Context())),
	}
	respond(w, http.StatusOK, envelope.OK("Operation successful", body))
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
