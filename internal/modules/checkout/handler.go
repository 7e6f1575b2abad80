package checkout

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/arjunalabs/pos-backend/internal/apierr"
	"github.com/arjunalabs/pos-backend/internal/envelope"
	"github.com/arjunalabs/pos-backend/internal/localstore"
	"github.com/arjunalabs/pos-backend/internal/session"
)

// fallbackCashier is echoed when no session is active.
const fallbackCashier = "Andi Kasir"

// Handler exposes the transaction endpoint.
type Handler struct {
	service Service
	store   localstore.Store
}

func NewHandler(service Service, store localstore.Store) *Handler {
	return &Handler{service: service, store: store}
}

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Post("/v1/transactions", h.createTransaction) // POST /v1/transactions
}

func (h *Handler) createTransaction(w http.ResponseWriter, r *http.Request) {
	var req CreateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondErr(w, apierr.Validation("malformed request body"))
		return
	}
	trx, err := h.service.ConfirmPayload(r.Context(), req)
	if err != nil {
		respondErr(w, err)
		return
	}
	cashier := fallbackCashier
	if sess, ok := session.Load(h.store); ok {
		cashier = sess.User.Name
	}
	echo := CreateTransactionResponse{
		TransactionID: trx.ID,
		CreatedAt:     trx.Date,
		GrandTotal:    trx.Total,
		CashierName:   cashier,
	}
	respond(w, http.StatusCreated, envelope.OK("Transaction recorded", echo))
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func respondErr(w http.ResponseWriter, err error) {
	respond(w, apierr.StatusOf(err), envelope.Fail(err.Error()))
}
