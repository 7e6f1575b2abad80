package auth

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/arjunalabs/pos-backend/internal/apierr"
	"github.com/arjunalabs/pos-backend/internal/envelope"
	"github.com/arjunalabs/pos-backend/internal/localstore"
	"github.com/arjunalabs/pos-backend/internal/session"
)

// Handler exposes auth HTTP endpoints.
type Handler struct {
	service Service
	store   localstore.Store
}

func NewHandler(service Service, store localstore.Store) *Handler {
	return &Handler{service: service, store: store}
}

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Post("/v1/auth/login", h.login)   // POST /v1/auth/login
	r.Post("/v1/auth/logout", h.logout) // POST /v1/auth/logout
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondErr(w, apierr.Validation("malformed request body"))
		return
	}
	result, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		respondErr(w, err)
		return
	}
	if err := session.Save(h.store, result.User, result.Token); err != nil {
		respondErr(w, apierr.System(err, "persisting session"))
		return
	}
	respond(w, http.StatusOK, envelope.OK("Login successful", result))
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if err := session.Clear(h.store); err != nil {
		respondErr(w, apierr.System(err, "clearing session"))
		return
	}
	respond(w, http.StatusOK, envelope.OK("Logged out", nil))
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func respondErr(w http.ResponseWriter, err error) {
	respond(w, apierr.StatusOf(err), envelope.Fail(err.Error()))
}
