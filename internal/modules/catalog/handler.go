package catalog

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/arjunalabs/pos-backend/internal/apierr"
	"github.com/arjunalabs/pos-backend/internal/envelope"
	"github.com/arjunalabs/pos-backend/internal/modules/user"
)

// Handler exposes catalog HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/v1", func(r chi.Router) {
		r.Get("/items", h.listItems)         // GET /v1/items
		r.Get("/items/{id}", h.getItem)      // GET /v1/items/{id}
		r.Get("/categories", h.listCategories) // GET /v1/categories
	})
}

func (h *Handler) listItems(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := Filter{
		Store:  user.StoreContext(q.Get("store")),
		Search: q.Get("search"),
	}
	if raw := q.Get("category"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			respondErr(w, apierr.Validation("category must be numeric"))
			return
		}
		f.CategoryID = id
	}
	items, err := h.service.ListItems(r.Context(), f)
	if err != nil {
		respondErr(w, err)
		return
	}
	respond(w, http.StatusOK, envelope.OKList("Operation successful", items, len(items)))
}

func (h *Handler) getItem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondErr(w, apierr.Validation("item id must be numeric"))
		return
	}
	item, err := h.service.GetItem(r.Context(), id)
	if err != nil {
		respondErr(w, err)
		return
	}
	respond(w, http.StatusOK, envelope.OK("Operation successful", item))
}

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	store := user.StoreContext(r.URL.Query().Get("store"))
	cats, err := h.service.ListCategories(r.Context(), store)
	if err != nil {
		respondErr(w, err)
		return
	}
	respond(w, http.StatusOK, envelope.OKList("Operation successful", cats, len(cats)))
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func respondErr(w http.ResponseWriter, err error) {
	respond(w, apierr.StatusOf(err), envelope.Fail(err.Error()))
}
