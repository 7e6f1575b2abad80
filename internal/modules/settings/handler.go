package settings

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/arjunalabs/pos-backend/internal/apierr"
	"github.com/arjunalabs/pos-backend/internal/envelope"
)

// Handler exposes settings HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/v1/settings", func(r chi.Router) {
		r.Get("/store", h.getStore)              // GET    /v1/settings/store
		r.Put("/store", h.putStore)              // PUT    /v1/settings/store
		r.Get("/printer", h.getPrinter)          // GET    /v1/settings/printer
		r.Put("/printer", h.putPrinter)          // PUT    /v1/settings/printer
		r.Get("/notifications", h.getNotif)      // GET    /v1/settings/notifications
		r.Put("/notifications", h.putNotif)      // PUT    /v1/settings/notifications
		r.Get("/staff", h.listStaff)             // GET    /v1/settings/staff
		r.Post("/staff", h.addStaff)             // POST   /v1/settings/staff
		r.Delete("/staff/{id}", h.removeStaff)   // DELETE /v1/settings/staff/{id}
		r.Post("/password", h.changePassword)    // POST   /v1/settings/password
	})
}

func (h *Handler) getStore(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, envelope.OK("Operation successful", h.service.StoreInfo(r.Context())))
}

func (h *Handler) putStore(w http.ResponseWriter, r *http.Request) {
	var info StoreInfo
	if err := json.NewDecoder(r.Body).Decode(&info); err != nil {
		respondErr(w, apierr.Validation("malformed request body"))
		return
	}
	if err := h.service.SaveStoreInfo(r.Context(), info); err != nil {
		respondErr(w, err)
		return
	}
	respond(w, http.StatusOK, envelope.OK("Settings saved", info))
}

func (h *Handler) getPrinter(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, envelope.OK("Operation successful", h.service.Printer(r.Context())))
}

func (h *Handler) putPrinter(w http.ResponseWriter, r *http.Request) {
	var cfg PrinterConfig
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		respondErr(w, apierr.Validation("malformed request body"))
		return
	}
	if err := h.service.SavePrinter(r.Context(), cfg); err != nil {
		respondErr(w, err)
		return
	}
	respond(w, http.StatusOK, envelope.OK("Settings saved", cfg))
}

func (h *Handler) getNotif(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, envelope.OK("Operation successful", h.service.Notif(r.Context())))
}

func (h *Handler) putNotif(w http.ResponseWriter, r *http.Request) {
	var cfg NotifConfig
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		respondErr(w, apierr.Validation("malformed request body"))
		return
	}
	if err := h.service.SaveNotif(r.Context(), cfg); err != nil {
		respondErr(w, err)
		return
	}
	respond(w, http.StatusOK, envelope.OK("Settings saved", cfg))
}

func (h *Handler) listStaff(w http.ResponseWriter, r *http.Request) {
	list := h.service.Staff(r.Context())
	respond(w, http.StatusOK, envelope.OKList("Operation successful", list, len(list)))
}

type addStaffRequest struct {
	Name  string `json:"name"`
	Role  string `json:"role"`
	Email string `json:"email"`
}

func (h *Handler) addStaff(w http.ResponseWriter, r *http.Request) {
	var req addStaffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondErr(w, apierr.Validation("malformed request body"))
		return
	}
	member, err := h.service.AddStaff(r.Context(), req.Name, req.Role, req.Email)
	if err != nil {
		respondErr(w, err)
		return
	}
	respond(w, http.StatusCreated, envelope.OK("Staff added", member))
}

func (h *Handler) removeStaff(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondErr(w, apierr.Validation("staff id must be numeric"))
		return
	}
	if err := h.service.RemoveStaff(r.Context(), id); err != nil {
		respondErr(w, err)
		return
	}
	respond(w, http.StatusOK, envelope.OK("Staff removed", nil))
}

type changePasswordRequest struct {
	Old     string `json:"old"`
	New     string `json:"new"`
	Confirm string `json:"confirm"`
}

func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	var req changePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondErr(w, apierr.Validation("malformed request body"))
		return
	}
	if err := h.service.ChangePassword(r.Context(), req.Old, req.New, req.Confirm); err != nil {
		respondErr(w, err)
		return
	}
	respond(w, http.StatusOK, envelope.OK("Password changed", nil))
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func respondErr(w http.ResponseWriter, err error) {
	respond(w, apierr.StatusOf(err), envelope.Fail(err.Error()))
}
