package servicetype

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"servicehp-backend/internal/apperr"
	"servicehp-backend/internal/web"
)

// Handler exposes service-type HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

type nameRequest struct {
	Name string `json:"name"`
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/api/service-types", func(r chi.Router) {
		r.Get("/", h.list)
		r.Post("/", h.create)
		r.Put("/{id}", h.update)
		r.Delete("/{id}", h.delete)
	})
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	types, err := h.service.ListTypes(r.Context())
	if err != nil {
		web.Fail(w, err)
		return
	}
	web.JSON(w, http.StatusOK, types)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req nameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.Fail(w, apperr.Validation("invalid request body"))
		return
	}
	t, err := h.service.CreateType(r.Context(), req.Name)
	if err != nil {
		web.Fail(w, err)
		return
	}
	web.JSON(w, http.StatusCreated, t)
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		web.Fail(w, err)
		return
	}
	var req nameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.Fail(w, apperr.Validation("invalid request body"))
		return
	}
	if err := h.service.UpdateType(r.Context(), id, req.Name); err != nil {
		web.Fail(w, err)
		return
	}
	web.Message(w, http.StatusOK, "Service type updated")
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		web.Fail(w, err)
		return
	}
	if err := h.service.DeleteType(r.Context(), id); err != nil {
		web.Fail(w, err)
		return
	}
	web.Message(w, http.StatusOK, "Service type deleted")
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, apperr.Validation("invalid id")
	}
	return id, nil
}
