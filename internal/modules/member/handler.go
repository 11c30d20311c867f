package member

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"servicehp-backend/internal/apperr"
	"servicehp-backend/internal/web"
)

// Handler exposes member HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/api/members", func(r chi.Router) {
		r.Get("/", h.list)
		r.Post("/", h.create)
		r.Put("/{id}", h.update)
		r.Delete("/{id}", h.delete)
	})
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	members, err := h.service.ListMembers(r.Context())
	if err != nil {
		web.Fail(w, err)
		return
	}
	web.JSON(w, http.StatusOK, members)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req UpsertMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.Fail(w, apperr.Validation("invalid request body"))
		return
	}
	m, err := h.service.CreateMember(r.Context(), req)
	if err != nil {
		web.Fail(w, err)
		return
	}
	web.JSON(w, http.StatusCreated, m)
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		web.Fail(w, err)
		return
	}
	var req UpsertMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.Fail(w, apperr.Validation("invalid request body"))
		return
	}
	if err := h.service.UpdateMember(r.Context(), id, req); err != nil {
		web.Fail(w, err)
		return
	}
	web.Message(w, http.StatusOK, "Member updated")
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		web.Fail(w, err)
		return
	}
	if err := h.service.DeleteMember(r.Context(), id); err != nil {
		web.Fail(w, err)
		return
	}
	web.Message(w, http.StatusOK, "Member deleted")
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, apperr.Validation("invalid id")
	}
	return id, nil
}
