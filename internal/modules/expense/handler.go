package expense

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"servicehp-backend/internal/apperr"
	"servicehp-backend/internal/web"
)

// Handler exposes expense HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/api/expenses", func(r chi.Router) {
		r.Get("/", h.list)
		r.Post("/", h.create)
		r.Put("/{id}", h.update)
		r.Delete("/{id}", h.delete)
	})
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	expenses, err := h.service.ListExpenses(r.Context())
	if err != nil {
		web.Fail(w, err)
		return
	}
	web.JSON(w, http.StatusOK, expenses)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req UpsertExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.Fail(w, apperr.Validation("invalid request body"))
		return
	}
	e, err := h.service.CreateExpense(r.Context(), req)
	if err != nil {
		web.Fail(w, err)
		return
	}
	web.JSON(w, http.StatusCreated, e)
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		web.Fail(w, err)
		return
	}
	var req UpsertExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.Fail(w, apperr.Validation("invalid request body"))
		return
	}
	if err := h.service.UpdateExpense(r.Context(), id, req); err != nil {
		web.Fail(w, err)
		return
	}
	web.Message(w, http.StatusOK, "Expense updated")
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		web.Fail(w, err)
		return
	}
	if err := h.service.DeleteExpense(r.Context(), id); err != nil {
		web.Fail(w, err)
		return
	}
	web.Message(w, http.StatusOK, "Expense deleted")
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, apperr.Validation("invalid id")
	}
	return id, nil
}
