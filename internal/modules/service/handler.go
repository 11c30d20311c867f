package service

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"servicehp-backend/internal/apperr"
	"servicehp-backend/internal/web"
)

// Handler exposes repair-job HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/api/services", func(r chi.Router) {
		r.Get("/", h.list)
		r.Get("/track", h.track)
		r.Get("/piutang", h.receivables)
		r.Post("/", h.create)
		r.Put("/{id}/payment", h.updatePayment)
		r.Delete("/{id}", h.delete)
	})
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	services, err := h.service.ListServices(r.Context())
	if err != nil {
		web.Fail(w, err)
		return
	}
	web.JSON(w, http.StatusOK, services)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req CreateServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.Fail(w, apperr.Validation("invalid request body"))
		return
	}
	svc, err := h.service.CreateService(r.Context(), req)
	if err != nil {
		web.Fail(w, err)
		return
	}
	web.JSONMessage(w, http.StatusCreated, svc, "Service added successfully")
}

func (h *Handler) updatePayment(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		web.Fail(w, err)
		return
	}
	var req struct {
		PaymentStatus string `json:"payment_status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.Fail(w, apperr.Validation("invalid request body"))
		return
	}
	svc, err := h.service.UpdatePaymentStatus(r.Context(), id, req.PaymentStatus)
	if err != nil {
		web.Fail(w, err)
		return
	}
	web.JSONMessage(w, http.StatusOK, svc, "Payment status updated successfully")
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		web.Fail(w, err)
		return
	}
	if err := h.service.DeleteService(r.Context(), id); err != nil {
		web.Fail(w, err)
		return
	}
	web.Message(w, http.StatusOK, "Service deleted successfully")
}

func (h *Handler) receivables(w http.ResponseWriter, r *http.Request) {
	services, err := h.service.ListReceivables(r.Context())
	if err != nil {
		web.Fail(w, err)
		return
	}
	web.JSON(w, http.StatusOK, services)
}

func (h *Handler) track(w http.ResponseWriter, r *http.Request) {
	phone := r.URL.Query().Get("phone")
	date := r.URL.Query().Get("date")
	result, err := h.service.Track(r.Context(), phone, date)
	if err != nil {
		web.Fail(w, err)
		return
	}
	web.JSON(w, http.StatusOK, result)
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, apperr.Validation("invalid id")
	}
	return id, nil
}
