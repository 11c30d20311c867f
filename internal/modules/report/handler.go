package report

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"servicehp-backend/internal/web"
)

// Handler exposes report HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/api/report", func(r chi.Router) {
		r.Get("/summary", h.summary)
		r.Get("/services", h.serviceData)
		r.Get("/services/download", h.download)
	})
}

func (h *Handler) summary(w http.ResponseWriter, r *http.Request) {
	startDate := r.URL.Query().Get("startDate")
	endDate := r.URL.Query().Get("endDate")
	sum, err := h.service.Summary(r.Context(), startDate, endDate)
	if err != nil {
		web.Fail(w, err)
		return
	}
	web.JSON(w, http.StatusOK, sum)
}

func (h *Handler) serviceData(w http.ResponseWriter, r *http.Request) {
	rows, err := h.service.ServiceReport(r.Context())
	if err != nil {
		web.Fail(w, err)
		return
	}
	web.JSON(w, http.StatusOK, rows)
}

func (h *Handler) download(w http.ResponseWriter, r *http.Request) {
	rows, err := h.service.ServiceReport(r.Context())
	if err != nil {
		web.Fail(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="laporan_service.csv"`)
	if err := WriteCSV(w, rows); err != nil {
		web.Fail(w, err)
	}
}
