package stock

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"servicehp-backend/internal/apperr"
	"servicehp-backend/internal/web"
)

// Handler exposes stock HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/api/stocks", func(r chi.Router) {
		r.Get("/", h.list)
		r.Get("/search", h.search)
		r.Post("/seed", h.seed)
		r.Post("/", h.create)
		r.Get("/{id}", h.get)
		r.Put("/{id}", h.update)
		r.Delete("/{id}", h.delete)
	})
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	stocks, err := h.service.ListStocks(r.Context())
	if err != nil {
		web.Fail(w, err)
		return
	}
	web.JSON(w, http.StatusOK, stocks)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	ident := ParseIdentifier(chi.URLParam(r, "id"))
	s, err := h.service.GetStock(r.Context(), ident)
	if err != nil {
		web.Fail(w, err)
		return
	}
	web.JSON(w, http.StatusOK, s)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req UpsertStockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.Fail(w, apperr.Validation("invalid request body"))
		return
	}
	s, err := h.service.CreateStock(r.Context(), req)
	if err != nil {
		web.Fail(w, err)
		return
	}
	web.JSON(w, http.StatusCreated, s)
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	ident := ParseIdentifier(chi.URLParam(r, "id"))
	var req UpsertStockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.Fail(w, apperr.Validation("invalid request body"))
		return
	}
	s, err := h.service.UpdateStock(r.Context(), ident, req)
	if err != nil {
		web.Fail(w, err)
		return
	}
	web.JSON(w, http.StatusOK, s)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	ident := ParseIdentifier(chi.URLParam(r, "id"))
	if err := h.service.DeleteStock(r.Context(), ident); err != nil {
		web.Fail(w, err)
		return
	}
	web.Message(w, http.StatusOK, "Stock deleted")
}

func (h *Handler) search(w http.ResponseWriter, r *http.Request) {
	barcode := r.URL.Query().Get("barcode")
	sku := r.URL.Query().Get("sku")
	result, err := h.service.Search(r.Context(), barcode, sku)
	if err != nil {
		web.Fail(w, err)
		return
	}
	web.JSON(w, http.StatusOK, result)
}

func (h *Handler) seed(w http.ResponseWriter, r *http.Request) {
	stocks, seeded, err := h.service.Seed(r.Context())
	if err != nil {
		web.Fail(w, err)
		return
	}
	msg := "Stocks already present"
	if seeded {
		msg = "Seeded sample stocks"
	}
	web.JSONMessage(w, http.StatusOK, stocks, msg)
}
