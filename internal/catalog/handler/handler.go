package handler

//go:generate mockgen -source=handler.go -destination=mocks/handler_mock.go -package=mocks Service

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"fitcore/internal/catalog/models"
	"fitcore/pkg/platform/httputil"
	"fitcore/pkg/requestcontext"
)

// Service is the catalog read API used by the handler.
type Service interface {
	Search(ctx context.Context, f models.Filter) []models.Product
	Get(ctx context.Context, id string) (models.Product, error)
	Categories() []string
}

type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Register mounts the catalog routes on r.
func (h *Handler) Register(r chi.Router) {
	r.Get("/products", h.HandleList)
	r.Get("/products/categories", h.HandleCategories)
	r.Get("/products/{id}", h.HandleGet)
}

// HandleList handles GET /products?q=&category=.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req := ListRequest{
		Query:    r.URL.Query().Get("q"),
		Category: r.URL.Query().Get("category"),
	}
	if err := httputil.PrepareRequest(&req); err != nil {
		h.logger.WarnContext(ctx, "invalid product search",
			"error", err,
			"request_id", requestcontext.RequestID(ctx),
		)
		httputil.WriteError(w, err)
		return
	}

	products := h.service.Search(ctx, req.Filter())
	httputil.WriteJSON(w, http.StatusOK, ListResponse{
		Products: products,
		Total:    len(products),
	})
}

// HandleCategories handles GET /products/categories.
func (h *Handler) HandleCategories(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, CategoriesResponse{Categories: h.service.Categories()})
}

// HandleGet handles GET /products/{id}.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req := GetRequest{ID: chi.URLParam(r, "id")}
	if err := httputil.PrepareRequest(&req); err != nil {
		httputil.WriteError(w, err)
		return
	}

	product, err := h.service.Get(ctx, req.ID)
	if err != nil {
		h.logger.InfoContext(ctx, "product lookup failed",
			"product_id", req.ID,
			"error", err,
			"request_id", requestcontext.RequestID(ctx),
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, product)
}
