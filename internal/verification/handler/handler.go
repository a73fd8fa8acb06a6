package handler

//go:generate mockgen -source=handler.go -destination=mocks/handler_mock.go -package=mocks Service

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"fitcore/internal/verification/models"
	"fitcore/pkg/platform/httputil"
	"fitcore/pkg/requestcontext"
)

// Service is the verification lookup used by the handler.
type Service interface {
	Verify(ctx context.Context, queryCode string) models.Result
	Samples() []models.Record
}

// Handler serves the verification endpoints.
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

// Register mounts the verification routes on r.
func (h *Handler) Register(r chi.Router) {
	r.Post("/verify", h.HandleVerify)
	r.Get("/verify/samples", h.HandleSamples)
}

// HandleVerify handles POST /verify. Each request is its own interaction:
// blank codes are rejected before the lookup runs, and every other code
// resolves with 200, including codes that are not in the table.
func (h *Handler) HandleVerify(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[VerifyRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	result := h.service.Verify(ctx, req.Code)
	httputil.WriteJSON(w, http.StatusOK, toVerifyResponse(result))
}

// HandleSamples handles GET /verify/samples.
func (h *Handler) HandleSamples(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, toSamplesResponse(h.service.Samples()))
}
