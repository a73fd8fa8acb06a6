package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"

	catalogmetrics "fitcore/internal/catalog/metrics"
	"fitcore/internal/catalog/models"
	dErrors "fitcore/pkg/domain-errors"
	"fitcore/pkg/platform/sentinel"
	"fitcore/pkg/platform/tracer"
)

// Store is the read-only product catalog.
type Store interface {
	All() []models.Product
	Categories() []string
	FindByID(id string) (models.Product, error)
}

type Service struct {
	store   Store
	logger  *slog.Logger
	metrics *catalogmetrics.Metrics
	tracer  tracer.Tracer
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *catalogmetrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithTracer(t tracer.Tracer) Option {
	return func(s *Service) {
		s.tracer = t
	}
}

func New(store Store, opts ...Option) *Service {
	s := &Service{
		store:  store,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		tracer: tracer.NewNoop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Search scans the catalog in display order and keeps products matching both
// the text query and the category.
func (s *Service) Search(ctx context.Context, f models.Filter) []models.Product {
	_, span := s.tracer.Start(ctx, tracer.SpanCatalogSearch,
		tracer.Int(tracer.AttrQueryLength, len(f.Query)),
		tracer.String(tracer.AttrCategory, f.Category),
	)
	defer span.End(nil)

	query := strings.ToLower(f.Query)
	matches := make([]models.Product, 0)
	for _, p := range s.store.All() {
		if !f.AnyCategory() && p.Category != f.Category {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(p.Name), query) &&
			!strings.Contains(strings.ToLower(p.Description), query) {
			continue
		}
		matches = append(matches, p)
	}

	span.SetAttributes(tracer.Int(tracer.AttrResultCount, len(matches)))
	if s.metrics != nil {
		s.metrics.ObserveSearch(f.Query != "", len(matches))
	}
	return matches
}

// Get returns a single product or a CodeNotFound domain error.
func (s *Service) Get(ctx context.Context, id string) (models.Product, error) {
	ctx, span := s.tracer.Start(ctx, tracer.SpanCatalogGet,
		tracer.String(tracer.AttrProductID, id),
	)

	p, err := s.store.FindByID(id)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			err = dErrors.New(dErrors.CodeNotFound, "product not found")
			span.End(nil)
			return models.Product{}, err
		}
		s.logger.ErrorContext(ctx, "catalog lookup failed", "product_id", id, "error", err)
		err = dErrors.Wrap(err, dErrors.CodeInternal, "failed to load product")
		span.End(err)
		return models.Product{}, err
	}
	span.End(nil)
	return p, nil
}

func (s *Service) Categories() []string {
	return s.store.Categories()
}
