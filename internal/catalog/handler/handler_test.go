package handler

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"fitcore/internal/catalog/handler/mocks"
	"fitcore/internal/catalog/models"
	dErrors "fitcore/pkg/domain-errors"
)

type HandlerSuite struct {
	suite.Suite
	router      http.Handler
	ctrl        *gomock.Controller
	mockService *mocks.MockService
}

func (s *HandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = mocks.NewMockService(s.ctrl)
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

	r := chi.NewRouter()
	New(s.mockService, logger).Register(r)
	s.router = r
}

func (s *HandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

func (s *HandlerSuite) get(target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *HandlerSuite) TestList_PassesTrimmedFilter() {
	s.mockService.EXPECT().
		Search(gomock.Any(), models.Filter{Query: "whey", Category: "Protein"}).
		Return([]models.Product{{ID: "1", Name: "Core Protein", Category: "Protein"}})

	rec := s.get("/products?q=%20whey%20&category=Protein")

	s.Equal(http.StatusOK, rec.Code)
	var resp ListResponse
	s.Require().NoError(json.NewDecoder(rec.Body).Decode(&resp))
	s.Equal(1, resp.Total)
	s.Equal("Core Protein", resp.Products[0].Name)
}

func (s *HandlerSuite) TestList_RejectsLongQuery() {
	rec := s.get("/products?q=" + strings.Repeat("a", 101))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "validation_error")
}

func (s *HandlerSuite) TestCategories() {
	s.mockService.EXPECT().Categories().Return([]string{"All", "Protein"})

	rec := s.get("/products/categories")

	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"categories":["All","Protein"]}`, rec.Body.String())
}

func (s *HandlerSuite) TestGet() {
	s.mockService.EXPECT().Get(gomock.Any(), "3").Return(models.Product{ID: "3", Name: "Pre-Workout Ignite"}, nil)

	rec := s.get("/products/3")

	s.Equal(http.StatusOK, rec.Code)
	var p models.Product
	s.Require().NoError(json.NewDecoder(rec.Body).Decode(&p))
	s.Equal("Pre-Workout Ignite", p.Name)
}

func (s *HandlerSuite) TestGet_NotFound() {
	s.mockService.EXPECT().Get(gomock.Any(), "99").
		Return(models.Product{}, dErrors.New(dErrors.CodeNotFound, "product not found"))

	rec := s.get("/products/99")

	s.Equal(http.StatusNotFound, rec.Code)
	s.JSONEq(`{"error":"not_found","error_description":"product not found"}`, rec.Body.String())
}
