package v1alpha1_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/hexbench/tooltip-api/internal/entities"
	"github.com/hexbench/tooltip-api/internal/errors"
	v1alpha1 "github.com/hexbench/tooltip-api/internal/handlers/api/v1alpha1"
	"github.com/hexbench/tooltip-api/internal/orchestrators/tooltip"
	tooltipmock "github.com/hexbench/tooltip-api/internal/orchestrators/tooltip/mock"
	"github.com/hexbench/tooltip-api/internal/pkg/idgen"
	"github.com/hexbench/tooltip-api/internal/testutils"
)

type HandlerTestSuite struct {
	suite.Suite

	ctrl        *gomock.Controller
	mockService *tooltipmock.MockService
	router      *mux.Router
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = tooltipmock.NewMockService(s.ctrl)

	handler, err := v1alpha1.NewHandler(&v1alpha1.Config{
		Service:     s.mockService,
		IDGenerator: idgen.NewSequential("req"),
	})
	s.Require().NoError(err)

	s.router = mux.NewRouter()
	handler.RegisterRoutes(s.router)
}

func (s *HandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *HandlerTestSuite) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *HandlerTestSuite) TestGetTooltip() {
	s.mockService.EXPECT().
		GetTooltip(gomock.Any(), &tooltip.GetTooltipInput{
			UnitID:    "unit_ember",
			StarLevel: 2,
			ItemIDs:   []string{"item_deathcap", "item_bf_sword"},
		}).
		Return(&tooltip.GetTooltipOutput{
			Unit:  testutils.NewTestUnit(),
			Stats: testutils.NewTestCombatStats(),
			Tooltip: &entities.ResolvedTooltip{
				Name:       "Flame Surge",
				Type:       entities.SkillTypeActive,
				Mana:       &entities.ManaInfo{Start: 25, Cost: 75},
				Paragraphs: []string{"Flame Surge"},
				Variables:  []entities.ResolvedVariable{},
			},
		}, nil)

	req := httptest.NewRequest(http.MethodGet,
		"/api/v1alpha1/units/unit_ember/tooltip?star=2&items=item_deathcap,item_bf_sword", nil)
	rec := s.do(req)

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("application/json", rec.Header().Get("Content-Type"))
	s.NotEmpty(rec.Header().Get("X-Request-Id"))

	var body struct {
		Unit struct {
			ID string `json:"id"`
		} `json:"unit"`
		Stats struct {
			StarLevel int32 `json:"starLevel"`
		} `json:"stats"`
		Tooltip struct {
			Name string `json:"name"`
			Type string `json:"type"`
		} `json:"tooltip"`
		FromCache bool `json:"fromCache"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal("unit_ember", body.Unit.ID)
	s.Equal(int32(2), body.Stats.StarLevel)
	s.Equal("Flame Surge", body.Tooltip.Name)
	s.Equal("active", body.Tooltip.Type)
	s.False(body.FromCache)
}

func (s *HandlerTestSuite) TestGetTooltip_DefaultsToOneStar() {
	s.mockService.EXPECT().
		GetTooltip(gomock.Any(), &tooltip.GetTooltipInput{
			UnitID:    "unit_ember",
			StarLevel: 1,
		}).
		Return(&tooltip.GetTooltipOutput{
			Unit:    testutils.NewTestUnit(),
			Tooltip: &entities.ResolvedTooltip{},
		}, nil)

	rec := s.do(httptest.NewRequest(http.MethodGet,
		"/api/v1alpha1/units/unit_ember/tooltip", nil))

	s.Equal(http.StatusOK, rec.Code)
}

func (s *HandlerTestSuite) TestGetTooltip_FullRange() {
	s.mockService.EXPECT().
		GetTooltip(gomock.Any(), &tooltip.GetTooltipInput{
			UnitID:    "unit_ember",
			StarLevel: 1,
			FullRange: true,
		}).
		Return(&tooltip.GetTooltipOutput{
			Unit:    testutils.NewTestUnit(),
			Tooltip: &entities.ResolvedTooltip{},
		}, nil)

	rec := s.do(httptest.NewRequest(http.MethodGet,
		"/api/v1alpha1/units/unit_ember/tooltip?full_range=true", nil))

	s.Equal(http.StatusOK, rec.Code)
}

func (s *HandlerTestSuite) TestGetTooltip_InvalidStar() {
	rec := s.do(httptest.NewRequest(http.MethodGet,
		"/api/v1alpha1/units/unit_ember/tooltip?star=two", nil))

	s.Equal(http.StatusBadRequest, rec.Code)

	var body struct {
		Code string `json:"code"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal("INVALID_ARGUMENT", body.Code)
}

func (s *HandlerTestSuite) TestGetTooltip_UnitNotFound() {
	s.mockService.EXPECT().
		GetTooltip(gomock.Any(), gomock.Any()).
		Return(nil, errors.NotFoundf("unit unit_missing not found"))

	rec := s.do(httptest.NewRequest(http.MethodGet,
		"/api/v1alpha1/units/unit_missing/tooltip", nil))

	s.Equal(http.StatusNotFound, rec.Code)

	var body struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal("NOT_FOUND", body.Code)
	s.Contains(body.Message, "unit_missing")
}

func (s *HandlerTestSuite) TestGetTooltip_InternalError() {
	s.mockService.EXPECT().
		GetTooltip(gomock.Any(), gomock.Any()).
		Return(nil, errors.Internal("engine blew up"))

	rec := s.do(httptest.NewRequest(http.MethodGet,
		"/api/v1alpha1/units/unit_ember/tooltip", nil))

	s.Equal(http.StatusInternalServerError, rec.Code)
}

func (s *HandlerTestSuite) TestGetTooltip_EchoesRequestID() {
	s.mockService.EXPECT().
		GetTooltip(gomock.Any(), gomock.Any()).
		Return(&tooltip.GetTooltipOutput{
			Unit:    testutils.NewTestUnit(),
			Tooltip: &entities.ResolvedTooltip{},
		}, nil)

	req := httptest.NewRequest(http.MethodGet,
		"/api/v1alpha1/units/unit_ember/tooltip", nil)
	req.Header.Set("X-Request-Id", "client-supplied-id")
	rec := s.do(req)

	s.Equal("client-supplied-id", rec.Header().Get("X-Request-Id"))
}

func (s *HandlerTestSuite) TestListUnits() {
	s.mockService.EXPECT().
		ListUnits(gomock.Any(), &tooltip.ListUnitsInput{}).
		Return(&tooltip.ListUnitsOutput{
			Units: []*entities.UnitDefinition{testutils.NewTestUnit()},
		}, nil)

	rec := s.do(httptest.NewRequest(http.MethodGet, "/api/v1alpha1/units", nil))

	s.Equal(http.StatusOK, rec.Code)

	var body struct {
		Units []struct {
			ID   string `json:"id"`
			Cost int32  `json:"cost"`
		} `json:"units"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Require().Len(body.Units, 1)
	s.Equal("unit_ember", body.Units[0].ID)
	s.Equal(int32(3), body.Units[0].Cost)
}

func (s *HandlerTestSuite) TestListItems() {
	s.mockService.EXPECT().
		ListItems(gomock.Any(), &tooltip.ListItemsInput{}).
		Return(&tooltip.ListItemsOutput{Items: testutils.NewTestItems()}, nil)

	rec := s.do(httptest.NewRequest(http.MethodGet, "/api/v1alpha1/items", nil))

	s.Equal(http.StatusOK, rec.Code)

	var body struct {
		Items []struct {
			ID string `json:"id"`
		} `json:"items"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Len(body.Items, 3)
}

func (s *HandlerTestSuite) TestHealth() {
	rec := s.do(httptest.NewRequest(http.MethodGet, "/healthz", nil))

	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"status":"ok"}`, rec.Body.String())
}

func (s *HandlerTestSuite) TestMethodNotAllowed() {
	rec := s.do(httptest.NewRequest(http.MethodPost, "/api/v1alpha1/units", nil))

	s.Equal(http.StatusMethodNotAllowed, rec.Code)
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func TestNewHandler_MissingDependencies(t *testing.T) {
	_, err := v1alpha1.NewHandler(&v1alpha1.Config{})
	if err == nil {
		t.Fatal("expected an error for missing dependencies")
	}
}
