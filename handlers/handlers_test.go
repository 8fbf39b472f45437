package handlers

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"hackhub/middleware"
	"hackhub/models"
	"hackhub/pricing"
	"hackhub/service"
	"hackhub/service/mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type testEnv struct {
	router http.Handler
	svc    service.Service
	repo   *mocks.MockRepository
}

func newEnv(t *testing.T, cfg RouterConfig, opts ...service.Option) testEnv {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	opts = append([]service.Option{service.WithClock(func() time.Time {
		return time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	})}, opts...)
	svc := service.NewService(repo, "secret", opts...)
	return testEnv{
		router: NewRouter(NewHandler(svc, zap.NewNop()), cfg),
		svc:    svc,
		repo:   repo,
	}
}

func (e testEnv) token(t *testing.T, c service.Claims) string {
	t.Helper()
	tok, err := e.svc.IssueToken(c)
	require.NoError(t, err)
	return tok
}

func (e testEnv) do(t *testing.T, method, path, token, body string, headers ...string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)

	var env envelope
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	}
	return rec, env
}

var userClaimsFixture = service.Claims{UserID: 1, Email: "me@x.io", Role: models.RoleUser}

func TestMapError(t *testing.T) {
	tests := []struct {
		err        error
		wantStatus int
		wantCode   string
	}{
		{err: &service.ValidationError{Field: "email", Message: "is invalid"}, wantStatus: 400, wantCode: "VALIDATION_FAILED"},
		{err: service.ErrInvalidCredentials, wantStatus: 401, wantCode: "UNAUTHORIZED"},
		{err: service.ErrClubRejected, wantStatus: 403, wantCode: "FORBIDDEN"},
		{err: service.ErrProfileNotFound, wantStatus: 404, wantCode: "PROFILE_NOT_FOUND"},
		{err: fmt.Errorf("wrapped: %w", service.ErrDoctorNotFound), wantStatus: 404, wantCode: "NOT_FOUND"},
		{err: service.ErrSlotTaken, wantStatus: 409, wantCode: "CONFLICT"},
		{err: service.ErrPriceChanged, wantStatus: 409, wantCode: "CONFLICT"},
		{err: service.ErrMixedChains, wantStatus: 400, wantCode: "VALIDATION_FAILED"},
		{err: fmt.Errorf("%w: timeout", service.ErrGeocoderUnavailable), wantStatus: 502, wantCode: "UPSTREAM_UNAVAILABLE"},
		{err: service.ErrMapboxNotConfigured, wantStatus: 503, wantCode: "UPSTREAM_UNAVAILABLE"},
		{err: errors.New("pq: connection refused"), wantStatus: 500, wantCode: "INTERNAL"},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			status, code, msg := mapError(tt.err)
			require.Equal(t, tt.wantStatus, status)
			require.Equal(t, tt.wantCode, code)
			if status == http.StatusInternalServerError {
				require.NotContains(t, msg, "pq")
			}
		})
	}
}

func TestJWTMiddleware(t *testing.T) {
	e := newEnv(t, RouterConfig{})
	e.repo.EXPECT().GetUserByID(gomock.Any(), 1).Return(models.User{ID: 1, Email: "me@x.io"}, nil)

	stale := service.NewService(nil, "secret", service.WithClock(func() time.Time {
		return time.Date(2025, 3, 8, 12, 0, 0, 0, time.UTC)
	}))
	expired, err := stale.IssueToken(userClaimsFixture)
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{name: "missing", header: "", wantStatus: http.StatusUnauthorized},
		{name: "not bearer", header: "Basic abc", wantStatus: http.StatusUnauthorized},
		{name: "garbage", header: "Bearer abc.def.ghi", wantStatus: http.StatusUnauthorized},
		{name: "expired", header: "Bearer " + expired, wantStatus: http.StatusUnauthorized},
		{name: "valid", header: "Bearer " + e.token(t, userClaimsFixture), wantStatus: http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			e.router.ServeHTTP(rec, req)
			require.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestRoleChecks(t *testing.T) {
	e := newEnv(t, RouterConfig{})

	rec, env := e.do(t, http.MethodGet, "/api/admin/college/stats", e.token(t, userClaimsFixture), "")
	require.Equal(t, http.StatusForbidden, rec.Code)
	require.Equal(t, "FORBIDDEN", env.Code)

	admin := e.token(t, service.Claims{UserID: 4, Role: models.RoleCollegeAdmin, CollegeID: 3})
	rec, _ = e.do(t, http.MethodGet, "/api/cart", admin, "")
	require.Equal(t, http.StatusForbidden, rec.Code)

	e.repo.EXPECT().CollegeStats(gomock.Any(), 3).Return(models.CollegeStats{TotalClubs: 2}, nil)
	rec, env = e.do(t, http.MethodGet, "/api/admin/college/stats", admin, "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, env.Success)
}

func TestLoginHandler(t *testing.T) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantCode   string
	}{
		{name: "ok", body: `{"email":"Me@X.io","password":"password123"}`, wantStatus: http.StatusOK},
		{name: "wrong password", body: `{"email":"me@x.io","password":"nope"}`, wantStatus: http.StatusUnauthorized, wantCode: "UNAUTHORIZED"},
		{name: "bad json", body: `{"email":`, wantStatus: http.StatusBadRequest, wantCode: "BAD_REQUEST"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEnv(t, RouterConfig{})
			e.repo.EXPECT().GetUserByEmail(gomock.Any(), "me@x.io").
				Return(models.User{ID: 1, Email: "me@x.io", Password: string(hashed), Role: models.RoleUser}, nil).
				AnyTimes()

			rec, env := e.do(t, http.MethodPost, "/api/auth/login", "", tt.body)
			require.Equal(t, tt.wantStatus, rec.Code)
			require.Equal(t, tt.wantCode, env.Code)
			if tt.wantCode == "" {
				data := env.Data.(map[string]interface{})
				require.NotEmpty(t, data["token"])
				require.NotContains(t, rec.Body.String(), "password")
			}
		})
	}
}

func TestProfileHandlerHealthLookup(t *testing.T) {
	e := newEnv(t, RouterConfig{})
	tok := e.token(t, userClaimsFixture)

	rec, env := e.do(t, http.MethodGet, "/api/profile?userId=2", tok, "")
	require.Equal(t, http.StatusForbidden, rec.Code)
	require.Equal(t, "FORBIDDEN", env.Code)

	e.repo.EXPECT().GetHealthProfile(gomock.Any(), 1).Return(models.HealthProfile{}, sql.ErrNoRows)
	rec, env = e.do(t, http.MethodGet, "/api/profile?userId=1", tok, "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "PROFILE_NOT_FOUND", env.Code)
	require.False(t, env.Success)
}

func TestHealthProfileHandlerFallsBackToDefault(t *testing.T) {
	e := newEnv(t, RouterConfig{})
	e.repo.EXPECT().GetHealthProfile(gomock.Any(), 1).Return(models.HealthProfile{}, sql.ErrNoRows)

	rec, env := e.do(t, http.MethodGet, "/api/health/profile", e.token(t, userClaimsFixture), "")
	require.Equal(t, http.StatusOK, rec.Code)
	data := env.Data.(map[string]interface{})
	require.Equal(t, false, data["complete"])
	require.Equal(t, "fair", data["sleep_pattern"])
}

func TestSaveAssessmentHandler(t *testing.T) {
	e := newEnv(t, RouterConfig{})
	tok := e.token(t, userClaimsFixture)

	rec, env := e.do(t, http.MethodPost, "/api/test3/save", tok, `{"userId":"7","responses":{"stress_level":3}}`)
	require.Equal(t, http.StatusForbidden, rec.Code)
	require.Equal(t, "FORBIDDEN", env.Code)

	e.repo.EXPECT().SaveAssessment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, a models.Assessment) (models.Assessment, error) {
			require.Equal(t, service.TestHairFall, a.TestType)
			require.NotEmpty(t, a.Analysis)
			a.ID = 12
			return a, nil
		})
	body := `{"userId":1,"responses":{"stress_level":8,"anxiety_frequency":"constantly","sleep_quality":"terrible"}}`
	rec, env = e.do(t, http.MethodPost, "/api/test3/save", tok, body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	data := env.Data.(map[string]interface{})
	analysis := data["analysis"].(map[string]interface{})
	require.Equal(t, "High", analysis["risk_level"])
}

func TestCheckoutHandlerIsIdempotent(t *testing.T) {
	store := middleware.NewIdempotencyStore(middleware.IdempotencyConfig{})
	t.Cleanup(store.Stop)

	ctrl := gomock.NewController(t)
	oracle := mocks.NewMockPriceOracle(ctrl)
	oracle.EXPECT().Rates(gomock.Any(), []string{"ethereum"}).
		Return(map[string]pricing.Rate{"ethereum": {USD: 2000, INR: 166000}}, nil)

	e := newEnv(t, RouterConfig{Idempotency: store}, service.WithPriceOracle(oracle))
	e.repo.EXPECT().ListCartItems(gomock.Any(), 1).Return([]models.CartItem{{
		ID:       "c1",
		UserID:   1,
		NFTID:    "n1",
		Quantity: 1,
		NFT:      models.NFT{ID: "n1", Blockchain: "ethereum", Price: 0.1, OwnerID: 9, IsListed: true},
	}}, nil)
	e.repo.EXPECT().CountCompletedOrders(gomock.Any(), 1).Return(2, nil)
	e.repo.EXPECT().PlaceOrder(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p models.PlaceOrderParams) (models.Order, error) {
			return models.Order{ID: p.OrderID, Status: p.Status, TotalAmountUSD: p.TotalAmountUSD}, nil
		}).
		Times(1)

	tok := e.token(t, userClaimsFixture)
	first, env1 := e.do(t, http.MethodPost, "/api/checkout", tok, `{"payment_method":"wallet"}`, middleware.IdempotencyHeader, "order-1")
	second, env2 := e.do(t, http.MethodPost, "/api/checkout", tok, `{"payment_method":"wallet"}`, middleware.IdempotencyHeader, "order-1")

	require.Equal(t, http.StatusCreated, first.Code)
	require.Equal(t, http.StatusCreated, second.Code)
	require.Equal(t, "true", second.Header().Get(middleware.ReplayedHeader))
	require.Equal(t, env1.Data, env2.Data)
}

func TestCheckoutHandlerWithoutPriceFeed(t *testing.T) {
	e := newEnv(t, RouterConfig{})
	e.repo.EXPECT().ListCartItems(gomock.Any(), 1).Return([]models.CartItem{{
		NFT: models.NFT{ID: "n1", Blockchain: "solana", Price: 2, OwnerID: 9, IsListed: true},
	}}, nil)

	rec, env := e.do(t, http.MethodPost, "/api/checkout", e.token(t, userClaimsFixture), `{"payment_method":"card"}`)
	require.Equal(t, http.StatusBadGateway, rec.Code)
	require.Equal(t, "UPSTREAM_UNAVAILABLE", env.Code)
}

func TestListHostelsHandlerValidatesQuery(t *testing.T) {
	e := newEnv(t, RouterConfig{})

	rec, env := e.do(t, http.MethodGet, "/api/hostels?lat=abc&lng=77", "", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "BAD_REQUEST", env.Code)

	rec, env = e.do(t, http.MethodGet, "/api/hostels?min_lat=12&max_lat=13", "", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "VALIDATION_FAILED", env.Code)
}

func TestMapboxTokenHandler(t *testing.T) {
	e := newEnv(t, RouterConfig{})
	rec, env := e.do(t, http.MethodGet, "/api/config/mapbox-token", "", "")
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	require.Equal(t, "UPSTREAM_UNAVAILABLE", env.Code)

	ctrl := gomock.NewController(t)
	geo := mocks.NewMockGeocoder(ctrl)
	geo.EXPECT().Token().Return("pk.test").AnyTimes()
	e = newEnv(t, RouterConfig{}, service.WithGeocoder(geo))
	rec, env = e.do(t, http.MethodGet, "/api/config/mapbox-token", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, map[string]interface{}{"token": "pk.test"}, env.Data)
}

func TestListClubsHandlerCollegeParam(t *testing.T) {
	e := newEnv(t, RouterConfig{})
	e.repo.EXPECT().ListClubs(gomock.Any(), models.ClubFilter{CollegeID: 5}).Return(nil, nil)
	e.repo.EXPECT().ListClubs(gomock.Any(), models.ClubFilter{CollegeCode: "CLG-123456", CategoryID: 2}).
		Return([]models.Club{{ID: 8, Name: "Chess"}}, nil)

	rec, env := e.do(t, http.MethodGet, "/api/clubs?collegeId=5", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, []interface{}{}, env.Data)

	rec, env = e.do(t, http.MethodGet, "/api/clubs?collegeId=clg-123456&categoryId=2", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, env.Data, 1)
}

func TestBookAppointmentHandlerSlotTaken(t *testing.T) {
	e := newEnv(t, RouterConfig{})
	e.repo.EXPECT().GetDoctor(gomock.Any(), 2).Return(models.Doctor{ID: 2}, nil)
	e.repo.EXPECT().CreateAppointment(gomock.Any(), gomock.Any()).Return(models.Appointment{}, models.ErrDuplicate)

	body := `{"doctorId":2,"patientName":"Asha","email":"a@m.com","phone":"+919876543210","age":29,
		"gender":"female","symptoms":"headache","appointmentDate":"2025-03-12","appointmentTime":"10:30 AM"}`
	rec, env := e.do(t, http.MethodPost, "/api/appointments", e.token(t, userClaimsFixture), body)
	require.Equal(t, http.StatusConflict, rec.Code)
	require.Equal(t, "CONFLICT", env.Code)
}

func TestUnknownRoute(t *testing.T) {
	e := newEnv(t, RouterConfig{})
	rec, env := e.do(t, http.MethodGet, "/api/nope", "", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "NOT_FOUND", env.Code)
	require.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))
}
