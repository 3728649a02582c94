package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Dan9191/bank-recommender/internal/catalog"
	"github.com/Dan9191/bank-recommender/internal/insights"
	"github.com/Dan9191/bank-recommender/internal/integrations/ratefeed"
	"github.com/Dan9191/bank-recommender/internal/integrations/textgen"
	"github.com/Dan9191/bank-recommender/internal/models"
	"github.com/Dan9191/bank-recommender/internal/service"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret = "handler-secret"
	testInvite = "invite-123"
)

type fakeRecommender struct {
	lastClient, lastMode string
	refreshErr           error
	cleared              []string
}

func (f *fakeRecommender) GetRecommendations(_ context.Context, clientID, mode string) *models.RecommendationResponse {
	f.lastClient, f.lastMode = clientID, mode
	return &models.RecommendationResponse{
		Recommendations: insights.Fallback(catalog.Default()),
		Fallback:        true,
	}
}

func (f *fakeRecommender) RefreshInsights(_ context.Context, clientID string) (*models.CacheEntry, error) {
	if f.refreshErr != nil {
		return nil, f.refreshErr
	}
	return &models.CacheEntry{ClientID: clientID, Summary: "fresh"}, nil
}

func (f *fakeRecommender) ClearInsights(_ context.Context, clientID string) error {
	f.cleared = append(f.cleared, clientID)
	return nil
}

type fakeAdvisors struct {
	byEmail map[string]*models.Advisor
}

func (a *fakeAdvisors) CreateAdvisor(_ context.Context, advisor *models.Advisor) error {
	advisor.ID = int64(len(a.byEmail) + 1)
	a.byEmail[advisor.Email] = advisor
	return nil
}

func (a *fakeAdvisors) FindAdvisorByEmail(_ context.Context, email string) (*models.Advisor, error) {
	return a.byEmail[email], nil
}

type fakeDigester struct {
	err error
}

func (d *fakeDigester) SendDigest(_ context.Context, clientID, mode string) (*models.RecommendationResponse, error) {
	if d.err != nil {
		return nil, d.err
	}
	return &models.RecommendationResponse{Recommendations: insights.Fallback(catalog.Default())}, nil
}

type fakeRates struct {
	err error
}

func (r fakeRates) GetRate(context.Context) (*ratefeed.Rate, error) {
	if r.err != nil {
		return nil, r.err
	}
	return &ratefeed.Rate{PolicyRate: 3, Margin: 1.5, EffectiveRate: 4.5}, nil
}

type testEnv struct {
	router      http.Handler
	recommender *fakeRecommender
	digest      *fakeDigester
}

func newEnv(t *testing.T, rates service.RateSource) *testEnv {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)

	rec := &fakeRecommender{}
	digest := &fakeDigester{}
	auth := service.NewAuthService(&fakeAdvisors{byEmail: make(map[string]*models.Advisor)}, testSecret, time.Hour, testInvite, log)
	h := NewHandler(rec, auth, digest, catalog.Default(), rates, log)
	return &testEnv{router: NewRouter(h, testSecret, []string{"*"}, log), recommender: rec, digest: digest}
}

func (e *testEnv) do(t *testing.T, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func (e *testEnv) login(t *testing.T) string {
	t.Helper()
	rec := e.do(t, http.MethodPost, "/register", `{"username":"advisor","email":"advisor@bank.local","password":"correct-horse","inviteCode":"`+testInvite+`"}`, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = e.do(t, http.MethodPost, "/login", `{"email":"advisor@bank.local","password":"correct-horse"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var out map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.NotEmpty(t, out["token"])
	return out["token"]
}

func TestAuthRoutes(t *testing.T) {
	env := newEnv(t, nil)
	env.login(t)

	rec := env.do(t, http.MethodPost, "/register", `{"username":"advisor","email":"advisor@bank.local","password":"correct-horse","inviteCode":"`+testInvite+`"}`, "")
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = env.do(t, http.MethodPost, "/login", `{"email":"advisor@bank.local","password":"nope-nope"}`, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = env.do(t, http.MethodPost, "/login", `not json`, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegisterRequiresInvite(t *testing.T) {
	env := newEnv(t, nil)

	for _, body := range []string{
		`{"username":"intruder","email":"intruder@example.com","password":"correct-horse"}`,
		`{"username":"intruder","email":"intruder@example.com","password":"correct-horse","inviteCode":"guess"}`,
	} {
		rec := env.do(t, http.MethodPost, "/register", body, "")
		assert.Equal(t, http.StatusForbidden, rec.Code, body)
	}

	rec := env.do(t, http.MethodPost, "/login", `{"email":"intruder@example.com","password":"correct-horse"}`, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRecommendationsRoute(t *testing.T) {
	env := newEnv(t, nil)

	rec := env.do(t, http.MethodGet, "/clients/c1/recommendations", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	token := env.login(t)
	rec = env.do(t, http.MethodGet, "/clients/c1/recommendations?mode=AI", "", token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "c1", env.recommender.lastClient)
	assert.Equal(t, "ai", env.recommender.lastMode)

	var resp models.RecommendationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Fallback)
	require.Len(t, resp.Recommendations, 2)
	assert.Equal(t, catalog.BasicSavings, resp.Recommendations[0].ID)

	rec = env.do(t, http.MethodGet, "/clients/c1/recommendations?mode=tarot", "", token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestInsightRoutes(t *testing.T) {
	env := newEnv(t, nil)
	token := env.login(t)

	rec := env.do(t, http.MethodDelete, "/clients/c1/insights", "", token)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, []string{"c1"}, env.recommender.cleared)

	rec = env.do(t, http.MethodPost, "/clients/c1/insights/refresh", "", token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"summary":"fresh"`)

	env.recommender.refreshErr = fmt.Errorf("failed to request insights from openai: %w", textgen.ErrAPIKey)
	rec = env.do(t, http.MethodPost, "/clients/c1/insights/refresh", "", token)
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "TEXTGEN_API_KEY")

	env.recommender.refreshErr = fmt.Errorf("failed to request insights from gemini: %w", fmt.Errorf("%w: dial tcp", textgen.ErrUnreachable))
	rec = env.do(t, http.MethodPost, "/clients/c1/insights/refresh", "", token)
	assert.Equal(t, http.StatusBadGateway, rec.Code)

	env.recommender.refreshErr = service.ErrTextGenDisabled
	rec = env.do(t, http.MethodPost, "/clients/c1/insights/refresh", "", token)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	env.recommender.refreshErr = fmt.Errorf("failed to load client c1: %w", errors.New("pq: connection refused to 10.0.0.5"))
	rec = env.do(t, http.MethodPost, "/clients/c1/insights/refresh", "", token)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "pq:")
	assert.Contains(t, rec.Body.String(), "failed to refresh insights")
}

func TestDigestRoute(t *testing.T) {
	env := newEnv(t, nil)
	token := env.login(t)

	rec := env.do(t, http.MethodPost, "/clients/c1/digest", "", token)
	assert.Equal(t, http.StatusAccepted, rec.Code)

	env.digest.err = service.ErrClientNotFound
	rec = env.do(t, http.MethodPost, "/clients/c1/digest", "", token)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	env.digest.err = service.ErrNoRecipient
	rec = env.do(t, http.MethodPost, "/clients/c1/digest", "", token)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestProductRoutes(t *testing.T) {
	env := newEnv(t, nil)

	rec := env.do(t, http.MethodGet, "/products", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var all []models.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &all))
	assert.Len(t, all, len(catalog.Default().All()))

	rec = env.do(t, http.MethodGet, "/products?category=islamic", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var islamic []models.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &islamic))
	assert.Len(t, islamic, 2)

	rec = env.do(t, http.MethodGet, "/products?category=crypto", "", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, http.MethodGet, "/products/"+catalog.TravelCard, "", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodGet, "/products/unknown", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHealthAndReferenceRate(t *testing.T) {
	env := newEnv(t, nil)
	rec := env.do(t, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	rec = env.do(t, http.MethodGet, "/reference-rate", "", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	env = newEnv(t, fakeRates{})
	rec = env.do(t, http.MethodGet, "/reference-rate", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"effective_rate":4.5`)

	env = newEnv(t, fakeRates{err: errors.New("feed down")})
	rec = env.do(t, http.MethodGet, "/reference-rate", "", "")
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}
