package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/Dan9191/bank-recommender/internal/catalog"
	"github.com/Dan9191/bank-recommender/internal/config"
	"github.com/Dan9191/bank-recommender/internal/integrations/ratefeed"
	"github.com/Dan9191/bank-recommender/internal/integrations/textgen"
	"github.com/Dan9191/bank-recommender/internal/models"
	"github.com/Dan9191/bank-recommender/internal/service"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// Recommender is the recommendation surface used by the handlers
type Recommender interface {
	GetRecommendations(ctx context.Context, clientID, mode string) *models.RecommendationResponse
	RefreshInsights(ctx context.Context, clientID string) (*models.CacheEntry, error)
	ClearInsights(ctx context.Context, clientID string) error
}

// Authenticator registers and logs in advisors
type Authenticator interface {
	Register(ctx context.Context, username, email, password, inviteCode string) (*models.Advisor, error)
	Login(ctx context.Context, email, password string) (string, error)
}

// Digester emails recommendation digests
type Digester interface {
	SendDigest(ctx context.Context, clientID, mode string) (*models.RecommendationResponse, error)
}

type Handler struct {
	recommender Recommender
	auth        Authenticator
	digest      Digester
	catalog     *catalog.Catalog
	rates       service.RateSource
	log         *logrus.Logger
}

// NewHandler creates the HTTP handlers. rates may be nil.
func NewHandler(recommender Recommender, auth Authenticator, digest Digester, c *catalog.Catalog, rates service.RateSource, log *logrus.Logger) *Handler {
	return &Handler{recommender: recommender, auth: auth, digest: digest, catalog: c, rates: rates, log: log}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

type registerRequest struct {
	Username   string `json:"username"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	InviteCode string `json:"inviteCode"`
}

// Register handles advisor registration
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	advisor, err := h.auth.Register(r.Context(), req.Username, req.Email, req.Password, req.InviteCode)
	switch {
	case errors.Is(err, service.ErrRegistrationClosed), errors.Is(err, service.ErrInvalidInvite):
		writeError(w, http.StatusForbidden, err.Error())
		return
	case errors.Is(err, service.ErrAdvisorExists):
		writeError(w, http.StatusConflict, err.Error())
		return
	case err != nil:
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, advisor)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles advisor login and returns a JWT
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	token, err := h.auth.Login(r.Context(), req.Email, req.Password)
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, err.Error())
		return
	case err != nil:
		h.log.Errorf("Login failed: %v", err)
		writeError(w, http.StatusInternalServerError, "login failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

// Health reports liveness
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ReferenceRate returns the latest policy rate plus bank margin
func (h *Handler) ReferenceRate(w http.ResponseWriter, r *http.Request) {
	if h.rates == nil {
		writeError(w, http.StatusServiceUnavailable, ratefeed.ErrNotConfigured.Error())
		return
	}
	rate, err := h.rates.GetRate(r.Context())
	switch {
	case errors.Is(err, ratefeed.ErrNotConfigured):
		writeError(w, http.StatusServiceUnavailable, err.Error())
		return
	case err != nil:
		h.log.Errorf("Failed to get reference rate: %v", err)
		writeError(w, http.StatusBadGateway, "failed to get reference rate")
		return
	}
	writeJSON(w, http.StatusOK, rate)
}

// ListProducts returns the catalog, optionally filtered by ?category=
func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	if category == "" {
		writeJSON(w, http.StatusOK, h.catalog.All())
		return
	}
	for _, c := range models.Categories {
		if strings.EqualFold(string(c), category) {
			writeJSON(w, http.StatusOK, h.catalog.ByCategory(c))
			return
		}
	}
	writeError(w, http.StatusBadRequest, "unknown category")
}

// GetProduct returns one catalog product
func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	p, ok := h.catalog.Get(mux.Vars(r)["id"])
	if !ok {
		writeError(w, http.StatusNotFound, "product not found")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// GetRecommendations always answers 200; failures are served as the fallback list
func (h *Handler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	mode := strings.ToLower(r.URL.Query().Get("mode"))
	switch mode {
	case "", config.ModeScoring, config.ModeInsights, config.ModeAI:
	default:
		writeError(w, http.StatusBadRequest, "mode must be one of scoring, insights, ai")
		return
	}
	resp := h.recommender.GetRecommendations(r.Context(), mux.Vars(r)["id"], mode)
	writeJSON(w, http.StatusOK, resp)
}

// ClearInsights drops the cached insights for a client
func (h *Handler) ClearInsights(w http.ResponseWriter, r *http.Request) {
	if err := h.recommender.ClearInsights(r.Context(), mux.Vars(r)["id"]); err != nil {
		h.log.Errorf("Failed to clear insights: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to clear insights")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// RefreshInsights forces regeneration and surfaces text generation errors to the operator
func (h *Handler) RefreshInsights(w http.ResponseWriter, r *http.Request) {
	entry, err := h.recommender.RefreshInsights(r.Context(), mux.Vars(r)["id"])
	switch {
	case errors.Is(err, service.ErrTextGenDisabled):
		writeError(w, http.StatusServiceUnavailable, err.Error())
		return
	case errors.Is(err, textgen.ErrAPIKey), errors.Is(err, textgen.ErrUnreachable), errors.Is(err, textgen.ErrBadStatus):
		writeError(w, http.StatusBadGateway, err.Error())
		return
	case err != nil:
		h.log.Errorf("Failed to refresh insights for client %s: %v", mux.Vars(r)["id"], err)
		writeError(w, http.StatusInternalServerError, "failed to refresh insights")
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

// SendDigest emails the client their recommendations
func (h *Handler) SendDigest(w http.ResponseWriter, r *http.Request) {
	clientID := mux.Vars(r)["id"]
	resp, err := h.digest.SendDigest(r.Context(), clientID, strings.ToLower(r.URL.Query().Get("mode")))
	switch {
	case errors.Is(err, service.ErrClientNotFound):
		writeError(w, http.StatusNotFound, err.Error())
		return
	case errors.Is(err, service.ErrNoRecipient):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	case err != nil:
		h.log.Errorf("Failed to send digest for client %s: %v", clientID, err)
		writeError(w, http.StatusBadGateway, "failed to send digest")
		return
	}
	writeJSON(w, http.StatusAccepted, map[string]interface{}{
		"client_id":       clientID,
		"recommendations": len(resp.Recommendations),
	})
}
