package service

import (
	"context"
	"errors"

	"github.com/Dan9191/bank-recommender/internal/integrations/ratefeed"
	"github.com/Dan9191/bank-recommender/internal/integrations/textgen"
	"github.com/Dan9191/bank-recommender/internal/models"
)

var (
	ErrClientNotFound     = errors.New("client not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAdvisorExists      = errors.New("advisor with this email already exists")
	ErrRegistrationClosed = errors.New("advisor registration is disabled")
	ErrInvalidInvite      = errors.New("invalid invite code")
	ErrTextGenDisabled    = errors.New("text generation is not configured")
	ErrNoRecipient        = errors.New("client has no email address")
)

// ClientStore reads the per-client records recommendations are built from
type ClientStore interface {
	GetClientProfile(ctx context.Context, clientID string) (*models.ClientProfile, error)
	GetFinancialInputs(ctx context.Context, clientID string) (*models.FinancialInputs, error)
	GetFinancialMetrics(ctx context.Context, clientID string) (*models.FinancialMetrics, error)
	GetBehaviorSummary(ctx context.Context, clientID string) (*models.BehaviorSummary, error)
	GetTransactions(ctx context.Context, clientID string) ([]models.Transaction, error)
}

// AdvisorStore persists dashboard users
type AdvisorStore interface {
	CreateAdvisor(ctx context.Context, advisor *models.Advisor) error
	FindAdvisorByEmail(ctx context.Context, email string) (*models.Advisor, error)
}

// InsightGenerator asks an external model for insights
type InsightGenerator interface {
	RequestInsights(ctx context.Context, in textgen.PromptInput) (*textgen.Result, error)
}

// RateSource provides market context for prompts
type RateSource interface {
	GetRate(ctx context.Context) (*ratefeed.Rate, error)
}
