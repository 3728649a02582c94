package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/Dan9191/bank-recommender/internal/database"
	"github.com/Dan9191/bank-recommender/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) (*Repository, *sql.DB) {
	t.Helper()
	db, err := database.Open(database.SQLite, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.Migrate(db, database.SQLite))
	return NewRepository(db), db
}

func exec(t *testing.T, db *sql.DB, query string, args ...interface{}) {
	t.Helper()
	_, err := db.Exec(query, args...)
	require.NoError(t, err)
}

func TestClientReads_AbsentRecordsAreNil(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	profile, err := repo.GetClientProfile(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, profile)

	inputs, err := repo.GetFinancialInputs(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, inputs)

	metrics, err := repo.GetFinancialMetrics(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, metrics)

	behavior, err := repo.GetBehaviorSummary(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, behavior)

	txns, err := repo.GetTransactions(ctx, "missing")
	require.NoError(t, err)
	assert.Empty(t, txns)

	entry, err := repo.GetInsights(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, entry)
}

func TestClientReads(t *testing.T) {
	repo, db := newTestRepo(t)
	ctx := context.Background()

	exec(t, db, `INSERT INTO client_profiles (client_id, full_name, email, age, occupation) VALUES ($1, $2, $3, $4, $5)`,
		"c1", "Aisyah Rahman", "aisyah@example.com", 41, "Engineer")
	exec(t, db, `INSERT INTO client_financial_inputs (client_id, monthly_income, monthly_expenses) VALUES ($1, $2, $3)`,
		"c1", 8000.0, 3000.0)
	exec(t, db, `INSERT INTO client_financial_metrics (client_id, credit_utilization) VALUES ($1, $2)`, "c1", 25.0)
	exec(t, db, `INSERT INTO client_behavior (client_id, avg_monthly_spending, avg_monthly_income, transaction_count, top_category)
		VALUES ($1, $2, $3, $4, $5)`, "c1", 2800.0, 7900.0, 42, "dining")

	older := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	newer := time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)
	exec(t, db, `INSERT INTO client_transactions (client_id, amount, currency, category, description, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6)`, "c1", -120.0, "MYR", "dining", "NASI KANDAR", older)
	exec(t, db, `INSERT INTO client_transactions (client_id, amount, currency, category, description, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6)`, "c1", -900.0, "SGD", "travel", "HOTEL BOOKING", newer)

	profile, err := repo.GetClientProfile(ctx, "c1")
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, "Aisyah Rahman", profile.FullName)
	require.NotNil(t, profile.Age)
	assert.Equal(t, 41, *profile.Age)

	inputs, err := repo.GetFinancialInputs(ctx, "c1")
	require.NoError(t, err)
	require.NotNil(t, inputs.MonthlyIncome)
	assert.Equal(t, 8000.0, *inputs.MonthlyIncome)
	assert.Nil(t, inputs.CasaBalance)

	metrics, err := repo.GetFinancialMetrics(ctx, "c1")
	require.NoError(t, err)
	require.NotNil(t, metrics.CreditUtilization)
	assert.Equal(t, 25.0, *metrics.CreditUtilization)
	assert.Nil(t, metrics.TotalAssets)

	behavior, err := repo.GetBehaviorSummary(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, 42, behavior.TransactionCount)
	assert.Equal(t, "dining", behavior.TopCategory)

	txns, err := repo.GetTransactions(ctx, "c1")
	require.NoError(t, err)
	require.Len(t, txns, 2)
	assert.Equal(t, "HOTEL BOOKING", txns[0].Description)
	assert.True(t, txns[0].OccurredAt.Equal(newer))
	assert.True(t, txns[0].IsForeign())
}

func TestInsightsLifecycle(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	first := &models.CacheEntry{
		ClientID:    "c1",
		Insights:    []models.Insight{{Type: models.InsightTravel, Title: "Travel", Priority: models.InsightPriorityHigh}},
		Summary:     "first",
		VersionHash: "h1",
		GeneratedAt: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.UpsertInsights(ctx, first))

	second := *first
	second.Summary = "second"
	second.VersionHash = "h2"
	require.NoError(t, repo.UpsertInsights(ctx, &second))
	require.NoError(t, repo.UpsertInsights(ctx, &models.CacheEntry{ClientID: "c0", VersionHash: "x", GeneratedAt: time.Now()}))

	got, err := repo.GetInsights(ctx, "c1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "second", got.Summary)
	assert.Equal(t, "h2", got.VersionHash)
	require.Len(t, got.Insights, 1)
	assert.Equal(t, models.InsightTravel, got.Insights[0].Type)

	ids, err := repo.ListInsightClientIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"c0", "c1"}, ids)

	require.NoError(t, repo.DeleteInsights(ctx, "c1"))
	require.NoError(t, repo.DeleteInsights(ctx, "c1"))
	got, err = repo.GetInsights(ctx, "c1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestAdvisors(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	advisor := &models.Advisor{Email: "advisor@bank.local", Username: "advisor", PasswordHash: "hash"}
	require.NoError(t, repo.CreateAdvisor(ctx, advisor))
	assert.NotZero(t, advisor.ID)

	found, err := repo.FindAdvisorByEmail(ctx, "advisor@bank.local")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, advisor.ID, found.ID)
	assert.Equal(t, "hash", found.PasswordHash)

	assert.Error(t, repo.CreateAdvisor(ctx, &models.Advisor{Email: "advisor@bank.local", Username: "dup", PasswordHash: "x"}))

	missing, err := repo.FindAdvisorByEmail(ctx, "nobody@bank.local")
	require.NoError(t, err)
	assert.Nil(t, missing)
}
