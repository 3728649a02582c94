package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Dan9191/bank-recommender/internal/models"
)

// Repository provides database operations
type Repository struct {
	db *sql.DB
}

// NewRepository initializes a new repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

func nullFloat(n sql.NullFloat64) *float64 {
	if !n.Valid {
		return nil
	}
	v := n.Float64
	return &v
}

// GetClientProfile retrieves a client profile, nil when absent
func (r *Repository) GetClientProfile(ctx context.Context, clientID string) (*models.ClientProfile, error) {
	p := &models.ClientProfile{}
	var age sql.NullInt64
	query := `
		SELECT client_id, full_name, email, age, occupation
		FROM client_profiles
		WHERE client_id = $1`
	err := r.db.QueryRowContext(ctx, query, clientID).
		Scan(&p.ClientID, &p.FullName, &p.Email, &age, &p.Occupation)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get client profile: %w", err)
	}
	if age.Valid {
		a := int(age.Int64)
		p.Age = &a
	}
	return p, nil
}

// GetFinancialInputs retrieves manually entered figures, nil when absent
func (r *Repository) GetFinancialInputs(ctx context.Context, clientID string) (*models.FinancialInputs, error) {
	var income, expenses, casa, investments, insurance, fund, other, liabilities sql.NullFloat64
	in := &models.FinancialInputs{}
	query := `
		SELECT client_id, monthly_income, monthly_expenses, casa_balance, investment_value,
		       insurance_value, emergency_fund, other_assets, total_liabilities
		FROM client_financial_inputs
		WHERE client_id = $1`
	err := r.db.QueryRowContext(ctx, query, clientID).
		Scan(&in.ClientID, &income, &expenses, &casa, &investments, &insurance, &fund, &other, &liabilities)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get financial inputs: %w", err)
	}
	in.MonthlyIncome = nullFloat(income)
	in.MonthlyExpenses = nullFloat(expenses)
	in.CasaBalance = nullFloat(casa)
	in.InvestmentValue = nullFloat(investments)
	in.InsuranceValue = nullFloat(insurance)
	in.EmergencyFund = nullFloat(fund)
	in.OtherAssets = nullFloat(other)
	in.TotalLiabilities = nullFloat(liabilities)
	return in, nil
}

// GetFinancialMetrics retrieves derived metrics, nil when absent
func (r *Repository) GetFinancialMetrics(ctx context.Context, clientID string) (*models.FinancialMetrics, error) {
	var assets, net, util, efr, cashFlow sql.NullFloat64
	m := &models.FinancialMetrics{}
	query := `
		SELECT client_id, total_assets, net_position, credit_utilization, emergency_fund_ratio, net_cash_flow
		FROM client_financial_metrics
		WHERE client_id = $1`
	err := r.db.QueryRowContext(ctx, query, clientID).
		Scan(&m.ClientID, &assets, &net, &util, &efr, &cashFlow)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get financial metrics: %w", err)
	}
	m.TotalAssets = nullFloat(assets)
	m.NetPosition = nullFloat(net)
	m.CreditUtilization = nullFloat(util)
	m.EmergencyFundRatio = nullFloat(efr)
	m.NetCashFlow = nullFloat(cashFlow)
	return m, nil
}

// GetBehaviorSummary retrieves behavioral aggregates, nil when absent
func (r *Repository) GetBehaviorSummary(ctx context.Context, clientID string) (*models.BehaviorSummary, error) {
	b := &models.BehaviorSummary{}
	query := `
		SELECT client_id, avg_monthly_spending, avg_monthly_income, transaction_count, top_category
		FROM client_behavior
		WHERE client_id = $1`
	err := r.db.QueryRowContext(ctx, query, clientID).
		Scan(&b.ClientID, &b.AvgMonthlySpending, &b.AvgMonthlyIncome, &b.TransactionCount, &b.TopCategory)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get behavior summary: %w", err)
	}
	return b, nil
}

// GetTransactions retrieves a client's transactions, newest first
func (r *Repository) GetTransactions(ctx context.Context, clientID string) ([]models.Transaction, error) {
	query := `
		SELECT id, client_id, amount, currency, category, description, occurred_at
		FROM client_transactions
		WHERE client_id = $1
		ORDER BY occurred_at DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, query, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to get transactions: %w", err)
	}
	defer rows.Close()

	var txns []models.Transaction
	for rows.Next() {
		var t models.Transaction
		if err := rows.Scan(&t.ID, &t.ClientID, &t.Amount, &t.Currency, &t.Category, &t.Description, &t.OccurredAt); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		txns = append(txns, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read transactions: %w", err)
	}
	return txns, nil
}

// GetInsights retrieves the cached insight entry, nil when absent
func (r *Repository) GetInsights(ctx context.Context, clientID string) (*models.CacheEntry, error) {
	entry := &models.CacheEntry{}
	var raw []byte
	query := `
		SELECT client_id, insights, summary, version_hash, generated_at
		FROM ai_insights
		WHERE client_id = $1`
	err := r.db.QueryRowContext(ctx, query, clientID).
		Scan(&entry.ClientID, &raw, &entry.Summary, &entry.VersionHash, &entry.GeneratedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get insights: %w", err)
	}
	if err := json.Unmarshal(raw, &entry.Insights); err != nil {
		return nil, fmt.Errorf("failed to decode insights: %w", err)
	}
	return entry, nil
}

// UpsertInsights stores the entry, replacing any previous one for the client
func (r *Repository) UpsertInsights(ctx context.Context, entry *models.CacheEntry) error {
	raw, err := json.Marshal(entry.Insights)
	if err != nil {
		return fmt.Errorf("failed to encode insights: %w", err)
	}
	query := `
		INSERT INTO ai_insights (client_id, insights, summary, version_hash, generated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (client_id) DO UPDATE SET
			insights = EXCLUDED.insights,
			summary = EXCLUDED.summary,
			version_hash = EXCLUDED.version_hash,
			generated_at = EXCLUDED.generated_at`
	_, err = r.db.ExecContext(ctx, query, entry.ClientID, string(raw), entry.Summary, entry.VersionHash, entry.GeneratedAt.UTC())
	if err != nil {
		return fmt.Errorf("failed to upsert insights: %w", err)
	}
	return nil
}

// DeleteInsights removes the cached entry; deleting a missing entry is not an error
func (r *Repository) DeleteInsights(ctx context.Context, clientID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM ai_insights WHERE client_id = $1`, clientID); err != nil {
		return fmt.Errorf("failed to delete insights: %w", err)
	}
	return nil
}

// ListInsightClientIDs returns every client with a cached entry
func (r *Repository) ListInsightClientIDs(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT client_id FROM ai_insights ORDER BY client_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list insight clients: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan client id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read client ids: %w", err)
	}
	return ids, nil
}

// CreateAdvisor creates a new advisor in the database
func (r *Repository) CreateAdvisor(ctx context.Context, advisor *models.Advisor) error {
	createdAt := time.Now().UTC()
	query := `
		INSERT INTO advisors (email, username, password_hash, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.db.QueryRowContext(ctx, query, advisor.Email, advisor.Username, advisor.PasswordHash, createdAt).
		Scan(&advisor.ID)
	if err != nil {
		return fmt.Errorf("failed to create advisor: %w", err)
	}
	advisor.CreatedAt = createdAt
	return nil
}

// FindAdvisorByEmail retrieves an advisor by email, nil when absent
func (r *Repository) FindAdvisorByEmail(ctx context.Context, email string) (*models.Advisor, error) {
	advisor := &models.Advisor{}
	query := `
		SELECT id, email, username, password_hash, created_at
		FROM advisors
		WHERE email = $1`
	err := r.db.QueryRowContext(ctx, query, email).
		Scan(&advisor.ID, &advisor.Email, &advisor.Username, &advisor.PasswordHash, &advisor.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find advisor: %w", err)
	}
	return advisor, nil
}
