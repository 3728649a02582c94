package scoring

import (
	"math"
	"testing"

	"github.com/Dan9191/bank-recommender/internal/catalog"
	"github.com/Dan9191/bank-recommender/internal/models"
	"github.com/Dan9191/bank-recommender/internal/profiler"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func product(t *testing.T, id string) models.Product {
	t.Helper()
	p, ok := catalog.Default().Get(id)
	require.True(t, ok, "missing product %s", id)
	return p
}

func TestScoreProduct_ClampedToRange(t *testing.T) {
	snapshots := []models.ClientSnapshot{
		{},
		{Age: 90, MonthlyIncome: 1e9, NetCashFlow: 1e9, TotalAssets: 1e12, CasaBalance: 1e9, CreditUtilization: 100},
		{Age: -5, MonthlyIncome: -1e6, NetCashFlow: -1e6, TotalAssets: -1e6, EmergencyFundRatio: -50},
		{Age: 45, MonthlyIncome: 9000, CreditUtilization: 95, EmergencyFundRatio: 10, NetCashFlow: 4000, TotalAssets: 150000},
		{MonthlyIncome: math.Inf(1), TotalAssets: math.Inf(1)},
	}
	for _, s := range snapshots {
		risk := profiler.ComputeRiskProfile(s)
		for _, p := range catalog.Default().All() {
			sp := ScoreProduct(p, s, risk)
			assert.GreaterOrEqual(t, sp.Score, MinScore, p.ID)
			assert.LessOrEqual(t, sp.Score, MaxScore, p.ID)
		}
	}
}

func TestScoreProduct_IslamicWithBonusesClamps(t *testing.T) {
	s := models.ClientSnapshot{EmergencyFundRatio: 20, NetCashFlow: 5000, TotalAssets: 200000}
	sp := ScoreProduct(product(t, catalog.IslamicSavings), s, profiler.ComputeRiskProfile(s))
	assert.Equal(t, 10, sp.Score)
	assert.Equal(t, models.PriorityHigh, sp.Tier)
	assert.Len(t, sp.Reasons, 5)
}

func TestScoreProduct_CategoryRules(t *testing.T) {
	conservative := models.RiskProfile{Tier: models.RiskConservative}
	aggressive := models.RiskProfile{Tier: models.RiskAggressive}

	tests := []struct {
		name  string
		id    string
		s     models.ClientSnapshot
		risk  models.RiskProfile
		score int
		tier  models.Priority
	}{
		{"savings low fund", catalog.BasicSavings, models.ClientSnapshot{EmergencyFundRatio: 50}, conservative, 8, models.PriorityHigh},
		{"savings funded idle casa", catalog.BasicSavings, models.ClientSnapshot{EmergencyFundRatio: 120, CasaBalance: 15000}, conservative, 4, models.PriorityLow},
		{"investment aggressive", catalog.UnitTrust, models.ClientSnapshot{}, aggressive, 8, models.PriorityHigh},
		{"investment moderate", catalog.UnitTrust, models.ClientSnapshot{}, models.RiskProfile{Tier: models.RiskModerate}, 6, models.PriorityMedium},
		{"investment conservative under-invested", catalog.UnitTrust, models.ClientSnapshot{TotalAssets: 10000}, conservative, 7, models.PriorityMedium},
		{"insurance gap over 40", catalog.LifeInsuranceBasic, models.ClientSnapshot{Age: 45, MonthlyIncome: 4000}, conservative, 10, models.PriorityHigh},
		{"insurance covered young", catalog.LifeInsuranceBasic, models.ClientSnapshot{Age: 25, MonthlyIncome: 4000, InsuranceValue: 60000}, conservative, 0, models.PriorityLow},
		{"credit high utilization", catalog.CashbackCard, models.ClientSnapshot{CreditUtilization: 80}, conservative, 6, models.PriorityMedium},
		{"credit rewards", catalog.CashbackCard, models.ClientSnapshot{MonthlyIncome: 6000, CreditUtilization: 10}, conservative, 4, models.PriorityLow},
		{"islamic base", catalog.IslamicSavings, models.ClientSnapshot{EmergencyFundRatio: 100}, conservative, 6, models.PriorityMedium},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sp := ScoreProduct(product(t, tt.id), tt.s, tt.risk)
			assert.Equal(t, tt.score, sp.Score)
			assert.Equal(t, tt.tier, sp.Tier)
		})
	}
}

func TestScoreProduct_Idempotent(t *testing.T) {
	s := models.ClientSnapshot{Age: 41, MonthlyIncome: 7000, CasaBalance: 30000, TotalAssets: 120000, NetCashFlow: 3500}
	risk := profiler.ComputeRiskProfile(s)
	p := product(t, catalog.WealthPortfolio)
	assert.Equal(t, ScoreProduct(p, s, risk), ScoreProduct(p, s, risk))
}

func TestRank_SavingsScenario(t *testing.T) {
	s := models.ClientSnapshot{Age: 30, EmergencyFundRatio: 40, MonthlyExpenses: 3000, CurrentEmergencyFund: 1000, CasaBalance: 2000}
	risk := profiler.ComputeRiskProfile(s)

	recs := Rank(ScoreCatalog(catalog.Default().All(), s, risk), s, DefaultMinScore, DefaultTopN)
	require.NotEmpty(t, recs)

	first := recs[0]
	assert.Equal(t, catalog.BasicSavings, first.ID)
	assert.Equal(t, models.CategorySavings, first.Category)
	assert.Equal(t, models.PriorityHigh, first.Priority)
	assert.Equal(t, 8000.0, first.EstimatedValue)
	assert.NotEmpty(t, first.Reasoning)
}

func TestRank_InvestmentScenario(t *testing.T) {
	s := models.ClientSnapshot{Age: 30, CasaBalance: 50000, InvestmentValue: 5000, TotalAssets: 100000}
	risk := profiler.ComputeRiskProfile(s)

	sp := ScoreProduct(product(t, catalog.UnitTrust), s, risk)
	recs := Rank([]models.ScoredProduct{sp}, s, DefaultMinScore, DefaultTopN)
	require.Len(t, recs, 1)
	assert.Equal(t, catalog.UnitTrust, recs[0].ID)
	assert.Equal(t, 20000.0, recs[0].EstimatedValue)
	assert.Equal(t, models.PriorityMedium, recs[0].Priority)
}

func TestRank_FiltersAndTruncates(t *testing.T) {
	s := models.ClientSnapshot{Age: 45, EmergencyFundRatio: 10, MonthlyIncome: 9000, NetCashFlow: 4000, TotalAssets: 150000}
	risk := profiler.ComputeRiskProfile(s)

	recs := Rank(ScoreCatalog(catalog.Default().All(), s, risk), s, DefaultMinScore, DefaultTopN)
	assert.LessOrEqual(t, len(recs), DefaultTopN)
	for i, r := range recs {
		assert.GreaterOrEqual(t, r.Score, DefaultMinScore)
		if i > 0 {
			prev := recs[i-1]
			assert.GreaterOrEqual(t, prev.Priority.Rank(), r.Priority.Rank())
			if prev.Priority == r.Priority {
				assert.GreaterOrEqual(t, prev.Score, r.Score)
			}
		}
	}

	assert.Empty(t, Rank(ScoreCatalog(catalog.Default().All(), s, risk), s, 11, DefaultTopN))
}

func TestSortAndTruncate_Stable(t *testing.T) {
	recs := []models.Recommendation{
		{Product: models.Product{ID: "a"}, Priority: models.PriorityMedium, Score: 6, Confidence: 0.7},
		{Product: models.Product{ID: "b"}, Priority: models.PriorityHigh, Score: 8, Confidence: 0.7},
		{Product: models.Product{ID: "c"}, Priority: models.PriorityMedium, Score: 6, Confidence: 0.7},
		{Product: models.Product{ID: "d"}, Priority: models.PriorityHigh, Score: 9, Confidence: 0.5},
		{Product: models.Product{ID: "e"}, Priority: models.PriorityLow, Score: 9, Confidence: 0.9},
	}

	ids := func(rs []models.Recommendation) []string {
		out := make([]string, 0, len(rs))
		for _, r := range rs {
			out = append(out, r.ID)
		}
		return out
	}

	assert.Equal(t, []string{"d", "b", "a", "c", "e"}, ids(SortAndTruncate(recs, BySuitability, 10)))
	assert.Equal(t, []string{"b", "d", "a", "c", "e"}, ids(SortAndTruncate(recs, ByConfidence, 10)))
	assert.Equal(t, []string{"d", "b"}, ids(SortAndTruncate(recs, BySuitability, 2)))
	assert.Equal(t, "a", recs[0].ID, "input must not be reordered")
}

func TestEstimateValue(t *testing.T) {
	s := models.ClientSnapshot{
		MonthlyExpenses:      3000,
		CurrentEmergencyFund: 8000,
		CasaBalance:          10000,
		MonthlyIncome:        5000,
		InsuranceValue:       20000,
		TotalLiabilities:     40000,
		CreditUtilization:    80,
	}
	assert.Equal(t, 5000.0, EstimateValue(models.CategorySavings, s))
	assert.Equal(t, 5000.0, EstimateValue(models.CategoryInvestment, s))
	assert.Equal(t, 40000.0, EstimateValue(models.CategoryInsurance, s))
	assert.InDelta(t, 4000.0, EstimateValue(models.CategoryCredit, s), 1e-9)
	assert.InDelta(t, 3000.0, EstimateValue(models.CategoryIslamic, s), 1e-9)

	s.CreditUtilization = 20
	assert.InDelta(t, 1800.0, EstimateValue(models.CategoryCredit, s), 1e-9)
}

func TestFormatRM(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "RM0.00"},
		{12.345, "RM12.35"},
		{999.999, "RM1,000.00"},
		{8000, "RM8,000.00"},
		{123456.7, "RM123,456.70"},
		{1234567.89, "RM1,234,567.89"},
		{-2500, "-RM2,500.00"},
		{-0.001, "RM0.00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatRM(tt.in), "%v", tt.in)
	}
	assert.Equal(t, "RM9,250.50", FormatDecimalRM(decimal.RequireFromString("9250.5")))
}

func TestUnderInvested(t *testing.T) {
	tests := []struct {
		name string
		s    models.ClientSnapshot
		want bool
	}{
		{"no assets", models.ClientSnapshot{}, false},
		{"negative assets", models.ClientSnapshot{TotalAssets: -100}, false},
		{"five percent invested", models.ClientSnapshot{InvestmentValue: 5000, TotalAssets: 100000}, true},
		{"exactly thirty percent", models.ClientSnapshot{InvestmentValue: 30000, TotalAssets: 100000}, false},
		{"mostly invested", models.ClientSnapshot{InvestmentValue: 80000, TotalAssets: 100000}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UnderInvested(tt.s))
		})
	}
}

func TestScoreProduct_NoAssetsIsNotUnderInvested(t *testing.T) {
	s := models.ClientSnapshot{Age: 30}
	risk := models.RiskProfile{Tier: models.RiskConservative}

	got := ScoreProduct(product(t, catalog.UnitTrust), s, risk)
	assert.Equal(t, 3, got.Score)
}
