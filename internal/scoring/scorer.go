// Package scoring rates catalog products against a client snapshot and ranks the result.
package scoring

import (
	"fmt"

	"github.com/Dan9191/bank-recommender/internal/models"
)

// Score bounds and tier thresholds
const (
	MinScore        = 0
	MaxScore        = 10
	HighThreshold   = 8
	MediumThreshold = 5
)

// UnderInvestedRatio is the investment share of total assets below which more investing is suggested
const UnderInvestedRatio = 0.3

// UnderInvested reports investmentValue < 30% of totalAssets. A client without assets is not under-invested.
func UnderInvested(s models.ClientSnapshot) bool {
	return s.TotalAssets > 0 && s.InvestmentRatio() < UnderInvestedRatio
}

// ScoreProduct rates one product for a client. The score is clamped to [0,10].
func ScoreProduct(p models.Product, s models.ClientSnapshot, risk models.RiskProfile) models.ScoredProduct {
	score := 0
	var reasons []string
	add := func(points int, reason string) {
		score += points
		reasons = append(reasons, reason)
	}

	underInvested := UnderInvested(s)

	switch p.Category {
	case models.CategorySavings:
		if s.EmergencyFundRatio < 100 {
			add(8, fmt.Sprintf("Emergency fund covers only %.0f%% of the recommended target", s.EmergencyFundRatio))
		}
		if s.CasaBalance > 10000 {
			add(4, "Idle current account balance could earn higher interest")
		}
	case models.CategoryInvestment:
		switch risk.Tier {
		case models.RiskAggressive:
			add(8, "Aggressive risk appetite suits growth investments")
		case models.RiskModerate:
			add(6, "Moderate risk appetite suits balanced investments")
		default:
			add(3, "Conservative profile can start with low-risk funds")
		}
		if underInvested {
			add(4, "Investments are below 30% of total assets")
		}
	case models.CategoryInsurance:
		if s.InsuranceValue < 12*s.MonthlyIncome {
			add(8, "Insurance coverage is below one year of income")
		}
		if s.Age > 40 {
			add(4, "Protection needs increase after age 40")
		}
	case models.CategoryCredit:
		if s.CreditUtilization > 70 {
			add(6, fmt.Sprintf("Credit utilization of %.0f%% is high", s.CreditUtilization))
		}
		if s.MonthlyIncome > 5000 && s.CreditUtilization < 30 {
			add(4, "Strong income with low utilization qualifies for rewards cards")
		}
	case models.CategoryIslamic:
		add(6, "Shariah-compliant alternative available")
		if s.EmergencyFundRatio < 100 {
			add(2, "Can build the emergency fund under Islamic principles")
		}
		if underInvested {
			add(2, "Shariah-compliant investments can lift the investment share")
		}
	}

	if s.NetCashFlow > 3000 {
		add(2, "Healthy monthly cash flow")
	}
	if s.TotalAssets > 100000 {
		add(2, "Substantial asset base")
	}

	score = max(MinScore, min(MaxScore, score))
	return models.ScoredProduct{
		Product: p,
		Score:   score,
		Reasons: reasons,
		Tier:    TierFor(score),
	}
}

// TierFor maps a clamped score to its suitability tier
func TierFor(score int) models.Priority {
	switch {
	case score >= HighThreshold:
		return models.PriorityHigh
	case score >= MediumThreshold:
		return models.PriorityMedium
	default:
		return models.PriorityLow
	}
}

// ScoreCatalog scores every product, keeping input order
func ScoreCatalog(products []models.Product, s models.ClientSnapshot, risk models.RiskProfile) []models.ScoredProduct {
	out := make([]models.ScoredProduct, 0, len(products))
	for _, p := range products {
		out = append(out, ScoreProduct(p, s, risk))
	}
	return out
}
