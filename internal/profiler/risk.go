// Package profiler derives risk and investment profiles from a client snapshot.
// Every function here is pure and total.
package profiler

import "github.com/Dan9191/bank-recommender/internal/models"

// Tier thresholds, inclusive on the lower edge
const (
	AggressiveThreshold = 8
	ModerateThreshold   = 5
)

// Risk factor descriptions, appended in evaluation order
const (
	FactorNegativeCashFlow = "Negative or zero monthly cash flow"
	FactorHighDebtToIncome = "High debt-to-income ratio"
	FactorHighUtilization  = "High credit utilization"
	FactorLowEmergencyFund = "Insufficient emergency fund"
	FactorLowInvestmentMix = "Low investment allocation"
)

// ComputeRiskProfile accumulates risk points over age, cash flow, debt, credit, emergency fund
// and investment mix.
func ComputeRiskProfile(s models.ClientSnapshot) models.RiskProfile {
	score := 0
	var factors []string

	switch {
	case s.Age < 30:
		score += 3
	case s.Age < 50:
		score += 2
	default:
		score++
	}

	switch {
	case s.NetCashFlow > 5000:
		score += 3
	case s.NetCashFlow > 2000:
		score += 2
	case s.NetCashFlow > 0:
		score++
	default:
		score--
		factors = append(factors, FactorNegativeCashFlow)
	}

	dti := s.DebtToIncome()
	switch {
	case dti < 0.3:
		score += 3
	case dti < 0.5:
		score++
	default:
		score -= 2
		factors = append(factors, FactorHighDebtToIncome)
	}

	if s.CreditUtilization < 30 {
		score += 2
	} else {
		score -= 2
		factors = append(factors, FactorHighUtilization)
	}

	if s.EmergencyFundRatio >= 100 {
		score += 2
	} else {
		score--
		factors = append(factors, FactorLowEmergencyFund)
	}

	if s.InvestmentRatio() > 0.2 {
		score += 2
	} else {
		score--
		factors = append(factors, FactorLowInvestmentMix)
	}

	return models.RiskProfile{
		Score:        score,
		Tier:         RiskTierFor(score),
		Factors:      factors,
		DebtToIncome: dti,
		NetCashFlow:  s.NetCashFlow,
	}
}

// RiskTierFor maps a risk score to its tier
func RiskTierFor(score int) models.RiskTier {
	switch {
	case score >= AggressiveThreshold:
		return models.RiskAggressive
	case score >= ModerateThreshold:
		return models.RiskModerate
	default:
		return models.RiskConservative
	}
}
