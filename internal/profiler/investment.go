package profiler

import (
	"slices"

	"github.com/Dan9191/bank-recommender/internal/models"
)

var tierAdvice = map[models.InvestmentTier][]string{
	models.InvestmentNew: {
		"Build an emergency fund covering three months of expenses before investing",
		"Start with a regular savings plan in a low-risk unit trust",
	},
	models.InvestmentBeginner: {
		"Increase monthly contributions gradually",
		"Diversify across equity and fixed income funds",
	},
	models.InvestmentIntermediate: {
		"Review asset allocation every six months",
		"Consider Shariah-compliant or global funds for diversification",
	},
	models.InvestmentAdvanced: {
		"Rebalance regularly to manage concentration risk",
		"Explore managed wealth portfolios for tax-efficient growth",
	},
}

// ComputeInvestmentProfile picks an experience tier from the investment ratio and an
// allocation from the age bracket.
func ComputeInvestmentProfile(s models.ClientSnapshot) models.InvestmentProfile {
	ratio := s.InvestmentRatio()

	var tier models.InvestmentTier
	switch {
	case ratio > 0.5:
		tier = models.InvestmentAdvanced
	case ratio > 0.2:
		tier = models.InvestmentIntermediate
	case ratio > 0:
		tier = models.InvestmentBeginner
	default:
		tier = models.InvestmentNew
	}

	return models.InvestmentProfile{
		Tier:            tier,
		InvestmentRatio: ratio,
		Allocation:      AllocationFor(s.Age),
		Recommendations: slices.Clone(tierAdvice[tier]),
	}
}

// AllocationFor returns the suggested savings/investments/insurance split for an age
func AllocationFor(age int) models.Allocation {
	switch {
	case age < 30:
		return models.Allocation{Savings: 20, Investments: 60, Insurance: 20}
	case age < 50:
		return models.Allocation{Savings: 30, Investments: 50, Insurance: 20}
	default:
		return models.Allocation{Savings: 50, Investments: 30, Insurance: 20}
	}
}
