// Package insights turns client figures and insight records into product recommendations.
package insights

import (
	"fmt"

	"github.com/Dan9191/bank-recommender/internal/models"
	"github.com/Dan9191/bank-recommender/internal/scoring"
)

// Generate produces rule-based insights for a client, one per triggered insight type
func Generate(s models.ClientSnapshot, risk models.RiskProfile, txns []models.Transaction) []models.Insight {
	var out []models.Insight

	if s.EmergencyFundRatio < 100 {
		out = append(out, models.Insight{
			Type:           models.InsightEmergencyFund,
			Title:          "Build your emergency fund",
			Description:    fmt.Sprintf("Your emergency fund covers %.0f%% of three months of expenses.", s.EmergencyFundRatio),
			Priority:       models.InsightPriorityHigh,
			Confidence:     0.9,
			EstimatedValue: scoring.EstimateValue(models.CategorySavings, s),
		})
	}

	if scoring.UnderInvested(s) && s.CasaBalance > 5000 {
		out = append(out, models.Insight{
			Type:           models.InsightInvestment,
			Title:          "Put idle cash to work",
			Description:    fmt.Sprintf("Only %.0f%% of your assets are invested while %s sits in your current account.", s.InvestmentRatio()*100, scoring.FormatRM(s.CasaBalance)),
			Priority:       models.InsightPriorityMedium,
			Confidence:     0.75,
			EstimatedValue: scoring.EstimateValue(models.CategoryInvestment, s),
		})
	}

	switch {
	case s.CreditUtilization > 70:
		out = append(out, models.Insight{
			Type:           models.InsightCredit,
			Title:          "Reduce credit card utilization",
			Description:    fmt.Sprintf("Your credit utilization is %.0f%%, which raises interest costs and weakens your credit score.", s.CreditUtilization),
			Priority:       models.InsightPriorityHigh,
			Confidence:     0.85,
			EstimatedValue: scoring.EstimateValue(models.CategoryCredit, s),
		})
	case s.MonthlyIncome > 5000 && s.CreditUtilization < 30:
		out = append(out, models.Insight{
			Type:           models.InsightCredit,
			Title:          "Earn more from everyday spending",
			Description:    "Your income and low utilization qualify you for a rewards card.",
			Priority:       models.InsightPriorityLow,
			Confidence:     0.6,
			EstimatedValue: scoring.EstimateValue(models.CategoryCredit, s),
		})
	}

	if s.MonthlyIncome > 0 && s.InsuranceValue < 12*s.MonthlyIncome {
		out = append(out, models.Insight{
			Type:           models.InsightInsurance,
			Title:          "Close your protection gap",
			Description:    fmt.Sprintf("Your insurance cover of %s is below one year of income.", scoring.FormatRM(s.InsuranceValue)),
			Priority:       models.InsightPriorityHigh,
			Confidence:     0.8,
			EstimatedValue: scoring.EstimateValue(models.CategoryInsurance, s),
		})
	}

	if s.TotalAssets > 100000 {
		out = append(out, models.Insight{
			Type:           models.InsightWealth,
			Title:          "Grow and protect your wealth",
			Description:    fmt.Sprintf("With %s in assets you qualify for managed wealth services.", scoring.FormatRM(s.TotalAssets)),
			Priority:       models.InsightPriorityMedium,
			Confidence:     0.7,
			EstimatedValue: scoring.EstimateValue(models.CategoryInvestment, s),
		})
	}

	if risk.DebtToIncome > 0.4 {
		out = append(out, models.Insight{
			Type:           models.InsightDebt,
			Title:          "Consolidate your debt",
			Description:    fmt.Sprintf("Your liabilities are %.1f times your annual income.", risk.DebtToIncome),
			Priority:       models.InsightPriorityHigh,
			Confidence:     0.85,
			EstimatedValue: s.TotalLiabilities * 0.1,
		})
	}

	travel := DetectTravelSpending(txns)
	if travel.TotalAmount > 0 {
		priority := models.InsightPriorityMedium
		if travel.TotalAmount > TravelInsuranceThreshold {
			priority = models.InsightPriorityHigh
		}
		out = append(out, models.Insight{
			Type:           models.InsightTravel,
			Title:          "Save on travel spending",
			Description:    fmt.Sprintf("You spent %s on travel-related purchases.", scoring.FormatRM(travel.TotalAmount)),
			Priority:       priority,
			Confidence:     0.8,
			EstimatedValue: travel.TotalAmount * 0.03,
		})
	}

	return out
}
