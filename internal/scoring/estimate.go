package scoring

import (
	"fmt"
	"strings"

	"github.com/Dan9191/bank-recommender/internal/models"
	"github.com/shopspring/decimal"
)

// EstimateValue returns the monetary value a product is expected to bring the client
func EstimateValue(cat models.Category, s models.ClientSnapshot) float64 {
	switch cat {
	case models.CategorySavings:
		return max(5000, s.MonthlyExpenses*3-s.CurrentEmergencyFund)
	case models.CategoryInvestment:
		return min(s.CasaBalance*0.5, 20000)
	case models.CategoryInsurance:
		return max(0, s.MonthlyIncome*12-s.InsuranceValue)
	case models.CategoryCredit:
		if s.CreditUtilization > 70 {
			return s.TotalLiabilities * 0.1
		}
		return s.MonthlyExpenses * 0.05 * 12
	case models.CategoryIslamic:
		return min(s.CasaBalance*0.3, 15000)
	}
	return 0
}

// FormatRM renders an amount in ringgit with two decimals and thousands separators, e.g. RM8,000.00
func FormatRM(v float64) string {
	return FormatDecimalRM(decimal.NewFromFloat(v))
}

// FormatDecimalRM is FormatRM for amounts already held as decimals
func FormatDecimalRM(d decimal.Decimal) string {
	sign := ""
	if d.Round(2).IsNegative() {
		sign = "-"
	}
	fixed := d.Abs().StringFixed(2)
	whole, frac := fixed[:len(fixed)-3], fixed[len(fixed)-3:]

	var b strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return sign + "RM" + b.String() + frac
}

// Reasoning explains a recommendation in one sentence using the client's own figures
func Reasoning(p models.Product, s models.ClientSnapshot) string {
	switch p.Category {
	case models.CategorySavings:
		return fmt.Sprintf("Your emergency fund of %s covers %.0f%% of the %s target for %s monthly expenses. %s helps close the gap.",
			FormatRM(s.CurrentEmergencyFund), s.EmergencyFundRatio, FormatRM(s.MonthlyExpenses*3), FormatRM(s.MonthlyExpenses), p.Name)
	case models.CategoryInvestment:
		return fmt.Sprintf("With %s in your current account and %s invested out of %s in assets, %s can put idle cash to work.",
			FormatRM(s.CasaBalance), FormatRM(s.InvestmentValue), FormatRM(s.TotalAssets), p.Name)
	case models.CategoryInsurance:
		return fmt.Sprintf("Your cover of %s is below one year of income (%s). %s protects your family's finances.",
			FormatRM(s.InsuranceValue), FormatRM(s.MonthlyIncome*12), p.Name)
	case models.CategoryCredit:
		if s.CreditUtilization > 70 {
			return fmt.Sprintf("Your credit utilization is %.0f%%. %s can lower interest costs on %s of liabilities.",
				s.CreditUtilization, p.Name, FormatRM(s.TotalLiabilities))
		}
		return fmt.Sprintf("With %s monthly income and %.0f%% utilization, %s rewards your everyday spending.",
			FormatRM(s.MonthlyIncome), s.CreditUtilization, p.Name)
	case models.CategoryIslamic:
		return fmt.Sprintf("%s offers a Shariah-compliant way to grow your %s current account balance.",
			p.Name, FormatRM(s.CasaBalance))
	}
	return p.Description
}
