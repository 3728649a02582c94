// Package snapshot assembles the flat ClientSnapshot from stored client records and fingerprints it
// for insight cache invalidation.
package snapshot

import (
	"github.com/Dan9191/bank-recommender/internal/models"
	"gonum.org/v1/gonum/floats"
)

// DefaultAge is used when the client profile carries no age
const DefaultAge = 30

// EmergencyFundMonths is the number of months of expenses an emergency fund should cover
const EmergencyFundMonths = 3

// Build assembles a snapshot. Missing records and fields fall back to neutral values;
// stored derived metrics take precedence over values computed here.
func Build(data models.ClientData) models.ClientSnapshot {
	inputs := data.Inputs
	if inputs == nil {
		inputs = &models.FinancialInputs{}
	}
	metrics := data.Metrics
	if metrics == nil {
		metrics = &models.FinancialMetrics{}
	}

	s := models.ClientSnapshot{Age: DefaultAge}
	if data.Profile != nil && data.Profile.Age != nil && *data.Profile.Age > 0 {
		s.Age = *data.Profile.Age
	}

	s.MonthlyIncome = value(inputs.MonthlyIncome)
	if inputs.MonthlyIncome == nil && data.Behavior != nil {
		s.MonthlyIncome = data.Behavior.AvgMonthlyIncome
	}
	s.MonthlyExpenses = value(inputs.MonthlyExpenses)
	if inputs.MonthlyExpenses == nil && data.Behavior != nil {
		s.MonthlyExpenses = data.Behavior.AvgMonthlySpending
	}

	s.CasaBalance = value(inputs.CasaBalance)
	s.InvestmentValue = value(inputs.InvestmentValue)
	s.InsuranceValue = value(inputs.InsuranceValue)
	s.CurrentEmergencyFund = value(inputs.EmergencyFund)
	s.TotalLiabilities = value(inputs.TotalLiabilities)

	s.TotalAssets = pick(metrics.TotalAssets, floats.Sum([]float64{
		s.CasaBalance,
		s.InvestmentValue,
		s.InsuranceValue,
		s.CurrentEmergencyFund,
		value(inputs.OtherAssets),
	}))
	s.NetPosition = pick(metrics.NetPosition, s.TotalAssets-s.TotalLiabilities)
	s.NetCashFlow = pick(metrics.NetCashFlow, s.MonthlyIncome-s.MonthlyExpenses)
	s.CreditUtilization = value(metrics.CreditUtilization)
	s.EmergencyFundRatio = pick(metrics.EmergencyFundRatio, emergencyFundRatio(s.CurrentEmergencyFund, s.MonthlyExpenses))

	return s
}

func emergencyFundRatio(fund, monthlyExpenses float64) float64 {
	if monthlyExpenses <= 0 {
		return 0
	}
	return fund / (monthlyExpenses * EmergencyFundMonths) * 100
}

func value(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func pick(stored *float64, computed float64) float64 {
	if stored != nil {
		return *stored
	}
	return computed
}
