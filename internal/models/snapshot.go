package models

// ClientSnapshot is the flat set of financial figures every recommendation is computed from
type ClientSnapshot struct {
	Age                  int     `json:"age"`
	MonthlyIncome        float64 `json:"monthly_income"`
	MonthlyExpenses      float64 `json:"monthly_expenses"`
	TotalAssets          float64 `json:"total_assets"`
	TotalLiabilities     float64 `json:"total_liabilities"`
	NetPosition          float64 `json:"net_position"`
	CreditUtilization    float64 `json:"credit_utilization"`   // 0-100
	EmergencyFundRatio   float64 `json:"emergency_fund_ratio"` // percent of target
	CasaBalance          float64 `json:"casa_balance"`
	InvestmentValue      float64 `json:"investment_value"`
	InsuranceValue       float64 `json:"insurance_value"`
	CurrentEmergencyFund float64 `json:"current_emergency_fund"`
	NetCashFlow          float64 `json:"net_cash_flow"`
}

// InvestmentRatio is investmentValue / totalAssets, 0 without assets
func (s ClientSnapshot) InvestmentRatio() float64 {
	if s.TotalAssets <= 0 {
		return 0
	}
	return s.InvestmentValue / s.TotalAssets
}

// DebtToIncome is totalLiabilities over annual income, 0 without income
func (s ClientSnapshot) DebtToIncome() float64 {
	if s.MonthlyIncome <= 0 {
		return 0
	}
	return s.TotalLiabilities / (s.MonthlyIncome * 12)
}

// RiskTier is the qualitative risk appetite of a client
type RiskTier string

const (
	RiskConservative RiskTier = "Conservative"
	RiskModerate     RiskTier = "Moderate"
	RiskAggressive   RiskTier = "Aggressive"
)

// RiskProfile is derived from a snapshot on every request
type RiskProfile struct {
	Score        int      `json:"score"`
	Tier         RiskTier `json:"tier"`
	Factors      []string `json:"factors"`
	DebtToIncome float64  `json:"debt_to_income"`
	NetCashFlow  float64  `json:"net_cash_flow"`
}

// InvestmentTier describes investment experience
type InvestmentTier string

const (
	InvestmentNew          InvestmentTier = "New"
	InvestmentBeginner     InvestmentTier = "Beginner"
	InvestmentIntermediate InvestmentTier = "Intermediate"
	InvestmentAdvanced     InvestmentTier = "Advanced"
)

// Allocation is a suggested split in percent, summing to 100
type Allocation struct {
	Savings     int `json:"savings"`
	Investments int `json:"investments"`
	Insurance   int `json:"insurance"`
}

// InvestmentProfile is derived from a snapshot on every request
type InvestmentProfile struct {
	Tier            InvestmentTier `json:"tier"`
	InvestmentRatio float64        `json:"investment_ratio"`
	Allocation      Allocation     `json:"allocation"`
	Recommendations []string       `json:"recommendations"`
}
