package models

// ClientProfile is the stored client record
type ClientProfile struct {
	ClientID   string `json:"client_id"`
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Age        *int   `json:"age,omitempty"`
	Occupation string `json:"occupation"`
}

// FinancialInputs holds figures the client entered manually. Nil means not provided.
type FinancialInputs struct {
	ClientID         string   `json:"client_id"`
	MonthlyIncome    *float64 `json:"monthly_income,omitempty"`
	MonthlyExpenses  *float64 `json:"monthly_expenses,omitempty"`
	CasaBalance      *float64 `json:"casa_balance,omitempty"`
	InvestmentValue  *float64 `json:"investment_value,omitempty"`
	InsuranceValue   *float64 `json:"insurance_value,omitempty"`
	EmergencyFund    *float64 `json:"emergency_fund,omitempty"`
	OtherAssets      *float64 `json:"other_assets,omitempty"`
	TotalLiabilities *float64 `json:"total_liabilities,omitempty"`
}

// FinancialMetrics holds derived metrics calculated upstream. Nil means not calculated.
type FinancialMetrics struct {
	ClientID           string   `json:"client_id"`
	TotalAssets        *float64 `json:"total_assets,omitempty"`
	NetPosition        *float64 `json:"net_position,omitempty"`
	CreditUtilization  *float64 `json:"credit_utilization,omitempty"`
	EmergencyFundRatio *float64 `json:"emergency_fund_ratio,omitempty"`
	NetCashFlow        *float64 `json:"net_cash_flow,omitempty"`
}

// ClientData bundles every stored record needed to build a snapshot
type ClientData struct {
	Profile      *ClientProfile
	Inputs       *FinancialInputs
	Metrics      *FinancialMetrics
	Behavior     *BehaviorSummary
	Transactions []Transaction
}
