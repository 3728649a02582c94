package models

// Category groups catalog products
type Category string

const (
	CategorySavings    Category = "Savings"
	CategoryInvestment Category = "Investment"
	CategoryInsurance  Category = "Insurance"
	CategoryCredit     Category = "Credit"
	CategoryIslamic    Category = "Islamic"
)

// Categories lists every category in display order
var Categories = []Category{CategorySavings, CategoryInvestment, CategoryInsurance, CategoryCredit, CategoryIslamic}

// Terms are the financial terms of a product. Zero values mean not applicable.
type Terms struct {
	InterestRate     float64 `json:"interest_rate,omitempty"`
	MinRate          float64 `json:"min_rate,omitempty"`
	MaxRate          float64 `json:"max_rate,omitempty"`
	MinDeposit       float64 `json:"min_deposit,omitempty"`
	MinCreditLimit   float64 `json:"min_credit_limit,omitempty"`
	MaxCreditLimit   float64 `json:"max_credit_limit,omitempty"`
	AnnualFee        float64 `json:"annual_fee,omitempty"`
	CoverageAmount   float64 `json:"coverage_amount,omitempty"`
	MinMonthlyIncome float64 `json:"min_monthly_income,omitempty"`
}

// Product is a static catalog entry
type Product struct {
	ID          string   `json:"id"`
	Category    Category `json:"category"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	SuitableFor string   `json:"suitable_for"`
	Terms       Terms    `json:"terms"`
	Features    []string `json:"features"`
	Eligibility []string `json:"eligibility"`
}

// ScoredProduct is a product with its suitability for one snapshot
type ScoredProduct struct {
	Product Product  `json:"product"`
	Score   int      `json:"score"`
	Reasons []string `json:"reasons"`
	Tier    Priority `json:"tier"`
}
