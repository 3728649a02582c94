package models

// BehaviorSummary represents behavioral aggregates computed from the transaction history
type BehaviorSummary struct {
	ClientID           string  `json:"client_id"`
	AvgMonthlySpending float64 `json:"avg_monthly_spending"`
	AvgMonthlyIncome   float64 `json:"avg_monthly_income"`
	TransactionCount   int     `json:"transaction_count"`
	TopCategory        string  `json:"top_category"`
}

// Travel spending categories
const (
	TravelCurrencyExchange = "currency_exchange"
	TravelInsurance        = "travel_insurance"
	TravelAirlines         = "airlines"
	TravelHotels           = "hotels"
	TravelCarRental        = "car_rental"
	TravelAgencies         = "travel_agencies"
	TravelForeignDining    = "foreign_dining"
	TravelForeignShopping  = "foreign_shopping"
)

// TravelSpending is the travel-related share of a transaction list
type TravelSpending struct {
	TotalAmount float64            `json:"total_amount"`
	Categories  map[string]float64 `json:"categories"`
}
