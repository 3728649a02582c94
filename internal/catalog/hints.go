package catalog

import "strings"

// Hint is a product-category hint attached to an insight
type Hint string

const (
	HintTravelCards           Hint = "travel_cards"
	HintMultiCurrencyAccounts Hint = "multi_currency_accounts"
	HintTravelInsurance       Hint = "travel_insurance"
	HintAirMilesCards         Hint = "air_miles_cards"
	HintBookingRewards        Hint = "booking_rewards"
	HintPremiumTravelCards    Hint = "premium_travel_cards"
	HintSavings               Hint = "savings"
	HintInvestments           Hint = "investments"
	HintInsurance             Hint = "insurance"
	HintCredit                Hint = "credit"
	HintIslamic               Hint = "islamic"
)

// Hints lists every known hint in table order
var Hints = []Hint{
	HintTravelCards, HintMultiCurrencyAccounts, HintTravelInsurance, HintAirMilesCards,
	HintBookingRewards, HintPremiumTravelCards, HintSavings, HintInvestments,
	HintInsurance, HintCredit, HintIslamic,
}

// HintProducts maps each hint to the products it stands for
var HintProducts = map[Hint][]string{
	HintTravelCards:           {TravelCard},
	HintMultiCurrencyAccounts: {ForeignCurrencyAccount},
	HintTravelInsurance:       {TravelInsurance},
	HintAirMilesCards:         {EnrichCard},
	HintBookingRewards:        {BookingRewardsCard},
	HintPremiumTravelCards:    {PremiumTravelCard},
	HintSavings:               {BasicSavings, HighYieldSavings},
	HintInvestments:           {UnitTrust, WealthPortfolio},
	HintInsurance:             {LifeInsuranceBasic, MedicalInsurance},
	HintCredit:                {CashbackCard, DebtConsolidationLoan},
	HintIslamic:               {IslamicSavings, IslamicInvestment},
}

// ParseHint normalizes free-form hint text ("Travel Cards", "travel-cards") to a known hint
func ParseHint(s string) (Hint, bool) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.NewReplacer(" ", "_", "-", "_").Replace(norm)
	h := Hint(norm)
	_, ok := HintProducts[h]
	return h, ok
}
