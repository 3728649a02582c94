package catalog

import "github.com/Dan9191/bank-recommender/internal/models"

// Product identifiers referenced by lookup tables
const (
	BasicSavings           = "ambank_basic_savings"
	HighYieldSavings       = "ambank_high_yield_savings"
	FixedDeposit           = "ambank_fixed_deposit"
	ForeignCurrencyAccount = "ambank_foreign_currency_account"
	UnitTrust              = "ambank_unit_trust"
	WealthPortfolio        = "ambank_wealth_portfolio"
	GoldInvestment         = "ambank_gold_investment"
	LifeInsuranceBasic     = "ambank_life_insurance_basic"
	MedicalInsurance       = "ambank_medical_insurance"
	TravelInsurance        = "ambank_travel_insurance"
	CashbackCard           = "ambank_cashback_card"
	TravelCard             = "ambank_travel_card"
	EnrichCard             = "ambank_enrich_card"
	BookingRewardsCard     = "ambank_booking_rewards_card"
	PremiumTravelCard      = "ambank_premium_travel_card"
	DebtConsolidationLoan  = "ambank_debt_consolidation_loan"
	IslamicSavings         = "ambank_islamic_savings_i"
	IslamicInvestment      = "ambank_islamic_investment_i"
)

var products = []models.Product{
	{
		ID:          BasicSavings,
		Category:    models.CategorySavings,
		Name:        "AmBank Basic Savings Account",
		Description: "Everyday savings account with no minimum balance fee and instant transfers.",
		SuitableFor: "Clients building an emergency fund",
		Terms:       models.Terms{InterestRate: 0.25, MinDeposit: 20},
		Features:    []string{"No monthly fee", "Free DuitNow transfers", "Debit card included"},
		Eligibility: []string{"Malaysian citizen or PR", "Aged 18 and above"},
	},
	{
		ID:          HighYieldSavings,
		Category:    models.CategorySavings,
		Name:        "AmBank TrueSaver Account",
		Description: "Tiered savings account that rewards growing balances with bonus interest.",
		SuitableFor: "Clients with idle current-account balances",
		Terms:       models.Terms{MinRate: 1.0, MaxRate: 2.85, MinDeposit: 1000},
		Features:    []string{"Bonus interest on monthly balance growth", "No lock-in period"},
		Eligibility: []string{"Aged 18 and above", "Minimum opening deposit RM1,000"},
	},
	{
		ID:          FixedDeposit,
		Category:    models.CategorySavings,
		Name:        "AmBank Fixed Deposit",
		Description: "Fixed-term deposit with guaranteed returns from one to sixty months.",
		SuitableFor: "Conservative savers parking surplus cash",
		Terms:       models.Terms{MinRate: 2.25, MaxRate: 2.70, MinDeposit: 5000},
		Features:    []string{"PIDM protected", "Flexible tenure", "Auto renewal"},
		Eligibility: []string{"Aged 18 and above", "Minimum placement RM5,000"},
	},
	{
		ID:          ForeignCurrencyAccount,
		Category:    models.CategorySavings,
		Name:        "AmBank Multi-Currency Account",
		Description: "Hold and convert up to twelve foreign currencies in one account.",
		SuitableFor: "Frequent travellers and clients paying in foreign currency",
		Terms:       models.Terms{InterestRate: 0.50, MinDeposit: 1000},
		Features:    []string{"12 currencies", "Preferential exchange rates", "Online conversion"},
		Eligibility: []string{"Aged 18 and above", "Minimum balance equivalent to RM1,000"},
	},
	{
		ID:          UnitTrust,
		Category:    models.CategoryInvestment,
		Name:        "AmInvest Unit Trust Funds",
		Description: "Professionally managed unit trust funds across equity, bond and balanced mandates.",
		SuitableFor: "Clients starting to invest with moderate amounts",
		Terms:       models.Terms{MinRate: 4.0, MaxRate: 8.0, MinDeposit: 1000},
		Features:    []string{"Regular savings plan", "Diversified portfolios", "Online switching"},
		Eligibility: []string{"Aged 18 and above", "Completed suitability assessment"},
	},
	{
		ID:          WealthPortfolio,
		Category:    models.CategoryInvestment,
		Name:        "AmBank Priority Wealth Portfolio",
		Description: "Discretionary managed portfolio with a dedicated relationship manager.",
		SuitableFor: "Affluent clients seeking long-term growth",
		Terms:       models.Terms{MinRate: 5.0, MaxRate: 10.0, MinDeposit: 100000},
		Features:    []string{"Dedicated relationship manager", "Quarterly portfolio review", "Global asset access"},
		Eligibility: []string{"Assets under management of RM100,000 and above"},
	},
	{
		ID:          GoldInvestment,
		Category:    models.CategoryInvestment,
		Name:        "AmBank Gold Investment Account",
		Description: "Buy and sell gold by the gram at live prices without physical storage.",
		SuitableFor: "Clients diversifying with a hedge against inflation",
		Terms:       models.Terms{MinDeposit: 100},
		Features:    []string{"Trade from one gram", "Live pricing", "Convert to physical gold"},
		Eligibility: []string{"Aged 18 and above", "Existing AmBank savings account"},
	},
	{
		ID:          LifeInsuranceBasic,
		Category:    models.CategoryInsurance,
		Name:        "AmMetLife Basic Life Protection",
		Description: "Term life cover that protects dependants against death and total disability.",
		SuitableFor: "Clients with dependants and little existing cover",
		Terms:       models.Terms{CoverageAmount: 500000, AnnualFee: 600},
		Features:    []string{"Coverage up to RM500,000", "Affordable premiums", "Simple underwriting"},
		Eligibility: []string{"Aged 18 to 60"},
	},
	{
		ID:          MedicalInsurance,
		Category:    models.CategoryInsurance,
		Name:        "AmMetLife Medical Card",
		Description: "Hospitalisation and surgical cover with cashless admission at panel hospitals.",
		SuitableFor: "Clients without employer medical coverage",
		Terms:       models.Terms{CoverageAmount: 1000000, AnnualFee: 1800},
		Features:    []string{"Cashless admission", "Annual limit RM1,000,000", "Outpatient cancer treatment"},
		Eligibility: []string{"Aged 15 days to 65 years"},
	},
	{
		ID:          TravelInsurance,
		Category:    models.CategoryInsurance,
		Name:        "AmGeneral Travel Insurance",
		Description: "Single-trip and annual travel cover for medical emergencies, delays and lost baggage.",
		SuitableFor: "Clients travelling abroad regularly",
		Terms:       models.Terms{CoverageAmount: 500000, AnnualFee: 350},
		Features:    []string{"Overseas medical expenses", "Flight delay cover", "Baggage loss"},
		Eligibility: []string{"Malaysian resident", "Trip starts in Malaysia"},
	},
	{
		ID:          CashbackCard,
		Category:    models.CategoryCredit,
		Name:        "AmBank CashRebate Visa Platinum",
		Description: "Credit card returning cash rebates on groceries, petrol and e-wallet reloads.",
		SuitableFor: "Clients with steady income and low utilisation",
		Terms:       models.Terms{InterestRate: 15.0, MinCreditLimit: 3000, MaxCreditLimit: 50000, MinMonthlyIncome: 3000},
		Features:    []string{"Up to 8% cash rebate", "No annual fee with 12 swipes", "0% instalment plans"},
		Eligibility: []string{"Minimum monthly income RM3,000", "Aged 21 and above"},
	},
	{
		ID:          TravelCard,
		Category:    models.CategoryCredit,
		Name:        "AmBank World Traveller Mastercard",
		Description: "Travel card with zero foreign transaction markup and airport lounge access.",
		SuitableFor: "Clients spending in foreign currencies",
		Terms:       models.Terms{InterestRate: 15.0, MinCreditLimit: 5000, MaxCreditLimit: 80000, AnnualFee: 250, MinMonthlyIncome: 4000},
		Features:    []string{"0% foreign currency markup", "Lounge access", "Complimentary travel cover"},
		Eligibility: []string{"Minimum monthly income RM4,000", "Aged 21 and above"},
	},
	{
		ID:          EnrichCard,
		Category:    models.CategoryCredit,
		Name:        "AmBank Enrich Visa Infinite",
		Description: "Air-miles card earning Enrich points on every ringgit spent.",
		SuitableFor: "Frequent flyers",
		Terms:       models.Terms{InterestRate: 15.0, MinCreditLimit: 10000, MaxCreditLimit: 100000, AnnualFee: 550, MinMonthlyIncome: 8000},
		Features:    []string{"Enrich miles on all spend", "Bonus miles on airline spend", "Priority check-in"},
		Eligibility: []string{"Minimum monthly income RM8,000"},
	},
	{
		ID:          BookingRewardsCard,
		Category:    models.CategoryCredit,
		Name:        "AmBank Explorer Rewards Card",
		Description: "Rewards card with accelerated points on hotel and travel-agency bookings.",
		SuitableFor: "Clients booking hotels and tours regularly",
		Terms:       models.Terms{InterestRate: 15.0, MinCreditLimit: 5000, MaxCreditLimit: 60000, AnnualFee: 180, MinMonthlyIncome: 4000},
		Features:    []string{"5x points on hotels", "3x points on travel agencies", "Free hotel night vouchers"},
		Eligibility: []string{"Minimum monthly income RM4,000"},
	},
	{
		ID:          PremiumTravelCard,
		Category:    models.CategoryCredit,
		Name:        "AmBank Visa Infinite Privilege",
		Description: "Premium card with unlimited lounge access, concierge and comprehensive travel insurance.",
		SuitableFor: "High-spending international travellers",
		Terms:       models.Terms{InterestRate: 15.0, MinCreditLimit: 30000, MaxCreditLimit: 250000, AnnualFee: 1200, MinMonthlyIncome: 15000},
		Features:    []string{"Unlimited lounge access", "24/7 concierge", "Travel insurance up to RM2,000,000"},
		Eligibility: []string{"Minimum monthly income RM15,000"},
	},
	{
		ID:          DebtConsolidationLoan,
		Category:    models.CategoryCredit,
		Name:        "AmBank Debt Consolidation Personal Loan",
		Description: "Fixed-rate personal loan to settle high-interest card balances in one instalment.",
		SuitableFor: "Clients with high credit-card utilisation",
		Terms:       models.Terms{MinRate: 6.5, MaxRate: 12.0, MaxCreditLimit: 150000, MinMonthlyIncome: 2500},
		Features:    []string{"Single monthly instalment", "Tenure up to 7 years", "No guarantor"},
		Eligibility: []string{"Minimum monthly income RM2,500", "Aged 21 to 60"},
	},
	{
		ID:          IslamicSavings,
		Category:    models.CategoryIslamic,
		Name:        "AmBank Islamic Savings Account-i",
		Description: "Shariah-compliant savings account based on the Qard principle.",
		SuitableFor: "Clients preferring Shariah-compliant banking",
		Terms:       models.Terms{MinRate: 0.25, MaxRate: 1.50, MinDeposit: 20},
		Features:    []string{"Shariah compliant", "Hibah on balances", "Free debit card-i"},
		Eligibility: []string{"Aged 18 and above"},
	},
	{
		ID:          IslamicInvestment,
		Category:    models.CategoryIslamic,
		Name:        "AmBank Islamic Term Investment Account-i",
		Description: "Shariah-compliant term investment with expected profit rates.",
		SuitableFor: "Clients growing wealth under Islamic principles",
		Terms:       models.Terms{MinRate: 2.30, MaxRate: 3.10, MinDeposit: 5000},
		Features:    []string{"Tawarruq based", "Terms from one month", "Expected profit rate"},
		Eligibility: []string{"Aged 18 and above", "Minimum placement RM5,000"},
	},
}
