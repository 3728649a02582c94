package insights

import (
	"math"

	"github.com/Dan9191/bank-recommender/internal/catalog"
	"github.com/Dan9191/bank-recommender/internal/models"
	"github.com/Dan9191/bank-recommender/internal/scoring"
)

// DefaultConfidence applies to insights that carry no confidence of their own
const DefaultConfidence = 0.7

// Travel thresholds used by the travel_analysis rules
const (
	TravelInsuranceThreshold = 2000
	PremiumTravelThreshold   = 10000
)

type ruleContext struct {
	snapshot models.ClientSnapshot
	risk     models.RiskProfile
	travel   models.TravelSpending
}

type typeRule struct {
	when func(ruleContext) bool
	ids  []string
}

// typeRules map insight types to products when an insight has no category hints.
// Types missing from the table produce nothing.
var typeRules = map[models.InsightType][]typeRule{
	models.InsightEmergencyFund: {
		{when: func(c ruleContext) bool { return c.snapshot.EmergencyFundRatio < 100 },
			ids: []string{catalog.BasicSavings, catalog.HighYieldSavings, catalog.FixedDeposit}},
	},
	models.InsightInvestment: {
		{when: func(c ruleContext) bool { return scoring.UnderInvested(c.snapshot) },
			ids: []string{catalog.UnitTrust, catalog.WealthPortfolio}},
		{when: func(c ruleContext) bool {
			return scoring.UnderInvested(c.snapshot) && c.risk.Tier == models.RiskAggressive
		}, ids: []string{catalog.GoldInvestment}},
	},
	models.InsightCredit: {
		{when: func(c ruleContext) bool { return c.snapshot.CreditUtilization > 70 },
			ids: []string{catalog.DebtConsolidationLoan}},
		{when: func(c ruleContext) bool { return c.snapshot.MonthlyIncome > 5000 && c.snapshot.CreditUtilization < 30 },
			ids: []string{catalog.CashbackCard}},
	},
	models.InsightInsurance: {
		{when: func(c ruleContext) bool { return c.snapshot.InsuranceValue < 12*c.snapshot.MonthlyIncome },
			ids: []string{catalog.LifeInsuranceBasic, catalog.MedicalInsurance}},
	},
	models.InsightWealth: {
		{when: func(c ruleContext) bool { return c.snapshot.TotalAssets > 100000 },
			ids: []string{catalog.WealthPortfolio, catalog.IslamicInvestment}},
	},
	models.InsightDebt: {
		{when: func(c ruleContext) bool { return c.risk.DebtToIncome > 0.4 },
			ids: []string{catalog.DebtConsolidationLoan}},
	},
	models.InsightTravel: {
		{when: func(c ruleContext) bool { return c.travel.Categories[models.TravelCurrencyExchange] > 0 },
			ids: []string{catalog.TravelCard, catalog.ForeignCurrencyAccount}},
		{when: func(c ruleContext) bool { return c.travel.TotalAmount > TravelInsuranceThreshold },
			ids: []string{catalog.TravelInsurance}},
		{when: func(c ruleContext) bool { return c.travel.Categories[models.TravelAirlines] > 0 },
			ids: []string{catalog.EnrichCard}},
		{when: func(c ruleContext) bool {
			return c.travel.Categories[models.TravelHotels]+c.travel.Categories[models.TravelAgencies] > 0
		}, ids: []string{catalog.BookingRewardsCard}},
		{when: func(c ruleContext) bool { return c.travel.TotalAmount > PremiumTravelThreshold },
			ids: []string{catalog.PremiumTravelCard}},
	},
}

// RuleProductIDs lists every product id the type rules can produce, for catalog validation
func RuleProductIDs() []string {
	var ids []string
	for _, rules := range typeRules {
		for _, r := range rules {
			ids = append(ids, r.ids...)
		}
	}
	return ids
}

// Mapper resolves insights onto catalog products
type Mapper struct {
	catalog *catalog.Catalog
}

// NewMapper creates a mapper over the given catalog
func NewMapper(c *catalog.Catalog) *Mapper {
	return &Mapper{catalog: c}
}

// Map turns insights into at most DefaultTopN recommendations sorted by priority then confidence.
// An empty result is possible; callers substitute WithFallback.
func (m *Mapper) Map(insights []models.Insight, s models.ClientSnapshot, risk models.RiskProfile, txns []models.Transaction) []models.Recommendation {
	ctx := ruleContext{snapshot: s, risk: risk, travel: DetectTravelSpending(txns)}
	seen := make(map[string]bool)
	var recs []models.Recommendation

	for i, insight := range insights {
		for _, id := range m.candidates(insight, ctx) {
			if seen[id] {
				continue
			}
			p, ok := m.catalog.Get(id)
			if !ok {
				continue
			}
			seen[id] = true
			recs = append(recs, m.wrap(p, insight, i, s))
		}
	}
	return scoring.SortAndTruncate(recs, scoring.ByConfidence, scoring.DefaultTopN)
}

func (m *Mapper) candidates(insight models.Insight, ctx ruleContext) []string {
	var ids []string
	if insight.Product != "" {
		if p, ok := m.catalog.FindByName(insight.Product); ok {
			ids = append(ids, p.ID)
		}
	}

	if len(insight.Categories) > 0 {
		for _, raw := range insight.Categories {
			if hint, ok := catalog.ParseHint(raw); ok {
				ids = append(ids, catalog.HintProducts[hint]...)
			}
		}
		return ids
	}
	if len(ids) > 0 {
		return ids
	}

	for _, rule := range typeRules[insight.Type] {
		if rule.when(ctx) {
			ids = append(ids, rule.ids...)
		}
	}
	return ids
}

func (m *Mapper) wrap(p models.Product, insight models.Insight, index int, s models.ClientSnapshot) models.Recommendation {
	confidence := insight.Confidence
	if confidence <= 0 {
		confidence = DefaultConfidence
	}
	reasoning := insight.ProductReasoning
	if reasoning == "" {
		reasoning = scoring.Reasoning(p, s)
	}
	idx := index
	return models.Recommendation{
		Product:        p,
		Priority:       insight.Priority.Recommendation(),
		Score:          int(math.Round(confidence * scoring.MaxScore)),
		Confidence:     confidence,
		Reasons:        nonEmpty(insight.Title, insight.Description),
		Reasoning:      reasoning,
		EstimatedValue: scoring.EstimateValue(p.Category, s),
		InsightIndex:   &idx,
	}
}

func nonEmpty(values ...string) []string {
	var out []string
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

// Fallback returns the fixed two-product safety net
func Fallback(c *catalog.Catalog) []models.Recommendation {
	products := c.Fallback()
	out := make([]models.Recommendation, 0, len(products))
	for _, p := range products {
		out = append(out, models.Recommendation{
			Product:    p,
			Priority:   models.PriorityMedium,
			Confidence: 0.5,
			Score:      5,
			Reasoning:  p.Description,
		})
	}
	return out
}

// WithFallback returns recs, or the fallback pair when recs is empty
func WithFallback(c *catalog.Catalog, recs []models.Recommendation) []models.Recommendation {
	if len(recs) == 0 {
		return Fallback(c)
	}
	return recs
}
