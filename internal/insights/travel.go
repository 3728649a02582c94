package insights

import (
	"math"
	"strings"

	"github.com/Dan9191/bank-recommender/internal/models"
)

// ForeignShoppingThreshold is the minimum foreign-currency amount counted as shopping abroad
const ForeignShoppingThreshold = 100

type travelRule struct {
	category  string
	keywords  []string
	foreign   bool
	minAmount float64
}

// travelRules are checked in order; the first match wins
var travelRules = []travelRule{
	{category: models.TravelCurrencyExchange, keywords: []string{"currency", "forex", "exchange", "money changer"}},
	{category: models.TravelInsurance, keywords: []string{"travel insurance", "travel protect", "travel takaful"}},
	{category: models.TravelAirlines, keywords: []string{"airline", "airways", "flight", "airasia", "malaysia airlines", "batik air", "firefly", "singapore airlines", "emirates", "cathay"}},
	{category: models.TravelHotels, keywords: []string{"hotel", "resort", "accommodation", "airbnb", "agoda", "hostel"}},
	{category: models.TravelCarRental, keywords: []string{"car rental", "rent a car", "rent-a-car", "hertz", "avis", "europcar"}},
	{category: models.TravelAgencies, keywords: []string{"travel", "agency", "booking", "tour", "expedia", "trip.com"}},
	{category: models.TravelForeignDining, keywords: []string{"restaurant", "cafe", "dining", "bistro", "food"}, foreign: true},
	{category: models.TravelForeignShopping, foreign: true, minAmount: ForeignShoppingThreshold},
}

// DetectTravelSpending classifies each transaction into at most one travel category.
// Transactions matching nothing count toward neither a category nor the total.
func DetectTravelSpending(txns []models.Transaction) models.TravelSpending {
	out := models.TravelSpending{Categories: make(map[string]float64, len(travelRules))}
	for _, r := range travelRules {
		out.Categories[r.category] = 0
	}

	for _, tx := range txns {
		text := strings.ToLower(tx.Description + " " + tx.Category)
		amount := math.Abs(tx.Amount)
		for _, r := range travelRules {
			if !r.matches(text, amount, tx.IsForeign()) {
				continue
			}
			out.Categories[r.category] += amount
			out.TotalAmount += amount
			break
		}
	}
	return out
}

func (r travelRule) matches(text string, amount float64, foreign bool) bool {
	if r.foreign && !foreign {
		return false
	}
	if amount < r.minAmount {
		return false
	}
	if len(r.keywords) == 0 {
		return true
	}
	for _, kw := range r.keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
