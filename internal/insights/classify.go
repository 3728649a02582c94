package insights

import (
	"strings"

	"github.com/Dan9191/bank-recommender/internal/models"
)

var typeKeywords = []struct {
	t        models.InsightType
	keywords []string
}{
	{models.InsightEmergencyFund, []string{"emergency", "rainy day", "safety net", "buffer"}},
	{models.InsightTravel, []string{"travel", "overseas", "abroad", "foreign", "trip", "flight"}},
	{models.InsightDebt, []string{"debt", "loan", "repay", "liabilit"}},
	{models.InsightCredit, []string{"credit", "card", "utiliz", "utilis"}},
	{models.InsightInsurance, []string{"insurance", "protection", "coverage", "takaful"}},
	{models.InsightWealth, []string{"wealth", "retire", "estate", "legacy"}},
	{models.InsightInvestment, []string{"invest", "portfolio", "unit trust", "fund", "grow"}},
}

// ClassifyType assigns free insight text to the closest rule type by keyword, in table order
func ClassifyType(text string) models.InsightType {
	lower := strings.ToLower(text)
	for _, tk := range typeKeywords {
		for _, kw := range tk.keywords {
			if strings.Contains(lower, kw) {
				return tk.t
			}
		}
	}
	return models.InsightGeneral
}
