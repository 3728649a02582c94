package textgen

import (
	"fmt"
	"strings"

	"github.com/Dan9191/bank-recommender/internal/catalog"
	"github.com/Dan9191/bank-recommender/internal/models"
	"github.com/Dan9191/bank-recommender/internal/scoring"
)

// MaxPromptTransactions caps the itemised transaction list
const MaxPromptTransactions = 50

// PromptInput is everything embedded into an insight prompt
type PromptInput struct {
	Profile      *models.ClientProfile
	Snapshot     models.ClientSnapshot
	Transactions []models.Transaction
	// Market is optional free text about current market conditions.
	Market string
}

// BuildPrompt renders the insight request sent to the text-generation endpoint
func BuildPrompt(in PromptInput, c *catalog.Catalog) string {
	var b strings.Builder
	s := in.Snapshot

	b.WriteString("You are a financial advisor at a Malaysian retail bank. Analyse the client below and suggest suitable bank products.\n\n")

	b.WriteString("CLIENT PROFILE\n")
	if in.Profile != nil {
		if in.Profile.FullName != "" {
			fmt.Fprintf(&b, "- Name: %s\n", in.Profile.FullName)
		}
		if in.Profile.Occupation != "" {
			fmt.Fprintf(&b, "- Occupation: %s\n", in.Profile.Occupation)
		}
	}
	fmt.Fprintf(&b, "- Age: %d\n", s.Age)
	fmt.Fprintf(&b, "- Monthly income: %s\n", scoring.FormatRM(s.MonthlyIncome))
	fmt.Fprintf(&b, "- Monthly expenses: %s\n", scoring.FormatRM(s.MonthlyExpenses))
	fmt.Fprintf(&b, "- Net monthly cash flow: %s\n", scoring.FormatRM(s.NetCashFlow))
	fmt.Fprintf(&b, "- Total assets: %s\n", scoring.FormatRM(s.TotalAssets))
	fmt.Fprintf(&b, "- Total liabilities: %s\n", scoring.FormatRM(s.TotalLiabilities))
	fmt.Fprintf(&b, "- Current account balance: %s\n", scoring.FormatRM(s.CasaBalance))
	fmt.Fprintf(&b, "- Investments: %s\n", scoring.FormatRM(s.InvestmentValue))
	fmt.Fprintf(&b, "- Insurance cover: %s\n", scoring.FormatRM(s.InsuranceValue))
	fmt.Fprintf(&b, "- Emergency fund: %s (%.0f%% of target)\n", scoring.FormatRM(s.CurrentEmergencyFund), s.EmergencyFundRatio)
	fmt.Fprintf(&b, "- Credit utilization: %.0f%%\n", s.CreditUtilization)

	if in.Market != "" {
		b.WriteString("\nMARKET CONTEXT\n")
		b.WriteString(in.Market)
		b.WriteString("\n")
	}

	b.WriteString("\nRECENT TRANSACTIONS\n")
	txns := in.Transactions
	if len(txns) > MaxPromptTransactions {
		txns = txns[:MaxPromptTransactions]
	}
	if len(txns) == 0 {
		b.WriteString("- none\n")
	}
	for _, tx := range txns {
		currency := tx.Currency
		if currency == "" {
			currency = models.LocalCurrency
		}
		date := ""
		if !tx.OccurredAt.IsZero() {
			date = tx.OccurredAt.Format("2006-01-02") + " "
		}
		fmt.Fprintf(&b, "- %s%s [%s] %.2f %s\n", date, tx.Description, tx.Category, tx.Amount, currency)
	}

	b.WriteString("\nAVAILABLE PRODUCTS\n")
	for _, p := range c.All() {
		fmt.Fprintf(&b, "- %s (%s, %s): %s Suitable for: %s\n", p.Name, p.ID, p.Category, p.Description, p.SuitableFor)
	}

	b.WriteString(`
INSTRUCTIONS
Respond with JSON only, no markdown, in exactly this shape:
{"summary": "...", "insights": [{"insight": "...", "reasoning": "...", "product": "<product name from the list or empty>", "productReasoning": "..."}]}
Give at most five insights. Only name products from the list above.
`)
	return b.String()
}
