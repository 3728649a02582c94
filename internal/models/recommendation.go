package models

// Priority ranks recommendations and suitability tiers
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// Rank maps a priority to its sort weight
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	}
	return 0
}

// Recommendation is a catalog product enriched for one client
type Recommendation struct {
	Product
	Priority       Priority `json:"priority"`
	Score          int      `json:"score"`
	Confidence     float64  `json:"confidence"`
	Reasons        []string `json:"reasons,omitempty"`
	Reasoning      string   `json:"reasoning"`
	EstimatedValue float64  `json:"estimated_value"`
	InsightIndex   *int     `json:"insight_index,omitempty"`
}

// ClientProfileView is the derived profile echoed to the dashboard
type ClientProfileView struct {
	RiskProfile       RiskProfile       `json:"risk_profile"`
	InvestmentProfile InvestmentProfile `json:"investment_profile"`
	Snapshot          ClientSnapshot    `json:"snapshot"`
}

// RecommendationResponse is the single consumer-facing result
type RecommendationResponse struct {
	Recommendations []Recommendation   `json:"recommendations"`
	ClientProfile   *ClientProfileView `json:"client_profile,omitempty"`
	Insights        []Insight          `json:"insights,omitempty"`
	Summary         string             `json:"summary,omitempty"`
	Fallback        bool               `json:"fallback"`
}
