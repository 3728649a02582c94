package models

import "time"

// InsightType tags rule-generated insights
type InsightType string

const (
	InsightEmergencyFund InsightType = "emergency_fund_analysis"
	InsightInvestment    InsightType = "investment_opportunity"
	InsightCredit        InsightType = "credit_analysis"
	InsightInsurance     InsightType = "insurance_needs"
	InsightWealth        InsightType = "wealth_management"
	InsightDebt          InsightType = "debt_management"
	InsightTravel        InsightType = "travel_analysis"
	InsightGeneral       InsightType = "general"
)

// InsightPriority is the upper-case priority carried by insights
type InsightPriority string

const (
	InsightPriorityHigh   InsightPriority = "HIGH"
	InsightPriorityMedium InsightPriority = "MEDIUM"
	InsightPriorityLow    InsightPriority = "LOW"
)

// Recommendation converts an insight priority, defaulting to Medium
func (p InsightPriority) Recommendation() Priority {
	switch p {
	case InsightPriorityHigh:
		return PriorityHigh
	case InsightPriorityLow:
		return PriorityLow
	}
	return PriorityMedium
}

// Insight is a finding about a client, generated by rules or a text-generation model
type Insight struct {
	Type             InsightType     `json:"type"`
	Title            string          `json:"title"`
	Description      string          `json:"description"`
	Priority         InsightPriority `json:"priority"`
	Confidence       float64         `json:"confidence,omitempty"`
	EstimatedValue   float64         `json:"estimated_value,omitempty"`
	Categories       []string        `json:"categories,omitempty"`
	Product          string          `json:"product,omitempty"`
	ProductReasoning string          `json:"product_reasoning,omitempty"`
}

// CacheEntry is the stored result of the last insight generation for a client
type CacheEntry struct {
	ClientID    string    `json:"client_id"`
	Insights    []Insight `json:"insights"`
	Summary     string    `json:"summary"`
	VersionHash string    `json:"version_hash"`
	GeneratedAt time.Time `json:"generated_at"`
}
