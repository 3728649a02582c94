package scoring

import (
	"sort"

	"github.com/Dan9191/bank-recommender/internal/models"
)

// Ranking defaults
const (
	DefaultMinScore = 5
	DefaultTopN     = 6
)

// SecondaryKey selects the tie-breaker used after priority
type SecondaryKey int

const (
	BySuitability SecondaryKey = iota
	ByConfidence
)

// Rank keeps products scoring at least minScore, enriches them with reasoning and value estimates,
// and returns at most topN sorted by priority then score.
func Rank(scored []models.ScoredProduct, s models.ClientSnapshot, minScore, topN int) []models.Recommendation {
	recs := make([]models.Recommendation, 0, len(scored))
	for _, sp := range scored {
		if sp.Score < minScore {
			continue
		}
		recs = append(recs, models.Recommendation{
			Product:        sp.Product,
			Priority:       sp.Tier,
			Score:          sp.Score,
			Confidence:     float64(sp.Score) / MaxScore,
			Reasons:        sp.Reasons,
			Reasoning:      Reasoning(sp.Product, s),
			EstimatedValue: EstimateValue(sp.Product.Category, s),
		})
	}
	return SortAndTruncate(recs, BySuitability, topN)
}

// SortAndTruncate stable-sorts by priority rank then the secondary key, both descending,
// and keeps the first topN entries.
func SortAndTruncate(recs []models.Recommendation, key SecondaryKey, topN int) []models.Recommendation {
	sorted := make([]models.Recommendation, len(recs))
	copy(sorted, recs)

	sort.SliceStable(sorted, func(i, j int) bool {
		pi, pj := sorted[i].Priority.Rank(), sorted[j].Priority.Rank()
		if pi != pj {
			return pi > pj
		}
		if key == ByConfidence {
			return sorted[i].Confidence > sorted[j].Confidence
		}
		return sorted[i].Score > sorted[j].Score
	})

	if topN >= 0 && len(sorted) > topN {
		sorted = sorted[:topN]
	}
	return sorted
}
