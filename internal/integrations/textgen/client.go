package textgen

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Dan9191/bank-recommender/internal/catalog"
	"github.com/Dan9191/bank-recommender/internal/insights"
	"github.com/Dan9191/bank-recommender/internal/models"
	"github.com/sirupsen/logrus"
)

// Client builds prompts, calls a provider and parses the answer
type Client struct {
	provider Provider
	catalog  *catalog.Catalog
	parser   Chain
	log      *logrus.Logger
}

// NewClient creates an insight client over the given provider
func NewClient(provider Provider, c *catalog.Catalog, log *logrus.Logger) *Client {
	return &Client{
		provider: provider,
		catalog:  c,
		parser:   DefaultChain(),
		log:      log,
	}
}

// RequestInsights fails only when the provider call fails; unparseable answers yield an empty result
func (c *Client) RequestInsights(ctx context.Context, in PromptInput) (*Result, error) {
	prompt := BuildPrompt(in, c.catalog)

	start := time.Now()
	text, err := c.provider.Generate(ctx, prompt)
	if err != nil {
		c.log.Errorf("Text generation via %s failed: %v", c.provider.Name(), err)
		return nil, fmt.Errorf("failed to request insights from %s: %w", c.provider.Name(), err)
	}

	res := c.parser.Parse(text)
	c.log.WithFields(logrus.Fields{
		"provider":        c.provider.Name(),
		"parser":          res.Parser,
		"insights":        len(res.Insights),
		"recommendations": len(res.Recommendations),
		"duration_ms":     time.Since(start).Milliseconds(),
	}).Info("Received text generation answer")
	return &res, nil
}

// AsInsights converts a parsed answer into typed insights. Recommendations not
// already attached to an insight become insights of their own.
func (r *Result) AsInsights() []models.Insight {
	out := make([]models.Insight, 0, len(r.Insights))
	named := make(map[string]bool)

	for _, ai := range r.Insights {
		text := strings.TrimSpace(ai.Insight)
		if text == "" {
			continue
		}
		priority := models.InsightPriorityMedium
		if p := strings.TrimSpace(ai.Product); p != "" {
			priority = models.InsightPriorityHigh
			named[strings.ToLower(p)] = true
		}
		out = append(out, models.Insight{
			Type:             insights.ClassifyType(text + " " + ai.Reasoning),
			Title:            text,
			Description:      ai.Reasoning,
			Priority:         priority,
			Product:          strings.TrimSpace(ai.Product),
			ProductReasoning: ai.ProductReasoning,
		})
	}

	for _, rec := range r.Recommendations {
		name := strings.TrimSpace(rec.Product)
		if name == "" || named[strings.ToLower(name)] {
			continue
		}
		named[strings.ToLower(name)] = true
		out = append(out, models.Insight{
			Type:             insights.ClassifyType(name + " " + rec.Reasoning),
			Title:            name,
			Description:      rec.Reasoning,
			Priority:         models.InsightPriorityHigh,
			Product:          name,
			ProductReasoning: rec.Reasoning,
		})
	}
	return out
}
