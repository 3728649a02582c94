package textgen

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/Dan9191/bank-recommender/internal/models"
)

// AIInsight is one insight as returned by the model
type AIInsight struct {
	Insight          string `json:"insight"`
	Reasoning        string `json:"reasoning"`
	Product          string `json:"product"`
	ProductReasoning string `json:"productReasoning"`
}

// AIRecommendation is a product the model explicitly named
type AIRecommendation struct {
	Product   string          `json:"product"`
	Reasoning string          `json:"reasoning"`
	Priority  models.Priority `json:"priority"`
}

// Result is the structured form of a model answer, whichever parser produced it
type Result struct {
	Summary         string             `json:"summary"`
	Insights        []AIInsight        `json:"insights"`
	Recommendations []AIRecommendation `json:"recommendations"`
	Parser          string             `json:"-"`
}

// Parser is one stage of best-effort extraction
type Parser interface {
	Name() string
	Parse(text string) (Result, bool)
}

// Chain tries parsers in order and keeps the first success
type Chain []Parser

// DefaultChain is direct JSON, then embedded JSON, then section splitting
func DefaultChain() Chain {
	return Chain{JSONParser{}, EmbeddedJSONParser{}, SectionParser{}}
}

// Parse never fails; unparseable text yields an empty result
func (c Chain) Parse(text string) Result {
	for _, p := range c {
		if res, ok := p.Parse(text); ok {
			res.Parser = p.Name()
			return echoRecommendations(res)
		}
	}
	return Result{Parser: "none"}
}

// echoRecommendations copies every insight naming a product into the recommendations list
func echoRecommendations(res Result) Result {
	for _, in := range res.Insights {
		if strings.TrimSpace(in.Product) == "" {
			continue
		}
		res.Recommendations = append(res.Recommendations, AIRecommendation{
			Product:   in.Product,
			Reasoning: in.ProductReasoning,
			Priority:  models.PriorityHigh,
		})
	}
	return res
}

type jsonPayload struct {
	Summary  json.RawMessage `json:"summary"`
	Insights json.RawMessage `json:"insights"`
}

type jsonInsight struct {
	Insight          string          `json:"insight"`
	Reasoning        string          `json:"reasoning"`
	Product          json.RawMessage `json:"product"`
	ProductReasoning string          `json:"productReasoning"`
}

// decodePayload accepts any JSON object carrying a summary or insights key,
// even an empty one. Malformed items are skipped, not fatal.
func decodePayload(text string) (Result, bool) {
	var p jsonPayload
	if err := json.Unmarshal([]byte(text), &p); err != nil {
		return Result{}, false
	}
	if p.Summary == nil && p.Insights == nil {
		return Result{}, false
	}

	var res Result
	var items []json.RawMessage
	_ = json.Unmarshal(p.Summary, &res.Summary)
	_ = json.Unmarshal(p.Insights, &items)
	for _, item := range items {
		var raw jsonInsight
		if err := json.Unmarshal(item, &raw); err != nil {
			continue
		}
		products := productNames(raw.Product)
		in := AIInsight{
			Insight:          raw.Insight,
			Reasoning:        raw.Reasoning,
			ProductReasoning: raw.ProductReasoning,
		}
		if len(products) > 0 {
			in.Product = products[0]
		}
		res.Insights = append(res.Insights, in)
		for _, extra := range products[min(1, len(products)):] {
			res.Recommendations = append(res.Recommendations, AIRecommendation{
				Product:   extra,
				Reasoning: raw.ProductReasoning,
				Priority:  models.PriorityHigh,
			})
		}
	}
	return res, true
}

// productNames reads "product" as either a single name or a list of names
func productNames(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return nil
	}
	var one string
	if err := json.Unmarshal(raw, &one); err == nil {
		if one = strings.TrimSpace(one); one != "" {
			return []string{one}
		}
		return nil
	}
	var many []string
	if err := json.Unmarshal(raw, &many); err != nil {
		return nil
	}
	out := make([]string, 0, len(many))
	for _, name := range many {
		if name = strings.TrimSpace(name); name != "" {
			out = append(out, name)
		}
	}
	return out
}

// JSONParser parses the whole answer as JSON
type JSONParser struct{}

func (JSONParser) Name() string { return "json" }

func (JSONParser) Parse(text string) (Result, bool) {
	return decodePayload(strings.TrimSpace(text))
}

var embeddedJSON = regexp.MustCompile(`(?s)\{.*\}`)

// EmbeddedJSONParser parses the outermost {...} block found in the answer
type EmbeddedJSONParser struct{}

func (EmbeddedJSONParser) Name() string { return "embedded_json" }

func (EmbeddedJSONParser) Parse(text string) (Result, bool) {
	block := embeddedJSON.FindString(text)
	if block == "" {
		return Result{}, false
	}
	return decodePayload(block)
}

type section int

const (
	sectionNone section = iota
	sectionSummary
	sectionInsights
	sectionRecommendations
)

// SectionParser buckets plain-text lines under summary, insight and recommendation headers
type SectionParser struct{}

func (SectionParser) Name() string { return "sections" }

func (SectionParser) Parse(text string) (Result, bool) {
	trimmed := strings.TrimSpace(text)
	// JSON the earlier stages rejected is not prose
	if trimmed == "" || strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
		return Result{}, false
	}

	var res Result
	var summary []string
	current := sectionNone

	for _, raw := range strings.Split(text, "\n") {
		line := cleanLine(raw)
		if line == "" {
			continue
		}
		if sec, rest, ok := header(line); ok {
			current = sec
			if rest == "" {
				continue
			}
			line = rest
		}

		switch current {
		case sectionInsights:
			res.Insights = append(res.Insights, AIInsight{Insight: line})
		case sectionRecommendations:
			name, reason := splitRecommendation(line)
			res.Recommendations = append(res.Recommendations, AIRecommendation{
				Product:   name,
				Reasoning: reason,
				Priority:  models.PriorityHigh,
			})
		default:
			summary = append(summary, line)
		}
	}

	res.Summary = strings.Join(summary, " ")
	return res, res.Summary != "" || len(res.Insights) > 0 || len(res.Recommendations) > 0
}

func cleanLine(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimLeft(s, "-*•# ")
	// numbered list markers such as "1." or "2)"
	if i := strings.IndexAny(s, ".)"); i > 0 && i <= 2 && isDigits(s[:i]) {
		s = s[i+1:]
	}
	return strings.TrimSpace(strings.Trim(strings.TrimSpace(s), "*"))
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

// header recognises short lines such as "Summary", "Key Insights:" or "Recommendations: text"
func header(line string) (section, string, bool) {
	head, rest := line, ""
	if i := strings.Index(line, ":"); i >= 0 {
		head, rest = line[:i], strings.TrimSpace(line[i+1:])
	}
	head = strings.ToLower(strings.Trim(strings.TrimSpace(head), "*"))
	if len(strings.Fields(head)) > 3 {
		return sectionNone, "", false
	}
	switch {
	case strings.Contains(head, "summary"):
		return sectionSummary, rest, true
	case strings.Contains(head, "insight"):
		return sectionInsights, rest, true
	case strings.Contains(head, "recommendation"):
		return sectionRecommendations, rest, true
	}
	return sectionNone, "", false
}

func splitRecommendation(line string) (string, string) {
	for _, sep := range []string{":", " - ", " – "} {
		if i := strings.Index(line, sep); i > 0 {
			return strings.TrimSpace(line[:i]), strings.TrimSpace(line[i+len(sep):])
		}
	}
	return line, ""
}
