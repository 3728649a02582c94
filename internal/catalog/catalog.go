// Package catalog holds the static bank product catalog and the lookup tables that point into it.
package catalog

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/Dan9191/bank-recommender/internal/models"
	"github.com/agnivade/levenshtein"
)

// ErrDanglingProduct is returned by Validate when a lookup table names a product the catalog lacks
var ErrDanglingProduct = errors.New("lookup table references unknown product")

// FallbackProductIDs is the fixed pair returned when nothing else can be recommended
var FallbackProductIDs = []string{BasicSavings, LifeInsuranceBasic}

// Catalog is a read-only product table. All accessors return copies.
type Catalog struct {
	products []models.Product
	byID     map[string]int
}

var defaultCatalog = New(products)

// Default returns the bank's product catalog
func Default() *Catalog {
	return defaultCatalog
}

// New builds a catalog from the given products. Later duplicates of an id are ignored.
func New(list []models.Product) *Catalog {
	c := &Catalog{byID: make(map[string]int, len(list))}
	for _, p := range list {
		if _, exists := c.byID[p.ID]; exists {
			continue
		}
		c.byID[p.ID] = len(c.products)
		c.products = append(c.products, clone(p))
	}
	return c
}

func clone(p models.Product) models.Product {
	p.Features = slices.Clone(p.Features)
	p.Eligibility = slices.Clone(p.Eligibility)
	return p
}

// Get looks a product up by id
func (c *Catalog) Get(id string) (models.Product, bool) {
	i, ok := c.byID[id]
	if !ok {
		return models.Product{}, false
	}
	return clone(c.products[i]), true
}

// All returns every product in catalog order
func (c *Catalog) All() []models.Product {
	out := make([]models.Product, 0, len(c.products))
	for _, p := range c.products {
		out = append(out, clone(p))
	}
	return out
}

// ByCategory returns the products of one category in catalog order
func (c *Catalog) ByCategory(cat models.Category) []models.Product {
	var out []models.Product
	for _, p := range c.products {
		if p.Category == cat {
			out = append(out, clone(p))
		}
	}
	return out
}

// Fallback returns the fixed safety-net products
func (c *Catalog) Fallback() []models.Product {
	out := make([]models.Product, 0, len(FallbackProductIDs))
	for _, id := range FallbackProductIDs {
		if p, ok := c.Get(id); ok {
			out = append(out, p)
		}
	}
	return out
}

// FindByName resolves free text naming a product: exact id first, then name containment,
// then the closest name by edit distance.
func (c *Catalog) FindByName(name string) (models.Product, bool) {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return models.Product{}, false
	}
	if p, ok := c.Get(needle); ok {
		return p, true
	}

	for _, p := range c.products {
		productName := strings.ToLower(p.Name)
		if strings.Contains(needle, productName) || (len(needle) >= 4 && strings.Contains(productName, needle)) {
			return clone(p), true
		}
	}

	best, bestDist := -1, 0
	for i, p := range c.products {
		productName := strings.ToLower(p.Name)
		dist := levenshtein.ComputeDistance(needle, productName)
		if dist > len(productName)/4 {
			continue
		}
		if best < 0 || dist < bestDist {
			best, bestDist = i, dist
		}
	}
	if best < 0 {
		return models.Product{}, false
	}
	return clone(c.products[best]), true
}

// Validate checks that the hint table, the fallback list and any extra id lists only
// reference products present in the catalog.
func (c *Catalog) Validate(extra ...[]string) error {
	check := func(ids []string, table string) error {
		for _, id := range ids {
			if _, ok := c.byID[id]; !ok {
				return fmt.Errorf("%w: %s in %s", ErrDanglingProduct, id, table)
			}
		}
		return nil
	}

	for _, hint := range Hints {
		if err := check(HintProducts[hint], "hint "+string(hint)); err != nil {
			return err
		}
	}
	if err := check(FallbackProductIDs, "fallback"); err != nil {
		return err
	}
	for _, ids := range extra {
		if err := check(ids, "rule table"); err != nil {
			return err
		}
	}
	return nil
}
