package crafting

import (
	"fmt"
	"sort"

	"github.com/osse101/CraftEconomy_Go/internal/domain"
)

// Catalog is the immutable set of known recipes
type Catalog struct {
	byID    map[string]domain.Recipe
	ordered []domain.Recipe
}

// NewCatalog indexes recipes by id. Bonus city names are normalized to their canonical spelling.
func NewCatalog(recipes []domain.Recipe) *Catalog {
	c := &Catalog{byID: make(map[string]domain.Recipe, len(recipes))}
	for _, r := range recipes {
		if r.BonusCity != "" {
			if city, err := domain.ParseCity(string(r.BonusCity)); err == nil {
				r.BonusCity = city
			}
		}
		c.byID[r.ID] = r
	}

	c.ordered = make([]domain.Recipe, 0, len(c.byID))
	for _, r := range c.byID {
		c.ordered = append(c.ordered, r)
	}
	sort.Slice(c.ordered, func(i, j int) bool {
		if c.ordered[i].Tier != c.ordered[j].Tier {
			return c.ordered[i].Tier < c.ordered[j].Tier
		}
		return c.ordered[i].ID < c.ordered[j].ID
	})
	return c
}

// Get returns a recipe by id
func (c *Catalog) Get(id string) (domain.Recipe, error) {
	r, ok := c.byID[id]
	if !ok {
		return domain.Recipe{}, fmt.Errorf("%w: %s", domain.ErrRecipeNotFound, id)
	}
	return r, nil
}

// List returns recipes ordered by tier then id, optionally filtered by category
func (c *Catalog) List(category domain.Category) []domain.Recipe {
	out := make([]domain.Recipe, 0, len(c.ordered))
	for _, r := range c.ordered {
		if category == "" || r.Category == category {
			out = append(out, r)
		}
	}
	return out
}

// Len returns the number of recipes
func (c *Catalog) Len() int {
	return len(c.byID)
}

// MarketItemIDs returns every distinct item id any recipe needs a price for, sorted
func (c *Catalog) MarketItemIDs() []string {
	seen := make(map[string]bool)
	var ids []string
	for _, r := range c.ordered {
		for _, id := range r.MarketItemIDs() {
			if id == "" || seen[id] {
				continue
			}
			seen[id] = true
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}
