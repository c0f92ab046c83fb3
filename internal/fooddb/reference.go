package fooddb

import (
	"context"
	_ "embed"
	"fmt"
	"strings"

	"github.com/alexanderramin/weighin/internal/domain"
	"gopkg.in/yaml.v2"
)

// ReferencePrefix marks ids that belong to the embedded reference list.
const ReferencePrefix = "ref:"

//go:embed cutting_foods.yaml
var cuttingFoodsYAML []byte

type referenceFile struct {
	Foods []referenceFood `yaml:"foods"`
}

type referenceFood struct {
	ID      string         `yaml:"id"`
	Name    string         `yaml:"name"`
	Group   string         `yaml:"group"`
	Note    string         `yaml:"note"`
	Per100g referenceFacts `yaml:"per_100g"`
}

type referenceFacts struct {
	Calories float64 `yaml:"calories"`
	ProteinG float64 `yaml:"protein_g"`
	FatG     float64 `yaml:"fat_g"`
	CarbG    float64 `yaml:"carb_g"`
	FiberG   float64 `yaml:"fiber_g"`
	SodiumMg float64 `yaml:"sodium_mg"`
}

// ReferenceGroup is one section of the reference list, in file order.
type ReferenceGroup struct {
	Name  string
	Foods []domain.FoodFacts
}

// ReferenceCatalog is the embedded list of low-fiber, low-sodium foods.
type ReferenceCatalog struct {
	foods  []domain.FoodFacts
	byID   map[string]int
	groups []ReferenceGroup
}

// LoadReference parses the embedded catalog.
func LoadReference() (*ReferenceCatalog, error) {
	return parseReference(cuttingFoodsYAML)
}

func parseReference(data []byte) (*ReferenceCatalog, error) {
	var file referenceFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing reference foods: %w", err)
	}

	c := &ReferenceCatalog{byID: make(map[string]int, len(file.Foods))}
	groupIdx := make(map[string]int)
	for _, f := range file.Foods {
		if f.ID == "" || f.Name == "" {
			return nil, fmt.Errorf("%w: reference food needs id and name", domain.ErrConfiguration)
		}
		id := ReferencePrefix + f.ID
		if _, dup := c.byID[id]; dup {
			return nil, fmt.Errorf("%w: duplicate reference food %q", domain.ErrConfiguration, f.ID)
		}
		facts := domain.FoodFacts{
			ID:     id,
			Name:   f.Name,
			Source: "reference",
			Note:   f.Note,
			Per100g: domain.NutrientTotals{
				Calories: f.Per100g.Calories,
				ProteinG: f.Per100g.ProteinG,
				FatG:     f.Per100g.FatG,
				CarbG:    f.Per100g.CarbG,
				FiberG:   f.Per100g.FiberG,
				SodiumMg: f.Per100g.SodiumMg,
			},
		}
		c.byID[id] = len(c.foods)
		c.foods = append(c.foods, facts)

		gi, ok := groupIdx[f.Group]
		if !ok {
			gi = len(c.groups)
			groupIdx[f.Group] = gi
			c.groups = append(c.groups, ReferenceGroup{Name: f.Group})
		}
		c.groups[gi].Foods = append(c.groups[gi].Foods, facts)
	}
	return c, nil
}

// Groups returns the catalog grouped by food group.
func (c *ReferenceCatalog) Groups() []ReferenceGroup {
	return c.groups
}

// Search matches foods whose name contains every word of query, ignoring
// case. An empty query matches everything.
func (c *ReferenceCatalog) Search(_ context.Context, query string, limit int) ([]domain.FoodFacts, error) {
	limit = normalizeLimit(limit)
	terms := strings.Fields(strings.ToLower(query))

	var out []domain.FoodFacts
	for _, f := range c.foods {
		if len(out) >= limit {
			break
		}
		if matchesAll(strings.ToLower(f.Name), terms) {
			out = append(out, f)
		}
	}
	return out, nil
}

func (c *ReferenceCatalog) Get(_ context.Context, id string) (*domain.FoodFacts, error) {
	i, ok := c.byID[id]
	if !ok {
		return nil, fmt.Errorf("reference food %s: %w", id, domain.ErrNotFound)
	}
	f := c.foods[i]
	return &f, nil
}

func matchesAll(name string, terms []string) bool {
	for _, t := range terms {
		if !strings.Contains(name, t) {
			return false
		}
	}
	return true
}
