// Package category guesses a pantry category for an ingredient name from
// keyword lists.
package category

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Known categories.
const (
	Dairy   = "dairy"
	Meat    = "meat"
	Produce = "produce"
	Pantry  = "pantry"
	Spices  = "spices"
	Other   = "other"
)

// Categorizer maps an ingredient name to a category.
type Categorizer interface {
	Categorize(name string) string
}

//go:embed keywords.yaml
var defaultKeywords []byte

type rule struct {
	Category string   `yaml:"category"`
	Keywords []string `yaml:"keywords"`
}

// KeywordCategorizer picks the category whose keyword is the longest
// substring of the name. Names with no match fall back to Other.
type KeywordCategorizer struct {
	rules []rule
}

// Default returns the categorizer built from the embedded keyword table.
func Default() *KeywordCategorizer {
	c, err := Parse(bytes.NewReader(defaultKeywords))
	if err != nil {
		panic(fmt.Sprintf("category: embedded keywords: %v", err))
	}
	return c
}

// Load reads a keyword table from a YAML file.
func Load(path string) (*KeywordCategorizer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open keyword table: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse decodes a YAML keyword table: a list of {category, keywords}.
func Parse(r io.Reader) (*KeywordCategorizer, error) {
	var rules []rule
	if err := yaml.NewDecoder(r).Decode(&rules); err != nil {
		return nil, fmt.Errorf("decode keyword table: %w", err)
	}
	for i := range rules {
		rules[i].Category = strings.ToLower(strings.TrimSpace(rules[i].Category))
		if rules[i].Category == "" {
			return nil, fmt.Errorf("keyword table entry %d has no category", i)
		}
		for j, kw := range rules[i].Keywords {
			rules[i].Keywords[j] = strings.ToLower(strings.TrimSpace(kw))
		}
	}
	return &KeywordCategorizer{rules: rules}, nil
}

// Categorize implements Categorizer.
func (c *KeywordCategorizer) Categorize(name string) string {
	name = strings.ToLower(name)
	best, bestLen := Other, 0
	for _, r := range c.rules {
		for _, kw := range r.Keywords {
			if len(kw) > bestLen && strings.Contains(name, kw) {
				best, bestLen = r.Category, len(kw)
			}
		}
	}
	return best
}

// Known reports whether c is one of the built-in categories.
func Known(c string) bool {
	switch c {
	case Dairy, Meat, Produce, Pantry, Spices, Other:
		return true
	}
	return false
}
