// Package scrape fetches recipe pages and pulls the schema.org Recipe out of
// their JSON-LD blocks.
package scrape

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"strconv"
	"strings"
	"time"

	"github.com/sosodev/duration"
	nethtml "golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrNoRecipe is returned when a page carries no schema.org Recipe.
var ErrNoRecipe = errors.New("no recipe found on page")

// Recipe is the subset of a schema.org Recipe the importer uses.
type Recipe struct {
	Title        string        `json:"title"`
	Description  string        `json:"description"`
	Instructions []string      `json:"instructions"`
	Ingredients  []string      `json:"ingredients"`
	Yield        string        `json:"yield"`
	PrepTime     time.Duration `json:"prep_time"`
	CookTime     time.Duration `json:"cook_time"`
}

// Extract finds the first schema.org Recipe in the page's
// application/ld+json scripts. When the recipe has no name the page <title>
// is used instead.
func Extract(page []byte) (Recipe, error) {
	doc, err := nethtml.Parse(bytes.NewReader(page))
	if err != nil {
		return Recipe{}, fmt.Errorf("parse html: %w", err)
	}

	var scripts []string
	var title string
	walk(doc, func(n *nethtml.Node) {
		switch n.DataAtom {
		case atom.Script:
			if strings.Contains(strings.ToLower(attr(n, "type")), "ld+json") {
				scripts = append(scripts, text(n))
			}
		case atom.Title:
			if title == "" {
				title = strings.TrimSpace(text(n))
			}
		}
	})

	for _, s := range scripts {
		var v any
		if err := json.Unmarshal([]byte(s), &v); err != nil {
			// Broken JSON-LD blocks are common; keep looking.
			continue
		}
		node := findRecipe(v)
		if node == nil {
			continue
		}
		r := toRecipe(node)
		if r.Title == "" {
			r.Title = title
		}
		return r, nil
	}
	return Recipe{}, ErrNoRecipe
}

func walk(n *nethtml.Node, fn func(*nethtml.Node)) {
	if n.Type == nethtml.ElementNode {
		fn(n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, fn)
	}
}

func attr(n *nethtml.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func text(n *nethtml.Node) string {
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == nethtml.TextNode {
			sb.WriteString(c.Data)
		}
	}
	return sb.String()
}

// findRecipe searches a decoded JSON-LD value for an object typed Recipe,
// descending into top-level arrays and @graph.
func findRecipe(v any) map[string]any {
	switch t := v.(type) {
	case []any:
		for _, item := range t {
			if r := findRecipe(item); r != nil {
				return r
			}
		}
	case map[string]any:
		if isType(t["@type"], "Recipe") {
			return t
		}
		if g, ok := t["@graph"]; ok {
			return findRecipe(g)
		}
	}
	return nil
}

func isType(v any, want string) bool {
	switch t := v.(type) {
	case string:
		return strings.EqualFold(t, want)
	case []any:
		for _, item := range t {
			if isType(item, want) {
				return true
			}
		}
	}
	return false
}

func toRecipe(m map[string]any) Recipe {
	ingredients := stringList(m["recipeIngredient"])
	if len(ingredients) == 0 {
		ingredients = stringList(m["ingredients"])
	}
	return Recipe{
		Title:        clean(str(m["name"])),
		Description:  clean(str(m["description"])),
		Instructions: instructions(m["recipeInstructions"]),
		Ingredients:  ingredients,
		Yield:        yield(m["recipeYield"]),
		PrepTime:     isoDuration(str(m["prepTime"])),
		CookTime:     isoDuration(str(m["cookTime"])),
	}
}

func str(v any) string {
	s, _ := v.(string)
	return s
}

// clean unescapes HTML entities left in JSON-LD strings and collapses
// whitespace.
func clean(s string) string {
	return strings.Join(strings.Fields(html.UnescapeString(s)), " ")
}

func stringList(v any) []string {
	items, ok := v.([]any)
	if !ok {
		if s := clean(str(v)); s != "" {
			return []string{s}
		}
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s := clean(str(item)); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// instructions flattens recipeInstructions, which may be a string, a list of
// strings, HowToStep objects, or HowToSection objects holding steps.
func instructions(v any) []string {
	switch t := v.(type) {
	case string:
		var out []string
		for _, line := range strings.Split(html.UnescapeString(t), "\n") {
			if s := clean(line); s != "" {
				out = append(out, s)
			}
		}
		return out
	case []any:
		var out []string
		for _, item := range t {
			out = append(out, instructions(item)...)
		}
		return out
	case map[string]any:
		if isType(t["@type"], "HowToSection") {
			return instructions(t["itemListElement"])
		}
		if s := clean(str(t["text"])); s != "" {
			return []string{s}
		}
		if s := clean(str(t["name"])); s != "" {
			return []string{s}
		}
	}
	return nil
}

func yield(v any) string {
	switch t := v.(type) {
	case string:
		return clean(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case []any:
		for _, item := range t {
			if s := yield(item); s != "" {
				return s
			}
		}
	}
	return ""
}

func isoDuration(s string) time.Duration {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	d, err := duration.Parse(s)
	if err != nil {
		return 0
	}
	return d.ToTimeDuration()
}
