package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
	"github.com/mwhite7112/woodpantry-household/internal/db"
)

// ResolveResult is returned by Resolve.
type ResolveResult struct {
	Ingredient db.Ingredient
	Confidence float64
	Created    bool
}

// similarity scores two names in [0, 1] as
// 1 - levenshtein(a, b) / max(runes(a), runes(b)).
func similarity(a, b string) float64 {
	if a == b {
		return 1.0
	}
	longest := max(utf8.RuneCountInString(a), utf8.RuneCountInString(b))
	if longest == 0 {
		return 1.0
	}
	return 1.0 - float64(levenshtein.ComputeDistance(a, b))/float64(longest)
}

// exactMatch reports whether name is the ingredient's name or one of its
// aliases.
func exactMatch(ing db.Ingredient, name string) bool {
	if ing.Name == name {
		return true
	}
	for _, alias := range ing.Aliases {
		if alias == name {
			return true
		}
	}
	return false
}

// bestScore is the highest similarity between name and the ingredient's name
// or any alias.
func bestScore(ing db.Ingredient, name string) float64 {
	score := similarity(name, ing.Name)
	for _, alias := range ing.Aliases {
		score = max(score, similarity(name, alias))
	}
	return score
}

// Resolve maps a raw ingredient name onto the dictionary.
//
// Names are normalized first. An exact name or alias match wins outright.
// Failing that the closest ingredient is used when its score reaches the
// service threshold, so a threshold of 1.0 means exact matches only. Anything
// else creates a new ingredient whose category comes from the Categorizer.
func (s *Service) Resolve(ctx context.Context, rawName string) (ResolveResult, error) {
	name := Normalize(rawName)
	if name == "" {
		return ResolveResult{}, ErrEmptyName
	}

	all, err := s.q.ListIngredients(ctx)
	if err != nil {
		return ResolveResult{}, fmt.Errorf("list ingredients: %w", err)
	}

	var (
		closest db.Ingredient
		score   = -1.0
	)
	for _, ing := range all {
		if exactMatch(ing, name) {
			return ResolveResult{Ingredient: ing, Confidence: 1.0}, nil
		}
		if sc := bestScore(ing, name); sc > score {
			closest, score = ing, sc
		}
	}

	if score >= 0 && score >= s.threshold {
		return ResolveResult{Ingredient: closest, Confidence: score}, nil
	}
	return s.createIngredient(ctx, name)
}

// createIngredient inserts name into the dictionary. The insert is
// ON CONFLICT DO NOTHING; when another request created the same name first
// the existing row is returned instead.
func (s *Service) createIngredient(ctx context.Context, name string) (ResolveResult, error) {
	ing, err := s.q.UpsertIngredient(ctx, db.UpsertIngredientParams{
		Name:        name,
		Aliases:     []string{},
		Category:    sql.NullString{String: s.categorizer.Categorize(name), Valid: true},
		DefaultUnit: sql.NullString{},
	})
	switch {
	case errors.Is(err, sql.ErrNoRows):
		ing, err = s.q.GetIngredientByName(ctx, name)
		if err != nil {
			return ResolveResult{}, fmt.Errorf("get ingredient %q: %w", name, err)
		}
		return ResolveResult{Ingredient: ing, Confidence: 1.0}, nil
	case err != nil:
		return ResolveResult{}, fmt.Errorf("create ingredient %q: %w", name, err)
	}

	slog.Debug("ingredient created", "name", ing.Name, "category", ing.Category.String)
	return ResolveResult{Ingredient: ing, Confidence: 1.0, Created: true}, nil
}
