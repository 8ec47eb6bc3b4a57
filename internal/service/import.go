package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mwhite7112/woodpantry-household/internal/db"
	"github.com/mwhite7112/woodpantry-household/internal/ingredientline"
	"github.com/mwhite7112/woodpantry-household/internal/scrape"
)

// DefaultDifficulty is given to imported recipes; recipe pages rarely state one.
const DefaultDifficulty = "medium"

// RecipeDraft is a recipe ready to be stored together with its raw
// ingredient lines.
type RecipeDraft struct {
	Name         string
	Description  string
	Instructions string
	PrepMinutes  int32
	CookMinutes  int32
	Servings     int32
	Difficulty   string
	SourceURL    string
	Lines        []string
}

// ImportedIngredient is one ingredient line that was stored.
type ImportedIngredient struct {
	RecipeIngredient db.RecipeIngredient `json:"recipe_ingredient"`
	Ingredient       db.Ingredient       `json:"ingredient"`
	Created          bool                `json:"created"`
	Line             string              `json:"line"`
}

// SkippedLine is an ingredient line that was not stored, and why.
type SkippedLine struct {
	Position int    `json:"position"`
	Line     string `json:"line"`
	Reason   string `json:"reason"`
}

// ImportResult is the outcome of importing ingredient lines into a recipe.
type ImportResult struct {
	Recipe      db.Recipe            `json:"recipe"`
	Ingredients []ImportedIngredient `json:"ingredients"`
	Skipped     []SkippedLine        `json:"skipped"`
}

// ImportFromURL fetches a recipe page, extracts its schema.org Recipe and
// stores it with its ingredient lines. It fails only when the page cannot be
// fetched or extracted, or the recipe row cannot be created; bad ingredient
// lines are reported in ImportResult.Skipped.
func (s *Service) ImportFromURL(ctx context.Context, url string) (ImportResult, error) {
	if s.fetcher == nil {
		return ImportResult{}, ErrNoFetcher
	}

	page, err := s.fetcher.Fetch(ctx, url)
	if err != nil {
		return ImportResult{}, fmt.Errorf("fetch recipe page: %w", err)
	}
	slog.Debug("recipe page fetched", "url", url, "bytes", len(page))

	rec, err := scrape.Extract(page)
	if err != nil {
		return ImportResult{}, fmt.Errorf("extract recipe from %s: %w", url, err)
	}

	return s.ImportRecipe(ctx, DraftFromScraped(rec, url))
}

// DraftFromScraped converts an extracted page recipe into a RecipeDraft.
func DraftFromScraped(rec scrape.Recipe, url string) RecipeDraft {
	name := rec.Title
	if name == "" {
		name = url
	}
	return RecipeDraft{
		Name:         name,
		Description:  rec.Description,
		Instructions: strings.Join(rec.Instructions, "\n"),
		PrepMinutes:  minutes(rec.PrepTime),
		CookMinutes:  minutes(rec.CookTime),
		Servings:     int32(scrape.ParseServings(rec.Yield)),
		Difficulty:   DefaultDifficulty,
		SourceURL:    url,
		Lines:        rec.Ingredients,
	}
}

func minutes(d time.Duration) int32 {
	if d <= 0 {
		return 0
	}
	return int32(d / time.Minute)
}

// ImportRecipe creates the recipe row, then stores each ingredient line at
// its 1-based position in draft.Lines.
func (s *Service) ImportRecipe(ctx context.Context, draft RecipeDraft) (ImportResult, error) {
	if draft.Difficulty == "" {
		draft.Difficulty = DefaultDifficulty
	}
	if draft.Servings <= 0 {
		draft.Servings = scrape.DefaultServings
	}

	recipe, err := s.q.CreateRecipe(ctx, db.CreateRecipeParams{
		Name:         draft.Name,
		Description:  draft.Description,
		Instructions: draft.Instructions,
		PrepMinutes:  draft.PrepMinutes,
		CookMinutes:  draft.CookMinutes,
		Servings:     draft.Servings,
		Difficulty:   draft.Difficulty,
		SourceUrl:    sql.NullString{String: draft.SourceURL, Valid: draft.SourceURL != ""},
	})
	if err != nil {
		return ImportResult{}, fmt.Errorf("create recipe: %w", err)
	}

	result := s.importLines(ctx, recipe.ID, 0, draft.Lines)
	result.Recipe = recipe

	slog.Info("recipe imported",
		"recipe_id", recipe.ID,
		"name", recipe.Name,
		"ingredients", len(result.Ingredients),
		"skipped", len(result.Skipped),
	)
	return result, nil
}

// AddIngredientLines appends ingredient lines to an existing recipe. New
// lines are positioned after the recipe's current last ingredient.
func (s *Service) AddIngredientLines(ctx context.Context, recipeID uuid.UUID, lines []string) (ImportResult, error) {
	recipe, err := s.q.GetRecipe(ctx, recipeID)
	if err != nil {
		return ImportResult{}, err
	}
	last, err := s.q.GetMaxRecipeIngredientPosition(ctx, recipeID)
	if err != nil {
		return ImportResult{}, fmt.Errorf("get last ingredient position: %w", err)
	}

	result := s.importLines(ctx, recipeID, int(last), lines)
	result.Recipe = recipe
	return result, nil
}

// importLines stores lines one at a time, in order. A failing line is logged
// and recorded as skipped; the rest are still processed.
func (s *Service) importLines(ctx context.Context, recipeID uuid.UUID, offset int, lines []string) ImportResult {
	result := ImportResult{
		Ingredients: make([]ImportedIngredient, 0, len(lines)),
		Skipped:     []SkippedLine{},
	}
	for i, raw := range lines {
		pos := offset + i + 1
		imported, err := s.importLine(ctx, recipeID, pos, raw)
		if err != nil {
			if errors.Is(err, ErrEmptyName) {
				slog.Warn("skipping ingredient line", "recipe_id", recipeID, "position", pos, "line", raw, "error", err)
			} else {
				slog.Error("ingredient line failed", "recipe_id", recipeID, "position", pos, "line", raw, "error", err)
			}
			result.Skipped = append(result.Skipped, SkippedLine{Position: pos, Line: raw, Reason: err.Error()})
			continue
		}
		result.Ingredients = append(result.Ingredients, imported)
	}
	return result
}

func (s *Service) importLine(ctx context.Context, recipeID uuid.UUID, pos int, raw string) (ImportedIngredient, error) {
	parsed := ingredientline.Parse(raw)
	if parsed.Name == "" {
		return ImportedIngredient{}, ErrEmptyName
	}

	res, err := s.Resolve(ctx, parsed.Name)
	if err != nil {
		return ImportedIngredient{}, &PersistenceError{Line: raw, Err: err}
	}

	ri, err := s.q.CreateRecipeIngredient(ctx, db.CreateRecipeIngredientParams{
		RecipeID:     recipeID,
		IngredientID: res.Ingredient.ID,
		Quantity:     parsed.Quantity,
		Unit:         parsed.Unit.String(),
		Notes:        parsed.Notes,
		Optional:     strings.Contains(strings.ToLower(parsed.Notes), "optional"),
		Position:     int32(pos),
	})
	if err != nil {
		return ImportedIngredient{}, &PersistenceError{Line: raw, Err: err}
	}

	slog.Debug("ingredient line stored", "recipe_id", recipeID, "position", pos, "ingredient", res.Ingredient.Name)
	return ImportedIngredient{
		RecipeIngredient: ri,
		Ingredient:       res.Ingredient,
		Created:          res.Created,
		Line:             raw,
	}, nil
}

// SplitLines splits a pasted block of ingredient text into lines, dropping
// blank ones.
func SplitLines(text string) []string {
	var lines []string
	for _, l := range strings.Split(text, "\n") {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}
