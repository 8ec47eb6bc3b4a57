package api

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/mwhite7112/woodpantry-household/internal/db"
	"github.com/mwhite7112/woodpantry-household/internal/scrape"
	"github.com/mwhite7112/woodpantry-household/internal/service"
)

type recipeRequest struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Instructions string   `json:"instructions"`
	PrepMinutes  int32    `json:"prep_minutes"`
	CookMinutes  int32    `json:"cook_minutes"`
	Servings     int32    `json:"servings"`
	Difficulty   string   `json:"difficulty"`
	SourceURL    string   `json:"source_url"`
	Ingredients  []string `json:"ingredients"`
}

func (req *recipeRequest) validate() error {
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return errors.New("name is required")
	}
	if req.PrepMinutes < 0 || req.CookMinutes < 0 {
		return errors.New("prep_minutes and cook_minutes must not be negative")
	}
	if req.Servings < 0 {
		return errors.New("servings must not be negative")
	}
	if req.Servings == 0 {
		req.Servings = scrape.DefaultServings
	}
	switch req.Difficulty {
	case "":
		req.Difficulty = service.DefaultDifficulty
	case "easy", "medium", "hard":
	default:
		return errors.New("difficulty must be easy, medium or hard")
	}
	return nil
}

type recipeDetail struct {
	Recipe      db.Recipe                     `json:"recipe"`
	Ingredients []db.ListRecipeIngredientsRow `json:"ingredients"`
}

// --- list ---

func handleListRecipes(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.Queries().ListRecipes(r.Context())
		if err != nil {
			jsonError(w, "failed to list recipes", http.StatusInternalServerError, err)
			return
		}
		if items == nil {
			items = []db.Recipe{}
		}
		jsonOK(w, items)
	}
}

// --- create ---

// handleCreateRecipe stores a recipe and parses any ingredient lines sent
// with it.
func handleCreateRecipe(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req recipeRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		if err := req.validate(); err != nil {
			jsonError(w, err.Error(), http.StatusBadRequest)
			return
		}
		result, err := svc.ImportRecipe(r.Context(), service.RecipeDraft{
			Name:         req.Name,
			Description:  req.Description,
			Instructions: req.Instructions,
			PrepMinutes:  req.PrepMinutes,
			CookMinutes:  req.CookMinutes,
			Servings:     req.Servings,
			Difficulty:   req.Difficulty,
			SourceURL:    req.SourceURL,
			Lines:        req.Ingredients,
		})
		if err != nil {
			jsonError(w, "failed to create recipe", http.StatusInternalServerError, err)
			return
		}
		jsonCreated(w, result)
	}
}

// --- import ---

type importRequest struct {
	URL string `json:"url"`
}

func handleImportRecipe(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req importRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		u, err := url.Parse(strings.TrimSpace(req.URL))
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			jsonError(w, "a valid http(s) url is required", http.StatusBadRequest)
			return
		}
		result, err := svc.ImportFromURL(r.Context(), u.String())
		if err != nil {
			var se *scrape.StatusError
			switch {
			case errors.Is(err, scrape.ErrNoRecipe):
				jsonError(w, "no recipe found at url", http.StatusUnprocessableEntity)
			case errors.Is(err, service.ErrNoFetcher):
				jsonError(w, "recipe import is not available", http.StatusServiceUnavailable, err)
			case errors.As(err, &se):
				jsonError(w, "recipe page could not be fetched", http.StatusBadGateway, err)
			default:
				jsonError(w, "recipe import failed", http.StatusInternalServerError, err)
			}
			return
		}
		jsonCreated(w, result)
	}
}

// --- get ---

func handleGetRecipe(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := urlID(w, r, "id")
		if !ok {
			return
		}
		recipe, err := svc.Queries().GetRecipe(r.Context(), id)
		if err != nil {
			storeError(w, err, "recipe", "get")
			return
		}
		ingredients, err := svc.Queries().ListRecipeIngredients(r.Context(), id)
		if err != nil {
			jsonError(w, "failed to list recipe ingredients", http.StatusInternalServerError, err)
			return
		}
		if ingredients == nil {
			ingredients = []db.ListRecipeIngredientsRow{}
		}
		jsonOK(w, recipeDetail{Recipe: recipe, Ingredients: ingredients})
	}
}

// --- update ---

func handleUpdateRecipe(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := urlID(w, r, "id")
		if !ok {
			return
		}
		var req recipeRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		if err := req.validate(); err != nil {
			jsonError(w, err.Error(), http.StatusBadRequest)
			return
		}
		recipe, err := svc.Queries().UpdateRecipe(r.Context(), db.UpdateRecipeParams{
			ID:           id,
			Name:         req.Name,
			Description:  req.Description,
			Instructions: req.Instructions,
			PrepMinutes:  req.PrepMinutes,
			CookMinutes:  req.CookMinutes,
			Servings:     req.Servings,
			Difficulty:   req.Difficulty,
			SourceUrl:    nullString(req.SourceURL),
		})
		if err != nil {
			storeError(w, err, "recipe", "update")
			return
		}
		jsonOK(w, recipe)
	}
}

// --- delete ---

func handleDeleteRecipe(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := urlID(w, r, "id")
		if !ok {
			return
		}
		n, err := svc.Queries().DeleteRecipe(r.Context(), id)
		deleted(w, n, err, "recipe")
	}
}

// --- ingredients ---

// handleAddRecipeIngredients parses and appends ingredient lines, sent either
// as {"lines": [...]} or as one {"text": "..."} block.
func handleAddRecipeIngredients(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := urlID(w, r, "id")
		if !ok {
			return
		}
		var req linesRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		lines := req.lines()
		if len(lines) == 0 {
			jsonError(w, "lines or text is required", http.StatusBadRequest)
			return
		}
		result, err := svc.AddIngredientLines(r.Context(), id, lines)
		if err != nil {
			storeError(w, err, "recipe", "add ingredients to")
			return
		}
		jsonCreated(w, result)
	}
}

func handleDeleteRecipeIngredient(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		recipeID, ok := urlID(w, r, "id")
		if !ok {
			return
		}
		id, ok := urlID(w, r, "ingredientID")
		if !ok {
			return
		}
		n, err := svc.Queries().DeleteRecipeIngredient(r.Context(), db.DeleteRecipeIngredientParams{
			ID:       id,
			RecipeID: recipeID,
		})
		deleted(w, n, err, "recipe ingredient")
	}
}
