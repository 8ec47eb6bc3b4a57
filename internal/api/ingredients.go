package api

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/mwhite7112/woodpantry-household/internal/category"
	"github.com/mwhite7112/woodpantry-household/internal/db"
	"github.com/mwhite7112/woodpantry-household/internal/ingredientline"
	"github.com/mwhite7112/woodpantry-household/internal/service"
)

// --- list ---

func handleListIngredients(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.Queries().ListIngredients(r.Context())
		if err != nil {
			jsonError(w, "failed to list ingredients", http.StatusInternalServerError, err)
			return
		}
		if items == nil {
			items = []db.Ingredient{}
		}
		jsonOK(w, items)
	}
}

// --- create ---

type ingredientRequest struct {
	Name        string   `json:"name"`
	Aliases     []string `json:"aliases"`
	Category    string   `json:"category"`
	DefaultUnit string   `json:"default_unit"`
}

// validate normalizes aliases, category and default unit in place. An empty
// category is left for the caller to fill.
func (req *ingredientRequest) validate() error {
	aliases := make([]string, 0, len(req.Aliases))
	for _, a := range req.Aliases {
		if a = service.Normalize(a); a != "" {
			aliases = append(aliases, a)
		}
	}
	req.Aliases = aliases

	req.Category = service.Normalize(req.Category)
	if req.Category != "" && !category.Known(req.Category) {
		return errors.New("unknown category")
	}
	if req.DefaultUnit != "" {
		u, err := ingredientline.ParseUnit(req.DefaultUnit)
		if err != nil {
			return errors.New("unknown default_unit")
		}
		req.DefaultUnit = u.String()
	}
	return nil
}

func handleCreateIngredient(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ingredientRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		name := service.Normalize(req.Name)
		if name == "" {
			jsonError(w, "name is required", http.StatusBadRequest)
			return
		}
		if err := req.validate(); err != nil {
			jsonError(w, err.Error(), http.StatusBadRequest)
			return
		}
		if req.Category == "" {
			req.Category = svc.Categorize(name)
		}
		ing, err := svc.Queries().CreateIngredient(r.Context(), db.CreateIngredientParams{
			Name:        name,
			Aliases:     req.Aliases,
			Category:    nullString(req.Category),
			DefaultUnit: nullString(req.DefaultUnit),
		})
		if err != nil {
			jsonError(w, "failed to create ingredient", http.StatusInternalServerError, err)
			return
		}
		jsonCreated(w, ing)
	}
}

// --- get ---

func handleGetIngredient(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := urlID(w, r, "id")
		if !ok {
			return
		}
		ing, err := svc.Queries().GetIngredient(r.Context(), id)
		if err != nil {
			storeError(w, err, "ingredient", "get")
			return
		}
		jsonOK(w, ing)
	}
}

// --- update ---

func handleUpdateIngredient(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := urlID(w, r, "id")
		if !ok {
			return
		}
		var req ingredientRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		if err := req.validate(); err != nil {
			jsonError(w, err.Error(), http.StatusBadRequest)
			return
		}
		ing, err := svc.Queries().UpdateIngredient(r.Context(), db.UpdateIngredientParams{
			ID:          id,
			Aliases:     req.Aliases,
			Category:    nullString(req.Category),
			DefaultUnit: nullString(req.DefaultUnit),
		})
		if err != nil {
			storeError(w, err, "ingredient", "update")
			return
		}
		jsonOK(w, ing)
	}
}

// --- parse ---

type linesRequest struct {
	Lines []string `json:"lines"`
	Text  string   `json:"text"`
}

// lines returns the explicit lines, or the text block split into lines.
func (req linesRequest) lines() []string {
	if len(req.Lines) > 0 {
		return req.Lines
	}
	return service.SplitLines(req.Text)
}

type parsedLine struct {
	Input string `json:"line"`
	ingredientline.Line
	Category string `json:"category,omitempty"`
}

func handleParseLines(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req linesRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		lines := req.lines()
		if len(lines) == 0 {
			jsonError(w, "lines or text is required", http.StatusBadRequest)
			return
		}
		out := make([]parsedLine, 0, len(lines))
		for _, l := range lines {
			p := parsedLine{Input: l, Line: ingredientline.Parse(l)}
			if p.Name != "" {
				p.Category = svc.Categorize(p.Name)
			}
			out = append(out, p)
		}
		jsonOK(w, out)
	}
}

// --- resolve ---

type resolveRequest struct {
	Name string `json:"name"`
}

type resolveResponse struct {
	Ingredient db.Ingredient `json:"ingredient"`
	Confidence float64       `json:"confidence"`
	Created    bool          `json:"created"`
}

func handleResolve(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req resolveRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		result, err := svc.Resolve(r.Context(), req.Name)
		if err != nil {
			if errors.Is(err, service.ErrEmptyName) {
				jsonError(w, "name is required", http.StatusBadRequest)
				return
			}
			jsonError(w, "resolve failed", http.StatusInternalServerError, err)
			return
		}
		status := http.StatusOK
		if result.Created {
			status = http.StatusCreated
		}
		jsonStatus(w, status, resolveResponse{
			Ingredient: result.Ingredient,
			Confidence: result.Confidence,
			Created:    result.Created,
		})
	}
}

// --- merge ---

type mergeRequest struct {
	WinnerID string `json:"winner_id"`
	LoserID  string `json:"loser_id"`
}

func handleMerge(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req mergeRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		winnerID, err := uuid.Parse(req.WinnerID)
		if err != nil {
			jsonError(w, "invalid winner_id", http.StatusBadRequest)
			return
		}
		loserID, err := uuid.Parse(req.LoserID)
		if err != nil {
			jsonError(w, "invalid loser_id", http.StatusBadRequest)
			return
		}
		if winnerID == loserID {
			jsonError(w, "winner_id and loser_id must differ", http.StatusBadRequest)
			return
		}
		winner, err := svc.Merge(r.Context(), winnerID, loserID)
		if err != nil {
			storeError(w, err, "ingredient", "merge")
			return
		}
		jsonOK(w, winner)
	}
}
