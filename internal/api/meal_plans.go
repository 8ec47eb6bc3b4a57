package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mwhite7112/woodpantry-household/internal/db"
	"github.com/mwhite7112/woodpantry-household/internal/service"
)

var mealTypes = map[string]bool{
	"breakfast": true,
	"lunch":     true,
	"dinner":    true,
	"snack":     true,
}

func parseDate(s string) (time.Time, bool) {
	d, err := time.Parse(time.DateOnly, strings.TrimSpace(s))
	return d, err == nil
}

type mealPlanRequest struct {
	Name      string `json:"name"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type mealPlanDetail struct {
	MealPlan db.MealPlan   `json:"meal_plan"`
	Slots    []db.MealSlot `json:"slots"`
}

func handleListMealPlans(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.Queries().ListMealPlans(r.Context())
		if err != nil {
			jsonError(w, "failed to list meal plans", http.StatusInternalServerError, err)
			return
		}
		if items == nil {
			items = []db.MealPlan{}
		}
		jsonOK(w, items)
	}
}

func handleCreateMealPlan(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req mealPlanRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		name := strings.TrimSpace(req.Name)
		if name == "" {
			jsonError(w, "name is required", http.StatusBadRequest)
			return
		}
		start, ok := parseDate(req.StartDate)
		if !ok {
			jsonError(w, "start_date must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		end, ok := parseDate(req.EndDate)
		if !ok {
			jsonError(w, "end_date must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		if end.Before(start) {
			jsonError(w, "end_date must not be before start_date", http.StatusBadRequest)
			return
		}
		plan, err := svc.Queries().CreateMealPlan(r.Context(), db.CreateMealPlanParams{
			Name:      name,
			StartDate: start,
			EndDate:   end,
		})
		if err != nil {
			jsonError(w, "failed to create meal plan", http.StatusInternalServerError, err)
			return
		}
		jsonCreated(w, plan)
	}
}

func handleGetMealPlan(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := urlID(w, r, "id")
		if !ok {
			return
		}
		plan, err := svc.Queries().GetMealPlan(r.Context(), id)
		if err != nil {
			storeError(w, err, "meal plan", "get")
			return
		}
		slots, err := svc.Queries().ListMealSlots(r.Context(), id)
		if err != nil {
			jsonError(w, "failed to list meal slots", http.StatusInternalServerError, err)
			return
		}
		if slots == nil {
			slots = []db.MealSlot{}
		}
		jsonOK(w, mealPlanDetail{MealPlan: plan, Slots: slots})
	}
}

func handleDeleteMealPlan(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := urlID(w, r, "id")
		if !ok {
			return
		}
		n, err := svc.Queries().DeleteMealPlan(r.Context(), id)
		deleted(w, n, err, "meal plan")
	}
}

// --- slots ---

type mealSlotRequest struct {
	RecipeID string `json:"recipe_id"`
	Date     string `json:"date"`
	MealType string `json:"meal_type"`
	Servings int32  `json:"servings"`
	Notes    string `json:"notes"`
}

func handleListMealSlots(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := urlID(w, r, "id")
		if !ok {
			return
		}
		slots, err := svc.Queries().ListMealSlots(r.Context(), id)
		if err != nil {
			jsonError(w, "failed to list meal slots", http.StatusInternalServerError, err)
			return
		}
		if slots == nil {
			slots = []db.MealSlot{}
		}
		jsonOK(w, slots)
	}
}

// handleCreateMealSlot schedules a recipe on a day of the plan.
func handleCreateMealSlot(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		planID, ok := urlID(w, r, "id")
		if !ok {
			return
		}
		var req mealSlotRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		recipeID, err := uuid.Parse(req.RecipeID)
		if err != nil {
			jsonError(w, "invalid recipe_id", http.StatusBadRequest)
			return
		}
		date, ok := parseDate(req.Date)
		if !ok {
			jsonError(w, "date must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		mealType := strings.ToLower(strings.TrimSpace(req.MealType))
		if !mealTypes[mealType] {
			jsonError(w, "meal_type must be breakfast, lunch, dinner or snack", http.StatusBadRequest)
			return
		}
		if req.Servings < 0 {
			jsonError(w, "servings must be positive", http.StatusBadRequest)
			return
		}
		if req.Servings == 0 {
			req.Servings = 1
		}

		plan, err := svc.Queries().GetMealPlan(r.Context(), planID)
		if err != nil {
			storeError(w, err, "meal plan", "get")
			return
		}
		if date.Before(plan.StartDate) || date.After(plan.EndDate) {
			jsonError(w, "date is outside the meal plan", http.StatusBadRequest)
			return
		}
		if _, err := svc.Queries().GetRecipe(r.Context(), recipeID); err != nil {
			storeError(w, err, "recipe", "get")
			return
		}

		slot, err := svc.Queries().CreateMealSlot(r.Context(), db.CreateMealSlotParams{
			MealPlanID: planID,
			RecipeID:   recipeID,
			Date:       date,
			MealType:   mealType,
			Servings:   req.Servings,
			Notes:      req.Notes,
		})
		if err != nil {
			jsonError(w, "failed to create meal slot", http.StatusInternalServerError, err)
			return
		}
		jsonCreated(w, slot)
	}
}

func handleDeleteMealSlot(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		planID, ok := urlID(w, r, "id")
		if !ok {
			return
		}
		slotID, ok := urlID(w, r, "slotID")
		if !ok {
			return
		}
		n, err := svc.Queries().DeleteMealSlot(r.Context(), db.DeleteMealSlotParams{
			ID:         slotID,
			MealPlanID: planID,
		})
		deleted(w, n, err, "meal slot")
	}
}
