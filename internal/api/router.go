package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/mwhite7112/woodpantry-household/internal/logging"
	"github.com/mwhite7112/woodpantry-household/internal/service"
)

// NewRouter wires up all routes with the provided Service.
func NewRouter(svc *service.Service) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(logging.Middleware)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", handleHealth)

	r.Route("/ingredients", func(r chi.Router) {
		r.Get("/", handleListIngredients(svc))
		r.Post("/", handleCreateIngredient(svc))
		r.Post("/parse", handleParseLines(svc))
		r.Post("/resolve", handleResolve(svc))
		r.Post("/merge", handleMerge(svc))
		r.Get("/{id}", handleGetIngredient(svc))
		r.Put("/{id}", handleUpdateIngredient(svc))
	})

	r.Route("/recipes", func(r chi.Router) {
		r.Get("/", handleListRecipes(svc))
		r.Post("/", handleCreateRecipe(svc))
		r.Post("/import", handleImportRecipe(svc))
		r.Get("/{id}", handleGetRecipe(svc))
		r.Put("/{id}", handleUpdateRecipe(svc))
		r.Delete("/{id}", handleDeleteRecipe(svc))
		r.Post("/{id}/ingredients", handleAddRecipeIngredients(svc))
		r.Delete("/{id}/ingredients/{ingredientID}", handleDeleteRecipeIngredient(svc))
	})

	r.Route("/events", func(r chi.Router) {
		r.Get("/", handleListEvents(svc))
		r.Post("/", handleCreateEvent(svc))
		r.Get("/{id}", handleGetEvent(svc))
		r.Put("/{id}", handleUpdateEvent(svc))
		r.Delete("/{id}", handleDeleteEvent(svc))
	})

	r.Route("/chores", func(r chi.Router) {
		r.Get("/", handleListChores(svc))
		r.Post("/", handleCreateChore(svc))
		r.Post("/{id}/complete", handleCompleteChore(svc))
		r.Delete("/{id}", handleDeleteChore(svc))
	})

	r.Route("/meal-plans", func(r chi.Router) {
		r.Get("/", handleListMealPlans(svc))
		r.Post("/", handleCreateMealPlan(svc))
		r.Get("/{id}", handleGetMealPlan(svc))
		r.Delete("/{id}", handleDeleteMealPlan(svc))
		r.Get("/{id}/slots", handleListMealSlots(svc))
		r.Post("/{id}/slots", handleCreateMealSlot(svc))
		r.Delete("/{id}/slots/{slotID}", handleDeleteMealSlot(svc))
	})

	return r
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("ok")) //nolint:errcheck
}
