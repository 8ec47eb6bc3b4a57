//go:build integration

package service

import (
	"context"
	"testing"

	"github.com/mwhite7112/woodpantry-household/internal/db"
	"github.com/mwhite7112/woodpantry-household/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntegrationImportRecipe(t *testing.T) {
	sqlDB := testutil.SetupDB(t)
	q := db.New(sqlDB)
	svc := New(q, sqlDB, 1.0)
	ctx := context.Background()

	result, err := svc.ImportRecipe(ctx, RecipeDraft{
		Name: "Cinnamon Rolls",
		Lines: []string{
			"2 3/4 - 3 1/4 cups unbleached all-purpose flour",
			"()",
			"1 package instant yeast (2 1/4 tsp)",
			"1/2 - 1 Tbsp ground cinnamon",
		},
	})
	require.NoError(t, err)
	assert.Len(t, result.Ingredients, 3)
	require.Len(t, result.Skipped, 1)
	assert.Equal(t, 2, result.Skipped[0].Position)

	rows, err := q.ListRecipeIngredients(ctx, result.Recipe.ID)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "unbleached all-purpose flour", rows[0].IngredientName)
	assert.Equal(t, 2.75, rows[0].Quantity)
	assert.Equal(t, "cup", rows[0].Unit)
	assert.Equal(t, int32(1), rows[0].Position)

	assert.Equal(t, "instant yeast", rows[1].IngredientName)
	assert.Equal(t, "pkg", rows[1].Unit)
	assert.Equal(t, "2 1/4 tsp", rows[1].Notes)
	assert.Equal(t, int32(3), rows[1].Position)

	assert.Equal(t, "ground cinnamon", rows[2].IngredientName)
	assert.Equal(t, 0.5, rows[2].Quantity)
	assert.Equal(t, int32(4), rows[2].Position)

	yeast, err := q.GetIngredientByName(ctx, "instant yeast")
	require.NoError(t, err)
	assert.Equal(t, "pantry", yeast.Category.String)

	// Appending reuses the existing ingredient and continues the positions.
	more, err := svc.AddIngredientLines(ctx, result.Recipe.ID, []string{"1 tsp Ground Cinnamon"})
	require.NoError(t, err)
	require.Len(t, more.Ingredients, 1)
	assert.False(t, more.Ingredients[0].Created)
	assert.Equal(t, int32(5), more.Ingredients[0].RecipeIngredient.Position)
}
