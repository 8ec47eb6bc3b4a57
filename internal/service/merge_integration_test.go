//go:build integration

package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/mwhite7112/woodpantry-household/internal/db"
	"github.com/mwhite7112/woodpantry-household/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMerge_Integration(t *testing.T) {
	sqlDB := testutil.SetupDB(t)
	q := db.New(sqlDB)
	svc := New(q, sqlDB, 1.0)
	ctx := context.Background()

	winner, err := q.CreateIngredient(ctx, db.CreateIngredientParams{
		Name:    "garlic",
		Aliases: []string{"garlic clove"},
	})
	require.NoError(t, err)

	loser, err := q.CreateIngredient(ctx, db.CreateIngredientParams{
		Name:    "minced garlic",
		Aliases: []string{"garlic paste"},
	})
	require.NoError(t, err)

	merged, err := svc.Merge(ctx, winner.ID, loser.ID)
	require.NoError(t, err)
	assert.Equal(t, winner.ID, merged.ID)
	assert.ElementsMatch(t, []string{"garlic clove", "minced garlic", "garlic paste"}, merged.Aliases)

	_, err = q.GetIngredient(ctx, loser.ID)
	assert.ErrorIs(t, err, sql.ErrNoRows)

	// The loser's name now resolves to the winner through its alias.
	res, err := svc.Resolve(ctx, "Minced Garlic")
	require.NoError(t, err)
	assert.Equal(t, winner.ID, res.Ingredient.ID)
	assert.False(t, res.Created)
}

func TestMerge_MovesRecipeIngredients(t *testing.T) {
	sqlDB := testutil.SetupDB(t)
	q := db.New(sqlDB)
	svc := New(q, sqlDB, 1.0)
	ctx := context.Background()

	winner, err := q.CreateIngredient(ctx, db.CreateIngredientParams{Name: "butter", Aliases: []string{}})
	require.NoError(t, err)
	loser, err := q.CreateIngredient(ctx, db.CreateIngredientParams{Name: "unsalted butter", Aliases: []string{}})
	require.NoError(t, err)

	recipe, err := q.CreateRecipe(ctx, db.CreateRecipeParams{Name: "Shortbread", Servings: 4, Difficulty: "easy"})
	require.NoError(t, err)

	_, err = q.CreateRecipeIngredient(ctx, db.CreateRecipeIngredientParams{
		RecipeID:     recipe.ID,
		IngredientID: loser.ID,
		Quantity:     1,
		Unit:         "cup",
		Position:     1,
	})
	require.NoError(t, err)

	_, err = svc.Merge(ctx, winner.ID, loser.ID)
	require.NoError(t, err)

	rows, err := q.ListRecipeIngredients(ctx, recipe.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, winner.ID, rows[0].IngredientID)
	assert.Equal(t, "butter", rows[0].IngredientName)
}
