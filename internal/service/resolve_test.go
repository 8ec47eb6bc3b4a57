package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mwhite7112/woodpantry-household/internal/category"
	"github.com/mwhite7112/woodpantry-household/internal/db"
	"github.com/mwhite7112/woodpantry-household/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// similarity() unit tests
// ---------------------------------------------------------------------------

func TestSimilarity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		a, b    string
		wantMin float64
		wantMax float64
	}{
		{
			name:    "exact match returns 1.0",
			a:       "garlic",
			b:       "garlic",
			wantMin: 1.0,
			wantMax: 1.0,
		},
		{
			name:    "close match garlic/garlc",
			a:       "garlic",
			b:       "garlc",
			wantMin: 0.8,
			wantMax: 1.0,
		},
		{
			name:    "distant match garlic/butter",
			a:       "garlic",
			b:       "butter",
			wantMin: 0.0,
			wantMax: 0.4,
		},
		{
			name:    "both empty strings returns 1.0",
			a:       "",
			b:       "",
			wantMin: 1.0,
			wantMax: 1.0,
		},
		{
			name:    "one empty string returns 0.0",
			a:       "garlic",
			b:       "",
			wantMin: 0.0,
			wantMax: 0.01,
		},
		{
			name:    "unicode strings",
			a:       "jalapeno",
			b:       "jalapeño",
			wantMin: 0.7,
			wantMax: 1.0,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			score := similarity(tc.a, tc.b)
			assert.GreaterOrEqual(t, score, tc.wantMin, "score %f below expected min %f", score, tc.wantMin)
			assert.LessOrEqual(t, score, tc.wantMax, "score %f above expected max %f", score, tc.wantMax)
		})
	}
}

// ---------------------------------------------------------------------------
// Resolve() unit tests
// ---------------------------------------------------------------------------

func newIngredient(name string, aliases []string) db.Ingredient {
	return db.Ingredient{
		ID:          uuid.New(),
		Name:        name,
		Aliases:     aliases,
		Category:    sql.NullString{},
		DefaultUnit: sql.NullString{},
		CreatedAt:   time.Now(),
	}
}

func TestExactMatchAndBestScore(t *testing.T) {
	t.Parallel()

	garlic := newIngredient("garlic", []string{"garlic clove", "ajo"})

	assert.True(t, exactMatch(garlic, "garlic"))
	assert.True(t, exactMatch(garlic, "ajo"))
	assert.False(t, exactMatch(garlic, "garlic cloves"))

	// The alias is closer than the name.
	assert.Greater(t, bestScore(garlic, "garlic cloves"), similarity("garlic cloves", "garlic"))
	assert.Equal(t, 1.0, bestScore(garlic, "ajo"))
}

func TestResolve_Matches(t *testing.T) {
	t.Parallel()

	garlic := newIngredient("garlic", []string{"garlic clove"})
	garlicPowder := newIngredient("garlic powder", []string{})

	tests := []struct {
		name     string
		input    string
		wantID   uuid.UUID
		wantConf float64
	}{
		{name: "exact name", input: "Garlic", wantID: garlic.ID, wantConf: 1.0},
		{name: "exact alias", input: "garlic  clove", wantID: garlic.ID, wantConf: 1.0},
		// One edit away from a six letter name.
		{name: "fuzzy above threshold", input: "garlc", wantID: garlic.ID, wantConf: 1 - 1.0/6},
		{name: "closest of several", input: "garlic powdr", wantID: garlicPowder.ID, wantConf: 1 - 1.0/13},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockQ := mocks.NewMockQuerier(t)
			svc := New(mockQ, nil, 0.8)
			mockQ.EXPECT().ListIngredients(mock.Anything).Return([]db.Ingredient{garlic, garlicPowder}, nil)

			result, err := svc.Resolve(context.Background(), tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.wantID, result.Ingredient.ID)
			assert.InDelta(t, tc.wantConf, result.Confidence, 1e-9)
			assert.False(t, result.Created)
		})
	}
}

func TestResolve_Creates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		existing     []db.Ingredient
		input        string
		wantName     string
		wantCategory string
	}{
		{name: "below threshold", existing: []db.Ingredient{newIngredient("garlic", []string{})}, input: "Butter", wantName: "butter", wantCategory: category.Dairy},
		{name: "empty dictionary", existing: []db.Ingredient{}, input: "Salt", wantName: "salt", wantCategory: category.Spices},
		{name: "unknown keyword", existing: nil, input: "Mystery Powder", wantName: "mystery powder", wantCategory: category.Other},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockQ := mocks.NewMockQuerier(t)
			svc := New(mockQ, nil, 0.8)
			mockQ.EXPECT().ListIngredients(mock.Anything).Return(tc.existing, nil)

			created := newIngredient(tc.wantName, []string{})
			mockQ.EXPECT().UpsertIngredient(mock.Anything, mock.MatchedBy(func(p db.UpsertIngredientParams) bool {
				return p.Name == tc.wantName && p.Category.Valid && p.Category.String == tc.wantCategory
			})).Return(created, nil)

			result, err := svc.Resolve(context.Background(), tc.input)
			require.NoError(t, err)
			assert.Equal(t, created.ID, result.Ingredient.ID)
			assert.Equal(t, 1.0, result.Confidence)
			assert.True(t, result.Created)
		})
	}
}

func TestResolve_ConcurrentConflictFallback(t *testing.T) {
	t.Parallel()

	mockQ := mocks.NewMockQuerier(t)
	svc := New(mockQ, nil, 0.8)

	mockQ.EXPECT().ListIngredients(mock.Anything).Return([]db.Ingredient{}, nil)

	// ON CONFLICT DO NOTHING returns no row when another insert won.
	mockQ.EXPECT().UpsertIngredient(mock.Anything, mock.Anything).
		Return(db.Ingredient{}, sql.ErrNoRows)

	existing := newIngredient("butter", []string{})
	mockQ.EXPECT().GetIngredientByName(mock.Anything, "butter").
		Return(existing, nil)

	result, err := svc.Resolve(context.Background(), "Butter")
	require.NoError(t, err)
	assert.Equal(t, existing.ID, result.Ingredient.ID)
	assert.Equal(t, 1.0, result.Confidence)
	assert.False(t, result.Created)
}

func TestResolve_EmptyName(t *testing.T) {
	t.Parallel()

	mockQ := mocks.NewMockQuerier(t)
	svc := New(mockQ, nil, 0.8)

	_, err := svc.Resolve(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrEmptyName)
}

func TestResolve_ExactOnlyThreshold(t *testing.T) {
	t.Parallel()

	mockQ := mocks.NewMockQuerier(t)
	svc := New(mockQ, nil, 1.0)

	// "garlc" would fuzzy-match "garlic" at ~0.83, but threshold 1.0 demands an
	// exact name or alias.
	garlic := newIngredient("garlic", []string{})
	mockQ.EXPECT().ListIngredients(mock.Anything).Return([]db.Ingredient{garlic}, nil)

	created := newIngredient("garlc", []string{})
	mockQ.EXPECT().UpsertIngredient(mock.Anything, mock.MatchedBy(func(p db.UpsertIngredientParams) bool {
		return p.Name == "garlc"
	})).Return(created, nil)

	result, err := svc.Resolve(context.Background(), "Garlc")
	require.NoError(t, err)
	assert.Equal(t, created.ID, result.Ingredient.ID)
	assert.True(t, result.Created)
}

type fixedCategorizer string

func (c fixedCategorizer) Categorize(string) string { return string(c) }

func TestResolve_UsesCategorizerOnCreate(t *testing.T) {
	t.Parallel()

	mockQ := mocks.NewMockQuerier(t)
	svc := New(mockQ, nil, 1.0, WithCategorizer(fixedCategorizer(category.Other)))

	mockQ.EXPECT().ListIngredients(mock.Anything).Return([]db.Ingredient{}, nil)
	mockQ.EXPECT().UpsertIngredient(mock.Anything, mock.MatchedBy(func(p db.UpsertIngredientParams) bool {
		return p.Name == "flour" && p.Category.String == category.Other
	})).Return(newIngredient("flour", []string{}), nil)

	result, err := svc.Resolve(context.Background(), "flour")
	require.NoError(t, err)
	assert.True(t, result.Created)
}

func TestResolve_ListError(t *testing.T) {
	t.Parallel()

	mockQ := mocks.NewMockQuerier(t)
	svc := New(mockQ, nil, 0.8)

	boom := errors.New("connection refused")
	mockQ.EXPECT().ListIngredients(mock.Anything).Return(nil, boom)

	_, err := svc.Resolve(context.Background(), "salt")
	assert.ErrorIs(t, err, boom)
}
