package service

import (
	"context"
	"fmt"
	"slices"

	"github.com/google/uuid"
	"github.com/mwhite7112/woodpantry-household/internal/db"
)

// inTx runs fn against a transaction-scoped Queries and commits when fn
// returns nil.
func (s *Service) inTx(ctx context.Context, fn func(q *db.Queries) error) error {
	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if err := fn(db.New(tx)); err != nil {
		return err
	}
	return tx.Commit()
}

// Merge folds the loser ingredient into the winner in one transaction. The
// winner gains the loser's name and aliases, recipe lines using the loser are
// moved to the winner, and the loser is deleted.
func (s *Service) Merge(ctx context.Context, winnerID, loserID uuid.UUID) (db.Ingredient, error) {
	if winnerID == loserID {
		return db.Ingredient{}, ErrSameIngredient
	}

	var merged db.Ingredient
	err := s.inTx(ctx, func(q *db.Queries) error {
		winner, err := q.GetIngredient(ctx, winnerID)
		if err != nil {
			return fmt.Errorf("get winner: %w", err)
		}
		loser, err := q.GetIngredient(ctx, loserID)
		if err != nil {
			return fmt.Errorf("get loser: %w", err)
		}

		merged, err = q.UpdateIngredient(ctx, db.UpdateIngredientParams{
			ID:          winner.ID,
			Aliases:     mergeAliases(winner, loser),
			Category:    winner.Category,
			DefaultUnit: winner.DefaultUnit,
		})
		if err != nil {
			return fmt.Errorf("update winner aliases: %w", err)
		}

		err = q.ReplaceRecipeIngredientIngredient(ctx, db.ReplaceRecipeIngredientIngredientParams{
			IngredientID:   winner.ID,
			IngredientID_2: loser.ID,
		})
		if err != nil {
			return fmt.Errorf("move recipe ingredients: %w", err)
		}

		// Restricted by recipe_ingredients, so this fails if a reference was missed.
		if err := q.DeleteIngredient(ctx, loser.ID); err != nil {
			return fmt.Errorf("delete merged ingredient: %w", err)
		}
		return nil
	})
	if err != nil {
		return db.Ingredient{}, err
	}
	return merged, nil
}

// mergeAliases returns the winner's aliases followed by the loser's name and
// aliases, without duplicates, blanks or the winner's own name.
func mergeAliases(winner, loser db.Ingredient) []string {
	candidates := append(append(append([]string{}, winner.Aliases...), loser.Name), loser.Aliases...)
	out := make([]string, 0, len(candidates))
	for _, a := range candidates {
		if a == "" || a == winner.Name || slices.Contains(out, a) {
			continue
		}
		out = append(out, a)
	}
	return out
}
