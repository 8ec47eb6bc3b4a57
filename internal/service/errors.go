package service

import (
	"errors"
	"fmt"
)

// ErrEmptyName is returned for an ingredient line whose parsed name is empty.
// Such lines are skipped, never persisted.
var ErrEmptyName = errors.New("ingredient line has no name")

// ErrNoFetcher is returned by ImportFromURL when no PageFetcher is configured.
var ErrNoFetcher = errors.New("no recipe page fetcher configured")

// PersistenceError reports that storing one ingredient line failed, either
// while resolving its ingredient or while creating the recipe association.
type PersistenceError struct {
	Line string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persist ingredient line %q: %v", e.Line, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// ErrSameIngredient is returned when an ingredient is merged into itself.
var ErrSameIngredient = errors.New("cannot merge an ingredient into itself")
