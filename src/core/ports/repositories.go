// Package ports defines interfaces (ports) that connect core domain to infrastructure.
// These interfaces follow the ports and adapters (hexagonal) architecture pattern.
//
// Ports are defined here in the core layer, while implementations (adapters)
// live in src/infra/repo. This ensures the core has no dependency on infrastructure.
package ports

import (
	"context"

	"survivordraft/src/core/domain"
)

// Repository is the base interface for all repositories.
// Concrete repositories should embed this and add entity-specific methods.
type Repository interface {
	// Health checks if the underlying storage is reachable.
	Health(ctx context.Context) error
}

// OutcomeUpdate is a partial update of a castaway's outcome fields. Nil
// fields are left untouched, so an admin can enter the latest elimination
// without re-sending the flags.
type OutcomeUpdate struct {
	ActualRank   *int
	IsFinalThree *bool
	IsWinner     *bool
}

// DraftRepository is the accessor for the two record sets the scoring core
// consumes, plus the user and write-side operations around them.
type DraftRepository interface {
	Repository

	// Users. Usernames are unique case-insensitively; lookups ignore case.
	CreateUser(ctx context.Context, username string) (*domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
	ListUsernames(ctx context.Context) ([]string, error)

	// Castaways (ground truth), ordered by player name.
	ListCastaways(ctx context.Context) ([]domain.Castaway, error)
	GetCastaway(ctx context.Context, playerName string) (*domain.Castaway, error)
	UpdateOutcome(ctx context.Context, playerName string, update OutcomeUpdate) (*domain.Castaway, error)

	// Predictions.
	ListPredictions(ctx context.Context) ([]domain.Prediction, error)
	ListPredictionsByUser(ctx context.Context, username string) ([]domain.Prediction, error)

	// ReplacePredictions swaps a user's entire prediction set for the given
	// one. The delete and insert run in a single transaction scoped to that
	// user's rows, so no reader ever observes the intermediate empty state
	// and saves by the same user cannot interleave partially.
	ReplacePredictions(ctx context.Context, username string, predictions []domain.Prediction) error
}
