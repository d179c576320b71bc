package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"survivordraft/src/core/domain"
	"survivordraft/src/core/ports"
)

// AdminService records season outcomes as episodes air.
type AdminService struct {
	repo ports.DraftRepository
	log  *slog.Logger
}

func NewAdminService(repo ports.DraftRepository, log *slog.Logger) *AdminService {
	return &AdminService{repo: repo, log: log}
}

// RecordOutcome applies a partial outcome update to one castaway. A new
// actual rank must lie in 1..N and must not already be held by a different
// castaway; elimination positions are unique across the season.
func (s *AdminService) RecordOutcome(ctx context.Context, playerName string, update ports.OutcomeUpdate) (*domain.Castaway, error) {
	if update.ActualRank == nil && update.IsFinalThree == nil && update.IsWinner == nil {
		return nil, domain.NewValidationError("outcome", "no fields to update")
	}

	castaways, err := s.repo.ListCastaways(ctx)
	if err != nil {
		return nil, err
	}

	if update.ActualRank != nil {
		rank := *update.ActualRank
		total := len(castaways)
		if rank < 1 || rank > total {
			return nil, domain.NewValidationError("actual_rank",
				fmt.Sprintf("rank %d is outside 1..%d", rank, total))
		}
		for _, c := range castaways {
			if c.Eliminated() && *c.ActualRank == rank && c.PlayerName != playerName {
				return nil, domain.NewConflictError(
					fmt.Sprintf("rank %d is already held by %s", rank, c.PlayerName))
			}
		}
	}

	updated, err := s.repo.UpdateOutcome(ctx, playerName, update)
	if err != nil {
		return nil, err
	}

	s.log.Info("outcome recorded",
		"player_name", updated.PlayerName,
		"actual_rank", updated.ActualRank,
		"is_final_three", updated.IsFinalThree,
		"is_winner", updated.IsWinner,
	)
	return updated, nil
}
