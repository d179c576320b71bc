package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"survivordraft/src/core/domain"
	"survivordraft/src/core/ports"
)

// PicksService manages a user's predicted elimination order.
type PicksService struct {
	repo ports.DraftRepository
	log  *slog.Logger
}

func NewPicksService(repo ports.DraftRepository, log *slog.Logger) *PicksService {
	return &PicksService{repo: repo, log: log}
}

// PickRow is one castaway merged with the user's current predicted rank.
// PredictedRank is nil when the castaway has not been ranked yet.
type PickRow struct {
	PlayerName    string
	Tribe         string
	PredictedRank *int
}

// PickEntry is one submitted (castaway, rank) pair.
type PickEntry struct {
	PlayerName    string
	PredictedRank int
}

// SavePicksResult reports how much of the board the user has filled in.
type SavePicksResult struct {
	Saved int
	Total int
}

// Get returns every castaway joined with the user's current prediction,
// sorted by player name. Unranked castaways appear with a nil rank so the
// picks editor can show the full board.
func (s *PicksService) Get(ctx context.Context, username string) ([]PickRow, error) {
	user, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	castaways, err := s.repo.ListCastaways(ctx)
	if err != nil {
		return nil, err
	}
	// Query with the stored casing; the predictions table matches exactly.
	predictions, err := s.repo.ListPredictionsByUser(ctx, user.Username)
	if err != nil {
		return nil, err
	}

	ranked := make(map[string]int, len(predictions))
	for _, p := range predictions {
		ranked[p.PlayerName] = p.PredictedRank
	}

	rows := make([]PickRow, 0, len(castaways))
	for _, c := range castaways {
		row := PickRow{PlayerName: c.PlayerName, Tribe: c.Tribe}
		if rank, ok := ranked[c.PlayerName]; ok {
			r := rank
			row.PredictedRank = &r
		}
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].PlayerName < rows[j].PlayerName })
	return rows, nil
}

// Save replaces the user's entire prediction set with the submitted picks.
//
// This is the write-side validation boundary the read-side core relies on:
// every rank must lie in 1..N, no rank and no castaway may appear twice, and
// every name must belong to the cast. Partial sets (not every castaway
// ranked) are always allowed. On success the previous set is deleted and the
// new one inserted as a single atomic unit.
func (s *PicksService) Save(ctx context.Context, username string, picks []PickEntry) (*SavePicksResult, error) {
	user, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	castaways, err := s.repo.ListCastaways(ctx)
	if err != nil {
		return nil, err
	}
	total := len(castaways)
	cast := make(map[string]bool, total)
	for _, c := range castaways {
		cast[c.PlayerName] = true
	}

	rankHolder := make(map[int]string, len(picks))
	seenPlayer := make(map[string]bool, len(picks))
	var duplicates []int
	for _, pick := range picks {
		if !cast[pick.PlayerName] {
			return nil, domain.NewValidationError("player_name",
				fmt.Sprintf("unknown castaway %q", pick.PlayerName))
		}
		if seenPlayer[pick.PlayerName] {
			return nil, domain.NewValidationError("player_name",
				fmt.Sprintf("castaway %q listed more than once", pick.PlayerName))
		}
		seenPlayer[pick.PlayerName] = true

		if pick.PredictedRank < 1 || pick.PredictedRank > total {
			return nil, domain.NewValidationError("predicted_rank",
				fmt.Sprintf("rank %d is outside 1..%d", pick.PredictedRank, total))
		}
		if _, taken := rankHolder[pick.PredictedRank]; taken {
			duplicates = append(duplicates, pick.PredictedRank)
		}
		rankHolder[pick.PredictedRank] = pick.PlayerName
	}
	if len(duplicates) > 0 {
		sort.Ints(duplicates)
		return nil, domain.NewValidationError("predicted_rank",
			fmt.Sprintf("duplicate rank(s): %s; each number must be used exactly once", joinInts(duplicates)))
	}

	predictions := make([]domain.Prediction, 0, len(picks))
	for _, pick := range picks {
		predictions = append(predictions, domain.Prediction{
			Username:      user.Username,
			PlayerName:    pick.PlayerName,
			PredictedRank: pick.PredictedRank,
		})
	}

	if err := s.repo.ReplacePredictions(ctx, user.Username, predictions); err != nil {
		return nil, err
	}

	s.log.Info("picks saved", "username", user.Username, "saved", len(predictions), "total", total)
	return &SavePicksResult{Saved: len(predictions), Total: total}, nil
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf("%d", v)
	}
	return strings.Join(parts, ", ")
}
