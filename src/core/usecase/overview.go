package usecase

import (
	"context"
	"log/slog"

	"survivordraft/src/core/domain"
	"survivordraft/src/core/ports"
	"survivordraft/src/core/scoring"
)

// OverviewService computes the derived game views. Each call takes one
// snapshot of the castaway and prediction sets and hands it to the pure
// functions in core/scoring; nothing is cached between calls, so a refresh
// always reflects the latest outcomes in the store.
type OverviewService struct {
	repo ports.DraftRepository
	log  *slog.Logger
}

func NewOverviewService(repo ports.DraftRepository, log *slog.Logger) *OverviewService {
	return &OverviewService{repo: repo, log: log}
}

func (s *OverviewService) snapshot(ctx context.Context) ([]domain.Castaway, []domain.Prediction, error) {
	castaways, err := s.repo.ListCastaways(ctx)
	if err != nil {
		return nil, nil, err
	}
	predictions, err := s.repo.ListPredictions(ctx)
	if err != nil {
		return nil, nil, err
	}
	return castaways, predictions, nil
}

// Scores returns the current leaderboard.
func (s *OverviewService) Scores(ctx context.Context) ([]scoring.ScoreRecord, error) {
	castaways, predictions, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return scoring.Score(castaways, predictions), nil
}

// Progression returns the cumulative score series per user.
func (s *OverviewService) Progression(ctx context.Context) ([]scoring.ProgressionPoint, error) {
	castaways, predictions, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return scoring.Progression(castaways, predictions), nil
}

// Standings returns the pick-by-pick table.
func (s *OverviewService) Standings(ctx context.Context) (*scoring.StandingsTable, error) {
	castaways, predictions, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	table := scoring.Standings(castaways, predictions)
	return &table, nil
}

// StateResult bundles the game-state snapshot with its rendered narrative.
type StateResult struct {
	State     scoring.GameState
	Narrative []string
}

// State returns the narrative snapshot. Scores are computed from the same
// snapshot so the leader and gap lines always agree with the leaderboard.
func (s *OverviewService) State(ctx context.Context) (*StateResult, error) {
	castaways, predictions, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	scores := scoring.Score(castaways, predictions)
	state := scoring.State(castaways, predictions, scores)
	return &StateResult{State: state, Narrative: scoring.Narrative(state)}, nil
}
