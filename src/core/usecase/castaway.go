package usecase

import (
	"context"
	"log/slog"

	"survivordraft/src/core/domain"
	"survivordraft/src/core/ports"
)

// CastawayService serves the cast browser.
type CastawayService struct {
	repo ports.DraftRepository
	log  *slog.Logger
}

func NewCastawayService(repo ports.DraftRepository, log *slog.Logger) *CastawayService {
	return &CastawayService{repo: repo, log: log}
}

// List returns the cast, optionally filtered to a single tribe. An unknown
// tribe simply yields an empty list.
func (s *CastawayService) List(ctx context.Context, tribe string) ([]domain.Castaway, error) {
	castaways, err := s.repo.ListCastaways(ctx)
	if err != nil {
		return nil, err
	}
	if tribe == "" {
		return castaways, nil
	}

	filtered := make([]domain.Castaway, 0, len(castaways))
	for _, c := range castaways {
		if c.Tribe == tribe {
			filtered = append(filtered, c)
		}
	}
	return filtered, nil
}
