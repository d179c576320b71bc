package usecase

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"strings"
	"time"

	"survivordraft/src/core/domain"
	"survivordraft/src/core/ports"
)

// fakeDraftRepository is an in-memory ports.DraftRepository for service
// tests. Username matching is case-insensitive like the real store.
type fakeDraftRepository struct {
	users      []domain.User
	castaways  []domain.Castaway
	preds      []domain.Prediction
	nextUserID int64

	healthErr  error
	createErr  error
	replaceErr error

	// userLookupMisses forces the next N GetUserByUsername calls to report
	// not found, used to simulate a registration race.
	userLookupMisses int

	replaceCalls int
}

var _ ports.DraftRepository = (*fakeDraftRepository)(nil)

func newFakeRepo(castaways ...domain.Castaway) *fakeDraftRepository {
	return &fakeDraftRepository{castaways: castaways, nextUserID: 1}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func (f *fakeDraftRepository) Health(ctx context.Context) error {
	return f.healthErr
}

func (f *fakeDraftRepository) CreateUser(ctx context.Context, username string) (*domain.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	for _, u := range f.users {
		if strings.EqualFold(u.Username, username) {
			return nil, domain.NewConflictError("username already taken")
		}
	}
	user := domain.User{ID: f.nextUserID, Username: username, CreatedAt: time.Now()}
	f.nextUserID++
	f.users = append(f.users, user)
	return &user, nil
}

func (f *fakeDraftRepository) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	if f.userLookupMisses > 0 {
		f.userLookupMisses--
		return nil, domain.NewNotFoundError("user")
	}
	for _, u := range f.users {
		if strings.EqualFold(u.Username, username) {
			user := u
			return &user, nil
		}
	}
	return nil, domain.NewNotFoundError("user")
}

func (f *fakeDraftRepository) ListUsernames(ctx context.Context) ([]string, error) {
	names := make([]string, 0, len(f.users))
	for _, u := range f.users {
		names = append(names, u.Username)
	}
	sort.Strings(names)
	return names, nil
}

func (f *fakeDraftRepository) ListCastaways(ctx context.Context) ([]domain.Castaway, error) {
	out := make([]domain.Castaway, len(f.castaways))
	copy(out, f.castaways)
	sort.Slice(out, func(i, j int) bool { return out[i].PlayerName < out[j].PlayerName })
	return out, nil
}

func (f *fakeDraftRepository) GetCastaway(ctx context.Context, playerName string) (*domain.Castaway, error) {
	for _, c := range f.castaways {
		if c.PlayerName == playerName {
			castaway := c
			return &castaway, nil
		}
	}
	return nil, domain.NewNotFoundError("castaway")
}

func (f *fakeDraftRepository) UpdateOutcome(ctx context.Context, playerName string, update ports.OutcomeUpdate) (*domain.Castaway, error) {
	for i := range f.castaways {
		if f.castaways[i].PlayerName != playerName {
			continue
		}
		if update.ActualRank != nil {
			f.castaways[i].ActualRank = update.ActualRank
		}
		if update.IsFinalThree != nil {
			f.castaways[i].IsFinalThree = *update.IsFinalThree
		}
		if update.IsWinner != nil {
			f.castaways[i].IsWinner = *update.IsWinner
		}
		castaway := f.castaways[i]
		return &castaway, nil
	}
	return nil, domain.NewNotFoundError("castaway")
}

func (f *fakeDraftRepository) ListPredictions(ctx context.Context) ([]domain.Prediction, error) {
	out := make([]domain.Prediction, len(f.preds))
	copy(out, f.preds)
	return out, nil
}

func (f *fakeDraftRepository) ListPredictionsByUser(ctx context.Context, username string) ([]domain.Prediction, error) {
	var out []domain.Prediction
	for _, p := range f.preds {
		if strings.EqualFold(p.Username, username) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeDraftRepository) ReplacePredictions(ctx context.Context, username string, predictions []domain.Prediction) error {
	f.replaceCalls++
	if f.replaceErr != nil {
		return f.replaceErr
	}
	kept := f.preds[:0]
	for _, p := range f.preds {
		if !strings.EqualFold(p.Username, username) {
			kept = append(kept, p)
		}
	}
	f.preds = append(kept, predictions...)
	return nil
}
