package usecase

import (
	"context"
	"log/slog"
	"strings"

	"survivordraft/src/core/domain"
	"survivordraft/src/core/ports"
)

// SessionService handles login and registration.
type SessionService struct {
	repo ports.DraftRepository
	log  *slog.Logger
}

func NewSessionService(repo ports.DraftRepository, log *slog.Logger) *SessionService {
	return &SessionService{repo: repo, log: log}
}

// SessionJoinResult reports the logged-in user and whether the account was
// created by this call.
type SessionJoinResult struct {
	User    *domain.User
	Created bool
}

// Join logs a user in, registering the username first if it is new.
// Usernames are matched case-insensitively, so "Alice" and "alice" are the
// same account.
func (s *SessionService) Join(ctx context.Context, username string) (*SessionJoinResult, error) {
	name := strings.TrimSpace(username)
	if name == "" {
		return nil, domain.NewValidationError("username", "cannot be empty")
	}
	if len(name) > domain.MaxUsernameLength {
		return nil, domain.NewValidationError("username", "must be 50 characters or fewer")
	}

	user, err := s.repo.GetUserByUsername(ctx, name)
	if err == nil {
		return &SessionJoinResult{User: user}, nil
	}
	if !domain.IsNotFound(err) {
		return nil, err
	}

	user, err = s.repo.CreateUser(ctx, name)
	if err != nil {
		if domain.IsConflict(err) {
			// Lost a registration race; the account exists now.
			user, err = s.repo.GetUserByUsername(ctx, name)
			if err != nil {
				return nil, err
			}
			return &SessionJoinResult{User: user}, nil
		}
		return nil, err
	}

	s.log.Info("user registered", "username", user.Username)
	return &SessionJoinResult{User: user, Created: true}, nil
}

// Users returns all registered usernames, sorted, for the login dropdown.
func (s *SessionService) Users(ctx context.Context) ([]string, error) {
	return s.repo.ListUsernames(ctx)
}
