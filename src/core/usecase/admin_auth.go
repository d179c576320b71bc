package usecase

import (
	"crypto/subtle"

	"survivordraft/src/core/domain"
)

// AdminAuthService guards the outcome-entry endpoints behind the shared
// admin password from configuration. An empty configured password disables
// admin access entirely.
type AdminAuthService struct {
	adminPassword string
}

func NewAdminAuthService(adminPassword string) *AdminAuthService {
	return &AdminAuthService{adminPassword: adminPassword}
}

// Verify checks the supplied password against the configured one.
func (s *AdminAuthService) Verify(password string) error {
	if s.adminPassword == "" {
		return domain.NewUnauthorizedError("admin password not configured")
	}
	if subtle.ConstantTimeCompare([]byte(password), []byte(s.adminPassword)) != 1 {
		return domain.NewUnauthorizedError("invalid admin password")
	}
	return nil
}
