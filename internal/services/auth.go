package services

import (
	"context"
	"log/slog"

	"munsociety/internal/domain"
)

type authService struct {
	verifier domain.CredentialVerifier
	logger   *slog.Logger
}

// NewAuthService creates an AuthService that checks the shared admin
// credential through the given verifier.
func NewAuthService(verifier domain.CredentialVerifier, logger *slog.Logger) domain.AuthService {
	return &authService{verifier: verifier, logger: logger}
}

// Login reports whether the credential pair matches. A rejection carries no
// detail about which part was wrong, and there is no lockout or rate limit.
func (s *authService) Login(ctx context.Context, username, password string) bool {
	ok := s.verifier.Verify(username, password)
	if !ok {
		s.logger.WarnContext(ctx, "admin login rejected")
	}
	return ok
}
