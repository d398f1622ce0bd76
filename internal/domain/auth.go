package domain

import "context"

// CredentialVerifier checks the shared admin credential pair.
// Implementations decide how the reference password is stored (plaintext
// with a constant-time compare, bcrypt hash, ...).
type CredentialVerifier interface {
	Verify(username, password string) bool
}

// AuthService defines the login check gating the admin area. Login reveals
// nothing about which credential was wrong.
type AuthService interface {
	Login(ctx context.Context, username, password string) bool
}
