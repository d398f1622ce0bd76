package auth

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"

	"munsociety/internal/domain"
)

type plainVerifier struct {
	username string
	password string
}

// NewPlainVerifier returns a CredentialVerifier that compares both values
// in constant time against the configured plaintext credential pair.
func NewPlainVerifier(username, password string) domain.CredentialVerifier {
	return &plainVerifier{username: username, password: password}
}

func (v *plainVerifier) Verify(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(v.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(v.password)) == 1
	return userOK && passOK
}

type bcryptVerifier struct {
	username     string
	passwordHash string
}

// NewBcryptVerifier returns a CredentialVerifier that checks the password
// against a bcrypt hash, for deployments that store the admin credential
// hashed instead of as plaintext in the environment.
func NewBcryptVerifier(username, passwordHash string) domain.CredentialVerifier {
	return &bcryptVerifier{username: username, passwordHash: passwordHash}
}

func (v *bcryptVerifier) Verify(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(v.username)) == 1
	passOK := bcrypt.CompareHashAndPassword([]byte(v.passwordHash), []byte(password)) == nil
	return userOK && passOK
}
