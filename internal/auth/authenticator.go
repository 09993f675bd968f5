// Package auth verifies who is calling. Passwords are bcrypt hashes kept on
// the user record; sessions are signed JWTs.
package auth

import (
	"context"

	"github.com/mmynk/fintrack/internal/models"
)

// Authenticator turns credentials into a user. AuthService depends on this
// rather than on PasswordAuthenticator.
type Authenticator interface {
	// Register creates the account and its personal bill. An empty name
	// defaults to the local part of email.
	Register(ctx context.Context, email, name, credential string) (*models.User, error)

	// Authenticate returns ErrInvalidCredentials for an unknown email or a
	// wrong credential, without saying which.
	Authenticate(ctx context.Context, email, credential string) (*models.User, error)
}
