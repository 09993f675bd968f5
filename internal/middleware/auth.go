package middleware

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/fintrack/internal/auth"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

const (
	// UserIDKey is the context key for storing the authenticated user ID.
	UserIDKey contextKey = "user_id"
	// EmailKey is the context key for storing the authenticated user's email.
	EmailKey contextKey = "email"
)

// UserIDHeader carries a bare user ID from clients that predate token auth.
// It is only honoured when WithUserIDHeader is set.
const UserIDHeader = "X-User-ID"

// GetUserID extracts the user ID from the context.
// Returns empty string if not found.
func GetUserID(ctx context.Context) string {
	userID, _ := ctx.Value(UserIDKey).(string)
	return userID
}

// GetEmail extracts the user email from the context.
// Returns empty string if not found. Requests authenticated by
// UserIDHeader carry no email.
func GetEmail(ctx context.Context) string {
	email, _ := ctx.Value(EmailKey).(string)
	return email
}

// AuthOption configures RequireAuth and OptionalAuth.
type AuthOption func(*authConfig)

type authConfig struct {
	trustUserHeader bool
}

// WithUserIDHeader accepts UserIDHeader as the caller's identity when no
// Authorization header is present.
func WithUserIDHeader(enabled bool) AuthOption {
	return func(c *authConfig) {
		c.trustUserHeader = enabled
	}
}

// identify resolves the caller from the request headers.
// It returns an empty user ID and a nil error when no credentials were sent.
func identify(jwtManager *auth.JWTManager, cfg authConfig, header http.Header) (userID, email string, err error) {
	authHeader := header.Get("Authorization")
	if authHeader == "" {
		if cfg.trustUserHeader {
			return strings.TrimSpace(header.Get(UserIDHeader)), "", nil
		}
		return "", "", nil
	}

	// Parse Bearer token
	scheme, token, ok := strings.Cut(authHeader, " ")
	if !ok || scheme != "Bearer" || token == "" {
		return "", "", auth.ErrInvalidToken
	}

	claims, err := jwtManager.Validate(token)
	if err != nil {
		return "", "", err
	}
	return claims.UserID(), claims.Email, nil
}

func withUser(ctx context.Context, userID, email string) context.Context {
	ctx = context.WithValue(ctx, UserIDKey, userID)
	if email != "" {
		ctx = context.WithValue(ctx, EmailKey, email)
	}
	return ctx
}

// RequireAuth returns a middleware that validates JWT tokens and requires authentication.
// It extracts the token from the Authorization header, validates it, and adds
// the user ID and email to the request context.
func RequireAuth(jwtManager *auth.JWTManager, opts ...AuthOption) connect.UnaryInterceptorFunc {
	var cfg authConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			userID, email, err := identify(jwtManager, cfg, req.Header())
			if err != nil {
				return nil, connect.NewError(connect.CodeUnauthenticated, err)
			}
			if userID == "" {
				return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
			}

			return next(withUser(ctx, userID, email), req)
		}
	}
}

// OptionalAuth returns a middleware that validates JWT tokens if present, but allows
// requests without authentication. Invalid tokens are ignored, so a stale token
// never blocks a fresh login.
func OptionalAuth(jwtManager *auth.JWTManager, opts ...AuthOption) connect.UnaryInterceptorFunc {
	var cfg authConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			userID, email, err := identify(jwtManager, cfg, req.Header())
			if err == nil && userID != "" {
				ctx = withUser(ctx, userID, email)
			}

			// Call the next handler (with or without user context)
			return next(ctx, req)
		}
	}
}
