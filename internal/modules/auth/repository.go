package auth

import "context"

// SessionRepository stores server-side login sessions.
type SessionRepository interface {
	Create(ctx context.Context, s *Session) error
	// Get returns nil, nil when no session matches the token.
	Get(ctx context.Context, token string) (*Session, error)
	Delete(ctx context.Context, token string) error
	DeleteExpired(ctx context.Context) error
}

// ResetRepository stores password-reset codes.
type ResetRepository interface {
	// Latest returns the most recently issued row for the email, or
	// nil, nil when none exists.
	Latest(ctx context.Context, email string) (*PasswordReset, error)
	Insert(ctx context.Context, r *PasswordReset) error
	IncrementAttempts(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
	// Consume updates the user's password and removes every reset row
	// for the email in a single transaction.
	Consume(ctx context.Context, userID int64, passwordHash, email string) error
}
