package auth

import (
	"context"
	"database/sql"

	"servicehp-backend/internal/apperr"
)

// ── sessions ──

type postgresSessionRepository struct {
	db *sql.DB
}

// NewPostgresSessionRepository returns a SessionRepository backed by Postgres.
func NewPostgresSessionRepository(db *sql.DB) SessionRepository {
	return &postgresSessionRepository{db: db}
}

func (r *postgresSessionRepository) Create(ctx context.Context, s *Session) error {
	query := `
		INSERT INTO sessions (token, user_id, name, username, role, photo, last_login, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.ExecContext(ctx, query,
		s.Token, s.User.ID, s.User.Name, s.User.Username, s.User.Role,
		nullString(s.User.Photo), s.User.LastLogin, s.ExpiresAt,
	)
	if err != nil {
		return apperr.Internal("create session", err)
	}
	return nil
}

func (r *postgresSessionRepository) Get(ctx context.Context, token string) (*Session, error) {
	query := `
		SELECT token, user_id, name, username, role, photo, last_login, expires_at
		FROM sessions
		WHERE token = $1`

	var (
		s         Session
		photo     sql.NullString
		lastLogin sql.NullTime
	)
	err := r.db.QueryRowContext(ctx, query, token).Scan(
		&s.Token, &s.User.ID, &s.User.Name, &s.User.Username, &s.User.Role,
		&photo, &lastLogin, &s.ExpiresAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, apperr.Internal("get session", err)
	}
	s.User.Photo = photo.String
	if lastLogin.Valid {
		t := lastLogin.Time
		s.User.LastLogin = &t
	}
	return &s, nil
}

func (r *postgresSessionRepository) Delete(ctx context.Context, token string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE token = $1`, token)
	if err != nil {
		return apperr.Internal("delete session", err)
	}
	return nil
}

func (r *postgresSessionRepository) DeleteExpired(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE expires_at < NOW()`)
	if err != nil {
		return apperr.Internal("delete expired sessions", err)
	}
	return nil
}

// ── password resets ──

type postgresResetRepository struct {
	db *sql.DB
}

// NewPostgresResetRepository returns a ResetRepository backed by Postgres.
func NewPostgresResetRepository(db *sql.DB) ResetRepository {
	return &postgresResetRepository{db: db}
}

func (r *postgresResetRepository) Latest(ctx context.Context, email string) (*PasswordReset, error) {
	query := `
		SELECT id, email, code, expires_at, attempts, last_sent
		FROM password_resets
		WHERE email = $1
		ORDER BY id DESC
		LIMIT 1`

	var pr PasswordReset
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&pr.ID, &pr.Email, &pr.Code, &pr.ExpiresAt, &pr.Attempts, &pr.LastSent,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, apperr.Internal("get latest reset code", err)
	}
	return &pr, nil
}

func (r *postgresResetRepository) Insert(ctx context.Context, pr *PasswordReset) error {
	query := `
		INSERT INTO password_resets (email, code, expires_at, attempts, last_sent)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	err := r.db.QueryRowContext(ctx, query,
		pr.Email, pr.Code, pr.ExpiresAt, pr.Attempts, pr.LastSent,
	).Scan(&pr.ID)
	if err != nil {
		return apperr.Internal("insert reset code", err)
	}
	return nil
}

func (r *postgresResetRepository) IncrementAttempts(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `UPDATE password_resets SET attempts = attempts + 1 WHERE id = $1`, id)
	if err != nil {
		return apperr.Internal("increment reset attempts", err)
	}
	return nil
}

func (r *postgresResetRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM password_resets WHERE id = $1`, id)
	if err != nil {
		return apperr.Internal("delete reset code", err)
	}
	return nil
}

func (r *postgresResetRepository) Consume(ctx context.Context, userID int64, passwordHash, email string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return apperr.Internal("begin reset transaction", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `UPDATE users SET password = $1 WHERE id = $2`, passwordHash, userID); err != nil {
		return apperr.Internal("update password", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM password_resets WHERE email = $1`, email); err != nil {
		return apperr.Internal("clear reset codes", err)
	}
	if err := tx.Commit(); err != nil {
		return apperr.Internal("commit reset transaction", err)
	}
	return nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
