package auth

import (
	"context"
	"crypto/rand"
	"log"
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"servicehp-backend/internal/apperr"
	"servicehp-backend/internal/mail"
	"servicehp-backend/internal/modules/user"
)

// Service implements login sessions and the password-reset flow.
type Service interface {
	Login(ctx context.Context, req LoginRequest) (*Session, error)
	Logout(ctx context.Context, token string) error
	// CurrentSession returns nil, nil when the token is unknown or expired.
	CurrentSession(ctx context.Context, token string) (*SessionUser, error)
	ForgotPassword(ctx context.Context, email string) error
	ResendCode(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, req ResetPasswordRequest) error
}

type service struct {
	sessions SessionRepository
	resets   ResetRepository
	users    user.Repository
	mailer   mail.Mailer
	now      func() time.Time
	newCode  func() (string, error)
}

// NewService creates the auth service.
func NewService(sessions SessionRepository, resets ResetRepository, users user.Repository, mailer mail.Mailer) Service {
	return &service{
		sessions: sessions,
		resets:   resets,
		users:    users,
		mailer:   mailer,
		now:      time.Now,
		newCode:  generateCode,
	}
}

// ── sessions ──

func (s *service) Login(ctx context.Context, req LoginRequest) (*Session, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		return nil, apperr.Validation("username and password are required")
	}

	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, apperr.Unauthorized("username not found")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.Password)); err != nil {
		return nil, apperr.Unauthorized("wrong password")
	}

	// Best effort: a failed timestamp write must not block the login.
	if err := s.users.UpdateLastLogin(ctx, u.ID); err != nil {
		log.Printf("auth: update last login for user %d: %v", u.ID, err)
	} else {
		now := s.now()
		u.LastLogin = &now
	}

	sess := &Session{
		Token: uuid.NewString(),
		User: SessionUser{
			ID:        u.ID,
			Name:      u.Name,
			Username:  u.Username,
			Role:      u.Role,
			Photo:     u.Photo,
			LastLogin: u.LastLogin,
		},
		ExpiresAt: s.now().Add(sessionTTL),
	}
	if err := s.sessions.Create(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

func (s *service) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.sessions.Delete(ctx, token)
}

func (s *service) CurrentSession(ctx context.Context, token string) (*SessionUser, error) {
	if token == "" {
		return nil, nil
	}
	sess, err := s.sessions.Get(ctx, token)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, nil
	}
	if !sess.ExpiresAt.After(s.now()) {
		if err := s.sessions.Delete(ctx, token); err != nil {
			log.Printf("auth: drop expired session: %v", err)
		}
		return nil, nil
	}
	return &sess.User, nil
}

// ── password reset ──

// ForgotPassword issues a fresh code. It reports success whether or not the
// email is registered, so the endpoint cannot be used to probe accounts.
func (s *service) ForgotPassword(ctx context.Context, email string) error {
	return s.issueCode(ctx, email, false)
}

// ResendCode reissues the current unexpired code, or mints a new one when
// none is live.
func (s *service) ResendCode(ctx context.Context, email string) error {
	return s.issueCode(ctx, email, true)
}

func (s *service) issueCode(ctx context.Context, email string, reuse bool) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return apperr.Validation("email is required")
	}

	now := s.now()
	latest, err := s.resets.Latest(ctx, email)
	if err != nil {
		return err
	}
	if latest != nil && now.Sub(latest.LastSent) < resendCooldown {
		return apperr.RateLimited("please wait before requesting another code")
	}

	var code string
	if reuse && latest != nil && latest.ExpiresAt.After(now) {
		code = latest.Code
	} else {
		code, err = s.newCode()
		if err != nil {
			return apperr.Internal("generate reset code", err)
		}
	}

	row := &PasswordReset{
		Email:     email,
		Code:      code,
		ExpiresAt: now.Add(resetCodeTTL),
		LastSent:  now,
	}
	if err := s.resets.Insert(ctx, row); err != nil {
		return err
	}

	// Delivery failures are logged, not surfaced: the caller already gets a
	// generic acknowledgement either way.
	if err := s.mailer.SendResetCode(email, code); err != nil {
		log.Printf("auth: send reset code to %s: %v", email, err)
	}
	return nil
}

func (s *service) ResetPassword(ctx context.Context, req ResetPasswordRequest) error {
	email := strings.TrimSpace(req.Email)
	code := strings.TrimSpace(req.Code)
	if email == "" || code == "" || req.NewPassword == "" {
		return apperr.Validation("email, code and new password are required")
	}

	entry, err := s.resets.Latest(ctx, email)
	if err != nil {
		return err
	}
	if entry == nil {
		return apperr.Validation("code not found or expired")
	}
	if !entry.ExpiresAt.After(s.now()) {
		if err := s.resets.Delete(ctx, entry.ID); err != nil {
			return err
		}
		return apperr.Validation("code expired")
	}
	if entry.Attempts >= maxResetAttempts {
		if err := s.resets.Delete(ctx, entry.ID); err != nil {
			return err
		}
		return apperr.Validation("too many attempts, request a new code")
	}
	if entry.Code != code {
		if err := s.resets.IncrementAttempts(ctx, entry.ID); err != nil {
			return err
		}
		return apperr.Validation("incorrect code")
	}

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if u == nil {
		if err := s.resets.Delete(ctx, entry.ID); err != nil {
			return err
		}
		return apperr.Validation("email not found")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return apperr.Internal("hash password", err)
	}
	return s.resets.Consume(ctx, u.ID, string(hash), email)
}

// generateCode draws a 6-digit code from crypto/rand.
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(n.Int64()+100000, 10), nil
}
