package auth

import "time"

const (
	// SessionCookie is the opaque client-held token referencing the
	// server-side session row.
	SessionCookie = "session_token"

	sessionTTL = 24 * time.Hour

	resetCodeTTL     = 15 * time.Minute
	resendCooldown   = 10 * time.Second
	maxResetAttempts = 5
)

// SessionUser is the minimal projection stored in a session. The password
// hash never enters a session or a response.
type SessionUser struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	Username  string     `json:"username"`
	Role      string     `json:"role"`
	Photo     string     `json:"photo,omitempty"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}

// Session is a server-side login record keyed by its opaque token.
type Session struct {
	Token     string
	User      SessionUser
	ExpiresAt time.Time
}

// PasswordReset is one issued reset code. Issuance history is append-only;
// only the most recent row per email is consulted for verification.
type PasswordReset struct {
	ID        int64
	Email     string
	Code      string
	ExpiresAt time.Time
	Attempts  int
	LastSent  time.Time
}

// LoginRequest is the payload for /api/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// EmailRequest is the payload for forgot-password and resend-reset-code.
type EmailRequest struct {
	Email string `json:"email"`
}

// ResetPasswordRequest is the payload for /api/reset-password.
type ResetPasswordRequest struct {
	Email       string `json:"email"`
	Code        string `json:"code"`
	NewPassword string `json:"newPassword"`
}
