package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"servicehp-backend/internal/apperr"
	"servicehp-backend/internal/modules/user"
)

// ── fakes ──

type fakeSessionRepo struct{ sessions map[string]*Session }

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: map[string]*Session{}}
}

func (f *fakeSessionRepo) Create(ctx context.Context, s *Session) error {
	copied := *s
	f.sessions[s.Token] = &copied
	return nil
}

func (f *fakeSessionRepo) Get(ctx context.Context, token string) (*Session, error) {
	return f.sessions[token], nil
}

func (f *fakeSessionRepo) Delete(ctx context.Context, token string) error {
	delete(f.sessions, token)
	return nil
}

func (f *fakeSessionRepo) DeleteExpired(ctx context.Context) error { return nil }

type fakeResetRepo struct {
	rows     []*PasswordReset
	nextID   int64
	consumed []consumedReset
}

func newFakeResetRepo() *fakeResetRepo { return &fakeResetRepo{nextID: 1} }

func (f *fakeResetRepo) Latest(ctx context.Context, email string) (*PasswordReset, error) {
	for i := len(f.rows) - 1; i >= 0; i-- {
		if f.rows[i].Email == email {
			return f.rows[i], nil
		}
	}
	return nil, nil
}

func (f *fakeResetRepo) Insert(ctx context.Context, r *PasswordReset) error {
	copied := *r
	copied.ID = f.nextID
	f.nextID++
	f.rows = append(f.rows, &copied)
	r.ID = copied.ID
	return nil
}

func (f *fakeResetRepo) IncrementAttempts(ctx context.Context, id int64) error {
	for _, r := range f.rows {
		if r.ID == id {
			r.Attempts++
		}
	}
	return nil
}

func (f *fakeResetRepo) Delete(ctx context.Context, id int64) error {
	for i, r := range f.rows {
		if r.ID == id {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeResetRepo) Consume(ctx context.Context, userID int64, passwordHash, email string) error {
	var kept []*PasswordReset
	for _, r := range f.rows {
		if r.Email != email {
			kept = append(kept, r)
		}
	}
	f.rows = kept
	f.consumed = append(f.consumed, consumedReset{userID: userID, hash: passwordHash})
	return nil
}

type consumedReset struct {
	userID int64
	hash   string
}

type fakeUserRepo struct{ users []*user.User }

func (f *fakeUserRepo) List(ctx context.Context) ([]*user.User, error) { return f.users, nil }

func (f *fakeUserRepo) GetByID(ctx context.Context, id int64) (*user.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, apperr.NotFound("user not found")
}

func (f *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Create(ctx context.Context, u *user.User) (*user.User, error) {
	f.users = append(f.users, u)
	return u, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, id int64, u *user.User) error { return nil }
func (f *fakeUserRepo) Delete(ctx context.Context, id int64) error               { return nil }

func (f *fakeUserRepo) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	u, err := f.GetByID(ctx, id)
	if err != nil {
		return err
	}
	u.Password = passwordHash
	return nil
}

func (f *fakeUserRepo) UpdateLastLogin(ctx context.Context, id int64) error { return nil }

type fakeMailer struct{ sent []string }

func (f *fakeMailer) SendResetCode(to, code string) error {
	f.sent = append(f.sent, code)
	return nil
}

// ── harness ──

type harness struct {
	svc    *service
	resets *fakeResetRepo
	users  *fakeUserRepo
	mailer *fakeMailer
	clock  time.Time
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("rahasia"), bcrypt.MinCost)
	require.NoError(t, err)

	h := &harness{
		resets: newFakeResetRepo(),
		users: &fakeUserRepo{users: []*user.User{
			{ID: 1, Name: "Admin", Username: "admin", Email: "admin@toko.test", Password: string(hash), Role: "admin"},
		}},
		mailer: &fakeMailer{},
		clock:  time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC),
	}
	codes := []string{"111111", "222222", "333333"}
	h.svc = &service{
		sessions: newFakeSessionRepo(),
		resets:   h.resets,
		users:    h.users,
		mailer:   h.mailer,
		now:      func() time.Time { return h.clock },
		newCode: func() (string, error) {
			c := codes[0]
			if len(codes) > 1 {
				codes = codes[1:]
			}
			return c, nil
		},
	}
	return h
}

func (h *harness) advance(d time.Duration) { h.clock = h.clock.Add(d) }

// ── sessions ──

func TestLogin(t *testing.T) {
	h := newHarness(t)

	_, err := h.svc.Login(context.Background(), LoginRequest{Username: "ghost", Password: "x"})
	assert.Equal(t, apperr.KindUnauthorized, apperr.KindOf(err))
	assert.Equal(t, "username not found", apperr.Message(err))

	_, err = h.svc.Login(context.Background(), LoginRequest{Username: "admin", Password: "salah"})
	assert.Equal(t, apperr.KindUnauthorized, apperr.KindOf(err))
	assert.Equal(t, "wrong password", apperr.Message(err))

	sess, err := h.svc.Login(context.Background(), LoginRequest{Username: "admin", Password: "rahasia"})
	require.NoError(t, err)
	assert.NotEmpty(t, sess.Token)
	assert.Equal(t, "admin", sess.User.Username)
	assert.Equal(t, h.clock.Add(sessionTTL), sess.ExpiresAt)

	u, err := h.svc.CurrentSession(context.Background(), sess.Token)
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, int64(1), u.ID)
}

func TestSessionExpiry(t *testing.T) {
	h := newHarness(t)
	sess, err := h.svc.Login(context.Background(), LoginRequest{Username: "admin", Password: "rahasia"})
	require.NoError(t, err)

	h.advance(sessionTTL + time.Second)
	u, err := h.svc.CurrentSession(context.Background(), sess.Token)
	require.NoError(t, err)
	assert.Nil(t, u)

	// The expired row is dropped, so a later probe is still a clean miss.
	u, err = h.svc.CurrentSession(context.Background(), sess.Token)
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestLogout(t *testing.T) {
	h := newHarness(t)
	sess, err := h.svc.Login(context.Background(), LoginRequest{Username: "admin", Password: "rahasia"})
	require.NoError(t, err)

	require.NoError(t, h.svc.Logout(context.Background(), sess.Token))
	u, err := h.svc.CurrentSession(context.Background(), sess.Token)
	require.NoError(t, err)
	assert.Nil(t, u)
}

// ── password reset ──

func TestForgotPasswordRateLimit(t *testing.T) {
	h := newHarness(t)

	require.NoError(t, h.svc.ForgotPassword(context.Background(), "admin@toko.test"))
	assert.Len(t, h.mailer.sent, 1)

	err := h.svc.ForgotPassword(context.Background(), "admin@toko.test")
	assert.Equal(t, apperr.KindRateLimited, apperr.KindOf(err))
	assert.Len(t, h.mailer.sent, 1)

	h.advance(resendCooldown)
	require.NoError(t, h.svc.ForgotPassword(context.Background(), "admin@toko.test"))
	assert.Len(t, h.mailer.sent, 2)
	assert.NotEqual(t, h.mailer.sent[0], h.mailer.sent[1])
}

func TestForgotPasswordUnknownEmailStaysQuiet(t *testing.T) {
	h := newHarness(t)
	// Unknown addresses get the same acknowledgement as known ones.
	require.NoError(t, h.svc.ForgotPassword(context.Background(), "nobody@toko.test"))
	assert.Len(t, h.mailer.sent, 1)
}

func TestResendReusesLiveCode(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.svc.ForgotPassword(context.Background(), "admin@toko.test"))

	h.advance(resendCooldown)
	require.NoError(t, h.svc.ResendCode(context.Background(), "admin@toko.test"))
	assert.Equal(t, h.mailer.sent[0], h.mailer.sent[1])

	// Once the code has expired a resend mints a fresh one.
	h.advance(resetCodeTTL)
	require.NoError(t, h.svc.ResendCode(context.Background(), "admin@toko.test"))
	assert.NotEqual(t, h.mailer.sent[0], h.mailer.sent[2])
}

func TestResetPasswordRoundTrip(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.svc.ForgotPassword(context.Background(), "admin@toko.test"))
	code := h.mailer.sent[0]

	err := h.svc.ResetPassword(context.Background(), ResetPasswordRequest{
		Email: "admin@toko.test", Code: code, NewPassword: "baru123",
	})
	require.NoError(t, err)
	require.Len(t, h.resets.consumed, 1)
	assert.Equal(t, int64(1), h.resets.consumed[0].userID)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(h.resets.consumed[0].hash), []byte("baru123")))

	// Consumption removed every row, so the code only works once.
	err = h.svc.ResetPassword(context.Background(), ResetPasswordRequest{
		Email: "admin@toko.test", Code: code, NewPassword: "lagi",
	})
	assert.Equal(t, "code not found or expired", apperr.Message(err))
}

func TestResetPasswordExpiredCode(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.svc.ForgotPassword(context.Background(), "admin@toko.test"))
	code := h.mailer.sent[0]

	h.advance(resetCodeTTL + time.Second)
	err := h.svc.ResetPassword(context.Background(), ResetPasswordRequest{
		Email: "admin@toko.test", Code: code, NewPassword: "baru",
	})
	assert.Equal(t, "code expired", apperr.Message(err))
	assert.Empty(t, h.resets.rows)
}

func TestResetPasswordAttemptCap(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.svc.ForgotPassword(context.Background(), "admin@toko.test"))
	code := h.mailer.sent[0]

	for i := 0; i < maxResetAttempts; i++ {
		err := h.svc.ResetPassword(context.Background(), ResetPasswordRequest{
			Email: "admin@toko.test", Code: "000000", NewPassword: "baru",
		})
		assert.Equal(t, "incorrect code", apperr.Message(err))
	}

	// The cap burns the code even when the guess is finally right.
	err := h.svc.ResetPassword(context.Background(), ResetPasswordRequest{
		Email: "admin@toko.test", Code: code, NewPassword: "baru",
	})
	assert.Equal(t, "too many attempts, request a new code", apperr.Message(err))
	assert.Empty(t, h.resets.rows)
}

func TestResetPasswordNewestRowWins(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.svc.ForgotPassword(context.Background(), "admin@toko.test"))
	h.advance(resendCooldown)
	require.NoError(t, h.svc.ForgotPassword(context.Background(), "admin@toko.test"))
	old, latest := h.mailer.sent[0], h.mailer.sent[1]

	err := h.svc.ResetPassword(context.Background(), ResetPasswordRequest{
		Email: "admin@toko.test", Code: old, NewPassword: "baru",
	})
	assert.Equal(t, "incorrect code", apperr.Message(err))

	err = h.svc.ResetPassword(context.Background(), ResetPasswordRequest{
		Email: "admin@toko.test", Code: latest, NewPassword: "baru",
	})
	require.NoError(t, err)
}

func TestResetPasswordUnknownEmail(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.svc.ForgotPassword(context.Background(), "nobody@toko.test"))
	code := h.mailer.sent[0]

	err := h.svc.ResetPassword(context.Background(), ResetPasswordRequest{
		Email: "nobody@toko.test", Code: code, NewPassword: "baru",
	})
	assert.Equal(t, "email not found", apperr.Message(err))
	assert.Empty(t, h.resets.rows)
}

func TestGenerateCode(t *testing.T) {
	for i := 0; i < 50; i++ {
		code, err := generateCode()
		require.NoError(t, err)
		assert.Len(t, code, 6)
	}
}
