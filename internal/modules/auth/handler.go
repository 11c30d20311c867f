package auth

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"servicehp-backend/internal/apperr"
	"servicehp-backend/internal/web"
)

// Handler exposes session and password-reset endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/api/login", h.login)
	r.Post("/api/logout", h.logout)
	r.Get("/api/session", h.session)
	r.Post("/api/forgot-password", h.forgotPassword)
	r.Post("/api/resend-reset-code", h.resendCode)
	r.Post("/api/reset-password", h.resetPassword)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.Fail(w, apperr.Validation("invalid request body"))
		return
	}
	sess, err := h.service.Login(r.Context(), req)
	if err != nil {
		web.Fail(w, err)
		return
	}
	setSessionCookie(w, sess)
	web.JSONMessage(w, http.StatusOK, sess.User, "Login successful")
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if c, err := r.Cookie(SessionCookie); err == nil {
		if err := h.service.Logout(r.Context(), c.Value); err != nil {
			web.Fail(w, err)
			return
		}
	}
	clearSessionCookie(w)
	web.Message(w, http.StatusOK, "Logged out")
}

// session reports the logged-in user, or success:false without an error
// status when no valid session cookie is presented.
func (h *Handler) session(w http.ResponseWriter, r *http.Request) {
	c, err := r.Cookie(SessionCookie)
	if err != nil {
		notLoggedIn(w)
		return
	}
	u, err := h.service.CurrentSession(r.Context(), c.Value)
	if err != nil {
		web.Fail(w, err)
		return
	}
	if u == nil {
		clearSessionCookie(w)
		notLoggedIn(w)
		return
	}
	web.JSON(w, http.StatusOK, u)
}

func (h *Handler) forgotPassword(w http.ResponseWriter, r *http.Request) {
	email, ok := decodeEmail(w, r)
	if !ok {
		return
	}
	if err := h.service.ForgotPassword(r.Context(), email); err != nil {
		web.Fail(w, err)
		return
	}
	web.Message(w, http.StatusOK, "If the email is registered, a reset code has been sent")
}

func (h *Handler) resendCode(w http.ResponseWriter, r *http.Request) {
	email, ok := decodeEmail(w, r)
	if !ok {
		return
	}
	if err := h.service.ResendCode(r.Context(), email); err != nil {
		web.Fail(w, err)
		return
	}
	web.Message(w, http.StatusOK, "If the email is registered, a reset code has been sent")
}

func (h *Handler) resetPassword(w http.ResponseWriter, r *http.Request) {
	var req ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.Fail(w, apperr.Validation("invalid request body"))
		return
	}
	if err := h.service.ResetPassword(r.Context(), req); err != nil {
		web.Fail(w, err)
		return
	}
	web.Message(w, http.StatusOK, "Password has been reset")
}

// notLoggedIn is a soft failure: the session probe is answered with 200 so
// front-end polling does not trip error interceptors.
func notLoggedIn(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(web.Envelope{Success: false, Message: "not logged in"})
}

func decodeEmail(w http.ResponseWriter, r *http.Request) (string, bool) {
	var req EmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.Fail(w, apperr.Validation("invalid request body"))
		return "", false
	}
	return req.Email, true
}

func setSessionCookie(w http.ResponseWriter, sess *Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    sess.Token,
		Path:     "/",
		Expires:  sess.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
