package handler

import (
	"net/http"

	"github.com/sigfig/step-challenge/internal/logger"
	"github.com/sigfig/step-challenge/internal/store"
	"github.com/sigfig/step-challenge/internal/utils"
)

// RequestLoginLink issues a magic-link login token for an email. Delivery
// is the mailer collaborator's job; here the link is only logged. The
// response is the same whether or not the email is registered.
func RequestLoginLink(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
	}
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body", err)
		return
	}
	if req.Email == "" {
		utils.ErrorSimple(w, http.StatusBadRequest, "email is required")
		return
	}

	user, err := store.GetUserByEmail(r.Context(), req.Email)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not look up user", err)
		return
	}
	if user != nil {
		token, err := store.CreateLoginToken(r.Context(), user.ID)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "could not create login token", err)
			return
		}
		logger.Info("magic link for %s: /auth/verify?token=%s", user.Email, token)
	}

	utils.Message(w, "if that email is registered, a login link has been sent")
}

// VerifyLoginLink exchanges a magic-link token for a session.
func VerifyLoginLink(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		utils.ErrorSimple(w, http.StatusBadRequest, "token is required")
		return
	}

	session, err := store.RedeemLoginToken(r.Context(), token)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not verify login token", err)
		return
	}
	if session == "" {
		utils.ErrorSimple(w, http.StatusUnauthorized, "invalid or expired login link")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "session",
		Value:    session,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	utils.Success(w, map[string]string{"session": session})
}

// Logout deletes the presented session.
func Logout(w http.ResponseWriter, r *http.Request) {
	if c, err := r.Cookie("session"); err == nil && c.Value != "" {
		if err := store.DeleteSession(r.Context(), c.Value); err != nil {
			utils.Error(w, http.StatusInternalServerError, "could not delete session", err)
			return
		}
	}
	utils.Message(w, "logged out")
}
