package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/sigfig/step-challenge/internal/database"
	model "github.com/sigfig/step-challenge/internal/models"
	"github.com/sigfig/step-challenge/internal/scanner"
)

const (
	loginTokenTTL = 30 * time.Minute
	sessionTTL    = 30 * 24 * time.Hour
)

// CreateLoginToken mints a single-use magic-link token for an email. Link
// delivery belongs to the mailer collaborator; the store only records it.
func CreateLoginToken(ctx context.Context, userID int64) (string, error) {
	token := uuid.NewString()
	_, err := database.DB.Exec(ctx, `
		INSERT INTO login_tokens (user_id, token, expires_at, created_at)
		VALUES ($1, $2, $3, NOW())
	`, userID, token, time.Now().Add(loginTokenTTL))
	if err != nil {
		return "", err
	}
	return token, nil
}

// RedeemLoginToken exchanges an unexpired login token for a session token,
// consuming it. Returns an empty session when the token is invalid.
func RedeemLoginToken(ctx context.Context, token string) (string, error) {
	var userID int64
	err := database.DB.QueryRow(ctx, `
		DELETE FROM login_tokens
		WHERE token = $1 AND expires_at > NOW()
		RETURNING user_id
	`, token).Scan(&userID)
	if err == pgx.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", err
	}

	session := uuid.NewString()
	_, err = database.DB.Exec(ctx, `
		INSERT INTO sessions (user_id, token, expires_at, created_at)
		VALUES ($1, $2, $3, NOW())
	`, userID, session, time.Now().Add(sessionTTL))
	if err != nil {
		return "", err
	}
	return session, nil
}

// UserForSession resolves a session token to its user. Returns nil when the
// session is unknown or expired.
func UserForSession(ctx context.Context, token string) (*model.UserProfile, error) {
	row := database.DB.QueryRow(ctx, `
		SELECT u.id, u.name, u.email, u.team, u.is_admin, u.join_date, u.created_at, u.updated_at
		FROM users u
		INNER JOIN sessions s ON s.user_id = u.id
		WHERE s.token = $1 AND s.expires_at > NOW()
	`, token)

	u, err := scanner.ScanUserProfile(row)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

// DeleteSession logs a session out.
func DeleteSession(ctx context.Context, token string) error {
	_, err := database.DB.Exec(ctx, `DELETE FROM sessions WHERE token = $1`, token)
	return err
}
