package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/sigfig/step-challenge/internal/database"
	model "github.com/sigfig/step-challenge/internal/models"
	"github.com/sigfig/step-challenge/internal/scanner"
)

// CreateToken mints a new API token for a user. The token value is returned
// exactly once, on this call.
func CreateToken(ctx context.Context, userID int64, name string) (*model.ApiToken, error) {
	t := &model.ApiToken{
		UserID: userID,
		Name:   name,
		Token:  uuid.NewString(),
	}
	err := database.DB.QueryRow(ctx, `
		INSERT INTO api_tokens (user_id, name, token, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING id, created_at
	`, t.UserID, t.Name, t.Token).Scan(&t.ID, &t.CreatedAt)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// Tokens lists a user's API tokens, without their values.
func Tokens(ctx context.Context, userID int64) ([]model.ApiToken, error) {
	rows, err := database.DB.Query(ctx, `
		SELECT id, user_id, name, created_at, revoked_at
		FROM api_tokens
		WHERE user_id = $1
		ORDER BY id DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tokens []model.ApiToken
	for rows.Next() {
		t, err := scanner.ScanApiToken(rows)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, *t)
	}
	return tokens, rows.Err()
}

// RevokeToken revokes one of the user's tokens. Revoking someone else's
// token is a silent no-op.
func RevokeToken(ctx context.Context, userID, tokenID int64) error {
	_, err := database.DB.Exec(ctx, `
		UPDATE api_tokens
		SET revoked_at = NOW()
		WHERE id = $1 AND user_id = $2 AND revoked_at IS NULL
	`, tokenID, userID)
	return err
}

// UserForToken resolves a presented API token to its owner. Returns nil when
// the token is unknown or revoked.
func UserForToken(ctx context.Context, token string) (*model.UserProfile, int64, error) {
	var tokenID int64
	row := database.DB.QueryRow(ctx, `
		SELECT id, user_id FROM api_tokens
		WHERE token = $1 AND revoked_at IS NULL
	`, token)

	var userID int64
	if err := row.Scan(&tokenID, &userID); err != nil {
		if err == pgx.ErrNoRows {
			return nil, 0, nil
		}
		return nil, 0, err
	}

	user, err := GetUser(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	return user, tokenID, nil
}

// InsertAudit records one token API action.
func InsertAudit(ctx context.Context, tokenID, userID int64, action, detail string) error {
	_, err := database.DB.Exec(ctx, `
		INSERT INTO token_audit_log (token_id, user_id, action, detail, created_at)
		VALUES ($1, $2, $3, $4, NOW())
	`, tokenID, userID, action, detail)
	return err
}

// AuditEntries returns the most recent token API actions.
func AuditEntries(ctx context.Context, limit int) ([]model.AuditEntry, error) {
	rows, err := database.DB.Query(ctx, `
		SELECT id, token_id, user_id, action, detail, created_at
		FROM token_audit_log
		ORDER BY id DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []model.AuditEntry
	for rows.Next() {
		a, err := scanner.ScanAuditEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *a)
	}
	return entries, rows.Err()
}
