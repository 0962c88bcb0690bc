// Package store holds every SQL read and write. Queries return raw rows,
// sums and counts; rate and ranking policy lives in the leaderboard package
// so it stays testable without a database.
package store

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/sigfig/step-challenge/internal/database"
	"github.com/sigfig/step-challenge/internal/logger"
	model "github.com/sigfig/step-challenge/internal/models"
	"github.com/sigfig/step-challenge/internal/scanner"
)

const challengeColumns = `
	id, name, start_date, end_date, is_active, reporting_threshold,
	timezone, created_at, updated_at`

// ActiveChallenge returns the currently active challenge, or nil when none
// is active. The write path keeps at most one row active; if the data ever
// disagrees, the lowest id wins deterministically and a warning is logged.
func ActiveChallenge(ctx context.Context) (*model.Challenge, error) {
	rows, err := database.DB.Query(ctx, `
		SELECT `+challengeColumns+`
		FROM challenges
		WHERE is_active = TRUE
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var active []*model.Challenge
	for rows.Next() {
		c, err := scanner.ScanChallenge(rows)
		if err != nil {
			return nil, err
		}
		active = append(active, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(active) == 0 {
		return nil, nil
	}
	if len(active) > 1 {
		logger.Warning("%d challenges marked active, using challenge %d (%s)",
			len(active), active[0].ID, active[0].Name)
	}
	return active[0], nil
}

// Challenges lists every challenge, newest first.
func Challenges(ctx context.Context) ([]model.Challenge, error) {
	rows, err := database.DB.Query(ctx, `
		SELECT `+challengeColumns+`
		FROM challenges
		ORDER BY id DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var challenges []model.Challenge
	for rows.Next() {
		c, err := scanner.ScanChallenge(rows)
		if err != nil {
			return nil, err
		}
		challenges = append(challenges, *c)
	}
	return challenges, rows.Err()
}

// GetChallenge returns one challenge, or nil when it does not exist.
func GetChallenge(ctx context.Context, id int64) (*model.Challenge, error) {
	row := database.DB.QueryRow(ctx, `
		SELECT `+challengeColumns+`
		FROM challenges
		WHERE id = $1
	`, id)

	c, err := scanner.ScanChallenge(row)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// CreateChallenge inserts a new (inactive) challenge.
func CreateChallenge(ctx context.Context, c *model.Challenge) error {
	return database.DB.QueryRow(ctx, `
		INSERT INTO challenges (name, start_date, end_date, is_active, reporting_threshold, timezone, created_at, updated_at)
		VALUES ($1, $2, $3, FALSE, $4, $5, NOW(), NOW())
		RETURNING id, is_active, created_at, updated_at
	`, c.Name, c.StartDate, c.EndDate, c.ReportingThreshold, c.Timezone,
	).Scan(&c.ID, &c.IsActive, &c.CreatedAt, &c.UpdatedAt)
}

// UpdateChallenge updates the editable fields of a challenge.
func UpdateChallenge(ctx context.Context, c *model.Challenge) error {
	_, err := database.DB.Exec(ctx, `
		UPDATE challenges
		SET name = $1, start_date = $2, end_date = $3, reporting_threshold = $4, timezone = $5, updated_at = NOW()
		WHERE id = $6
	`, c.Name, c.StartDate, c.EndDate, c.ReportingThreshold, c.Timezone, c.ID)
	return err
}

// ActivateChallenge makes one challenge active and deactivates every other
// in a single transaction, preserving the single-active-row invariant.
func ActivateChallenge(ctx context.Context, id int64) error {
	tx, err := database.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `UPDATE challenges SET is_active = FALSE, updated_at = NOW() WHERE is_active = TRUE`); err != nil {
		return err
	}
	tag, err := tx.Exec(ctx, `UPDATE challenges SET is_active = TRUE, updated_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return tx.Commit(ctx)
}

// DeactivateChallenge clears the active flag on a challenge.
func DeactivateChallenge(ctx context.Context, id int64) error {
	_, err := database.DB.Exec(ctx, `UPDATE challenges SET is_active = FALSE, updated_at = NOW() WHERE id = $1`, id)
	return err
}
