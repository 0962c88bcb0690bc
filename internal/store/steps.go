package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/sigfig/step-challenge/internal/database"
	model "github.com/sigfig/step-challenge/internal/models"
	"github.com/sigfig/step-challenge/internal/scanner"
)

// ErrEntryExists signals an overwrite attempt without the overwrite flag.
var ErrEntryExists = errors.New("a step entry already exists for this date")

const stepColumns = `id, user_id, date, count, challenge_id, created_at, updated_at`

// StepForDate returns the entry for (user, date), or nil when none exists.
func StepForDate(ctx context.Context, userID int64, date string) (*model.StepEntry, error) {
	row := database.DB.QueryRow(ctx, `
		SELECT `+stepColumns+`
		FROM steps
		WHERE user_id = $1 AND date = $2
	`, userID, date)

	entry, err := scanner.ScanStepEntry(row)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// UpsertStep inserts or replaces the entry for (user, date). An existing
// entry is only replaced when allowOverwrite is set; otherwise the caller
// gets ErrEntryExists and can ask the user to confirm.
func UpsertStep(ctx context.Context, userID int64, date string, count int, challengeID *int64, allowOverwrite bool) (*model.StepEntry, error) {
	if !allowOverwrite {
		existing, err := StepForDate(ctx, userID, date)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, ErrEntryExists
		}
	}

	row := database.DB.QueryRow(ctx, `
		INSERT INTO steps (user_id, date, count, challenge_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		ON CONFLICT (user_id, date) DO UPDATE
		SET count = EXCLUDED.count, challenge_id = EXCLUDED.challenge_id, updated_at = NOW()
		RETURNING `+stepColumns+`
	`, userID, date, count, challengeID)

	return scanner.ScanStepEntry(row)
}

// StepsForUser lists a user's entries, optionally bounded by an inclusive
// date range. ISO dates compare correctly as strings.
func StepsForUser(ctx context.Context, userID int64, startDate, endDate string) ([]model.StepEntry, error) {
	query := `
		SELECT ` + stepColumns + `
		FROM steps
		WHERE user_id = $1`
	args := []interface{}{userID}

	if startDate != "" {
		args = append(args, startDate)
		query += ` AND date >= $2`
	}
	if endDate != "" {
		args = append(args, endDate)
		if len(args) == 3 {
			query += ` AND date <= $3`
		} else {
			query += ` AND date <= $2`
		}
	}
	query += ` ORDER BY date DESC`

	rows, err := database.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []model.StepEntry
	for rows.Next() {
		entry, err := scanner.ScanStepEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *entry)
	}
	return entries, rows.Err()
}

// StepExportRows returns every entry joined with its user, ordered for the
// admin CSV export.
func StepExportRows(ctx context.Context) ([]model.StepExportRow, error) {
	rows, err := database.DB.Query(ctx, `
		SELECT u.name, u.email, u.team, s.date, s.count, s.challenge_id
		FROM steps s
		INNER JOIN users u ON u.id = s.user_id
		ORDER BY s.date ASC, u.name ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var export []model.StepExportRow
	for rows.Next() {
		row, err := scanner.ScanStepExportRow(rows)
		if err != nil {
			return nil, err
		}
		export = append(export, *row)
	}
	return export, rows.Err()
}
