package store

import (
	"context"

	"github.com/sigfig/step-challenge/internal/database"
	model "github.com/sigfig/step-challenge/internal/models"
	"github.com/sigfig/step-challenge/internal/scanner"
)

// UserChallengeStats aggregates per-user sums and distinct-day counts for
// one challenge. Only users with at least one entry under the challenge
// appear; ranking a never-participated user is meaningless.
func UserChallengeStats(ctx context.Context, challengeID int64) ([]model.UserStats, error) {
	rows, err := database.DB.Query(ctx, `
		SELECT
			u.id,
			u.name,
			u.team,
			SUM(s.count)::bigint AS total_steps,
			COUNT(DISTINCT s.date) AS days_logged
		FROM steps s
		INNER JOIN users u ON u.id = s.user_id
		WHERE s.challenge_id = $1
		GROUP BY u.id, u.name, u.team
	`, challengeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectUserStats(rows)
}

// UserAllTimeStats aggregates over the full entry history with left-outer
// semantics: every registered user appears, even with zero steps, so the
// roster view is complete.
func UserAllTimeStats(ctx context.Context) ([]model.UserStats, error) {
	rows, err := database.DB.Query(ctx, `
		SELECT
			u.id,
			u.name,
			u.team,
			COALESCE(SUM(s.count), 0)::bigint AS total_steps,
			COUNT(DISTINCT s.date) AS days_logged
		FROM users u
		LEFT JOIN steps s ON s.user_id = u.id
		GROUP BY u.id, u.name, u.team
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectUserStats(rows)
}

// TeamChallengeStats aggregates per-team for one challenge. Users without a
// team label are excluded entirely; member_count counts every user carrying
// the label, logged or not, since that is the expected-entries basis.
func TeamChallengeStats(ctx context.Context, challengeID int64) ([]model.TeamStats, error) {
	rows, err := database.DB.Query(ctx, `
		SELECT
			u.team,
			COUNT(DISTINCT u.id) AS member_count,
			COALESCE(SUM(s.count), 0)::bigint AS total_steps,
			COUNT(s.id) AS entries_logged
		FROM users u
		LEFT JOIN steps s ON s.user_id = u.id AND s.challenge_id = $1
		WHERE u.team IS NOT NULL AND u.team <> ''
		GROUP BY u.team
	`, challengeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectTeamStats(rows)
}

// TeamAllTimeStats is the unscoped variant of TeamChallengeStats.
func TeamAllTimeStats(ctx context.Context) ([]model.TeamStats, error) {
	rows, err := database.DB.Query(ctx, `
		SELECT
			u.team,
			COUNT(DISTINCT u.id) AS member_count,
			COALESCE(SUM(s.count), 0)::bigint AS total_steps,
			COUNT(s.id) AS entries_logged
		FROM users u
		LEFT JOIN steps s ON s.user_id = u.id
		WHERE u.team IS NOT NULL AND u.team <> ''
		GROUP BY u.team
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectTeamStats(rows)
}

func collectUserStats(rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}) ([]model.UserStats, error) {
	var stats []model.UserStats
	for rows.Next() {
		s, err := scanner.ScanUserStats(rows)
		if err != nil {
			return nil, err
		}
		stats = append(stats, *s)
	}
	return stats, rows.Err()
}

func collectTeamStats(rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}) ([]model.TeamStats, error) {
	var stats []model.TeamStats
	for rows.Next() {
		s, err := scanner.ScanTeamStats(rows)
		if err != nil {
			return nil, err
		}
		stats = append(stats, *s)
	}
	return stats, rows.Err()
}
