package store

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/sigfig/step-challenge/internal/database"
	model "github.com/sigfig/step-challenge/internal/models"
	"github.com/sigfig/step-challenge/internal/scanner"
)

const userColumns = `id, name, email, team, is_admin, join_date, created_at, updated_at`

// Users lists the full roster, name ascending.
func Users(ctx context.Context) ([]model.UserProfile, error) {
	rows, err := database.DB.Query(ctx, `
		SELECT `+userColumns+`
		FROM users
		ORDER BY name ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []model.UserProfile
	for rows.Next() {
		u, err := scanner.ScanUserProfile(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *u)
	}
	return users, rows.Err()
}

// GetUser returns one user, or nil when it does not exist.
func GetUser(ctx context.Context, id int64) (*model.UserProfile, error) {
	row := database.DB.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE id = $1
	`, id)

	u, err := scanner.ScanUserProfile(row)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

// GetUserByEmail returns the user registered under an email, or nil.
func GetUserByEmail(ctx context.Context, email string) (*model.UserProfile, error) {
	row := database.DB.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE LOWER(email) = LOWER($1)
	`, email)

	u, err := scanner.ScanUserProfile(row)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

// CreateUser registers a new user.
func CreateUser(ctx context.Context, u *model.UserProfile) error {
	return database.DB.QueryRow(ctx, `
		INSERT INTO users (name, email, team, is_admin, join_date, created_at, updated_at)
		VALUES ($1, $2, NULLIF($3, ''), $4, NOW(), NOW(), NOW())
		RETURNING id, join_date, created_at, updated_at
	`, u.Name, u.Email, u.Team, u.IsAdmin,
	).Scan(&u.ID, &u.JoinDate, &u.CreatedAt, &u.UpdatedAt)
}

// UpdateUser updates display name, team assignment and admin flag.
func UpdateUser(ctx context.Context, u *model.UserProfile) error {
	_, err := database.DB.Exec(ctx, `
		UPDATE users
		SET name = $1, team = NULLIF($2, ''), is_admin = $3, updated_at = NOW()
		WHERE id = $4
	`, u.Name, u.Team, u.IsAdmin, u.ID)
	return err
}

// Teams lists every team label with its member count and member names.
func Teams(ctx context.Context) ([]model.TeamSummary, error) {
	rows, err := database.DB.Query(ctx, `
		SELECT
			u.team,
			COUNT(u.id) AS member_count,
			array_agg(u.name ORDER BY u.name) AS members
		FROM users u
		WHERE u.team IS NOT NULL AND u.team <> ''
		GROUP BY u.team
		ORDER BY u.team ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var teams []model.TeamSummary
	for rows.Next() {
		t, err := scanner.ScanTeamSummary(rows)
		if err != nil {
			return nil, err
		}
		teams = append(teams, *t)
	}
	return teams, rows.Err()
}
