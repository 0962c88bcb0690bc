package scanner

import (
	"database/sql"

	"github.com/lib/pq"

	model "github.com/sigfig/step-challenge/internal/models"
	"github.com/sigfig/step-challenge/internal/utils"
)

// ScanChallenge scans a SQL row into a Challenge
func ScanChallenge(scanner interface {
	Scan(dest ...interface{}) error
}) (*model.Challenge, error) {
	var c model.Challenge
	var tz sql.NullString

	err := scanner.Scan(
		&c.ID, &c.Name, &c.StartDate, &c.EndDate,
		&c.IsActive, &c.ReportingThreshold, &tz,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	c.Timezone = utils.NullStringToString(tz)

	return &c, nil
}

// ScanStepEntry scans a SQL row into a StepEntry
func ScanStepEntry(scanner interface {
	Scan(dest ...interface{}) error
}) (*model.StepEntry, error) {
	var s model.StepEntry
	var challengeID sql.NullInt64

	err := scanner.Scan(
		&s.ID, &s.UserID, &s.Date, &s.Count, &challengeID,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	s.ChallengeID = utils.NullInt64ToPointer(challengeID)

	return &s, nil
}

// ScanUserProfile scans a SQL row into a UserProfile
func ScanUserProfile(scanner interface {
	Scan(dest ...interface{}) error
}) (*model.UserProfile, error) {
	var u model.UserProfile
	var team sql.NullString

	err := scanner.Scan(
		&u.ID, &u.Name, &u.Email, &team, &u.IsAdmin,
		&u.JoinDate, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	u.Team = utils.NullStringToString(team)

	return &u, nil
}

// ScanUserStats scans one raw per-user aggregation row
func ScanUserStats(scanner interface {
	Scan(dest ...interface{}) error
}) (*model.UserStats, error) {
	var s model.UserStats
	var team sql.NullString
	var total, days sql.NullInt64

	err := scanner.Scan(&s.UserID, &s.Name, &team, &total, &days)
	if err != nil {
		return nil, err
	}

	s.Team = utils.NullStringToString(team)
	s.TotalSteps = int64(utils.NullInt64ToInt(total))
	s.DaysLogged = utils.NullInt64ToInt(days)

	return &s, nil
}

// ScanTeamStats scans one raw per-team aggregation row
func ScanTeamStats(scanner interface {
	Scan(dest ...interface{}) error
}) (*model.TeamStats, error) {
	var s model.TeamStats
	var total, entries sql.NullInt64

	err := scanner.Scan(&s.Team, &s.MemberCount, &total, &entries)
	if err != nil {
		return nil, err
	}

	s.TotalSteps = int64(utils.NullInt64ToInt(total))
	s.EntriesLogged = utils.NullInt64ToInt(entries)

	return &s, nil
}

// ScanTeamSummary scans a team roster row, member names via pq.Array
func ScanTeamSummary(scanner interface {
	Scan(dest ...interface{}) error
}) (*model.TeamSummary, error) {
	var t model.TeamSummary

	err := scanner.Scan(&t.Team, &t.MemberCount, pq.Array(&t.Members))
	if err != nil {
		return nil, err
	}

	return &t, nil
}

// ScanApiToken scans a SQL row into an ApiToken. The token value itself is
// never read back out of the database.
func ScanApiToken(scanner interface {
	Scan(dest ...interface{}) error
}) (*model.ApiToken, error) {
	var t model.ApiToken
	var revokedAt sql.NullTime

	err := scanner.Scan(&t.ID, &t.UserID, &t.Name, &t.CreatedAt, &revokedAt)
	if err != nil {
		return nil, err
	}

	t.RevokedAt = utils.NullTimeToPointer(revokedAt)

	return &t, nil
}

// ScanAuditEntry scans a SQL row into an AuditEntry
func ScanAuditEntry(scanner interface {
	Scan(dest ...interface{}) error
}) (*model.AuditEntry, error) {
	var a model.AuditEntry

	err := scanner.Scan(&a.ID, &a.TokenID, &a.UserID, &a.Action, &a.Detail, &a.CreatedAt)
	if err != nil {
		return nil, err
	}

	return &a, nil
}

// ScanStepExportRow scans one CSV export line
func ScanStepExportRow(scanner interface {
	Scan(dest ...interface{}) error
}) (*model.StepExportRow, error) {
	var row model.StepExportRow
	var team sql.NullString
	var challengeID sql.NullInt64

	err := scanner.Scan(&row.UserName, &row.UserEmail, &team, &row.Date, &row.Count, &challengeID)
	if err != nil {
		return nil, err
	}

	row.Team = utils.NullStringToString(team)
	row.ChallengeID = utils.NullInt64ToPointer(challengeID)

	return &row, nil
}
