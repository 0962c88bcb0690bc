package model

import (
	"time"
)

// MaxDailySteps caps a single daily entry. Anything above this is assumed
// to be a typo or a bad sync.
const MaxDailySteps = 70000

// StepEntry is one logged day for one user. At most one row exists per
// (user, date); the write path upserts.
type StepEntry struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"userId"`
	Date        string    `json:"date"` // YYYY-MM-DD
	Count       int       `json:"count"`
	ChallengeID *int64    `json:"challengeId,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// StepExportRow is one line of the admin CSV export.
type StepExportRow struct {
	UserName    string
	UserEmail   string
	Team        string
	Date        string
	Count       int
	ChallengeID *int64
}
