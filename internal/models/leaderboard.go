package model

// Envelope types returned by the leaderboard endpoints.
const (
	EnvelopeAllTime          = "all_time"
	EnvelopeChallenge        = "challenge"
	EnvelopeInsufficientData = "insufficient_data"
)

// UserStats is the raw per-user aggregation read from the store: sums and
// counts only, no rates. Rate/threshold policy is applied in-process.
type UserStats struct {
	UserID     int64
	Name       string
	Team       string
	TotalSteps int64
	DaysLogged int
}

// TeamStats is the raw per-team aggregation. MemberCount counts every user
// carrying the team label, whether or not they logged anything.
type TeamStats struct {
	Team          string
	MemberCount   int
	TotalSteps    int64
	EntriesLogged int
}

// IndividualRow is one challenge-mode leaderboard line.
type IndividualRow struct {
	Name                  string  `json:"name"`
	Team                  string  `json:"team,omitempty"`
	TotalSteps            int64   `json:"total_steps"`
	DaysLogged            int     `json:"days_logged"`
	StepsPerDayReported   int64   `json:"steps_per_day_reported"`
	PersonalReportingRate float64 `json:"personal_reporting_rate"`
	MeetsThreshold        bool    `json:"meets_threshold"`
}

// IndividualAllTimeRow is one all-time leaderboard line. Reporting rate is a
// challenge-mode concept and is deliberately absent here.
type IndividualAllTimeRow struct {
	Name                string `json:"name"`
	Team                string `json:"team,omitempty"`
	TotalSteps          int64  `json:"total_steps"`
	DaysLogged          int    `json:"days_logged"`
	StepsPerDayReported int64  `json:"steps_per_day_reported"`
}

// TeamRow is one challenge-mode team leaderboard line.
type TeamRow struct {
	Team                    string  `json:"team"`
	MemberCount             int     `json:"member_count"`
	TotalSteps              int64   `json:"total_steps"`
	EntriesLogged           int     `json:"entries_logged"`
	TeamStepsPerDayReported int64   `json:"team_steps_per_day_reported"`
	TeamReportingRate       float64 `json:"team_reporting_rate"`
	MeetsThreshold          bool    `json:"meets_threshold"`
}

// TeamAllTimeRow is one all-time team leaderboard line.
type TeamAllTimeRow struct {
	Team                    string `json:"team"`
	MemberCount             int    `json:"member_count"`
	TotalSteps              int64  `json:"total_steps"`
	EntriesLogged           int    `json:"entries_logged"`
	TeamStepsPerDayReported int64  `json:"team_steps_per_day_reported"`
}

// RankedIndividuals is the data block of a challenge-mode individual envelope.
type RankedIndividuals struct {
	Ranked   []IndividualRow `json:"ranked"`
	Unranked []IndividualRow `json:"unranked"`
}

// RankedTeams is the data block of a challenge-mode team envelope.
type RankedTeams struct {
	Ranked   []TeamRow `json:"ranked"`
	Unranked []TeamRow `json:"unranked"`
}

// LeaderboardMeta describes the challenge context of an envelope.
type LeaderboardMeta struct {
	ChallengeName     string `json:"challenge_name"`
	ChallengeDay      int    `json:"challenge_day"`
	TotalDays         int    `json:"total_days"`
	ParticipantCount  int    `json:"participant_count"`
	RankedCount       int    `json:"ranked_count"`
	UnrankedCount     int    `json:"unranked_count"`
	PersonalThreshold int    `json:"personal_threshold"`
	ExpectedEntries   *int   `json:"expected_entries,omitempty"`
	ActualEntries     *int   `json:"actual_entries,omitempty"`
	Message           string `json:"message,omitempty"`
}

// Envelope is the uniform leaderboard response. Data is a flat row slice in
// all-time mode, a ranked/unranked pair in challenge mode, and absent for
// insufficient_data.
type Envelope struct {
	Type string           `json:"type"`
	Data interface{}      `json:"data,omitempty"`
	Meta *LeaderboardMeta `json:"meta,omitempty"`
}
