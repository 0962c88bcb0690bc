package leaderboard

import (
	"time"

	"github.com/sigfig/step-challenge/internal/logger"
	model "github.com/sigfig/step-challenge/internal/models"
)

// DefaultTimezone is the reference zone used when a challenge does not set
// its own. A challenge day is a calendar day in this zone, not a fixed
// 86400-second span, so DST transitions do not shift day boundaries.
const DefaultTimezone = "America/Los_Angeles"

const dateLayout = "2006-01-02"

// challengeLocation resolves the challenge's reference timezone.
func challengeLocation(c *model.Challenge) (*time.Location, error) {
	tz := c.Timezone
	if tz == "" {
		tz = DefaultTimezone
	}
	return time.LoadLocation(tz)
}

// civilDate collapses a moment to the UTC midnight of its calendar date, so
// differences between two civil dates are exact multiples of 24h regardless
// of DST in the source zone.
func civilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func daysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}

// challengeSpan parses the challenge's start and end dates in its reference
// zone. A malformed record is a data-quality defect, not a fatal condition:
// callers degrade to challenge day 0.
func challengeSpan(c *model.Challenge) (start, end time.Time, ok bool) {
	loc, err := challengeLocation(c)
	if err != nil {
		logger.Warning("challenge %d: cannot load timezone %q: %v", c.ID, c.Timezone, err)
		return time.Time{}, time.Time{}, false
	}
	start, err = time.ParseInLocation(dateLayout, c.StartDate, loc)
	if err != nil {
		logger.Warning("challenge %d: malformed start date %q: %v", c.ID, c.StartDate, err)
		return time.Time{}, time.Time{}, false
	}
	end, err = time.ParseInLocation(dateLayout, c.EndDate, loc)
	if err != nil {
		logger.Warning("challenge %d: malformed end date %q: %v", c.ID, c.EndDate, err)
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}

// TotalChallengeDays returns the number of calendar days the challenge
// spans, both endpoints inclusive. Returns 0 when the record is malformed.
func TotalChallengeDays(c *model.Challenge) int {
	start, end, ok := challengeSpan(c)
	if !ok {
		return 0
	}
	return daysBetween(civilDate(start), civilDate(end)) + 1
}

// CurrentChallengeDay returns the 1-indexed ordinal of now within the
// challenge span, evaluated in the challenge's reference zone. 0 before the
// start date; pinned at TotalChallengeDays once the challenge is over.
func CurrentChallengeDay(c *model.Challenge, now time.Time) int {
	start, end, ok := challengeSpan(c)
	if !ok {
		return 0
	}
	today := civilDate(now.In(start.Location()))
	first := civilDate(start)
	last := civilDate(end)

	if today.Before(first) {
		return 0
	}
	if today.After(last) {
		return daysBetween(first, last) + 1
	}
	return daysBetween(first, today) + 1
}
