package leaderboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	model "github.com/sigfig/step-challenge/internal/models"
)

func testChallenge() *model.Challenge {
	return &model.Challenge{
		ID:                 1,
		Name:               "Spring25",
		StartDate:          "2025-04-01",
		EndDate:            "2025-04-10",
		IsActive:           true,
		ReportingThreshold: 70,
		Timezone:           "America/Los_Angeles",
	}
}

func losAngeles(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/Los_Angeles")
	require.NoError(t, err)
	return loc
}

func TestTotalChallengeDays(t *testing.T) {
	assert.Equal(t, 10, TotalChallengeDays(testChallenge()))

	oneDay := testChallenge()
	oneDay.StartDate = "2025-04-01"
	oneDay.EndDate = "2025-04-01"
	assert.Equal(t, 1, TotalChallengeDays(oneDay))
}

func TestCurrentChallengeDay(t *testing.T) {
	loc := losAngeles(t)
	c := testChallenge()

	t.Run("before start returns 0", func(t *testing.T) {
		now := time.Date(2025, 3, 31, 23, 59, 0, 0, loc)
		assert.Equal(t, 0, CurrentChallengeDay(c, now))
	})

	t.Run("start date is day 1", func(t *testing.T) {
		now := time.Date(2025, 4, 1, 0, 5, 0, 0, loc)
		assert.Equal(t, 1, CurrentChallengeDay(c, now))
	})

	t.Run("mid challenge", func(t *testing.T) {
		now := time.Date(2025, 4, 6, 12, 0, 0, 0, loc)
		assert.Equal(t, 6, CurrentChallengeDay(c, now))
	})

	t.Run("after end pins at total days", func(t *testing.T) {
		now := time.Date(2025, 5, 1, 9, 0, 0, 0, loc)
		assert.Equal(t, TotalChallengeDays(c), CurrentChallengeDay(c, now))
	})

	t.Run("now is evaluated in the challenge timezone", func(t *testing.T) {
		// 05:00 UTC on April 1 is still March 31 in Los Angeles.
		now := time.Date(2025, 4, 1, 5, 0, 0, 0, time.UTC)
		assert.Equal(t, 0, CurrentChallengeDay(c, now))
	})
}

func TestCurrentChallengeDayAcrossDST(t *testing.T) {
	// US DST starts 2025-03-09; the challenge spans the transition.
	c := testChallenge()
	c.StartDate = "2025-03-08"
	c.EndDate = "2025-03-12"

	assert.Equal(t, 5, TotalChallengeDays(c))

	t.Run("short day still counts as one day", func(t *testing.T) {
		// Noon in Los Angeles on March 10 (UTC-7 after the switch).
		now := time.Date(2025, 3, 10, 19, 0, 0, 0, time.UTC)
		assert.Equal(t, 3, CurrentChallengeDay(c, now))
	})

	t.Run("day boundary follows local midnight", func(t *testing.T) {
		// 06:59 UTC on March 11 is 23:59 March 10 in Los Angeles.
		now := time.Date(2025, 3, 11, 6, 59, 0, 0, time.UTC)
		assert.Equal(t, 3, CurrentChallengeDay(c, now))

		// One minute later it is local midnight, day 4.
		now = time.Date(2025, 3, 11, 7, 0, 0, 0, time.UTC)
		assert.Equal(t, 4, CurrentChallengeDay(c, now))
	})
}

func TestCurrentChallengeDayMalformedRecord(t *testing.T) {
	loc := losAngeles(t)
	now := time.Date(2025, 4, 6, 12, 0, 0, 0, loc)

	t.Run("bad start date degrades to day 0", func(t *testing.T) {
		c := testChallenge()
		c.StartDate = "April 1st"
		assert.Equal(t, 0, CurrentChallengeDay(c, now))
		assert.Equal(t, 0, TotalChallengeDays(c))
	})

	t.Run("bad end date degrades to day 0", func(t *testing.T) {
		c := testChallenge()
		c.EndDate = "2025-13-45"
		assert.Equal(t, 0, CurrentChallengeDay(c, now))
	})

	t.Run("unknown timezone degrades to day 0", func(t *testing.T) {
		c := testChallenge()
		c.Timezone = "Mars/Olympus_Mons"
		assert.Equal(t, 0, CurrentChallengeDay(c, now))
	})

	t.Run("empty timezone falls back to the default zone", func(t *testing.T) {
		c := testChallenge()
		c.Timezone = ""
		assert.Equal(t, 6, CurrentChallengeDay(c, now))
	})
}
