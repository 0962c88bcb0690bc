package leaderboard

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	model "github.com/sigfig/step-challenge/internal/models"
)

func TestBuildIndividualLeaderboardChallengeMode(t *testing.T) {
	// Spring25 runs 2025-04-01 to 2025-04-10, threshold 70%. On day 6,
	// A logged 5 of the first 5 possible days (83.33%), B logged 3 (50%).
	c := testChallenge()
	now := time.Date(2025, 4, 6, 12, 0, 0, 0, losAngeles(t))
	stats := []model.UserStats{
		{UserID: 1, Name: "A", TotalSteps: 55000, DaysLogged: 5},
		{UserID: 2, Name: "B", TotalSteps: 24000, DaysLogged: 3},
	}

	env := BuildIndividualLeaderboard(c, stats, now)

	assert.Equal(t, model.EnvelopeChallenge, env.Type)

	require.NotNil(t, env.Meta)
	assert.Equal(t, "Spring25", env.Meta.ChallengeName)
	assert.Equal(t, 6, env.Meta.ChallengeDay)
	assert.Equal(t, 10, env.Meta.TotalDays)
	assert.Equal(t, 2, env.Meta.ParticipantCount)
	assert.Equal(t, 1, env.Meta.RankedCount)
	assert.Equal(t, 1, env.Meta.UnrankedCount)
	assert.Equal(t, 70, env.Meta.PersonalThreshold)

	data, ok := env.Data.(model.RankedIndividuals)
	require.True(t, ok)
	require.Len(t, data.Ranked, 1)
	require.Len(t, data.Unranked, 1)
	assert.Equal(t, "A", data.Ranked[0].Name)
	assert.Equal(t, 83.33, data.Ranked[0].PersonalReportingRate)
	assert.Equal(t, "B", data.Unranked[0].Name)
	assert.Equal(t, 50.0, data.Unranked[0].PersonalReportingRate)
}

func TestBuildIndividualLeaderboardThresholdBoundary(t *testing.T) {
	// After the challenge ends the day count pins at 10; 7 logged days is
	// exactly 70% and must land in ranked.
	c := testChallenge()
	now := time.Date(2025, 4, 20, 9, 0, 0, 0, losAngeles(t))
	stats := []model.UserStats{
		{UserID: 1, Name: "Edge", TotalSteps: 70000, DaysLogged: 7},
	}

	env := BuildIndividualLeaderboard(c, stats, now)

	data, ok := env.Data.(model.RankedIndividuals)
	require.True(t, ok)
	require.Len(t, data.Ranked, 1)
	assert.Empty(t, data.Unranked)
	assert.Equal(t, 70.0, data.Ranked[0].PersonalReportingRate)
}

func TestBuildIndividualLeaderboardAllTime(t *testing.T) {
	// No active challenge: Alice logged 3 entries totaling 30000 steps,
	// Bob logged nothing. Both appear, Alice first.
	stats := []model.UserStats{
		{UserID: 2, Name: "Bob", TotalSteps: 0, DaysLogged: 0},
		{UserID: 1, Name: "Alice", TotalSteps: 30000, DaysLogged: 3},
	}

	env := BuildIndividualLeaderboard(nil, stats, time.Now())

	assert.Equal(t, model.EnvelopeAllTime, env.Type)
	assert.Nil(t, env.Meta)

	rows, ok := env.Data.([]model.IndividualAllTimeRow)
	require.True(t, ok)
	require.Len(t, rows, 2)
	assert.Equal(t, "Alice", rows[0].Name)
	assert.Equal(t, int64(10000), rows[0].StepsPerDayReported)
	assert.Equal(t, "Bob", rows[1].Name)
	assert.Equal(t, int64(0), rows[1].StepsPerDayReported)
}

func TestBuildIndividualLeaderboardInsufficientData(t *testing.T) {
	c := testChallenge()

	t.Run("before the start date", func(t *testing.T) {
		now := time.Date(2025, 3, 30, 12, 0, 0, 0, losAngeles(t))
		stats := []model.UserStats{
			{UserID: 1, Name: "A", TotalSteps: 99999, DaysLogged: 9},
		}

		env := BuildIndividualLeaderboard(c, stats, now)

		assert.Equal(t, model.EnvelopeInsufficientData, env.Type)
		assert.Nil(t, env.Data)
		require.NotNil(t, env.Meta)
		assert.Equal(t, 0, env.Meta.ChallengeDay)
		assert.Contains(t, env.Meta.Message, "not started")
	})

	t.Run("no participants", func(t *testing.T) {
		now := time.Date(2025, 4, 6, 12, 0, 0, 0, losAngeles(t))

		env := BuildIndividualLeaderboard(c, nil, now)

		assert.Equal(t, model.EnvelopeInsufficientData, env.Type)
		require.NotNil(t, env.Meta)
		assert.Equal(t, 6, env.Meta.ChallengeDay)
		assert.Equal(t, 0, env.Meta.ParticipantCount)
		require.NotNil(t, env.Meta.ActualEntries)
		assert.Equal(t, 0, *env.Meta.ActualEntries)
		assert.Contains(t, env.Meta.Message, "no step entries")
	})

	t.Run("malformed challenge record", func(t *testing.T) {
		bad := testChallenge()
		bad.StartDate = "not-a-date"
		now := time.Date(2025, 4, 6, 12, 0, 0, 0, losAngeles(t))
		stats := []model.UserStats{
			{UserID: 1, Name: "A", TotalSteps: 10000, DaysLogged: 1},
		}

		env := BuildIndividualLeaderboard(bad, stats, now)
		assert.Equal(t, model.EnvelopeInsufficientData, env.Type)
	})
}

func TestBuildTeamLeaderboard(t *testing.T) {
	c := testChallenge()
	now := time.Date(2025, 4, 6, 12, 0, 0, 0, losAngeles(t))

	t.Run("challenge mode", func(t *testing.T) {
		stats := []model.TeamStats{
			{Team: "Red", MemberCount: 2, TotalSteps: 90000, EntriesLogged: 9},
			{Team: "Blue", MemberCount: 3, TotalSteps: 40000, EntriesLogged: 5},
		}

		env := BuildTeamLeaderboard(c, stats, now)

		assert.Equal(t, model.EnvelopeChallenge, env.Type)
		data, ok := env.Data.(model.RankedTeams)
		require.True(t, ok)
		require.Len(t, data.Ranked, 1)
		require.Len(t, data.Unranked, 1)
		assert.Equal(t, "Red", data.Ranked[0].Team)
		assert.Equal(t, "Blue", data.Unranked[0].Team)
	})

	t.Run("all time mode", func(t *testing.T) {
		stats := []model.TeamStats{
			{Team: "Blue", MemberCount: 3, TotalSteps: 40000, EntriesLogged: 5},
			{Team: "Red", MemberCount: 2, TotalSteps: 90000, EntriesLogged: 9},
		}

		env := BuildTeamLeaderboard(nil, stats, now)

		assert.Equal(t, model.EnvelopeAllTime, env.Type)
		rows, ok := env.Data.([]model.TeamAllTimeRow)
		require.True(t, ok)
		require.Len(t, rows, 2)
		assert.Equal(t, "Red", rows[0].Team)
	})
}

func TestBuildIndividualLeaderboardDeterminism(t *testing.T) {
	c := testChallenge()
	now := time.Date(2025, 4, 6, 12, 0, 0, 0, losAngeles(t))
	stats := []model.UserStats{
		{UserID: 3, Name: "Cara", TotalSteps: 42000, DaysLogged: 6},
		{UserID: 1, Name: "Abe", TotalSteps: 42000, DaysLogged: 6},
		{UserID: 2, Name: "Bea", TotalSteps: 12000, DaysLogged: 2},
	}

	first, err := json.Marshal(BuildIndividualLeaderboard(c, stats, now))
	require.NoError(t, err)
	second, err := json.Marshal(BuildIndividualLeaderboard(c, stats, now))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
