package leaderboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	model "github.com/sigfig/step-challenge/internal/models"
)

func TestPartitionIndividuals(t *testing.T) {
	stats := []model.UserStats{
		{UserID: 1, Name: "Alice", Team: "Red", TotalSteps: 50000, DaysLogged: 5},
		{UserID: 2, Name: "Bob", TotalSteps: 27000, DaysLogged: 3},
		{UserID: 3, Name: "Carol", TotalSteps: 0, DaysLogged: 0},
	}

	ranked, unranked := partitionIndividuals(stats, 6, 70)

	t.Run("partition is complete and exclusive", func(t *testing.T) {
		require.Len(t, ranked, 1)
		require.Len(t, unranked, 1)
		assert.Equal(t, "Alice", ranked[0].Name)
		assert.Equal(t, "Bob", unranked[0].Name)
	})

	t.Run("non-participants appear in neither list", func(t *testing.T) {
		for _, row := range append(ranked, unranked...) {
			assert.NotEqual(t, "Carol", row.Name)
		}
	})

	t.Run("derived fields", func(t *testing.T) {
		assert.Equal(t, int64(10000), ranked[0].StepsPerDayReported)
		assert.Equal(t, 83.33, ranked[0].PersonalReportingRate)
		assert.True(t, ranked[0].MeetsThreshold)
		assert.Equal(t, 50.0, unranked[0].PersonalReportingRate)
	})
}

func TestPartitionIndividualsOrdering(t *testing.T) {
	stats := []model.UserStats{
		{UserID: 1, Name: "Zoe", TotalSteps: 54000, DaysLogged: 6},
		{UserID: 2, Name: "Amy", TotalSteps: 54000, DaysLogged: 6},
		{UserID: 3, Name: "Max", TotalSteps: 66000, DaysLogged: 6},
	}

	ranked, unranked := partitionIndividuals(stats, 6, 0)
	require.Len(t, ranked, 3)
	assert.Empty(t, unranked)

	// Steps-per-day descending, then name ascending on ties.
	assert.Equal(t, []string{"Max", "Amy", "Zoe"},
		[]string{ranked[0].Name, ranked[1].Name, ranked[2].Name})
}

func TestAllTimeIndividuals(t *testing.T) {
	stats := []model.UserStats{
		{UserID: 1, Name: "Alice", TotalSteps: 30000, DaysLogged: 3},
		{UserID: 2, Name: "Bob", TotalSteps: 0, DaysLogged: 0},
	}

	rows := allTimeIndividuals(stats)
	require.Len(t, rows, 2)

	assert.Equal(t, "Alice", rows[0].Name)
	assert.Equal(t, int64(10000), rows[0].StepsPerDayReported)
	assert.Equal(t, "Bob", rows[1].Name)
	assert.Equal(t, int64(0), rows[1].StepsPerDayReported)
}

func TestPartitionTeams(t *testing.T) {
	stats := []model.TeamStats{
		{Team: "Red", MemberCount: 2, TotalSteps: 90000, EntriesLogged: 9},
		{Team: "Blue", MemberCount: 3, TotalSteps: 40000, EntriesLogged: 5},
		{Team: "Idle", MemberCount: 4, TotalSteps: 0, EntriesLogged: 0},
	}

	ranked, unranked := partitionTeams(stats, 6, 70)

	require.Len(t, ranked, 1)
	require.Len(t, unranked, 1)

	// Red: 9 entries of 12 expected = 75%.
	assert.Equal(t, "Red", ranked[0].Team)
	assert.Equal(t, 75.0, ranked[0].TeamReportingRate)
	assert.Equal(t, int64(10000), ranked[0].TeamStepsPerDayReported)

	// Blue: 5 entries of 18 expected = 27.78%.
	assert.Equal(t, "Blue", unranked[0].Team)
	assert.Equal(t, 27.78, unranked[0].TeamReportingRate)

	// Idle never participated and appears nowhere.
	for _, row := range append(ranked, unranked...) {
		assert.NotEqual(t, "Idle", row.Team)
	}
}
