package leaderboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReportingRate(t *testing.T) {
	t.Run("zero elapsed days means zero rate", func(t *testing.T) {
		assert.Equal(t, 0.0, ReportingRate(5, 0))
		assert.Equal(t, 0.0, ReportingRate(5, -1))
	})

	t.Run("rounds to two decimals", func(t *testing.T) {
		assert.Equal(t, 83.33, ReportingRate(5, 6))
		assert.Equal(t, 66.67, ReportingRate(2, 3))
		assert.Equal(t, 50.0, ReportingRate(3, 6))
		assert.Equal(t, 100.0, ReportingRate(10, 10))
	})

	t.Run("rates above 100 are not clamped", func(t *testing.T) {
		assert.Equal(t, 133.33, ReportingRate(8, 6))
	})
}

func TestMeetsThreshold(t *testing.T) {
	t.Run("comparison is inclusive", func(t *testing.T) {
		assert.True(t, MeetsThreshold(70.0, 70))
		assert.True(t, MeetsThreshold(70.01, 70))
		assert.False(t, MeetsThreshold(69.99, 70))
	})

	t.Run("threshold zero ranks everyone with a rate", func(t *testing.T) {
		assert.True(t, MeetsThreshold(0.0, 0))
	})
}
