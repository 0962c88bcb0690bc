package leaderboard

import (
	"sort"

	model "github.com/sigfig/step-challenge/internal/models"
)

// partitionIndividuals turns raw per-user stats into ranked/unranked lists.
// Users with zero logged days never participated in the challenge and are
// excluded from both lists entirely.
func partitionIndividuals(stats []model.UserStats, elapsed, threshold int) (ranked, unranked []model.IndividualRow) {
	ranked = []model.IndividualRow{}
	unranked = []model.IndividualRow{}

	for _, s := range stats {
		if s.DaysLogged == 0 {
			continue
		}
		rate := ReportingRate(s.DaysLogged, elapsed)
		row := model.IndividualRow{
			Name:                  s.Name,
			Team:                  s.Team,
			TotalSteps:            s.TotalSteps,
			DaysLogged:            s.DaysLogged,
			StepsPerDayReported:   s.TotalSteps / int64(s.DaysLogged),
			PersonalReportingRate: rate,
			MeetsThreshold:        MeetsThreshold(rate, threshold),
		}
		if row.MeetsThreshold {
			ranked = append(ranked, row)
		} else {
			unranked = append(unranked, row)
		}
	}

	sortIndividuals(ranked)
	sortIndividuals(unranked)
	return ranked, unranked
}

// allTimeIndividuals builds the flat all-time list. Every user in the stats
// snapshot appears, including users with no entries at all.
func allTimeIndividuals(stats []model.UserStats) []model.IndividualAllTimeRow {
	rows := make([]model.IndividualAllTimeRow, 0, len(stats))
	for _, s := range stats {
		var perDay int64
		if s.DaysLogged > 0 {
			perDay = s.TotalSteps / int64(s.DaysLogged)
		}
		rows = append(rows, model.IndividualAllTimeRow{
			Name:                s.Name,
			Team:                s.Team,
			TotalSteps:          s.TotalSteps,
			DaysLogged:          s.DaysLogged,
			StepsPerDayReported: perDay,
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].StepsPerDayReported != rows[j].StepsPerDayReported {
			return rows[i].StepsPerDayReported > rows[j].StepsPerDayReported
		}
		return rows[i].Name < rows[j].Name
	})
	return rows
}

// partitionTeams is the team counterpart of partitionIndividuals. The rate
// denominator is expected entries: elapsed days times member count.
func partitionTeams(stats []model.TeamStats, elapsed, threshold int) (ranked, unranked []model.TeamRow) {
	ranked = []model.TeamRow{}
	unranked = []model.TeamRow{}

	for _, s := range stats {
		if s.EntriesLogged == 0 {
			continue
		}
		rate := ReportingRate(s.EntriesLogged, elapsed*s.MemberCount)
		row := model.TeamRow{
			Team:                    s.Team,
			MemberCount:             s.MemberCount,
			TotalSteps:              s.TotalSteps,
			EntriesLogged:           s.EntriesLogged,
			TeamStepsPerDayReported: s.TotalSteps / int64(s.EntriesLogged),
			TeamReportingRate:       rate,
			MeetsThreshold:          MeetsThreshold(rate, threshold),
		}
		if row.MeetsThreshold {
			ranked = append(ranked, row)
		} else {
			unranked = append(unranked, row)
		}
	}

	sortTeams(ranked)
	sortTeams(unranked)
	return ranked, unranked
}

func allTimeTeams(stats []model.TeamStats) []model.TeamAllTimeRow {
	rows := make([]model.TeamAllTimeRow, 0, len(stats))
	for _, s := range stats {
		var perDay int64
		if s.EntriesLogged > 0 {
			perDay = s.TotalSteps / int64(s.EntriesLogged)
		}
		rows = append(rows, model.TeamAllTimeRow{
			Team:                    s.Team,
			MemberCount:             s.MemberCount,
			TotalSteps:              s.TotalSteps,
			EntriesLogged:           s.EntriesLogged,
			TeamStepsPerDayReported: perDay,
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].TeamStepsPerDayReported != rows[j].TeamStepsPerDayReported {
			return rows[i].TeamStepsPerDayReported > rows[j].TeamStepsPerDayReported
		}
		return rows[i].Team < rows[j].Team
	})
	return rows
}

// Ordering is steps-per-day descending, name ascending on ties, identically
// for ranked and unranked so the output is deterministic.
func sortIndividuals(rows []model.IndividualRow) {
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].StepsPerDayReported != rows[j].StepsPerDayReported {
			return rows[i].StepsPerDayReported > rows[j].StepsPerDayReported
		}
		return rows[i].Name < rows[j].Name
	})
}

func sortTeams(rows []model.TeamRow) {
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].TeamStepsPerDayReported != rows[j].TeamStepsPerDayReported {
			return rows[i].TeamStepsPerDayReported > rows[j].TeamStepsPerDayReported
		}
		return rows[i].Team < rows[j].Team
	})
}
