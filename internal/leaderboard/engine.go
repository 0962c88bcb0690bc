// Package leaderboard implements the challenge-aware ranking engine: given
// an optional active challenge, a raw aggregation snapshot and a timestamp,
// it produces the leaderboard envelope. The engine is a pure function of its
// inputs; it reads nothing and writes nothing.
package leaderboard

import (
	"fmt"
	"time"

	model "github.com/sigfig/step-challenge/internal/models"
)

// BuildIndividualLeaderboard assembles the individual envelope. With no
// active challenge (nil) the stats snapshot is expected to be the all-time
// roster aggregation and the result is a single flat list. With a challenge,
// the snapshot is expected to be scoped to it and the result is the
// ranked/unranked pair, or insufficient_data when there is nothing to rank.
func BuildIndividualLeaderboard(c *model.Challenge, stats []model.UserStats, now time.Time) model.Envelope {
	if c == nil {
		return model.Envelope{
			Type: model.EnvelopeAllTime,
			Data: allTimeIndividuals(stats),
		}
	}

	day := CurrentChallengeDay(c, now)
	total := TotalChallengeDays(c)

	participants := 0
	actual := 0
	for _, s := range stats {
		if s.DaysLogged > 0 {
			participants++
			actual += s.DaysLogged
		}
	}

	if day == 0 || participants == 0 {
		return insufficientEnvelope(c, day, total, participants, day*participants, actual)
	}

	ranked, unranked := partitionIndividuals(stats, day, c.ReportingThreshold)
	return model.Envelope{
		Type: model.EnvelopeChallenge,
		Data: model.RankedIndividuals{Ranked: ranked, Unranked: unranked},
		Meta: &model.LeaderboardMeta{
			ChallengeName:     c.Name,
			ChallengeDay:      day,
			TotalDays:         total,
			ParticipantCount:  participants,
			RankedCount:       len(ranked),
			UnrankedCount:     len(unranked),
			PersonalThreshold: c.ReportingThreshold,
		},
	}
}

// BuildTeamLeaderboard is the team counterpart of BuildIndividualLeaderboard.
// Expected entries scale with team size: elapsed days times member count.
func BuildTeamLeaderboard(c *model.Challenge, stats []model.TeamStats, now time.Time) model.Envelope {
	if c == nil {
		return model.Envelope{
			Type: model.EnvelopeAllTime,
			Data: allTimeTeams(stats),
		}
	}

	day := CurrentChallengeDay(c, now)
	total := TotalChallengeDays(c)

	participants := 0
	actual := 0
	members := 0
	for _, s := range stats {
		if s.EntriesLogged > 0 {
			participants++
			actual += s.EntriesLogged
		}
		members += s.MemberCount
	}

	if day == 0 || participants == 0 {
		return insufficientEnvelope(c, day, total, participants, day*members, actual)
	}

	ranked, unranked := partitionTeams(stats, day, c.ReportingThreshold)
	return model.Envelope{
		Type: model.EnvelopeChallenge,
		Data: model.RankedTeams{Ranked: ranked, Unranked: unranked},
		Meta: &model.LeaderboardMeta{
			ChallengeName:     c.Name,
			ChallengeDay:      day,
			TotalDays:         total,
			ParticipantCount:  participants,
			RankedCount:       len(ranked),
			UnrankedCount:     len(unranked),
			PersonalThreshold: c.ReportingThreshold,
		},
	}
}

// insufficientEnvelope is a first-class outcome, not an error: downstream
// consumers must not read an empty leaderboard as "nobody is winning".
func insufficientEnvelope(c *model.Challenge, day, total, participants, expected, actual int) model.Envelope {
	var msg string
	if day == 0 {
		msg = fmt.Sprintf("challenge %q has not started yet", c.Name)
	} else {
		msg = fmt.Sprintf("no step entries logged yet for challenge %q", c.Name)
	}
	return model.Envelope{
		Type: model.EnvelopeInsufficientData,
		Meta: &model.LeaderboardMeta{
			ChallengeName:     c.Name,
			ChallengeDay:      day,
			TotalDays:         total,
			ParticipantCount:  participants,
			PersonalThreshold: c.ReportingThreshold,
			ExpectedEntries:   &expected,
			ActualEntries:     &actual,
			Message:           msg,
		},
	}
}
