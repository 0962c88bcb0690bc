package handler

import (
	"net/http"
	"time"

	"github.com/sigfig/step-challenge/internal/leaderboard"
	model "github.com/sigfig/step-challenge/internal/models"
	"github.com/sigfig/step-challenge/internal/store"
	"github.com/sigfig/step-challenge/internal/utils"
)

// GetIndividualLeaderboard returns the individual leaderboard envelope:
// challenge-scoped ranked/unranked lists while a challenge is active, the
// flat all-time roster list otherwise.
func GetIndividualLeaderboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	challenge, err := store.ActiveChallenge(ctx)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not load active challenge", err)
		return
	}

	var stats []model.UserStats
	if challenge != nil {
		stats, err = store.UserChallengeStats(ctx, challenge.ID)
	} else {
		stats, err = store.UserAllTimeStats(ctx)
	}
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not query leaderboard", err)
		return
	}

	utils.Success(w, leaderboard.BuildIndividualLeaderboard(challenge, stats, time.Now()))
}

// GetTeamLeaderboard returns the team leaderboard envelope, same shape as
// the individual one but grouped by team label.
func GetTeamLeaderboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	challenge, err := store.ActiveChallenge(ctx)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not load active challenge", err)
		return
	}

	var stats []model.TeamStats
	if challenge != nil {
		stats, err = store.TeamChallengeStats(ctx, challenge.ID)
	} else {
		stats, err = store.TeamAllTimeStats(ctx)
	}
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not query team leaderboard", err)
		return
	}

	utils.Success(w, leaderboard.BuildTeamLeaderboard(challenge, stats, time.Now()))
}
