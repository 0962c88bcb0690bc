package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5"

	model "github.com/sigfig/step-challenge/internal/models"
	"github.com/sigfig/step-challenge/internal/store"
	"github.com/sigfig/step-challenge/internal/utils"
)

type challengeRequest struct {
	Name               string `json:"name"`
	StartDate          string `json:"startDate"`
	EndDate            string `json:"endDate"`
	ReportingThreshold int    `json:"reportingThreshold"`
	Timezone           string `json:"timezone"`
}

func (req *challengeRequest) validate() string {
	if req.Name == "" {
		return "name is required"
	}
	start, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return "invalid startDate, expected YYYY-MM-DD"
	}
	end, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		return "invalid endDate, expected YYYY-MM-DD"
	}
	if end.Before(start) {
		return "endDate must not be before startDate"
	}
	if req.ReportingThreshold < 0 || req.ReportingThreshold > 100 {
		return "reportingThreshold must be between 0 and 100"
	}
	if req.Timezone != "" {
		if _, err := time.LoadLocation(req.Timezone); err != nil {
			return "unknown timezone"
		}
	}
	return ""
}

// GetChallenges lists all challenges.
func GetChallenges(w http.ResponseWriter, r *http.Request) {
	challenges, err := store.Challenges(r.Context())
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not query challenges", err)
		return
	}
	if challenges == nil {
		challenges = []model.Challenge{}
	}
	utils.Success(w, challenges)
}

// GetChallengeById returns one challenge.
func GetChallengeById(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		utils.ErrorSimple(w, http.StatusBadRequest, "invalid challenge id")
		return
	}

	challenge, err := store.GetChallenge(r.Context(), id)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not query challenge", err)
		return
	}
	if challenge == nil {
		utils.ErrorSimple(w, http.StatusNotFound, "challenge not found")
		return
	}
	utils.Success(w, challenge)
}

// CreateChallenge creates a new, inactive challenge.
func CreateChallenge(w http.ResponseWriter, r *http.Request) {
	var req challengeRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body", err)
		return
	}
	if msg := req.validate(); msg != "" {
		utils.ErrorSimple(w, http.StatusBadRequest, msg)
		return
	}

	challenge := model.Challenge{
		Name:               req.Name,
		StartDate:          req.StartDate,
		EndDate:            req.EndDate,
		ReportingThreshold: req.ReportingThreshold,
		Timezone:           req.Timezone,
	}
	if err := store.CreateChallenge(r.Context(), &challenge); err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not create challenge", err)
		return
	}
	utils.Success(w, challenge)
}

// UpdateChallenge updates an existing challenge's fields.
func UpdateChallenge(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		utils.ErrorSimple(w, http.StatusBadRequest, "invalid challenge id")
		return
	}

	var req challengeRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body", err)
		return
	}
	if msg := req.validate(); msg != "" {
		utils.ErrorSimple(w, http.StatusBadRequest, msg)
		return
	}

	challenge, err := store.GetChallenge(r.Context(), id)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not query challenge", err)
		return
	}
	if challenge == nil {
		utils.ErrorSimple(w, http.StatusNotFound, "challenge not found")
		return
	}

	challenge.Name = req.Name
	challenge.StartDate = req.StartDate
	challenge.EndDate = req.EndDate
	challenge.ReportingThreshold = req.ReportingThreshold
	challenge.Timezone = req.Timezone

	if err := store.UpdateChallenge(r.Context(), challenge); err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not update challenge", err)
		return
	}
	utils.Success(w, challenge)
}

// ActivateChallenge makes a challenge the single active one.
func ActivateChallenge(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		utils.ErrorSimple(w, http.StatusBadRequest, "invalid challenge id")
		return
	}

	err = store.ActivateChallenge(r.Context(), id)
	if err == pgx.ErrNoRows {
		utils.ErrorSimple(w, http.StatusNotFound, "challenge not found")
		return
	}
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not activate challenge", err)
		return
	}
	utils.Message(w, "challenge activated")
}

// DeactivateChallenge clears the active flag.
func DeactivateChallenge(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		utils.ErrorSimple(w, http.StatusBadRequest, "invalid challenge id")
		return
	}

	if err := store.DeactivateChallenge(r.Context(), id); err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not deactivate challenge", err)
		return
	}
	utils.Message(w, "challenge deactivated")
}
