package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/sigfig/step-challenge/internal/leaderboard"
	"github.com/sigfig/step-challenge/internal/middleware"
	model "github.com/sigfig/step-challenge/internal/models"
	"github.com/sigfig/step-challenge/internal/store"
	"github.com/sigfig/step-challenge/internal/utils"
)

const dateLayout = "2006-01-02"

type stepRequest struct {
	Date           string `json:"date"`
	Count          *int   `json:"count"`
	AllowOverwrite bool   `json:"allow_overwrite"`
}

// validateStepWrite applies the write-side rules: well-formed date, count
// within bounds, no future dates, and inside the active challenge window
// when one is running. Returns the challenge id to tag the entry with.
func validateStepWrite(ctx context.Context, req *stepRequest) (*int64, string, error) {
	if _, err := time.Parse(dateLayout, req.Date); err != nil {
		return nil, fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", req.Date), nil
	}
	if req.Count == nil {
		return nil, "count is required", nil
	}
	if *req.Count < 0 || *req.Count > model.MaxDailySteps {
		return nil, fmt.Sprintf("count must be between 0 and %d", model.MaxDailySteps), nil
	}

	challenge, err := store.ActiveChallenge(ctx)
	if err != nil {
		return nil, "", err
	}

	// Today is a calendar date in the reference zone, so "no future dates"
	// behaves the same for every participant.
	tz := leaderboard.DefaultTimezone
	if challenge != nil && challenge.Timezone != "" {
		tz = challenge.Timezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		loc = time.UTC
	}
	today := time.Now().In(loc).Format(dateLayout)
	if req.Date > today {
		return nil, "cannot log steps for a future date", nil
	}

	if challenge == nil {
		return nil, "", nil
	}

	// ISO dates compare correctly as strings.
	if req.Date < challenge.StartDate || req.Date > challenge.EndDate {
		return nil, fmt.Sprintf("date %s is outside challenge %q (%s to %s)",
			req.Date, challenge.Name, challenge.StartDate, challenge.EndDate), nil
	}
	return &challenge.ID, "", nil
}

// AddSteps logs (or overwrites) the authenticated user's entry for a date.
func AddSteps(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "user not found in context", err)
		return
	}

	var req stepRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body", err)
		return
	}

	challengeID, msg, err := validateStepWrite(r.Context(), &req)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not validate step entry", err)
		return
	}
	if msg != "" {
		utils.ErrorSimple(w, http.StatusBadRequest, msg)
		return
	}

	entry, err := store.UpsertStep(r.Context(), user.ID, req.Date, *req.Count, challengeID, req.AllowOverwrite)
	if err == store.ErrEntryExists {
		utils.ErrorSimple(w, http.StatusConflict, "an entry already exists for this date, set allow_overwrite to replace it")
		return
	}
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not save step entry", err)
		return
	}

	utils.Success(w, entry)
}

// GetSteps lists the authenticated user's entries, optionally bounded by
// start_date / end_date.
func GetSteps(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "user not found in context", err)
		return
	}

	query := r.URL.Query()
	startDate := query.Get("start_date")
	endDate := query.Get("end_date")
	for _, d := range []string{startDate, endDate} {
		if d == "" {
			continue
		}
		if _, err := time.Parse(dateLayout, d); err != nil {
			utils.ErrorSimple(w, http.StatusBadRequest, fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", d))
			return
		}
	}

	entries, err := store.StepsForUser(r.Context(), user.ID, startDate, endDate)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not query step entries", err)
		return
	}
	if entries == nil {
		entries = []model.StepEntry{}
	}

	utils.Success(w, entries)
}
