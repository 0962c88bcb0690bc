package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/sigfig/step-challenge/internal/middleware"
	model "github.com/sigfig/step-challenge/internal/models"
	"github.com/sigfig/step-challenge/internal/store"
	"github.com/sigfig/step-challenge/internal/utils"
)

// CreateToken mints a new API token for the authenticated user. The token
// value appears in this response and nowhere else.
func CreateToken(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "user not found in context", err)
		return
	}

	var req struct {
		Name string `json:"name"`
	}
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body", err)
		return
	}
	if req.Name == "" {
		req.Name = "api token"
	}

	token, err := store.CreateToken(r.Context(), user.ID, req.Name)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not create token", err)
		return
	}
	utils.Success(w, token)
}

// GetTokens lists the authenticated user's tokens without their values.
func GetTokens(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "user not found in context", err)
		return
	}

	tokens, err := store.Tokens(r.Context(), user.ID)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not query tokens", err)
		return
	}
	if tokens == nil {
		tokens = []model.ApiToken{}
	}
	utils.Success(w, tokens)
}

// RevokeToken revokes one of the authenticated user's tokens.
func RevokeToken(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "user not found in context", err)
		return
	}

	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		utils.ErrorSimple(w, http.StatusBadRequest, "invalid token id")
		return
	}

	if err := store.RevokeToken(r.Context(), user.ID, id); err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not revoke token", err)
		return
	}
	utils.Message(w, "token revoked")
}

// TokenAddSteps is the programmatic step-entry endpoint. Every call writes
// an audit row against the token that made it.
func TokenAddSteps(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "user not found in context", err)
		return
	}
	tokenID, err := middleware.GetApiTokenIDFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "token not found in context", err)
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

	detail := fmt.Sprintf("date=%s count=%d overwrite=%t", req.Date, *req.Count, req.AllowOverwrite)
	if err := store.InsertAudit(r.Context(), tokenID, user.ID, "add_steps", detail); err != nil {
		utils.LogError("could not write audit row: %v", err)
	}

	utils.Success(w, entry)
}

// TokenGetSteps is the programmatic read counterpart, also audited.
func TokenGetSteps(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "user not found in context", err)
		return
	}
	tokenID, err := middleware.GetApiTokenIDFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "token not found in context", err)
		return
	}

	query := r.URL.Query()
	startDate := query.Get("start_date")
	endDate := query.Get("end_date")

	entries, err := store.StepsForUser(r.Context(), user.ID, startDate, endDate)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not query step entries", err)
		return
	}
	if entries == nil {
		entries = []model.StepEntry{}
	}

	detail := fmt.Sprintf("start=%s end=%s rows=%d", startDate, endDate, len(entries))
	if err := store.InsertAudit(r.Context(), tokenID, user.ID, "get_steps", detail); err != nil {
		utils.LogError("could not write audit row: %v", err)
	}

	utils.Success(w, entries)
}

// GetAuditLog returns recent token API activity (admin only).
func GetAuditLog(w http.ResponseWriter, r *http.Request) {
	limit := 100
	if l, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && l > 0 {
		limit = l
	}

	entries, err := store.AuditEntries(r.Context(), limit)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not query audit log", err)
		return
	}
	if entries == nil {
		entries = []model.AuditEntry{}
	}
	utils.Success(w, entries)
}
