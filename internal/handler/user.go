package handler

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/sigfig/step-challenge/internal/middleware"
	model "github.com/sigfig/step-challenge/internal/models"
	"github.com/sigfig/step-challenge/internal/store"
	"github.com/sigfig/step-challenge/internal/utils"
)

// GetUsers lists the full roster.
func GetUsers(w http.ResponseWriter, r *http.Request) {
	users, err := store.Users(r.Context())
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not query users", err)
		return
	}
	if users == nil {
		users = []model.UserProfile{}
	}
	utils.Success(w, users)
}

// GetUser returns one user.
func GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		utils.ErrorSimple(w, http.StatusBadRequest, "invalid user id")
		return
	}

	user, err := store.GetUser(r.Context(), id)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not query user", err)
		return
	}
	if user == nil {
		utils.ErrorSimple(w, http.StatusNotFound, "user not found")
		return
	}
	utils.Success(w, user)
}

// CreateUser registers a new user (admin only).
func CreateUser(w http.ResponseWriter, r *http.Request) {
	var user model.UserProfile
	if err := utils.DecodeJSON(r, &user); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body", err)
		return
	}
	if user.Name == "" || user.Email == "" {
		utils.ErrorSimple(w, http.StatusBadRequest, "name and email are required")
		return
	}

	if err := store.CreateUser(r.Context(), &user); err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not create user", err)
		return
	}
	utils.Success(w, user)
}

// UpdateUser updates a user's name and team. Only admins may change the
// admin flag or edit someone else.
func UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		utils.ErrorSimple(w, http.StatusBadRequest, "invalid user id")
		return
	}

	caller, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "user not found in context", err)
		return
	}
	if caller.ID != id && !caller.IsAdmin {
		utils.ErrorSimple(w, http.StatusForbidden, "cannot edit another user")
		return
	}

	var req model.UserProfile
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body", err)
		return
	}

	user, err := store.GetUser(r.Context(), id)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not query user", err)
		return
	}
	if user == nil {
		utils.ErrorSimple(w, http.StatusNotFound, "user not found")
		return
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	user.Team = req.Team
	if caller.IsAdmin {
		user.IsAdmin = req.IsAdmin
	}

	if err := store.UpdateUser(r.Context(), user); err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not update user", err)
		return
	}
	utils.Success(w, user)
}

// GetTeams lists every team with its members (admin roster view).
func GetTeams(w http.ResponseWriter, r *http.Request) {
	teams, err := store.Teams(r.Context())
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not query teams", err)
		return
	}
	if teams == nil {
		teams = []model.TeamSummary{}
	}
	utils.Success(w, teams)
}
