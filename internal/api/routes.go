package api

import (
	"net/http"

	"github.com/fatih/color"
	"github.com/gorilla/mux"

	"github.com/sigfig/step-challenge/internal/handler"
	"github.com/sigfig/step-challenge/internal/middleware"
	"github.com/sigfig/step-challenge/internal/utils"
)

func SetupRouter() http.Handler {
	r := mux.NewRouter()
	r.Use(middleware.OptionalAuth)

	authenticatedRoutes := r.PathPrefix("/").Subrouter()
	authenticatedRoutes.Use(middleware.AuthMiddleware)
	authenticatedRoutes.Use(middleware.LoggerMiddleware)

	adminRoutes := authenticatedRoutes.PathPrefix("/admin").Subrouter()
	adminRoutes.Use(middleware.RequireAdmin)

	// Programmatic API: bearer-token auth, every call audited
	tokenRoutes := r.PathPrefix("/api").Subrouter()
	tokenRoutes.Use(middleware.TokenAuthMiddleware)
	tokenRoutes.Use(middleware.LoggerMiddleware)
	tokenRoutes.Use(middleware.RateLimitMiddleware)

	// Auth
	r.HandleFunc("/auth/request-link", handler.RequestLoginLink).Methods(http.MethodPost)
	r.HandleFunc("/auth/verify", handler.VerifyLoginLink).Methods(http.MethodGet)
	authenticatedRoutes.HandleFunc("/auth/logout", handler.Logout).Methods(http.MethodPost)

	// Leaderboards
	r.HandleFunc("/leaderboard", handler.GetIndividualLeaderboard).Methods(http.MethodGet)
	r.HandleFunc("/leaderboard/teams", handler.GetTeamLeaderboard).Methods(http.MethodGet)

	// Steps
	authenticatedRoutes.Handle("/steps",
		middleware.RateLimitMiddleware(http.HandlerFunc(handler.AddSteps))).Methods(http.MethodPost)
	authenticatedRoutes.HandleFunc("/steps", handler.GetSteps).Methods(http.MethodGet)

	// Challenges
	r.HandleFunc("/challenges", handler.GetChallenges).Methods(http.MethodGet)
	r.HandleFunc("/challenges/{id}", handler.GetChallengeById).Methods(http.MethodGet)
	adminRoutes.HandleFunc("/challenges", handler.CreateChallenge).Methods(http.MethodPost)
	adminRoutes.HandleFunc("/challenges/{id}", handler.UpdateChallenge).Methods(http.MethodPut)
	adminRoutes.HandleFunc("/challenges/{id}/activate", handler.ActivateChallenge).Methods(http.MethodPost)
	adminRoutes.HandleFunc("/challenges/{id}/deactivate", handler.DeactivateChallenge).Methods(http.MethodPost)

	// Users / teams
	r.HandleFunc("/users", handler.GetUsers).Methods(http.MethodGet)
	r.HandleFunc("/users/{id}", handler.GetUser).Methods(http.MethodGet)
	adminRoutes.HandleFunc("/users", handler.CreateUser).Methods(http.MethodPost)
	authenticatedRoutes.HandleFunc("/users/{id}", handler.UpdateUser).Methods(http.MethodPut, http.MethodPatch)
	adminRoutes.HandleFunc("/teams", handler.GetTeams).Methods(http.MethodGet)

	// API tokens (managed in a browser session, used by the token API)
	authenticatedRoutes.HandleFunc("/tokens", handler.CreateToken).Methods(http.MethodPost)
	authenticatedRoutes.HandleFunc("/tokens", handler.GetTokens).Methods(http.MethodGet)
	authenticatedRoutes.HandleFunc("/tokens/{id}", handler.RevokeToken).Methods(http.MethodDelete)

	// Token API
	tokenRoutes.HandleFunc("/steps", handler.TokenAddSteps).Methods(http.MethodPost)
	tokenRoutes.HandleFunc("/steps", handler.TokenGetSteps).Methods(http.MethodGet)

	// Admin extras
	adminRoutes.HandleFunc("/export.csv", handler.ExportStepsCSV).Methods(http.MethodGet)
	adminRoutes.HandleFunc("/audit-log", handler.GetAuditLog).Methods(http.MethodGet)

	// Health check
	r.HandleFunc("/health", handler.HealthCheck).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		utils.LogError("404 Not Found: %s %s", r.Method, r.URL.Path)
		color.Yellow("[404] %s %s", r.Method, r.URL.Path)
		http.Error(w, "Route not found", http.StatusNotFound)
	})

	return r
}
