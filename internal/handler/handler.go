package handler

import (
	"net/http"

	"github.com/sigfig/step-challenge/internal/utils"
)

func HealthCheck(w http.ResponseWriter, r *http.Request) {
	utils.Message(w, "ok")
}
