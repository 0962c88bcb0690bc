package handler

import (
	"encoding/csv"
	"net/http"
	"strconv"

	"github.com/sigfig/step-challenge/internal/store"
	"github.com/sigfig/step-challenge/internal/utils"
)

// ExportStepsCSV streams every step entry as CSV (admin only).
func ExportStepsCSV(w http.ResponseWriter, r *http.Request) {
	rows, err := store.StepExportRows(r.Context())
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not query step entries", err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="steps.csv"`)

	writer := csv.NewWriter(w)
	defer writer.Flush()

	writer.Write([]string{"name", "email", "team", "date", "count", "challenge_id"})
	for _, row := range rows {
		challengeID := ""
		if row.ChallengeID != nil {
			challengeID = strconv.FormatInt(*row.ChallengeID, 10)
		}
		writer.Write([]string{
			row.UserName,
			row.UserEmail,
			row.Team,
			row.Date,
			strconv.Itoa(row.Count),
			challengeID,
		})
	}
}
