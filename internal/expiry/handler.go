package expiry

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
)

type jobRunner interface {
	Run(ctx context.Context, now time.Time) (*Report, error)
}

// Handler exposes the expiry job over HTTP for external cron callers.
type Handler struct {
	job        jobRunner
	cronSecret string
}

// NewHandler creates a new expiry handler
func NewHandler(job jobRunner, cronSecret string) *Handler {
	return &Handler{job: job, cronSecret: cronSecret}
}

// Check handles GET /notifications/check-visa-expiry. The endpoint is gated
// by a shared bearer secret rather than a user session, and its response
// shape is plain JSON keyed for the cron caller.
// @Summary      Run the visa expiry check
// @Tags         notifications
// @Produce      json
// @Param        Authorization header string true "Bearer CRON_SECRET"
// @Success      200 {object} Report
// @Failure      401 {object} map[string]string
// @Failure      500 {object} map[string]string
// @Router       /notifications/check-visa-expiry [get]
func (h *Handler) Check(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get("Authorization") != "Bearer "+h.cronSecret {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	report, err := h.job.Run(r.Context(), time.Now())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(report)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
