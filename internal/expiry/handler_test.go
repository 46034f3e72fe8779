package expiry

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRunner struct {
	report *Report
	err    error
	runs   int
}

func (s *stubRunner) Run(_ context.Context, _ time.Time) (*Report, error) {
	s.runs++
	return s.report, s.err
}

func TestCheckRejectsMissingAuth(t *testing.T) {
	runner := &stubRunner{report: &Report{Success: true}}
	h := NewHandler(runner, "cron-secret")

	req := httptest.NewRequest(http.MethodGet, "/notifications/check-visa-expiry", nil)
	rec := httptest.NewRecorder()

	h.Check(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Unauthorized"}`, rec.Body.String())
	assert.Equal(t, 0, runner.runs, "job must not run without auth")
}

func TestCheckRejectsWrongSecret(t *testing.T) {
	runner := &stubRunner{report: &Report{Success: true}}
	h := NewHandler(runner, "cron-secret")

	req := httptest.NewRequest(http.MethodGet, "/notifications/check-visa-expiry", nil)
	req.Header.Set("Authorization", "Bearer wrong")
	rec := httptest.NewRecorder()

	h.Check(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, 0, runner.runs)
}

func TestCheckRejectsNonBearerScheme(t *testing.T) {
	runner := &stubRunner{report: &Report{Success: true}}
	h := NewHandler(runner, "cron-secret")

	req := httptest.NewRequest(http.MethodGet, "/notifications/check-visa-expiry", nil)
	req.Header.Set("Authorization", "cron-secret")
	rec := httptest.NewRecorder()

	h.Check(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCheckRunsJobAndReturnsReport(t *testing.T) {
	runner := &stubRunner{report: &Report{
		Success:                  true,
		NotificationsCreated:     6,
		OneMonthNotifications:    4,
		EightMonthsNotifications: 2,
		Trainees1Month:           2,
		Trainees8Months:          1,
	}}
	h := NewHandler(runner, "cron-secret")

	req := httptest.NewRequest(http.MethodGet, "/notifications/check-visa-expiry", nil)
	req.Header.Set("Authorization", "Bearer cron-secret")
	rec := httptest.NewRecorder()

	h.Check(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, runner.runs)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(6), body["notificationsCreated"])
	assert.Equal(t, float64(4), body["oneMonthNotifications"])
	assert.Equal(t, float64(2), body["eightMonthsNotifications"])
	assert.Equal(t, float64(2), body["trainees1Month"])
	assert.Equal(t, float64(1), body["trainees8Months"])
}

func TestCheckJobFailureReturns500(t *testing.T) {
	runner := &stubRunner{err: errors.New("failed to list recipients")}
	h := NewHandler(runner, "cron-secret")

	req := httptest.NewRequest(http.MethodGet, "/notifications/check-visa-expiry", nil)
	req.Header.Set("Authorization", "Bearer cron-secret")
	rec := httptest.NewRecorder()

	h.Check(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"failed to list recipients"}`, rec.Body.String())
}
