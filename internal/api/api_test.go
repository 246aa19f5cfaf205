package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arja-subbalaxmi/Progress-Tracker/internal/engine"
	"github.com/arja-subbalaxmi/Progress-Tracker/internal/logging"
	"github.com/arja-subbalaxmi/Progress-Tracker/internal/storage"
)

var testNow = time.Date(2025, 11, 14, 10, 0, 0, 0, time.UTC)

func setupRouter(t *testing.T) (*gin.Engine, *engine.Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db, err := storage.Open(context.Background(), filepath.Join(t.TempDir(), "api.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	svc := engine.NewService(db, engine.WithClock(func() time.Time { return testNow }))
	return NewRouter(NewApp(svc, logging.Nop())), svc
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)
	return w
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Meta  map[string]any  `json:"meta"`
	Error *AppError       `json:"error"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func TestDashboardReflectsLoggedStudy(t *testing.T) {
	r, svc := setupRouter(t)
	_, err := svc.LogStudy(context.Background(), engine.LogInput{Date: "2025-11-14", StudyHours: 3, ProblemsSolved: 12})
	require.NoError(t, err)

	w := get(r, "/api/dashboard")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	var d engine.Dashboard
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &d))
	assert.Equal(t, 1, d.Streak)
	assert.Equal(t, 3.0, d.Totals.Hours)
	assert.Equal(t, 12, d.Totals.Problems)
	assert.Len(t, d.WeeklyHours, 7)
}

func TestRequestIDIsEchoed(t *testing.T) {
	r, _ := setupRouter(t)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/insights", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
}

func TestCalendarMonthParam(t *testing.T) {
	r, _ := setupRouter(t)

	w := get(r, "/api/calendar?month=2025-02")
	assert.Equal(t, http.StatusOK, w.Code)
	var cal engine.CalendarMonth
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &cal))
	assert.Equal(t, 28, cal.Grid.DaysInMonth)
	assert.Equal(t, 6, cal.Grid.StartingDayOfWeek)

	w = get(r, "/api/calendar?month=2025-13")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	env := decode(t, w)
	require.NotNil(t, env.Error)
	assert.Equal(t, http.StatusBadRequest, env.Error.Code)
}

func TestDayDetail(t *testing.T) {
	r, svc := setupRouter(t)
	_, err := svc.LogStudy(context.Background(), engine.LogInput{Date: "2025-11-10", StudyHours: 6})
	require.NoError(t, err)

	w := get(r, "/api/days/2025-11-10")
	assert.Equal(t, http.StatusOK, w.Code)
	var d engine.DayDetail
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &d))
	require.NotNil(t, d.Log)
	assert.Equal(t, 6.0, d.Log.StudyHours)
	assert.Equal(t, engine.IntensityMedium, d.Intensity)

	assert.Equal(t, http.StatusBadRequest, get(r, "/api/days/yesterday").Code)
}

func TestAchievementsMeta(t *testing.T) {
	r, svc := setupRouter(t)
	_, err := svc.LogStudy(context.Background(), engine.LogInput{Date: "2025-11-14", StudyHours: 1})
	require.NoError(t, err)

	env := decode(t, get(r, "/api/achievements"))
	assert.Equal(t, float64(1), env.Meta["earned"])
	assert.Equal(t, float64(6), env.Meta["total"])
}

func TestExportIsImportable(t *testing.T) {
	r, svc := setupRouter(t)
	_, err := svc.LogStudy(context.Background(), engine.LogInput{Date: "2025-11-14", StudyHours: 2})
	require.NoError(t, err)

	w := get(r, "/api/export")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "study-tracker-backup-2025-11-14.json")

	var doc storage.Document
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	assert.Equal(t, storage.DocumentVersion, doc.Version)
	assert.Len(t, doc.DailyLogs, 1)
	assert.NoError(t, doc.Validate())
}
