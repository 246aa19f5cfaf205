package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/arja-subbalaxmi/Progress-Tracker/internal/engine"
)

func GetDashboard(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		d, err := app.Service().Dashboard(c.Request.Context())
		if err != nil {
			HandleError(c, app.Logger(), err, statusFor(err), "Failed to build dashboard")
			return
		}
		HandleSuccess(c, app.Logger(), d, nil)
	}
}

func GetAnalytics(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		a, err := app.Service().Analytics(c.Request.Context())
		if err != nil {
			HandleError(c, app.Logger(), err, statusFor(err), "Failed to build analytics")
			return
		}
		HandleSuccess(c, app.Logger(), a, nil)
	}
}

func GetGoals(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		g, err := app.Service().GoalProgress(c.Request.Context())
		if err != nil {
			HandleError(c, app.Logger(), err, statusFor(err), "Failed to compute goal progress")
			return
		}
		HandleSuccess(c, app.Logger(), g, nil)
	}
}

// GetCalendar serves ?month=YYYY-MM, defaulting to the current month.
func GetCalendar(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var year int
		var month time.Month
		if q := c.Query("month"); q != "" {
			t, err := time.Parse("2006-01", q)
			if err != nil {
				HandleError(c, app.Logger(), err, http.StatusBadRequest, "Invalid month, want YYYY-MM")
				return
			}
			year, month = t.Year(), t.Month()
		}
		cal, err := app.Service().Calendar(c.Request.Context(), year, month)
		if err != nil {
			HandleError(c, app.Logger(), err, statusFor(err), "Failed to build calendar")
			return
		}
		HandleSuccess(c, app.Logger(), cal, map[string]any{"weeks": cal.Weeks()})
	}
}

func GetDay(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		date := c.Param("date")
		if _, err := engine.ParseDate(date); err != nil {
			HandleError(c, app.Logger(), err, http.StatusBadRequest, "Invalid date, want YYYY-MM-DD")
			return
		}
		d, err := app.Service().DayDetail(c.Request.Context(), date)
		if err != nil {
			HandleError(c, app.Logger(), err, statusFor(err), "Failed to load day")
			return
		}
		HandleSuccess(c, app.Logger(), d, nil)
	}
}

func GetInsights(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := app.Service().Insights(c.Request.Context())
		if err != nil {
			HandleError(c, app.Logger(), err, statusFor(err), "Failed to compute insights")
			return
		}
		HandleSuccess(c, app.Logger(), list, map[string]any{"count": len(list)})
	}
}

func GetAchievements(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := app.Service().Achievements(c.Request.Context())
		if err != nil {
			HandleError(c, app.Logger(), err, statusFor(err), "Failed to evaluate achievements")
			return
		}
		earned := 0
		for _, a := range list {
			if a.Earned {
				earned++
			}
		}
		HandleSuccess(c, app.Logger(), list, map[string]any{"earned": earned, "total": len(list)})
	}
}

func GetMockTests(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, summary, err := app.Service().MockTests(c.Request.Context(), c.Query("exam"))
		if err != nil {
			HandleError(c, app.Logger(), err, statusFor(err), "Failed to list mock tests")
			return
		}
		HandleSuccess(c, app.Logger(), list, map[string]any{"summary": summary})
	}
}

// GetExport serves the backup document itself, not the envelope, so the
// download can be imported as-is.
func GetExport(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, err := app.Service().Export(c.Request.Context())
		if err != nil {
			HandleError(c, app.Logger(), err, statusFor(err), "Failed to export data")
			return
		}
		c.Header("Content-Disposition", `attachment; filename="`+engine.BackupFilename(app.Service().Now())+`"`)
		c.IndentedJSON(http.StatusOK, doc)
	}
}
