package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

func NewRouter(app App) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestIDMiddleware(), AccessLogMiddleware(app.Logger()))

	g := r.Group("/api")
	g.GET("/dashboard", GetDashboard(app))
	g.GET("/analytics", GetAnalytics(app))
	g.GET("/goals", GetGoals(app))
	g.GET("/calendar", GetCalendar(app))
	g.GET("/days/:date", GetDay(app))
	g.GET("/insights", GetInsights(app))
	g.GET("/achievements", GetAchievements(app))
	g.GET("/mock-tests", GetMockTests(app))
	g.GET("/export", GetExport(app))
	return r
}

// Serve runs the router on addr until ctx is cancelled.
func Serve(ctx context.Context, addr string, app App) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           NewRouter(app),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		app.Logger().Infof("listening on http://%s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
