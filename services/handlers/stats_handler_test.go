package handlers

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/focusflow-app/focusflow_api/dto"
	"github.com/focusflow-app/focusflow_api/shared"
)

type fakeStatsService struct {
	todayResp   *dto.TodayStatsResponse
	heatmapResp *dto.HeatmapResponse

	gotToday time.Time
	gotStart time.Time
	gotEnd   time.Time
}

func (f *fakeStatsService) Today(userID string, today time.Time) (*dto.TodayStatsResponse, error) {
	f.gotToday = today
	return f.todayResp, nil
}

func (f *fakeStatsService) Heatmap(userID string, start, end time.Time) (*dto.HeatmapResponse, error) {
	f.gotStart = start
	f.gotEnd = end
	return f.heatmapResp, nil
}

func newStatsTestApp(svc StatsServiceInterface) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if appErr, ok := shared.GetAppError(err); ok {
				return shared.ResponseJSON(c, appErr.StatusCode, appErr.Message, appErr.Data)
			}
			return shared.ResponseInternalError(c, err)
		},
	})
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(shared.UserID, "user-1")
		return c.Next()
	})

	h := NewStatsHandler(svc, nil)
	app.Get("/api/v1/stats/today", h.GetTodayStats)
	app.Get("/api/v1/stats/heatmap", h.GetHeatmap)
	return app
}

func TestGetTodayStats_UsesQueryDate(t *testing.T) {
	svc := &fakeStatsService{todayResp: &dto.TodayStatsResponse{Date: "2025-06-10"}}
	app := newStatsTestApp(svc)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/stats/today?date=2025-06-10", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	assert.Equal(t, 2025, svc.gotToday.Year())
	assert.Equal(t, time.June, svc.gotToday.Month())
	assert.Equal(t, 10, svc.gotToday.Day())
}

func TestGetTodayStats_RejectsMalformedDate(t *testing.T) {
	svc := &fakeStatsService{todayResp: &dto.TodayStatsResponse{}}
	app := newStatsTestApp(svc)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/stats/today?date=10-06-2025", nil))
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestGetHeatmap_DefaultsToTrailingYear(t *testing.T) {
	svc := &fakeStatsService{heatmapResp: &dto.HeatmapResponse{}}
	app := newStatsTestApp(svc)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/stats/heatmap", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	// 365 cells inclusive of both ends.
	assert.Equal(t, 364.0, svc.gotEnd.Sub(svc.gotStart).Hours()/24)
}

func TestGetHeatmap_ExplicitRange(t *testing.T) {
	svc := &fakeStatsService{heatmapResp: &dto.HeatmapResponse{}}
	app := newStatsTestApp(svc)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/stats/heatmap?start=2025-02-01&end=2025-03-01", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	assert.Equal(t, "2025-02-01", svc.gotStart.Format(shared.DateLayout))
	assert.Equal(t, "2025-03-01", svc.gotEnd.Format(shared.DateLayout))
}
