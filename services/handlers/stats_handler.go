package handlers

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/focusflow-app/focusflow_api/shared"
	"github.com/focusflow-app/focusflow_api/tracker"
)

type StatsHandler struct {
	statsSvc  StatsServiceInterface
	exportSvc ExportServiceInterface
}

func NewStatsHandler(statsSvc StatsServiceInterface, exportSvc ExportServiceInterface) *StatsHandler {
	return &StatsHandler{statsSvc: statsSvc, exportSvc: exportSvc}
}

// @Summary Today's dashboard summary
// @Description Habit completions, practice time and week-over-week progress for one day
// @Tags stats
// @Produce json
// @Security Bearer
// @Param date query string false "Day to summarise (YYYY-MM-DD, defaults to today)"
// @Success 200 {object} shared.Response{data=dto.TodayStatsResponse}
// @Router /api/v1/stats/today [get]
func (h *StatsHandler) GetTodayStats(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	today := time.Now().UTC()
	if raw := c.Query("date"); raw != "" {
		parsed, ok := tracker.ParseDay(raw)
		if !ok {
			return shared.NewBadRequestError(nil, "date must be a YYYY-MM-DD date")
		}
		today = parsed
	}

	resp, err := h.statsSvc.Today(userID, today)
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, resp)
}

// @Summary Activity heat-map
// @Description One cell per day in the range, bucketed by activity type
// @Tags stats
// @Produce json
// @Security Bearer
// @Param start query string false "Range start (YYYY-MM-DD, defaults to 364 days ago)"
// @Param end query string false "Range end (YYYY-MM-DD, defaults to today)"
// @Success 200 {object} shared.Response{data=dto.HeatmapResponse}
// @Router /api/v1/stats/heatmap [get]
func (h *StatsHandler) GetHeatmap(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	end := tracker.Day(time.Now().UTC())
	if raw := c.Query("end"); raw != "" {
		parsed, ok := tracker.ParseDay(raw)
		if !ok {
			return shared.NewBadRequestError(nil, "end must be a YYYY-MM-DD date")
		}
		end = parsed
	}

	start := end.AddDate(0, 0, -364)
	if raw := c.Query("start"); raw != "" {
		parsed, ok := tracker.ParseDay(raw)
		if !ok {
			return shared.NewBadRequestError(nil, "start must be a YYYY-MM-DD date")
		}
		start = parsed
	}

	resp, err := h.statsSvc.Heatmap(userID, start, end)
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, resp)
}

// @Summary Export tracking data
// @Description Snapshot all habits, entries, skills and sessions to a downloadable JSON file
// @Tags stats
// @Produce json
// @Security Bearer
// @Success 201 {object} shared.Response{data=dto.ExportResponse}
// @Router /api/v1/export [post]
func (h *StatsHandler) CreateExport(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	resp, err := h.exportSvc.CreateExport(userID)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusCreated, "Export created", resp)
}
