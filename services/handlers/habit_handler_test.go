package handlers

import (
	"bytes"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/focusflow-app/focusflow_api/dto"
	"github.com/focusflow-app/focusflow_api/shared"
)

type fakeHabitService struct {
	HabitServiceInterface

	toggleResp *dto.ToggleHabitEntryResponse
	toggleErr  error

	gotUserID  string
	gotHabitID string
	gotToggle  *dto.ToggleHabitEntryRequest
}

func (f *fakeHabitService) ToggleEntry(userID, habitID string, req *dto.ToggleHabitEntryRequest) (*dto.ToggleHabitEntryResponse, error) {
	f.gotUserID = userID
	f.gotHabitID = habitID
	f.gotToggle = req
	return f.toggleResp, f.toggleErr
}

func newHabitTestApp(svc HabitServiceInterface) *fiber.App {
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

	h := NewHabitHandler(svc)
	app.Post("/api/v1/habits/:habitId/toggle", h.ToggleHabitEntry)
	return app
}

func TestToggleHabitEntry_PassesUserAndHabit(t *testing.T) {
	svc := &fakeHabitService{
		toggleResp: &dto.ToggleHabitEntryResponse{
			Habit:     dto.HabitResponse{ID: "habit-1", CurrentStreak: 3},
			Completed: true,
		},
	}
	app := newHabitTestApp(svc)

	body := bytes.NewBufferString(`{"date":"2025-06-10","mood":"good"}`)
	req := httptest.NewRequest("POST", "/api/v1/habits/habit-1/toggle", body)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	assert.Equal(t, "user-1", svc.gotUserID)
	assert.Equal(t, "habit-1", svc.gotHabitID)
	require.NotNil(t, svc.gotToggle)
	assert.Equal(t, "2025-06-10", svc.gotToggle.Date)
	assert.Equal(t, "good", svc.gotToggle.Mood)

	payload, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(payload), `"current_streak":3`)
}

func TestToggleHabitEntry_RejectsInvalidDate(t *testing.T) {
	svc := &fakeHabitService{}
	app := newHabitTestApp(svc)

	body := bytes.NewBufferString(`{"date":"06/10/2025"}`)
	req := httptest.NewRequest("POST", "/api/v1/habits/habit-1/toggle", body)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
	assert.Nil(t, svc.gotToggle, "service must not be reached on validation failure")
}

func TestToggleHabitEntry_MapsServiceErrors(t *testing.T) {
	svc := &fakeHabitService{toggleErr: shared.NewNotFoundError(nil, "Habit not found")}
	app := newHabitTestApp(svc)

	body := bytes.NewBufferString(`{"date":"2025-06-10"}`)
	req := httptest.NewRequest("POST", "/api/v1/habits/habit-1/toggle", body)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}
