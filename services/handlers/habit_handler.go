package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/focusflow-app/focusflow_api/dto"
	"github.com/focusflow-app/focusflow_api/shared"
)

type HabitHandler struct {
	habitSvc HabitServiceInterface
}

func NewHabitHandler(habitSvc HabitServiceInterface) *HabitHandler {
	return &HabitHandler{habitSvc: habitSvc}
}

// @Summary Create a habit
// @Tags habits
// @Accept json
// @Produce json
// @Security Bearer
// @Param createHabitRequest body dto.CreateHabitRequest true "Habit details"
// @Success 201 {object} shared.Response{data=dto.HabitResponse}
// @Router /api/v1/habits [post]
func (h *HabitHandler) CreateHabit(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	var req dto.CreateHabitRequest
	if err := c.BodyParser(&req); err != nil {
		return err
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	resp, err := h.habitSvc.Create(userID, &req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusCreated, "Habit created", resp)
}

// @Summary List habits
// @Tags habits
// @Produce json
// @Security Bearer
// @Success 200 {object} shared.Response{data=dto.HabitCollectionResponse}
// @Router /api/v1/habits [get]
func (h *HabitHandler) GetHabits(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	resp, err := h.habitSvc.List(userID)
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, resp)
}

// @Summary Get a habit
// @Tags habits
// @Produce json
// @Security Bearer
// @Param habitId path string true "Habit ID"
// @Success 200 {object} shared.Response{data=dto.HabitResponse}
// @Router /api/v1/habits/{habitId} [get]
func (h *HabitHandler) GetHabit(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)
	habitID := c.Params("habitId")

	resp, err := h.habitSvc.Get(userID, habitID)
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, resp)
}

// @Summary Update a habit
// @Tags habits
// @Accept json
// @Produce json
// @Security Bearer
// @Param habitId path string true "Habit ID"
// @Param updateHabitRequest body dto.UpdateHabitRequest true "Fields to update"
// @Success 200 {object} shared.Response{data=dto.HabitResponse}
// @Router /api/v1/habits/{habitId} [put]
func (h *HabitHandler) UpdateHabit(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)
	habitID := c.Params("habitId")

	var req dto.UpdateHabitRequest
	if err := c.BodyParser(&req); err != nil {
		return err
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	resp, err := h.habitSvc.Update(userID, habitID, &req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Habit updated", resp)
}

// @Summary Archive a habit
// @Description Deactivate a habit while keeping its history
// @Tags habits
// @Produce json
// @Security Bearer
// @Param habitId path string true "Habit ID"
// @Success 200 {object} shared.Response{data=dto.HabitResponse}
// @Router /api/v1/habits/{habitId}/archive [post]
func (h *HabitHandler) ArchiveHabit(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)
	habitID := c.Params("habitId")

	resp, err := h.habitSvc.Archive(userID, habitID)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Habit archived", resp)
}

// @Summary Delete a habit
// @Description Remove a habit and all of its entries
// @Tags habits
// @Produce json
// @Security Bearer
// @Param habitId path string true "Habit ID"
// @Success 200 {object} shared.Response{data=nil}
// @Router /api/v1/habits/{habitId} [delete]
func (h *HabitHandler) DeleteHabit(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)
	habitID := c.Params("habitId")

	if err := h.habitSvc.Delete(userID, habitID); err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Habit deleted", nil)
}

// @Summary Toggle a day's completion
// @Description Mark a day complete, or clear it if already complete
// @Tags habits
// @Accept json
// @Produce json
// @Security Bearer
// @Param habitId path string true "Habit ID"
// @Param toggleRequest body dto.ToggleHabitEntryRequest true "Day to toggle"
// @Success 200 {object} shared.Response{data=dto.ToggleHabitEntryResponse}
// @Router /api/v1/habits/{habitId}/toggle [post]
func (h *HabitHandler) ToggleHabitEntry(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)
	habitID := c.Params("habitId")

	var req dto.ToggleHabitEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return err
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	resp, err := h.habitSvc.ToggleEntry(userID, habitID, &req)
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, resp)
}

// @Summary List a habit's entries
// @Tags habits
// @Produce json
// @Security Bearer
// @Param habitId path string true "Habit ID"
// @Success 200 {object} shared.Response{data=dto.HabitEntryCollectionResponse}
// @Router /api/v1/habits/{habitId}/entries [get]
func (h *HabitHandler) GetHabitEntries(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)
	habitID := c.Params("habitId")

	resp, err := h.habitSvc.Entries(userID, habitID)
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, resp)
}
