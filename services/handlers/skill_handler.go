package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/focusflow-app/focusflow_api/dto"
	"github.com/focusflow-app/focusflow_api/shared"
)

type SkillHandler struct {
	skillSvc SkillServiceInterface
}

func NewSkillHandler(skillSvc SkillServiceInterface) *SkillHandler {
	return &SkillHandler{skillSvc: skillSvc}
}

// @Summary Create a skill
// @Tags skills
// @Accept json
// @Produce json
// @Security Bearer
// @Param createSkillRequest body dto.CreateSkillRequest true "Skill details"
// @Success 201 {object} shared.Response{data=dto.SkillResponse}
// @Router /api/v1/skills [post]
func (h *SkillHandler) CreateSkill(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	var req dto.CreateSkillRequest
	if err := c.BodyParser(&req); err != nil {
		return err
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	resp, err := h.skillSvc.Create(userID, &req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusCreated, "Skill created", resp)
}

// @Summary List skills
// @Tags skills
// @Produce json
// @Security Bearer
// @Success 200 {object} shared.Response{data=dto.SkillCollectionResponse}
// @Router /api/v1/skills [get]
func (h *SkillHandler) GetSkills(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	resp, err := h.skillSvc.List(userID)
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, resp)
}

// @Summary Get a skill
// @Tags skills
// @Produce json
// @Security Bearer
// @Param skillId path string true "Skill ID"
// @Success 200 {object} shared.Response{data=dto.SkillResponse}
// @Router /api/v1/skills/{skillId} [get]
func (h *SkillHandler) GetSkill(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)
	skillID := c.Params("skillId")

	resp, err := h.skillSvc.Get(userID, skillID)
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, resp)
}

// @Summary Update a skill
// @Tags skills
// @Accept json
// @Produce json
// @Security Bearer
// @Param skillId path string true "Skill ID"
// @Param updateSkillRequest body dto.UpdateSkillRequest true "Fields to update"
// @Success 200 {object} shared.Response{data=dto.SkillResponse}
// @Router /api/v1/skills/{skillId} [put]
func (h *SkillHandler) UpdateSkill(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)
	skillID := c.Params("skillId")

	var req dto.UpdateSkillRequest
	if err := c.BodyParser(&req); err != nil {
		return err
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	resp, err := h.skillSvc.Update(userID, skillID, &req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Skill updated", resp)
}

// @Summary Delete a skill
// @Description Remove a skill and all of its sessions
// @Tags skills
// @Produce json
// @Security Bearer
// @Param skillId path string true "Skill ID"
// @Success 200 {object} shared.Response{data=nil}
// @Router /api/v1/skills/{skillId} [delete]
func (h *SkillHandler) DeleteSkill(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)
	skillID := c.Params("skillId")

	if err := h.skillSvc.Delete(userID, skillID); err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Skill deleted", nil)
}

// @Summary Record a practice session
// @Tags skills
// @Accept json
// @Produce json
// @Security Bearer
// @Param skillId path string true "Skill ID"
// @Param recordSessionRequest body dto.RecordSessionRequest true "Session details"
// @Success 201 {object} shared.Response{data=dto.RecordSessionResponse}
// @Router /api/v1/skills/{skillId}/sessions [post]
func (h *SkillHandler) RecordSession(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)
	skillID := c.Params("skillId")

	var req dto.RecordSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return err
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	resp, err := h.skillSvc.RecordSession(userID, skillID, &req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusCreated, "Session recorded", resp)
}

// @Summary List a skill's sessions
// @Tags skills
// @Produce json
// @Security Bearer
// @Param skillId path string true "Skill ID"
// @Success 200 {object} shared.Response{data=dto.SkillSessionCollectionResponse}
// @Router /api/v1/skills/{skillId}/sessions [get]
func (h *SkillHandler) GetSessions(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)
	skillID := c.Params("skillId")

	resp, err := h.skillSvc.Sessions(userID, skillID)
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, resp)
}
