package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jongbeom/runmate-backend/internal/authctx"
	"github.com/jongbeom/runmate-backend/internal/dto"
	"github.com/jongbeom/runmate-backend/internal/services"
)

type ProfileHandler struct {
	profileService *services.ProfileService
}

func NewProfileHandler(profileService *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

func (h *ProfileHandler) GetMe(c *fiber.Ctx) error {
	id, _ := authctx.Get(c)

	resp, err := h.profileService.GetProfile(c.Context(), id.UserID)
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Profile not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}
	return c.JSON(resp)
}

func (h *ProfileHandler) UpdateMe(c *fiber.Ctx) error {
	id, _ := authctx.Get(c)

	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	resp, err := h.profileService.UpdateProfile(c.Context(), id.UserID, &req)
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Profile not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}
	return c.JSON(resp)
}

func (h *ProfileHandler) DeactivateMe(c *fiber.Ctx) error {
	id, _ := authctx.Get(c)

	if err := h.profileService.Deactivate(c.Context(), id.UserID); err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Profile not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}
	return c.JSON(fiber.Map{"message": "Account deactivated"})
}
