package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jongbeom/runmate-backend/internal/authctx"
	"github.com/jongbeom/runmate-backend/internal/dto"
	"github.com/jongbeom/runmate-backend/internal/services"
)

type CourseHandler struct {
	courseService *services.CourseService
}

func NewCourseHandler(courseService *services.CourseService) *CourseHandler {
	return &CourseHandler{courseService: courseService}
}

func (h *CourseHandler) CreateCourse(c *fiber.Ctx) error {
	id, _ := authctx.Get(c)

	var req dto.CourseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	resp, err := h.courseService.CreateCourse(id.UserID, &req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCourse) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (h *CourseHandler) GetMyCourses(c *fiber.Ctx) error {
	id, _ := authctx.Get(c)

	resp, err := h.courseService.GetMyCourses(id.UserID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}
	return c.JSON(resp)
}

func (h *CourseHandler) GetCourse(c *fiber.Ctx) error {
	id, _ := authctx.Get(c)

	courseID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid course id",
		})
	}

	resp, err := h.courseService.GetCourse(id.UserID, courseID)
	if err != nil {
		if errors.Is(err, services.ErrCourseNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Course not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}
	return c.JSON(resp)
}

func (h *CourseHandler) DeleteCourse(c *fiber.Ctx) error {
	id, _ := authctx.Get(c)

	courseID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid course id",
		})
	}

	if err := h.courseService.DeleteCourse(id.UserID, courseID); err != nil {
		if errors.Is(err, services.ErrCourseNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Course not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
