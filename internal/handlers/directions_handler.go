package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/jongbeom/runmate-backend/internal/directions"
	"github.com/jongbeom/runmate-backend/internal/dto"
)

// DirectionsHandler proxies route requests to the configured map providers.
type DirectionsHandler struct {
	naver directions.Provider
	kakao directions.Provider
	tmap  directions.Provider
}

func NewDirectionsHandler(naver, kakao, tmap directions.Provider) *DirectionsHandler {
	return &DirectionsHandler{naver: naver, kakao: kakao, tmap: tmap}
}

func (h *DirectionsHandler) Naver(c *fiber.Ctx) error {
	return h.route(c, h.naver, "naver")
}

func (h *DirectionsHandler) Kakao(c *fiber.Ctx) error {
	return h.route(c, h.kakao, "kakao")
}

func (h *DirectionsHandler) Tmap(c *fiber.Ctx) error {
	return h.route(c, h.tmap, "tmap")
}

func (h *DirectionsHandler) route(c *fiber.Ctx, provider directions.Provider, name string) error {
	var req dto.DirectionsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}
	if req.Start == "" || req.Goal == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "start and goal coordinates are required",
		})
	}

	route, err := provider.GetRoute(c.Context(), directions.Request{
		Start:     req.Start,
		Goal:      req.Goal,
		Waypoints: req.Waypoints,
		Option:    req.Option,
	})
	if err != nil {
		slog.Error("directions provider failed", "provider", name, "error", err)
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{
			Error: true, Message: "Route calculation failed",
		})
	}

	return c.JSON(dto.DirectionsResponse{
		Path:     route.Path,
		Distance: route.Distance,
		Duration: route.Duration,
	})
}
