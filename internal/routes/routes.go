package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/jongbeom/runmate-backend/internal/handlers"
	"github.com/jongbeom/runmate-backend/internal/middleware"
)

func Setup(
	app *fiber.App,
	authHandler *handlers.AuthHandler,
	profileHandler *handlers.ProfileHandler,
	courseHandler *handlers.CourseHandler,
	recordHandler *handlers.RecordHandler,
	directionsHandler *handlers.DirectionsHandler,
	healthHandler *handlers.HealthHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Auth — public, with a stricter rate limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/signup", authHandler.Signup)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)

	// Everything below needs an identity established by the auth gate.
	profile := api.Group("/profile", middleware.RequireUser())
	profile.Get("/me", profileHandler.GetMe)
	profile.Put("/me", profileHandler.UpdateMe)
	profile.Delete("/me", profileHandler.DeactivateMe)

	courses := api.Group("/courses", middleware.RequireUser())
	courses.Post("/", courseHandler.CreateCourse)
	courses.Get("/", courseHandler.GetMyCourses)
	courses.Get("/:id", courseHandler.GetCourse)
	courses.Delete("/:id", courseHandler.DeleteCourse)

	records := api.Group("/running-records", middleware.RequireUser())
	records.Post("/", recordHandler.CreateRecord)
	records.Get("/", recordHandler.GetMyRecords)
	records.Get("/stats", recordHandler.GetStats)
	records.Get("/:id", recordHandler.GetRecord)
	records.Delete("/:id", recordHandler.DeleteRecord)

	dir := api.Group("/directions", middleware.RequireUser())
	dir.Post("/", directionsHandler.Naver)
	dir.Post("/kakao", directionsHandler.Kakao)
	dir.Post("/tmap", directionsHandler.Tmap)
}
