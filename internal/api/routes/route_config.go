package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sanchita-88/meal-planner/internal/api/handlers"
	"github.com/sanchita-88/meal-planner/internal/middleware"
	"github.com/sanchita-88/meal-planner/pkg/jwt"
)

type Config struct {
	App         *fiber.App
	UserHandler handlers.UserHandler
	PlanHandler handlers.PlanHandler
	Middleware  middleware.Middleware
	JWTService  jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Auth()
	c.User()
	c.Meals()
	c.GuestRoute()
}

func (c *Config) Auth() {
	auth := c.App.Group("/api/v1/auth")
	{
		auth.Post("/signup", c.UserHandler.Register)
		auth.Post("/login", c.UserHandler.Login)
		auth.Post("/forgot-password", c.UserHandler.ForgotPassword)
		auth.Post("/reset-password", c.UserHandler.ResetPassword)
	}
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users", c.Middleware.AuthMiddleware(c.JWTService))
	{
		user.Get("/profile", c.UserHandler.GetProfile)
		user.Patch("/profile", c.UserHandler.UpdateProfile)
		user.Post("/feedback", c.UserHandler.RecordFeedback)
	}
}

func (c *Config) Meals() {
	meals := c.App.Group("/api/v1/meals")
	meals.Get("/foods", c.PlanHandler.GetFoods)

	authenticated := meals.Group("", c.Middleware.AuthMiddleware(c.JWTService))
	authenticated.Post("/generate-plan", c.PlanHandler.GeneratePlan)
	authenticated.Post("/regenerate", c.PlanHandler.RegenerateMeal)
	authenticated.Post("/export", c.PlanHandler.ExportPlan)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
