package config

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"

	"github.com/sanchita-88/meal-planner/internal/api/handlers"
	"github.com/sanchita-88/meal-planner/internal/api/routes"
	"github.com/sanchita-88/meal-planner/internal/middleware"
	"github.com/sanchita-88/meal-planner/internal/utils"
	"github.com/sanchita-88/meal-planner/internal/utils/storage"
	"github.com/sanchita-88/meal-planner/pkg/catalog"
	"github.com/sanchita-88/meal-planner/pkg/jwt"
	"github.com/sanchita-88/meal-planner/pkg/plan"
	"github.com/sanchita-88/meal-planner/pkg/user"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Asia/Jakarta",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	userRepository := user.NewUserRepository(db)
	catalogRepository := catalog.NewCatalogRepository(utils.GetConfig("CATALOG_PATH"))

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, catalogRepository, jwtService)
	planService := plan.NewPlanService(catalogRepository, userService, s3)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	planHandler := handlers.NewPlanHandler(planService, validator)

	// routes
	routesConfig := routes.Config{
		App:         app,
		UserHandler: userHandler,
		PlanHandler: planHandler,
		Middleware:  middlewares,
		JWTService:  jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
