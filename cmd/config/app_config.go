package config

import (
	"KeepEat-Backend/internal/api/handlers"
	"KeepEat-Backend/internal/api/routes"
	"KeepEat-Backend/internal/middleware"
	"KeepEat-Backend/internal/utils"
	"KeepEat-Backend/internal/utils/storage"
	"KeepEat-Backend/pkg/assistant"
	"KeepEat-Backend/pkg/community"
	"KeepEat-Backend/pkg/food"
	"KeepEat-Backend/pkg/jwt"
	"KeepEat-Backend/pkg/recipe"
	"KeepEat-Backend/pkg/settings"
	"KeepEat-Backend/pkg/user"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
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
		TimeZone:   "Asia/Taipei",
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
	settingsRepository := settings.NewSettingsRepository(db)
	foodRepository := food.NewFoodRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)
	communityRepository := community.NewCommunityRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService)
	settingsService := settings.NewSettingsService(settingsRepository)
	foodService := food.NewFoodService(foodRepository, settingsService, userService, s3)
	assistantService := assistant.NewAssistantService(assistant.NewGeminiProvider(), settingsService)
	recipeService := recipe.NewRecipeService(recipeRepository, assistantService, s3)
	communityService := community.NewCommunityService(communityRepository, recipeRepository)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	foodHandler := handlers.NewFoodHandler(foodService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)
	communityHandler := handlers.NewCommunityHandler(communityService, validator)
	settingsHandler := handlers.NewSettingsHandler(settingsService, validator)
	assistantHandler := handlers.NewAssistantHandler(assistantService, validator)

	// routes
	routesConfig := routes.Config{
		App:              app,
		UserHandler:      userHandler,
		FoodHandler:      foodHandler,
		RecipeHandler:    recipeHandler,
		CommunityHandler: communityHandler,
		SettingsHandler:  settingsHandler,
		AssistantHandler: assistantHandler,
		Middleware:       middlewares,
		JWTService:       jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
