package routes

import (
	"KeepEat-Backend/internal/api/handlers"
	"KeepEat-Backend/internal/middleware"
	"KeepEat-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App              *fiber.App
	UserHandler      handlers.UserHandler
	FoodHandler      handlers.FoodHandler
	RecipeHandler    handlers.RecipeHandler
	CommunityHandler handlers.CommunityHandler
	SettingsHandler  handlers.SettingsHandler
	AssistantHandler handlers.AssistantHandler
	Middleware       middleware.Middleware
	JWTService       jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.FoodItems()
	c.Recipes()
	c.Community()
	c.Settings()
	c.Assistant()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		user.Get("/friends", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.GetFriends)
		user.Post("/friends", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.AddFriend)
		user.Delete("/friends", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.RemoveFriend)
	}
}

func (c *Config) FoodItems() {
	foodItems := c.App.Group("/api/v1/food-items", c.Middleware.AuthMiddleware(c.JWTService))

	foodItems.Get("/expiring", c.FoodHandler.GetExpiringItems)
	foodItems.Get("/calendar", c.FoodHandler.GetExpiryCalendar)
	foodItems.Post("/digest", c.FoodHandler.SendExpiryDigest)
	foodItems.Post("/image", c.FoodHandler.UploadFoodImage)

	foodItems.Post("", c.FoodHandler.AddFoodItem)
	foodItems.Get("", c.FoodHandler.GetFoodItems)
	foodItems.Get("/:id", c.FoodHandler.GetFoodItemDetails)
	foodItems.Put("/:id", c.FoodHandler.UpdateFoodItem)
	foodItems.Delete("/:id", c.FoodHandler.DeleteFoodItem)
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/v1/recipes", c.Middleware.AuthMiddleware(c.JWTService))

	recipes.Post("/generate", c.RecipeHandler.GenerateRecipe)
	recipes.Post("", c.RecipeHandler.SaveRecipe)
	recipes.Get("", c.RecipeHandler.GetSavedRecipes)
	recipes.Delete("/:id", c.RecipeHandler.DeleteRecipe)
}

func (c *Config) Community() {
	community := c.App.Group("/api/v1/community", c.Middleware.AuthMiddleware(c.JWTService))

	community.Get("/feed", c.CommunityHandler.GetFeed)
	community.Post("/share-food", c.CommunityHandler.ShareFood)
	community.Post("/share-recipe", c.CommunityHandler.ShareRecipe)
	community.Delete("/posts/:id", c.CommunityHandler.DeletePost)
}

func (c *Config) Settings() {
	settings := c.App.Group("/api/v1/settings", c.Middleware.AuthMiddleware(c.JWTService))

	settings.Get("", c.SettingsHandler.GetSettings)
	settings.Put("", c.SettingsHandler.SaveSettings)
}

func (c *Config) Assistant() {
	assistant := c.App.Group("/api/v1/assistant", c.Middleware.AuthMiddleware(c.JWTService))

	assistant.Post("/parse-text", c.AssistantHandler.ParseFoodText)
	assistant.Post("/analyze-image", c.AssistantHandler.AnalyzeFoodImage)
	assistant.Post("/chat", c.AssistantHandler.Chat)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
