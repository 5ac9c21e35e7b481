package routes

import (
	"Meal-Planner-Backend/internal/api/handlers"
	"Meal-Planner-Backend/internal/middleware"
	"Meal-Planner-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App             *fiber.App
	UserHandler     handlers.UserHandler
	RecipeHandler   handlers.RecipeHandler
	CategoryHandler handlers.CategoryHandler
	SessionHandler  handlers.SessionHandler
	MidtransHandler handlers.MidtransHandler
	Middleware      middleware.Middleware
	JWTService      jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Recipes()
	c.Categories()
	c.CookSessions()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	// user routes
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Post("/send_verify", c.UserHandler.SendVerificationEmail)
		user.Get("/verify", c.UserHandler.VerifyEmail)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		user.Patch("/update", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UpdateUser)
		user.Post("/subscribe", c.Middleware.AuthMiddleware(c.JWTService), c.MidtransHandler.CreateTransaction)
	}
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/v1/recipes", c.Middleware.AuthMiddleware(c.JWTService))

	recipes.Post("", c.RecipeHandler.CreateRecipe)
	recipes.Get("", c.RecipeHandler.GetRecipes)
	recipes.Get("/:id", c.RecipeHandler.GetRecipeDetail)
	recipes.Put("/:id", c.RecipeHandler.UpdateRecipe)
	recipes.Delete("/:id", c.RecipeHandler.DeleteRecipe)
	recipes.Post("/:id/image", c.RecipeHandler.UploadRecipeImage)
}

func (c *Config) Categories() {
	categories := c.App.Group("/api/v1/categories", c.Middleware.AuthMiddleware(c.JWTService))

	categories.Post("", c.CategoryHandler.CreateCategory)
	categories.Get("", c.CategoryHandler.GetCategories)
	categories.Get("/:id", c.CategoryHandler.GetCategoryDetail)
	categories.Delete("/:id", c.CategoryHandler.DeleteCategory)

	// Recipe membership and the derived ingredient checklist.
	categories.Post("/:id/recipes", c.CategoryHandler.AddRecipeToCategory)
	categories.Delete("/:id/recipes/:recipeId", c.CategoryHandler.RemoveRecipeFromCategory)
	categories.Get("/:id/checklist", c.CategoryHandler.GetChecklist)
	categories.Post("/:id/checklist/regenerate", c.CategoryHandler.RegenerateChecklist)

	checklist := c.App.Group("/api/v1/checklist-items", c.Middleware.AuthMiddleware(c.JWTService))
	checklist.Patch("/:id", c.CategoryHandler.ToggleChecklistItem)
}

func (c *Config) CookSessions() {
	sessions := c.App.Group("/api/v1/cook-sessions", c.Middleware.AuthMiddleware(c.JWTService))

	// Fixed paths are registered before the :id routes.
	sessions.Get("/defaults", c.SessionHandler.GetSessionDefaults)
	sessions.Get("/stats", c.SessionHandler.GetSessionStats)

	sessions.Post("", c.SessionHandler.CreateSession)
	sessions.Get("", c.SessionHandler.GetSessions)
	sessions.Get("/:id", c.SessionHandler.GetSessionDetail)
	sessions.Post("/:id/advance", c.SessionHandler.AdvanceSession)
	sessions.Post("/:id/review", c.SessionHandler.AttachReview)
	sessions.Post("/:id/adjustments", c.SessionHandler.AttachAdjustments)
	sessions.Post("/:id/photos", c.SessionHandler.AddProgressPhoto)
	sessions.Get("/:id/photos", c.SessionHandler.GetProgressPhotos)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong, its works"})
	})
	c.App.Post("/webhook/midtrans", c.MidtransHandler.MidtransWebhookHandler)
}
