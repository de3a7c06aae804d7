package routes

import (
	"DTCL-Backend/internal/api/handlers"
	"DTCL-Backend/internal/middleware"
	"DTCL-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App             *fiber.App
	UserHandler     handlers.UserHandler
	GroupHandler    handlers.GroupHandler
	FoodHandler     handlers.FoodHandler
	FridgeHandler   handlers.FridgeHandler
	ShoppingHandler handlers.ShoppingHandler
	MealPlanHandler handlers.MealPlanHandler
	RecipeHandler   handlers.RecipeHandler
	AdminHandler    handlers.AdminHandler
	Middleware      middleware.Middleware
	JWTService      jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Group()
	c.Food()
	c.Fridge()
	c.Shopping()
	c.MealPlan()
	c.Recipe()
	c.Admin()
	c.GuestRoute()
}

func (c *Config) User() {
	protect := c.Middleware.AuthMiddleware(c.JWTService)

	user := c.App.Group("/api/user")
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Post("/refresh-token", c.UserHandler.RefreshToken)
		user.Post("/send-verification-code", c.UserHandler.SendVerificationCode)
		user.Post("/verify-email", c.UserHandler.VerifyEmail)

		user.Get("/", protect, c.UserHandler.GetProfile)
		user.Put("/", protect, c.UserHandler.UpdateProfile)
		user.Delete("/", protect, c.UserHandler.DeleteAccount)
		user.Post("/change-password", protect, c.UserHandler.ChangePassword)
		user.Post("/logout", protect, c.UserHandler.Logout)
	}
}

func (c *Config) Group() {
	protect := c.Middleware.AuthMiddleware(c.JWTService)
	groupAdmin := c.Middleware.GroupAdminOnly()

	group := c.App.Group("/api/user/group", protect)
	{
		group.Post("/", c.GroupHandler.CreateGroup)
		group.Get("/", c.GroupHandler.GetGroup)
		group.Post("/add", groupAdmin, c.GroupHandler.AddMember)
		group.Post("/remove", groupAdmin, c.GroupHandler.RemoveMember)
		group.Post("/leave", c.GroupHandler.LeaveGroup)
		group.Delete("/", groupAdmin, c.GroupHandler.DeleteGroup)
	}
}

func (c *Config) Food() {
	protect := c.Middleware.AuthMiddleware(c.JWTService)
	requireGroup := c.Middleware.RequireGroup()

	food := c.App.Group("/api/food", protect)
	{
		// Reference data needs no group membership.
		food.Get("/categories", c.FoodHandler.GetCategories)
		food.Get("/units", c.FoodHandler.GetUnits)

		food.Post("/", requireGroup, c.FoodHandler.CreateFood)
		food.Get("/", requireGroup, c.FoodHandler.GetFoods)
		food.Put("/", requireGroup, c.FoodHandler.UpdateFood)
		food.Delete("/", requireGroup, c.FoodHandler.DeleteFood)
	}
}

func (c *Config) Fridge() {
	protect := c.Middleware.AuthMiddleware(c.JWTService)
	requireGroup := c.Middleware.RequireGroup()

	fridge := c.App.Group("/api/fridge", protect, requireGroup)
	{
		fridge.Post("/", c.FridgeHandler.CreateFridgeItem)
		fridge.Get("/", c.FridgeHandler.GetFridgeItems)
		fridge.Get("/:id", c.FridgeHandler.GetFridgeItem)
		fridge.Put("/", c.FridgeHandler.UpdateFridgeItem)
		fridge.Delete("/", c.FridgeHandler.DeleteFridgeItem)
	}
}

func (c *Config) Shopping() {
	protect := c.Middleware.AuthMiddleware(c.JWTService)
	requireGroup := c.Middleware.RequireGroup()
	groupAdmin := c.Middleware.GroupAdminOnly()

	shopping := c.App.Group("/api/shopping", protect, requireGroup)
	{
		shopping.Post("/", c.ShoppingHandler.CreateShoppingList)
		shopping.Get("/", c.ShoppingHandler.GetShoppingLists)
		shopping.Delete("/", groupAdmin, c.ShoppingHandler.DeleteShoppingList)

		shopping.Post("/task", groupAdmin, c.ShoppingHandler.CreateTask)
		shopping.Get("/task/:listId", c.ShoppingHandler.GetTasks)
		shopping.Put("/task", groupAdmin, c.ShoppingHandler.UpdateTask)
		shopping.Delete("/task", groupAdmin, c.ShoppingHandler.DeleteTask)
	}
}

func (c *Config) MealPlan() {
	protect := c.Middleware.AuthMiddleware(c.JWTService)
	requireGroup := c.Middleware.RequireGroup()
	groupAdmin := c.Middleware.GroupAdminOnly()

	mealPlan := c.App.Group("/api/meal-plan", protect, requireGroup)
	{
		mealPlan.Post("/", groupAdmin, c.MealPlanHandler.CreateMealPlan)
		mealPlan.Get("/", c.MealPlanHandler.GetMealPlans)
		mealPlan.Put("/", groupAdmin, c.MealPlanHandler.UpdateMealPlan)
		mealPlan.Delete("/", groupAdmin, c.MealPlanHandler.DeleteMealPlan)
	}
}

func (c *Config) Recipe() {
	protect := c.Middleware.AuthMiddleware(c.JWTService)
	requireGroup := c.Middleware.RequireGroup()

	recipe := c.App.Group("/api/recipe", protect, requireGroup)
	{
		recipe.Post("/", c.RecipeHandler.CreateRecipe)
		recipe.Get("/", c.RecipeHandler.GetRecipes)
		recipe.Put("/", c.RecipeHandler.UpdateRecipe)
		recipe.Delete("/", c.RecipeHandler.DeleteRecipe)
	}
}

func (c *Config) Admin() {
	protect := c.Middleware.AuthMiddleware(c.JWTService)
	adminOnly := c.Middleware.AdminOnly()

	admin := c.App.Group("/api/admin", protect)
	{
		// Category and unit reads are open to any authenticated user.
		admin.Get("/category", c.AdminHandler.GetCategories)
		admin.Get("/unit", c.AdminHandler.GetUnits)

		admin.Post("/category", adminOnly, c.AdminHandler.CreateCategory)
		admin.Put("/category", adminOnly, c.AdminHandler.EditCategory)
		admin.Delete("/category", adminOnly, c.AdminHandler.DeleteCategory)

		admin.Post("/unit", adminOnly, c.AdminHandler.CreateUnit)
		admin.Put("/unit", adminOnly, c.AdminHandler.EditUnit)
		admin.Delete("/unit", adminOnly, c.AdminHandler.DeleteUnit)

		admin.Get("/logs", adminOnly, c.AdminHandler.GetLogs)
		admin.Get("/users", adminOnly, c.AdminHandler.GetUsers)
		admin.Get("/users/:id", adminOnly, c.AdminHandler.GetUser)
		admin.Put("/users/:id/role", adminOnly, c.AdminHandler.UpdateUserRole)
		admin.Delete("/users/:id", adminOnly, c.AdminHandler.DeleteUser)
		admin.Get("/stats", adminOnly, c.AdminHandler.GetSystemStats)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
