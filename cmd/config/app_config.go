package config

import (
	"os"
	"time"

	"DTCL-Backend/internal/api/handlers"
	"DTCL-Backend/internal/api/routes"
	"DTCL-Backend/internal/middleware"
	"DTCL-Backend/internal/utils"
	"DTCL-Backend/internal/utils/storage"
	"DTCL-Backend/pkg/admin"
	"DTCL-Backend/pkg/food"
	"DTCL-Backend/pkg/fridge"
	"DTCL-Backend/pkg/group"
	"DTCL-Backend/pkg/jwt"
	"DTCL-Backend/pkg/mealplan"
	"DTCL-Backend/pkg/recipe"
	"DTCL-Backend/pkg/shopping"
	"DTCL-Backend/pkg/user"

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
		TimeZone:   "Asia/Ho_Chi_Minh",
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
	groupRepository := group.NewGroupRepository(db)
	foodRepository := food.NewFoodRepository(db)
	fridgeRepository := fridge.NewFridgeRepository(db)
	shoppingRepository := shopping.NewShoppingRepository(db)
	mealPlanRepository := mealplan.NewMealPlanRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)
	adminRepository := admin.NewAdminRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService, s3)
	groupService := group.NewGroupService(groupRepository, userRepository)
	foodService := food.NewFoodService(foodRepository, s3)
	fridgeService := fridge.NewFridgeService(fridgeRepository, foodService)
	shoppingService := shopping.NewShoppingService(shoppingRepository, foodService, foodRepository, userRepository)
	mealPlanService := mealplan.NewMealPlanService(mealPlanRepository, foodService, foodRepository)
	recipeService := recipe.NewRecipeService(recipeRepository, foodRepository)
	adminService := admin.NewAdminService(adminRepository, userRepository)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	groupHandler := handlers.NewGroupHandler(groupService, validator)
	foodHandler := handlers.NewFoodHandler(foodService, validator)
	fridgeHandler := handlers.NewFridgeHandler(fridgeService, validator)
	shoppingHandler := handlers.NewShoppingHandler(shoppingService, validator)
	mealPlanHandler := handlers.NewMealPlanHandler(mealPlanService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)
	adminHandler := handlers.NewAdminHandler(adminService, validator)

	middlewares := middleware.NewMiddleware(userRepository, groupRepository)

	// routes
	routesConfig := routes.Config{
		App:             app,
		UserHandler:     userHandler,
		GroupHandler:    groupHandler,
		FoodHandler:     foodHandler,
		FridgeHandler:   fridgeHandler,
		ShoppingHandler: shoppingHandler,
		MealPlanHandler: mealPlanHandler,
		RecipeHandler:   recipeHandler,
		AdminHandler:    adminHandler,
		Middleware:      middlewares,
		JWTService:      jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
