package config

import (
	"os"
	"time"

	"EcoBite-Backend/internal/api/handlers"
	"EcoBite-Backend/internal/api/routes"
	"EcoBite-Backend/internal/middleware"
	"EcoBite-Backend/internal/utils"
	"EcoBite-Backend/internal/utils/storage"
	"EcoBite-Backend/pkg/donation"
	"EcoBite-Backend/pkg/impact"
	"EcoBite-Backend/pkg/inventory"
	"EcoBite-Backend/pkg/jwt"
	"EcoBite-Backend/pkg/mealplan"
	"EcoBite-Backend/pkg/midtrans"
	"EcoBite-Backend/pkg/recipe"
	"EcoBite-Backend/pkg/shopping"
	"EcoBite-Backend/pkg/user"

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
		TimeZone:   "Asia/Jakarta",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()
	aiClient := mealplan.NewAIClient(
		utils.GetConfig("AI_WEBHOOK_URL"),
		utils.GetConfig("AI_WEBHOOK_KEY"),
	)

	// Repository
	userRepository := user.NewUserRepository(db)
	inventoryRepository := inventory.NewInventoryRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)
	mealPlanRepository := mealplan.NewMealPlanRepository(db)
	shoppingRepository := shopping.NewShoppingRepository(db)
	donationRepository := donation.NewDonationRepository(db)
	impactRepository := impact.NewImpactRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService)
	inventoryService := inventory.NewInventoryService(inventoryRepository, s3)
	recipeService := recipe.NewRecipeService(recipeRepository, inventoryRepository)
	mealPlanService := mealplan.NewMealPlanService(mealPlanRepository, aiClient)
	shoppingService := shopping.NewShoppingService(shoppingRepository)
	midtransService := midtrans.NewMidtransService()
	donationService := donation.NewDonationService(donationRepository, impactRepository, midtransService, s3)
	impactService := impact.NewImpactService(impactRepository)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	inventoryHandler := handlers.NewInventoryHandler(inventoryService, userService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)
	mealPlanHandler := handlers.NewMealPlanHandler(mealPlanService, validator)
	shoppingHandler := handlers.NewShoppingHandler(shoppingService, validator)
	donationHandler := handlers.NewDonationHandler(donationService, validator)
	impactHandler := handlers.NewImpactHandler(impactService)

	// routes
	routesConfig := routes.Config{
		App:              app,
		UserHandler:      userHandler,
		InventoryHandler: inventoryHandler,
		RecipeHandler:    recipeHandler,
		MealPlanHandler:  mealPlanHandler,
		ShoppingHandler:  shoppingHandler,
		DonationHandler:  donationHandler,
		ImpactHandler:    impactHandler,
		Middleware:       middlewares,
		JWTService:       jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
