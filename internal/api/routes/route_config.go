package routes

import (
	"EcoBite-Backend/internal/api/handlers"
	"EcoBite-Backend/internal/middleware"
	"EcoBite-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App              *fiber.App
	UserHandler      handlers.UserHandler
	InventoryHandler handlers.InventoryHandler
	RecipeHandler    handlers.RecipeHandler
	MealPlanHandler  handlers.MealPlanHandler
	ShoppingHandler  handlers.ShoppingHandler
	DonationHandler  handlers.DonationHandler
	ImpactHandler    handlers.ImpactHandler
	Middleware       middleware.Middleware
	JWTService       jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Inventory()
	c.Recipes()
	c.MealPlan()
	c.Shopping()
	c.Donations()
	c.Impact()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		user.Patch("/update", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UpdateUser)
	}
}

func (c *Config) Inventory() {
	inventory := c.App.Group("/api/v1/inventory", c.Middleware.AuthMiddleware(c.JWTService))

	inventory.Get("", c.InventoryHandler.GetInventory)
	inventory.Post("", c.InventoryHandler.AddItem)
	inventory.Put("/:id", c.InventoryHandler.UpdateItem)
	inventory.Delete("/:id", c.InventoryHandler.DeleteItem)

	inventory.Post("/mark", c.InventoryHandler.MarkItem)
	inventory.Post("/image", c.InventoryHandler.UploadItemImage)
	inventory.Post("/notify-expiring", c.InventoryHandler.NotifyExpiring)
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/v1/recipes", c.Middleware.AuthMiddleware(c.JWTService))

	recipes.Post("", c.RecipeHandler.CreateRecipe)
	recipes.Get("", c.RecipeHandler.GetRecipes)
	recipes.Get("/suggestions", c.RecipeHandler.FindRecipesByIngredient)
	recipes.Get("/:id", c.RecipeHandler.GetRecipe)
	recipes.Delete("/:id", c.RecipeHandler.DeleteRecipe)

	recipes.Post("/cook", c.RecipeHandler.CookRecipe)
	recipes.Post("/cook-custom", c.RecipeHandler.CookCustom)
}

func (c *Config) MealPlan() {
	mealplan := c.App.Group("/api/v1/mealplan", c.Middleware.AuthMiddleware(c.JWTService))

	mealplan.Post("/chat", c.MealPlanHandler.SendMessage)
	mealplan.Get("/conversations", c.MealPlanHandler.GetConversations)
	mealplan.Get("/conversations/:id/messages", c.MealPlanHandler.GetMessages)
}

func (c *Config) Shopping() {
	shopping := c.App.Group("/api/v1/shopping-lists", c.Middleware.AuthMiddleware(c.JWTService))

	shopping.Post("", c.ShoppingHandler.CreateList)
	shopping.Get("", c.ShoppingHandler.GetLists)
	shopping.Delete("/:id", c.ShoppingHandler.DeleteList)

	shopping.Post("/:id/items", c.ShoppingHandler.AddItem)
	shopping.Patch("/items/:itemId", c.ShoppingHandler.CheckItem)
	shopping.Post("/:id/promote", c.ShoppingHandler.PromoteChecked)
}

func (c *Config) Donations() {
	donations := c.App.Group("/api/v1/donations", c.Middleware.AuthMiddleware(c.JWTService))

	donations.Get("/charities", c.DonationHandler.GetCharities)
	donations.Post("", c.DonationHandler.CreateDonation)
	donations.Get("", c.DonationHandler.GetDonations)
	donations.Post("/image", c.DonationHandler.UploadDonationImage)
}

func (c *Config) Impact() {
	impact := c.App.Group("/api/v1/impact", c.Middleware.AuthMiddleware(c.JWTService))

	impact.Get("/savings", c.ImpactHandler.GetSavings)
	impact.Get("/transactions", c.ImpactHandler.GetTransactions)
	impact.Get("/stats", c.ImpactHandler.GetImpact)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
	c.App.Post("/webhook/midtrans", c.DonationHandler.PaymentNotification)
}
