package routes

import (
	"Melt-App/internal/api/handlers"
	"Melt-App/internal/middleware"
	"Melt-App/pkg/jwt"
	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App               *fiber.App
	AIHandler         handlers.AIHandler
	UserHandler       handlers.UserHandler
	CollectionHandler handlers.CollectionHandler
	JournalHandler    handlers.JournalHandler
	CommunityHandler  handlers.CommunityHandler
	AdminHandler      handlers.AdminHandler
	Middleware        middleware.Middleware
	JWTService        jwt.JWTService
	DatabaseReady     bool
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.GuestRoute()
	c.AI()
	c.User()
	c.Collections()
	c.Journal()
	c.Community()
	c.Admin()
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})
}

func (c *Config) AI() {
	ai := c.App.Group("/api/ai")
	{
		ai.Get("/status", c.AIHandler.GetStatus)
		ai.Post("/mood", c.AIHandler.AnalyzeMood)
		ai.Post("/drink", c.AIHandler.SuggestDrink)
	}
}

func (c *Config) User() {
	user := c.App.Group("/api/users", c.Middleware.RequireDatabase(c.DatabaseReady))
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Get("/verify", c.UserHandler.VerifyEmail)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
	}
}

func (c *Config) Collections() {
	collections := c.App.Group(
		"/api/collections",
		c.Middleware.RequireDatabase(c.DatabaseReady),
		c.Middleware.AuthMiddleware(c.JWTService),
	)
	{
		collections.Get("", c.CollectionHandler.GetCollections)
		collections.Post("", c.CollectionHandler.CreateCollection)
		collections.Post("/save", c.CollectionHandler.SaveRecipe)
		collections.Post("/:id/add", c.CollectionHandler.AddRecipe)
		collections.Delete("/:id", c.CollectionHandler.DeleteCollection)
	}
}

func (c *Config) Journal() {
	journal := c.App.Group(
		"/api/journal",
		c.Middleware.RequireDatabase(c.DatabaseReady),
		c.Middleware.AuthMiddleware(c.JWTService),
	)
	{
		journal.Get("", c.JournalHandler.GetEntries)
		journal.Post("", c.JournalHandler.SaveEntry)
		journal.Delete("/:id", c.JournalHandler.DeleteEntry)
	}
}

func (c *Config) Community() {
	community := c.App.Group("/api/community", c.Middleware.RequireDatabase(c.DatabaseReady))
	{
		community.Get("/recipes", c.CommunityHandler.GetPublicRecipes)
		community.Post("/recipes", c.Middleware.AuthMiddleware(c.JWTService), c.CommunityHandler.ShareRecipe)
	}
}

func (c *Config) Admin() {
	admin := c.App.Group(
		"/api/admin",
		c.Middleware.RequireDatabase(c.DatabaseReady),
		c.Middleware.AuthMiddleware(c.JWTService),
		c.Middleware.AdminMiddleware(),
	)
	{
		admin.Get("/users", c.AdminHandler.GetAllUsers)
		admin.Get("/collections", c.AdminHandler.GetAllCollections)
		admin.Get("/history", c.AdminHandler.GetAllHistory)
	}
}
