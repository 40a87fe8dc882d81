package routes

import (
	"time"

	"bloodbridge/internal/adapters/http/handlers"
	"bloodbridge/internal/adapters/http/middleware"
	"bloodbridge/internal/adapters/persistence/repositories"
	"bloodbridge/internal/config"
	"bloodbridge/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	refreshTokenRepo := repositories.NewRefreshTokenRepository(db)
	donorRepo := repositories.NewDonorRepository(db)
	inventoryRepo := repositories.NewInventoryRepository(db)
	requestRepo := repositories.NewRequestRepository(db)
	notificationRepo := repositories.NewNotificationRepository(db)
	bankRepo := repositories.NewBankRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo, donorRepo, refreshTokenRepo, cfg)
	userService := services.NewUserService(userRepo, donorRepo)
	donorService := services.NewDonorService(donorRepo, userRepo, inventoryRepo)
	notificationService := services.NewNotificationService(notificationRepo, userRepo)
	requestService := services.NewRequestService(requestRepo, userRepo, notificationService)
	directoryService := services.NewDirectoryService(userRepo, donorRepo, bankRepo, inventoryRepo)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(authService, cfg)
	userHandler := handlers.NewUserHandler(userService)
	donorHandler := handlers.NewDonorHandler(donorService)
	requestHandler := handlers.NewRequestHandler(requestService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	directoryHandler := handlers.NewDirectoryHandler(directoryService)
	adminHandler := handlers.NewAdminHandler(userService, directoryService, notificationService)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API v1 group
	apiV1 := app.Group("/api/v1")

	// Auth routes (public, stricter rate limit, never cached)
	authRoutes := apiV1.Group("/auth")
	authRoutes.Use(middleware.NoCacheHeaders())
	setupAuthRoutes(authRoutes, authHandler, cfg)

	// Blood request routes (authenticated users)
	requestRoutes := apiV1.Group("/requests")
	requestRoutes.Use(middleware.AuthMiddleware(cfg))
	setupRequestRoutes(requestRoutes, requestHandler)

	// Donor routes (self-service + directory search)
	donorRoutes := apiV1.Group("/donors")
	donorRoutes.Use(middleware.AuthMiddleware(cfg))
	setupDonorRoutes(donorRoutes, donorHandler, directoryHandler)

	// Inventory routes (search + demand table)
	inventoryRoutes := apiV1.Group("/inventory")
	setupInventoryRoutes(inventoryRoutes, directoryHandler, cfg)

	// Notification routes (authenticated users)
	notificationRoutes := apiV1.Group("/notifications")
	notificationRoutes.Use(middleware.AuthMiddleware(cfg))
	setupNotificationRoutes(notificationRoutes, notificationHandler)

	// Profile routes (authenticated users)
	profileRoutes := apiV1.Group("/profile")
	profileRoutes.Use(middleware.AuthMiddleware(cfg))
	setupProfileRoutes(profileRoutes, userHandler)

	// Admin routes (admin only)
	adminRoutes := apiV1.Group("/admin")
	adminRoutes.Use(middleware.AuthMiddleware(cfg))
	adminRoutes.Use(middleware.AdminOnly())
	setupAdminRoutes(adminRoutes, adminHandler, requestHandler)
}

// setupAuthRoutes configures authentication routes
func setupAuthRoutes(router fiber.Router, handler *handlers.AuthHandler, cfg *config.Config) {
	// Public routes
	router.Post("/register", middleware.AuthRateLimiter(), handler.Register)
	router.Post("/login", middleware.AuthRateLimiter(), handler.Login)
	router.Post("/refresh", handler.RefreshToken)
	router.Post("/logout", handler.Logout)

	// Protected routes
	router.Get("/me", middleware.AuthMiddleware(cfg), handler.Me)
	router.Post("/logout-all", middleware.AuthMiddleware(cfg), handler.LogoutAll)
}

// setupRequestRoutes configures blood request routes
func setupRequestRoutes(router fiber.Router, handler *handlers.RequestHandler) {
	router.Post("/", middleware.RequesterOnly(), handler.Submit)
	router.Get("/", handler.List)
	router.Post("/:id/status", handler.UpdateStatus)
}

// setupDonorRoutes configures donor self-service and directory routes
func setupDonorRoutes(router fiber.Router, donorHandler *handlers.DonorHandler, directoryHandler *handlers.DirectoryHandler) {
	// Directory search (any authenticated user)
	router.Get("/search", directoryHandler.SearchDonors)

	// Self-service (donor role only)
	router.Post("/donate", middleware.DonorOnly(), donorHandler.RecordDonation)
	router.Get("/history", middleware.DonorOnly(), donorHandler.GetHistory)
	router.Put("/availability", middleware.DonorOnly(), donorHandler.SetAvailability)
}

// setupInventoryRoutes configures inventory search and demand table routes
func setupInventoryRoutes(router fiber.Router, handler *handlers.DirectoryHandler, cfg *config.Config) {
	// The demand table is static, cache it
	router.Get("/demand", middleware.CacheControl(1*time.Hour), handler.DemandTable)

	// Search requires auth
	router.Get("/search", middleware.AuthMiddleware(cfg), handler.SearchInventory)
}

// setupNotificationRoutes configures notification routes
func setupNotificationRoutes(router fiber.Router, handler *handlers.NotificationHandler) {
	router.Get("/", handler.List)
	router.Post("/:id/read", handler.MarkRead)
}

// setupProfileRoutes configures profile self-service routes
func setupProfileRoutes(router fiber.Router, handler *handlers.UserHandler) {
	router.Get("/", handler.GetProfile)
	router.Put("/", handler.UpdateProfile)
	router.Put("/password", handler.ChangePassword)
}

// setupAdminRoutes configures admin-only routes
func setupAdminRoutes(router fiber.Router, handler *handlers.AdminHandler, requestHandler *handlers.RequestHandler) {
	// User management
	router.Get("/users", handler.ListUsers)
	router.Get("/users/:id", handler.GetUser)
	router.Put("/users/:id/role", handler.UpdateUser)
	router.Delete("/users/:id", handler.DeleteUser)

	// Donor verification
	router.Post("/donors/:id/verify", handler.VerifyDonor)

	// Partner bank directory
	router.Post("/banks", handler.CreateBank)
	router.Get("/banks", handler.ListBanks)
	router.Put("/banks/:id", handler.UpdateBank)
	router.Delete("/banks/:id", handler.DeleteBank)

	// Inventory management
	router.Put("/inventory", handler.UpsertInventory)

	// Broadcasts
	router.Post("/notifications/broadcast", handler.Broadcast)

	// Status override, same handler as the general route
	router.Post("/requests/:id/status", requestHandler.UpdateStatus)
}
