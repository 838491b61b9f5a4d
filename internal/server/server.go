package server

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mataraung/trip-api/internal/config"
	"github.com/mataraung/trip-api/internal/domain"
	"github.com/mataraung/trip-api/internal/handler"
	"github.com/mataraung/trip-api/internal/middleware"
	"github.com/mataraung/trip-api/internal/repository"
	"github.com/mataraung/trip-api/internal/service"
	"github.com/mataraung/trip-api/internal/telemetry"
)

// bookingIdempotencyTTL bounds how long a booking submission can be replayed
// via X-Correlation-ID.
const bookingIdempotencyTTL = 10 * time.Minute

// AppDependencies holds the dependencies required to start the application
type AppDependencies struct {
	Config      *config.Config
	MongoDB     *mongo.Database
	RedisClient *redis.Client
}

// NewApp creates and configures the Fiber application with the given dependencies
func NewApp(deps AppDependencies) *fiber.App {
	// Initialize repositories
	packageRepo := repository.NewMongoPackageRepository(deps.MongoDB)
	bookingRepo := repository.NewMongoBookingRepository(deps.MongoDB)
	blogRepo := repository.NewMongoBlogRepository(deps.MongoDB)
	teamRepo := repository.NewMongoTeamRepository(deps.MongoDB)
	settingsRepo := repository.NewMongoSettingsRepository(deps.MongoDB)
	cacheRepo := repository.NewRedisCacheRepository(deps.RedisClient)

	// Media storage is optional; the API stays up without it, uploads just
	// return 503.
	mediaRepo, err := repository.NewMediaS3Repository(context.Background(), deps.Config.S3)
	if err != nil {
		log.Printf("Warning: Failed to initialize media repository: %v", err)
	}

	// Initialize services
	bookingService := service.NewBookingService(bookingRepo, packageRepo, cacheRepo)
	packageService := service.NewPackageService(packageRepo, cacheRepo)
	blogService := service.NewBlogService(blogRepo, teamRepo, cacheRepo)
	teamService := service.NewTeamService(teamRepo, cacheRepo)
	settingsService := service.NewSettingsService(settingsRepo, cacheRepo)
	whatsappService := service.NewWhatsAppService()
	dashboardService := service.NewDashboardService(bookingRepo, packageRepo, blogRepo, teamRepo, cacheRepo)

	// Initialize handlers
	bookingHandler := handler.NewBookingHandler(bookingService, whatsappService)
	packageHandler := handler.NewPackageHandler(packageService)
	blogHandler := handler.NewBlogHandler(blogService)
	teamHandler := handler.NewTeamHandler(teamService)
	settingsHandler := handler.NewSettingsHandler(settingsService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)

	var fileRepo domain.FileRepository
	if mediaRepo != nil {
		fileRepo = mediaRepo
	}
	mediaHandler := handler.NewMediaHandler(fileRepo)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "MataRaung Trip API",
		BodyLimit:    int(deps.Config.Server.MaxUploadSizeMB * 1024 * 1024),
		ErrorHandler: customErrorHandler,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, X-Correlation-ID",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE, OPTIONS",
	}))
	app.Use(telemetry.FiberMiddleware())

	// Health check endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "healthy",
			"service": "mataraung-trip-api",
		})
	})

	// API v1 routes
	v1 := app.Group("/v1")

	// ===========================================
	// PUBLIC API - marketing site
	// ===========================================
	v1.Get("/packages", packageHandler.ListPublicPackages)
	v1.Get("/packages/:id", packageHandler.GetPackage)

	// The booking form retries; same X-Correlation-ID replays the first
	// response instead of creating a second booking.
	v1.Post("/bookings",
		middleware.Idempotency(deps.RedisClient, bookingIdempotencyTTL),
		bookingHandler.CreateBooking,
	)

	v1.Get("/blog", blogHandler.ListPublicPosts)
	v1.Get("/blog/:slug", blogHandler.GetPostBySlug)
	v1.Get("/team", teamHandler.ListPublicTeam)
	v1.Get("/settings", settingsHandler.GetPublicSettings)

	// ===========================================
	// ADMIN API - dashboard (fronted by the site's own session layer)
	// ===========================================
	admin := v1.Group("/admin")

	admin.Get("/dashboard", dashboardHandler.GetStats)

	adminPackages := admin.Group("/packages")
	adminPackages.Get("/", packageHandler.ListPackages)
	adminPackages.Post("/", packageHandler.CreatePackage)
	adminPackages.Get("/:id", packageHandler.GetPackage)
	adminPackages.Put("/:id", packageHandler.UpdatePackage)
	adminPackages.Delete("/:id", packageHandler.DeletePackage)

	adminBookings := admin.Group("/bookings")
	adminBookings.Get("/", bookingHandler.ListBookings)
	adminBookings.Get("/stats", bookingHandler.GetBookingStats)
	adminBookings.Get("/:id", bookingHandler.GetBooking)
	adminBookings.Get("/:id/whatsapp-link", bookingHandler.GetWhatsappLink)
	adminBookings.Patch("/:id/status", bookingHandler.UpdateBookingStatus)
	adminBookings.Post("/:id/approve", bookingHandler.ApproveBooking)
	adminBookings.Post("/:id/decline", bookingHandler.DeclineBooking)
	adminBookings.Delete("/:id", bookingHandler.DeleteBooking)

	adminBlog := admin.Group("/blog")
	adminBlog.Get("/", blogHandler.ListPosts)
	adminBlog.Post("/", blogHandler.CreatePost)
	adminBlog.Get("/:id", blogHandler.GetPost)
	adminBlog.Put("/:id", blogHandler.UpdatePost)
	adminBlog.Delete("/:id", blogHandler.DeletePost)

	adminTeam := admin.Group("/team")
	adminTeam.Get("/", teamHandler.ListMembers)
	adminTeam.Post("/", teamHandler.CreateMember)
	adminTeam.Get("/:id", teamHandler.GetMember)
	adminTeam.Put("/:id", teamHandler.UpdateMember)
	adminTeam.Delete("/:id", teamHandler.DeleteMember)

	admin.Get("/settings", settingsHandler.GetSettings)
	admin.Put("/settings", settingsHandler.UpdateSettings)

	admin.Post("/media", mediaHandler.UploadImage)
	admin.Delete("/media/:key", mediaHandler.DeleteImage)

	return app
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}
	log.Printf("Error: %v", err)
	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
	})
}
