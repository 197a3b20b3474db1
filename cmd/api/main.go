package main

import (
	"context"
	"errors"
	"fmt"
	"log"

	common_api "go-ehs/internal/common/api"
	"go-ehs/internal/common/errs"
	"go-ehs/internal/config"
	"go-ehs/internal/database"
	"go-ehs/internal/features/auth"
	"go-ehs/internal/features/inspection"
	"go-ehs/internal/features/report"
	"go-ehs/internal/features/system"
	"go-ehs/internal/features/user"
	"go-ehs/internal/logger"
	"go-ehs/internal/middleware"
	"go-ehs/pkg/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

// NewFiberServer creates a new Fiber app instance
func NewFiberServer(zapLogger *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			var appErr *errs.Error
			if errors.As(err, &appErr) {
				return c.Status(appErr.Status()).JSON(fiber.Map{
					"message": appErr.Message,
				})
			}

			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				return c.Status(fiberErr.Code).JSON(fiber.Map{
					"message": fiberErr.Message,
				})
			}

			zapLogger.Error("unhandled request error",
				zap.String("path", c.Path()),
				zap.Error(err),
			)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Server error",
			})
		},
	})

	// Use custom CORS middleware
	app.Use(middleware.CORSMiddleware())

	return app
}

// AsRoute is a helper function to reduce boilerplate.
// It tags the constructor so Fx knows to add it to the "routes" group.
func AsRoute(f any) any {
	return fx.Annotate(
		f,
		fx.As(new(common_api.Route)),    // Cast to Interface
		fx.ResultTags(`group:"routes"`), // Add to Group
	)
}

// RegisterAllRoutes takes the group "routes" (slice of interfaces)
// and calls Setup() on each one.
func RegisterAllRoutes(app *fiber.App, routes []common_api.Route) {
	for _, route := range routes {
		route.Setup(app)
	}
}

// RegisterAllRoutesWithAnnotation wraps RegisterAllRoutes with fx annotations
var RegisterAllRoutesWithAnnotation = fx.Annotate(
	RegisterAllRoutes,
	fx.ParamTags(``, `group:"routes"`),
)

// ConfigureTokens wires the JWT signing settings before any route runs.
func ConfigureTokens(cfg *config.Config) {
	utils.Configure(cfg.JWTSecret, cfg.JWTExpiration)
}

// StartServer creates a lifecycle hook to start Fiber in a goroutine
// and shut it down when the app exits.
func StartServer(lc fx.Lifecycle, app *fiber.App, cfg *config.Config) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := fmt.Sprintf(":%s", cfg.Port)
				if err := app.Listen(port); err != nil {
					log.Fatalf("Server failed to start: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return app.Shutdown()
		},
	})
}

// @title           EHS Reporting API
// @version         1.0
// @description     Safety reporting backend: reports, inspections and dashboard metrics.

// @host            localhost:4000
// @BasePath        /
func main() {
	app := fx.New(
		fx.Provide(
			// Load Config
			config.LoadConfig,

			// Initialize Logger
			logger.NewLogger,

			// Initialize Fiber Server
			NewFiberServer,

			// Initialize Database
			database.NewDatabase,

			// Initialize Repository
			user.NewUserRepository,
			report.NewReportRepository,
			inspection.NewInspectionRepository,

			auth.NewAuthService,
			user.NewUserService,
			report.NewReportService,
			inspection.NewInspectionService,

			// Initialize Controller
			auth.NewAuthController,
			user.NewUserController,
			report.NewReportController,
			inspection.NewInspectionController,

			// Initialize API Routes
			AsRoute(auth.NewAuthApi),
			AsRoute(user.NewUserApi),
			AsRoute(report.NewReportApi),
			AsRoute(inspection.NewInspectionApi),
			AsRoute(system.NewHealthApi),
		),
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
		fx.Invoke(
			ConfigureTokens,

			// Register Routes & Start
			RegisterAllRoutesWithAnnotation,
			StartServer,
		),
	)

	app.Run()
}
