package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/helpdesk-service/internal/api/http"
	"github.com/spec-kit/helpdesk-service/internal/api/http/handlers"
	"github.com/spec-kit/helpdesk-service/internal/config"
	"github.com/spec-kit/helpdesk-service/internal/events"
	"github.com/spec-kit/helpdesk-service/internal/fixtures"
	"github.com/spec-kit/helpdesk-service/internal/observability"
	"github.com/spec-kit/helpdesk-service/internal/repository"
	"github.com/spec-kit/helpdesk-service/internal/service"
	"github.com/spec-kit/helpdesk-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	userRepo := repository.NewUserRepository()
	teamRepo := repository.NewTeamRepository()
	categoryRepo := repository.NewCategoryRepository()
	subcategoryRepo := repository.NewSubcategoryRepository()
	ticketRepo := repository.NewTicketRepository()
	commentRepo := repository.NewCommentRepository()

	// Seed every store before the server accepts traffic; requests never
	// trigger fixture generation.
	data := fixtures.Generate(gofakeit.New(cfg.Fixtures.Seed), fixtures.Options{
		Users:   cfg.Fixtures.Users,
		Tickets: cfg.Fixtures.Tickets,
	})
	userRepo.Seed(data.Users)
	teamRepo.Seed(data.Teams)
	categoryRepo.Seed(data.Categories)
	subcategoryRepo.Seed(data.Subcategories)
	ticketRepo.Seed(data.Tickets)
	commentRepo.Seed(data.Comments)
	logger.Info("fixtures seeded",
		zap.Int("users", len(data.Users)),
		zap.Int("tickets", len(data.Tickets)),
		zap.Int("comments", len(data.Comments)),
	)

	dispatcher := events.NewInMemoryDispatcher()
	recorder := worker.NewActivityRecorder()
	worker.StartActivityRecorder(recorder, dispatcher)

	userService := service.NewUserService(userRepo, gofakeit.New(cfg.Fixtures.Seed))
	catalogService := service.NewCatalogService(service.CatalogDependencies{
		TeamRepo:        teamRepo,
		CategoryRepo:    categoryRepo,
		SubcategoryRepo: subcategoryRepo,
	})
	ticketService := service.NewTicketService(service.TicketDependencies{
		TicketRepo:  ticketRepo,
		CommentRepo: commentRepo,
		UserRepo:    userRepo,
		TeamRepo:    teamRepo,
		Dispatcher:  dispatcher,
	})
	dashboardService := service.NewDashboardService(categoryRepo, recorder, gofakeit.New(cfg.Fixtures.Seed))

	metrics := observability.NewMetrics()
	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:    handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, userRepo, ticketRepo),
		Users:     handlers.NewUsersHandler(userService),
		Catalog:   handlers.NewCatalogHandler(catalogService),
		Tickets:   handlers.NewTicketsHandler(ticketService),
		Dashboard: handlers.NewDashboardHandler(dashboardService),
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
