package rest

import (
	"net/http"

	"linkvault/application/commands/bus"
	"linkvault/application/ports"
	querybus "linkvault/application/queries/bus"
	"linkvault/application/services"
	"linkvault/infrastructure/config"
	"linkvault/interfaces/http/rest/handlers"
	"linkvault/interfaces/http/rest/middleware"
	"linkvault/pkg/auth"
	pkgerrors "linkvault/pkg/errors"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// Router creates and configures the HTTP router
type Router struct {
	cfg          *config.Config
	commandBus   *bus.CommandBus
	queryBus     *querybus.QueryBus
	validator    *auth.JWTValidator
	profiles     ports.ProfileRepository
	fetcher      ports.MetadataFetcher
	directory    *services.DirectoryService
	errorHandler *pkgerrors.ErrorHandler
	logger       *zap.Logger
}

// NewRouter creates a new router instance
func NewRouter(
	cfg *config.Config,
	commandBus *bus.CommandBus,
	queryBus *querybus.QueryBus,
	validator *auth.JWTValidator,
	profiles ports.ProfileRepository,
	fetcher ports.MetadataFetcher,
	directory *services.DirectoryService,
	errorHandler *pkgerrors.ErrorHandler,
	logger *zap.Logger,
) *Router {
	return &Router{
		cfg:          cfg,
		commandBus:   commandBus,
		queryBus:     queryBus,
		validator:    validator,
		profiles:     profiles,
		fetcher:      fetcher,
		directory:    directory,
		errorHandler: errorHandler,
		logger:       logger,
	}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()

	// Global middleware
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.Logger(rt.logger))

	if rt.cfg.EnableCORS {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"http://localhost:3000", "https://*.linkvault.app"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
			ExposedHeaders:   []string{"X-Request-ID"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	// Health check
	router.Get("/health", rt.healthCheck)
	router.Get("/ready", rt.readinessCheck)

	// Public directory, no authentication
	directoryHandler := handlers.NewDirectoryHandler(rt.directory, rt.queryBus, rt.errorHandler, rt.logger)
	router.Get("/public/bookmarks", directoryHandler.ListDirectory)

	// Authenticated API
	router.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Authenticate(rt.validator, rt.cfg.RateLimitPerIP, rt.cfg.RateLimitPerUser, rt.logger))

		r.Route("/categories", func(r chi.Router) {
			categoryHandler := handlers.NewCategoryHandler(rt.commandBus, rt.queryBus, rt.errorHandler, rt.logger)
			r.Get("/", categoryHandler.ListCategories)
			r.Post("/", categoryHandler.CreateCategory)
			// /order must be declared before /{categoryID} routes to avoid
			// "order" matching as an id.
			r.Put("/order", categoryHandler.ReorderCategories)
			r.Put("/{categoryID}", categoryHandler.RenameCategory)
			r.Delete("/{categoryID}", categoryHandler.DeleteCategory)
		})

		r.Route("/bookmarks", func(r chi.Router) {
			bookmarkHandler := handlers.NewBookmarkHandler(rt.commandBus, rt.queryBus, rt.errorHandler, rt.logger)
			r.Get("/", bookmarkHandler.ListBookmarks)
			r.Post("/", bookmarkHandler.CreateBookmark)
			r.Get("/{bookmarkID}", bookmarkHandler.GetBookmark)
			r.Put("/{bookmarkID}", bookmarkHandler.UpdateBookmark)
			r.Delete("/{bookmarkID}", bookmarkHandler.DeleteBookmark)
		})

		metadataHandler := handlers.NewMetadataHandler(rt.fetcher, rt.errorHandler, rt.logger)
		r.Post("/metadata", metadataHandler.FetchMetadata)

		meHandler := handlers.NewMeHandler(rt.profiles, rt.errorHandler, rt.logger)
		r.Get("/me", meHandler.GetMe)

		r.Route("/admin/directory", func(r chi.Router) {
			r.Use(middleware.RequireAdmin(rt.profiles, rt.logger))
			r.Post("/", directoryHandler.PublishEntry)
			r.Put("/{entryID}", directoryHandler.UpdateEntry)
			r.Delete("/{entryID}", directoryHandler.RemoveEntry)
		})
	})

	return router
}

// healthCheck handles health check requests
func (rt *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}

// readinessCheck handles readiness check requests
func (rt *Router) readinessCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ready"}`))
}
