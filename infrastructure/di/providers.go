package di

import (
	"context"
	"fmt"

	"linkvault/application/commands"
	"linkvault/application/commands/bus"
	commands_handlers "linkvault/application/commands/handlers"
	"linkvault/application/ports"
	"linkvault/application/queries"
	querybus "linkvault/application/queries/bus"
	queries_handlers "linkvault/application/queries/handlers"
	"linkvault/application/services"
	"linkvault/infrastructure/config"
	"linkvault/infrastructure/metadata"
	supastore "linkvault/infrastructure/persistence/supabase"
	"linkvault/pkg/auth"
	pkgerrors "linkvault/pkg/errors"

	supa "github.com/supabase-community/supabase-go"
	"go.uber.org/zap"
)

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// ProvideSupabaseClient creates the shared Supabase client. It carries the
// service role key, so it bypasses row level security; all owner scoping
// happens in the repositories.
func ProvideSupabaseClient(cfg *config.Config) (*supa.Client, error) {
	client, err := supa.NewClient(cfg.SupabaseURL, cfg.SupabaseServiceKey, &supa.ClientOptions{
		Schema: cfg.SupabaseSchema,
	})
	if err != nil {
		return nil, fmt.Errorf("create supabase client: %w", err)
	}
	return client, nil
}

// ProvideCategoryRepository creates a category repository
func ProvideCategoryRepository(client *supa.Client, cfg *config.Config, logger *zap.Logger) ports.CategoryRepository {
	return supastore.NewCategoryRepository(client, cfg.CategoriesTable, logger)
}

// ProvideBookmarkRepository creates a bookmark repository
func ProvideBookmarkRepository(client *supa.Client, cfg *config.Config, logger *zap.Logger) ports.BookmarkRepository {
	return supastore.NewBookmarkRepository(client, cfg.BookmarksTable, logger)
}

// ProvideDirectoryRepository creates a public directory repository
func ProvideDirectoryRepository(client *supa.Client, cfg *config.Config, logger *zap.Logger) ports.DirectoryRepository {
	return supastore.NewDirectoryRepository(client, cfg.PublicBookmarksTable, logger)
}

// ProvideProfileRepository creates a profile repository
func ProvideProfileRepository(client *supa.Client, cfg *config.Config, logger *zap.Logger) ports.ProfileRepository {
	return supastore.NewProfileRepository(client, cfg.ProfilesTable, logger)
}

// ProvideMetadataFetcher creates the page metadata fetcher
func ProvideMetadataFetcher(cfg *config.Config, logger *zap.Logger) ports.MetadataFetcher {
	return metadata.NewFetcher(cfg.MetadataFetchTimeout, logger)
}

// ProvideJWTValidator creates the Supabase token validator
func ProvideJWTValidator(cfg *config.Config) (*auth.JWTValidator, error) {
	return auth.NewJWTValidator(auth.JWTConfig{
		SecretKey: cfg.JWTSecret,
		Issuer:    cfg.JWTIssuer,
	})
}

// ProvideErrorHandler creates the HTTP error handler
func ProvideErrorHandler(cfg *config.Config, logger *zap.Logger) *pkgerrors.ErrorHandler {
	return pkgerrors.NewErrorHandler(logger, cfg.IsDevelopment())
}

// ProvideDirectoryService creates the public directory curation service
func ProvideDirectoryService(directoryRepo ports.DirectoryRepository, logger *zap.Logger) *services.DirectoryService {
	return services.NewDirectoryService(directoryRepo, logger)
}

// CommandHandlerAdapter adapts specific command handlers to the generic interface
type CommandHandlerAdapter struct {
	handler func(context.Context, bus.Command) error
}

func (a *CommandHandlerAdapter) Handle(ctx context.Context, cmd bus.Command) error {
	return a.handler(ctx, cmd)
}

// ProvideCommandBus creates a command bus with registered handlers
func ProvideCommandBus(
	categoryRepo ports.CategoryRepository,
	bookmarkRepo ports.BookmarkRepository,
	logger *zap.Logger,
) *bus.CommandBus {
	commandBus := bus.NewCommandBus()

	createCategoryHandler := commands_handlers.NewCreateCategoryHandler(categoryRepo, logger)
	commandBus.Register(commands.CreateCategoryCommand{}, &CommandHandlerAdapter{
		handler: func(ctx context.Context, cmd bus.Command) error {
			createCmd, ok := cmd.(commands.CreateCategoryCommand)
			if !ok {
				return fmt.Errorf("invalid command type")
			}
			_, err := createCategoryHandler.Handle(ctx, createCmd)
			return err
		},
	})

	renameCategoryHandler := commands_handlers.NewRenameCategoryHandler(categoryRepo, bookmarkRepo, logger)
	commandBus.Register(commands.RenameCategoryCommand{}, &CommandHandlerAdapter{
		handler: func(ctx context.Context, cmd bus.Command) error {
			renameCmd, ok := cmd.(commands.RenameCategoryCommand)
			if !ok {
				return fmt.Errorf("invalid command type")
			}
			return renameCategoryHandler.Handle(ctx, renameCmd)
		},
	})

	reorderCategoriesHandler := commands_handlers.NewReorderCategoriesHandler(categoryRepo, logger)
	commandBus.Register(commands.ReorderCategoriesCommand{}, &CommandHandlerAdapter{
		handler: func(ctx context.Context, cmd bus.Command) error {
			reorderCmd, ok := cmd.(commands.ReorderCategoriesCommand)
			if !ok {
				return fmt.Errorf("invalid command type")
			}
			return reorderCategoriesHandler.Handle(ctx, reorderCmd)
		},
	})

	deleteCategoryHandler := commands_handlers.NewDeleteCategoryHandler(categoryRepo, bookmarkRepo, logger)
	commandBus.Register(commands.DeleteCategoryCommand{}, &CommandHandlerAdapter{
		handler: func(ctx context.Context, cmd bus.Command) error {
			deleteCmd, ok := cmd.(commands.DeleteCategoryCommand)
			if !ok {
				return fmt.Errorf("invalid command type")
			}
			return deleteCategoryHandler.Handle(ctx, deleteCmd)
		},
	})

	createBookmarkHandler := commands_handlers.NewCreateBookmarkHandler(bookmarkRepo, categoryRepo, logger)
	commandBus.Register(commands.CreateBookmarkCommand{}, &CommandHandlerAdapter{
		handler: func(ctx context.Context, cmd bus.Command) error {
			createCmd, ok := cmd.(commands.CreateBookmarkCommand)
			if !ok {
				return fmt.Errorf("invalid command type")
			}
			_, err := createBookmarkHandler.Handle(ctx, createCmd)
			return err
		},
	})

	updateBookmarkHandler := commands_handlers.NewUpdateBookmarkHandler(bookmarkRepo, categoryRepo, logger)
	commandBus.Register(commands.UpdateBookmarkCommand{}, &CommandHandlerAdapter{
		handler: func(ctx context.Context, cmd bus.Command) error {
			updateCmd, ok := cmd.(commands.UpdateBookmarkCommand)
			if !ok {
				return fmt.Errorf("invalid command type")
			}
			_, err := updateBookmarkHandler.Handle(ctx, updateCmd)
			return err
		},
	})

	deleteBookmarkHandler := commands_handlers.NewDeleteBookmarkHandler(bookmarkRepo, logger)
	commandBus.Register(commands.DeleteBookmarkCommand{}, &CommandHandlerAdapter{
		handler: func(ctx context.Context, cmd bus.Command) error {
			deleteCmd, ok := cmd.(commands.DeleteBookmarkCommand)
			if !ok {
				return fmt.Errorf("invalid command type")
			}
			return deleteBookmarkHandler.Handle(ctx, deleteCmd)
		},
	})

	return commandBus
}

// QueryHandlerAdapter adapts specific query handlers to the generic interface
type QueryHandlerAdapter struct {
	handler func(context.Context, querybus.Query) (interface{}, error)
}

func (a *QueryHandlerAdapter) Handle(ctx context.Context, query querybus.Query) (interface{}, error) {
	return a.handler(ctx, query)
}

// ProvideQueryBus creates a query bus with registered handlers
func ProvideQueryBus(
	categoryRepo ports.CategoryRepository,
	bookmarkRepo ports.BookmarkRepository,
	directoryRepo ports.DirectoryRepository,
	logger *zap.Logger,
) *querybus.QueryBus {
	queryBus := querybus.NewQueryBus()

	listCategoriesHandler := queries_handlers.NewListCategoriesHandler(categoryRepo, logger)
	queryBus.Register(queries.ListCategoriesQuery{}, &QueryHandlerAdapter{
		handler: func(ctx context.Context, query querybus.Query) (interface{}, error) {
			listQuery, ok := query.(queries.ListCategoriesQuery)
			if !ok {
				return nil, fmt.Errorf("invalid query type")
			}
			return listCategoriesHandler.Handle(ctx, listQuery)
		},
	})

	getCategoryHandler := queries_handlers.NewGetCategoryHandler(categoryRepo, logger)
	queryBus.Register(queries.GetCategoryQuery{}, &QueryHandlerAdapter{
		handler: func(ctx context.Context, query querybus.Query) (interface{}, error) {
			getQuery, ok := query.(queries.GetCategoryQuery)
			if !ok {
				return nil, fmt.Errorf("invalid query type")
			}
			return getCategoryHandler.Handle(ctx, getQuery)
		},
	})

	listBookmarksHandler := queries_handlers.NewListBookmarksHandler(bookmarkRepo, logger)
	queryBus.Register(queries.ListBookmarksQuery{}, &QueryHandlerAdapter{
		handler: func(ctx context.Context, query querybus.Query) (interface{}, error) {
			listQuery, ok := query.(queries.ListBookmarksQuery)
			if !ok {
				return nil, fmt.Errorf("invalid query type")
			}
			return listBookmarksHandler.Handle(ctx, listQuery)
		},
	})

	getBookmarkHandler := queries_handlers.NewGetBookmarkHandler(bookmarkRepo, logger)
	queryBus.Register(queries.GetBookmarkQuery{}, &QueryHandlerAdapter{
		handler: func(ctx context.Context, query querybus.Query) (interface{}, error) {
			getQuery, ok := query.(queries.GetBookmarkQuery)
			if !ok {
				return nil, fmt.Errorf("invalid query type")
			}
			return getBookmarkHandler.Handle(ctx, getQuery)
		},
	})

	listDirectoryHandler := queries_handlers.NewListDirectoryHandler(directoryRepo, logger)
	queryBus.Register(queries.ListDirectoryQuery{}, &QueryHandlerAdapter{
		handler: func(ctx context.Context, query querybus.Query) (interface{}, error) {
			listQuery, ok := query.(queries.ListDirectoryQuery)
			if !ok {
				return nil, fmt.Errorf("invalid query type")
			}
			return listDirectoryHandler.Handle(ctx, listQuery)
		},
	})

	return queryBus
}
