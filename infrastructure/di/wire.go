//go:build wireinject
// +build wireinject

package di

import (
	"context"

	"linkvault/application/commands/bus"
	"linkvault/application/ports"
	querybus "linkvault/application/queries/bus"
	"linkvault/application/services"
	"linkvault/infrastructure/config"
	"linkvault/pkg/auth"
	pkgerrors "linkvault/pkg/errors"

	"github.com/google/wire"
	"go.uber.org/zap"
)

// Container holds all application dependencies
type Container struct {
	Config           *config.Config
	Logger           *zap.Logger
	CategoryRepo     ports.CategoryRepository
	BookmarkRepo     ports.BookmarkRepository
	DirectoryRepo    ports.DirectoryRepository
	ProfileRepo      ports.ProfileRepository
	MetadataFetcher  ports.MetadataFetcher
	JWTValidator     *auth.JWTValidator
	ErrorHandler     *pkgerrors.ErrorHandler
	DirectoryService *services.DirectoryService
	CommandBus       *bus.CommandBus
	QueryBus         *querybus.QueryBus
}

// SuperSet is the main provider set containing all providers
var SuperSet = wire.NewSet(
	ProvideLogger,
	ProvideSupabaseClient,
	ProvideCategoryRepository,
	ProvideBookmarkRepository,
	ProvideDirectoryRepository,
	ProvideProfileRepository,
	ProvideMetadataFetcher,
	ProvideJWTValidator,
	ProvideErrorHandler,
	ProvideDirectoryService,
	ProvideCommandBus,
	ProvideQueryBus,
	wire.Struct(new(Container), "*"),
)

// InitializeContainer creates a fully wired container
func InitializeContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	wire.Build(SuperSet)
	return nil, nil // Wire will replace this
}
