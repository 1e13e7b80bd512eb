package router

import (
	"github.com/ratehub/store-rating-api/internal/application"
	"github.com/ratehub/store-rating-api/internal/container"
	pginfra "github.com/ratehub/store-rating-api/internal/infrastructure/postgres"
	handlers "github.com/ratehub/store-rating-api/internal/interface/http"
	"github.com/ratehub/store-rating-api/internal/router/modules"
)

// InitModules wires repositories, services, and handlers from the container
// singletons and registers every feature module. Called once at startup.
func InitModules(r *Registry) {
	pool := container.GetPGPool()
	logger := container.GetLogger()
	tokens := container.GetTokens()

	userRepo := pginfra.NewUserRepository(pool)
	storeRepo := pginfra.NewStoreRepository(pool)
	ratingRepo := pginfra.NewRatingRepository(pool)

	authSvc := application.NewAuthService(userRepo, tokens, logger)
	userSvc := application.NewUserService(userRepo, logger)
	storeSvc := application.NewStoreService(storeRepo, logger)
	ratingSvc := application.NewRatingService(ratingRepo, logger)

	authHandler := handlers.NewAuthHandler(authSvc, logger)
	userHandler := handlers.NewUserHandler(userSvc, logger)
	storeHandler := handlers.NewStoreHandler(storeSvc, logger)
	ratingHandler := handlers.NewRatingHandler(ratingSvc, logger)

	r.Add(modules.NewAuthModule(authHandler))
	r.Add(modules.NewAdminModule(userHandler, storeHandler, ratingHandler, tokens))
	r.Add(modules.NewStoreModule(storeHandler, tokens))
	r.Add(modules.NewUserModule(userHandler, tokens))
	r.Add(modules.NewRatingModule(ratingHandler, tokens))
}
