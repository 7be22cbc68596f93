package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"tripmark/internal/config"
	"tripmark/internal/database"
	"tripmark/internal/domain"
	"tripmark/internal/gateway/mistral"
	"tripmark/internal/middleware"
	"tripmark/internal/modules/auth"
	"tripmark/internal/modules/discover"
	"tripmark/internal/modules/favorite"
	"tripmark/internal/modules/pages"
	jwtsvc "tripmark/internal/pkg/jwt"
	"tripmark/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := db.AutoMigrate(&domain.User{}, &domain.Favorite{}); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.SessionTTL)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService, cfg.SessionTTL)

	favoriteService := favorite.NewService(favoriteRepo)
	favoriteHandler := favorite.NewHandler(favoriteService)

	generator := mistral.NewClient(cfg.MistralAPIKey, cfg.MistralModel,
		cfg.MistralBaseURL, cfg.MistralTimeout)
	discoverHandler := discover.NewHandler(generator)

	pagesHandler := pages.NewHandler(pages.NewRenderer(), generator, favoriteService)

	r := gin.Default()
	r.Use(middleware.CORS(), middleware.ErrorLogger())

	// public: register, login and the open pages
	authHandler.RegisterPublicRoutes(r)
	pagesHandler.RegisterPublicRoutes(r)

	// JSON API, session required on every endpoint
	api := r.Group("/api")
	api.Use(middleware.Auth(j, authService))
	{
		discoverHandler.RegisterRoutes(api)
		favoriteHandler.RegisterRoutes(api)
	}

	// pages, redirect to /login without a session
	protectedPages := r.Group("/")
	protectedPages.Use(middleware.PageAuth(j, authService))
	pagesHandler.RegisterProtectedRoutes(protectedPages)
	authHandler.RegisterProtectedRoutes(protectedPages)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
