package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	_ "github.com/lib/pq"
	httpSwagger "github.com/swaggo/http-swagger"

	"scheduling-web-server/config"
	_ "scheduling-web-server/docs"
	"scheduling-web-server/internal/handler"
	"scheduling-web-server/internal/repository"
	"scheduling-web-server/internal/security"
	"scheduling-web-server/internal/service"
)

// @title Scheduling-web-server
// @version 1.0
// @description REST API планировщика расписаний: сессии и шаблоны

// @host localhost:8080

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.LoadConfig("config.yaml")
	if err != nil {
		log.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	db, err := config.SetupDatabase(cfg.DatabaseConfig.DSN)
	if err != nil {
		log.Fatalf("Не удалось подключиться к БД: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Ошибка при закрытии БД: %v", err)
		}
	}()

	if err := db.RunMigrations(ctx); err != nil {
		log.Fatalf("Не удалось применить миграции: %v", err)
	}

	redisClient, err := config.SetupRedis(&cfg.RedisConfig)
	if err != nil {
		log.Fatalf("Ошибка подключения к Redis: %v", err)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Printf("Ошибка при закрытии Redis: %v", err)
		}
	}()

	srv, router := config.SetupServer(cfg.ServerAddr)

	userRepo := repository.NewUserRepository(db)
	revokedTokenRepo := repository.NewRevokedTokenRepository(db)
	templateRepo := repository.NewTemplateRepository(db)
	cacheRepo := repository.NewCacheRepository(redisClient, time.Duration(cfg.TTL.Cache)*time.Second)

	jwtService := security.NewJWTService(&cfg.JWT)
	authService := service.NewAuthenticationService(revokedTokenRepo, jwtService, userRepo, &cfg.JWT)
	templateService := service.NewTemplateService(templateRepo, cacheRepo)

	identityProvider := security.NewGatewayIdentityProvider()

	authHandler := handler.NewAuthenticationHandler(authService, identityProvider, cfg.OAuth.FrontendURL)
	templateHandler := handler.NewTemplateHandler(templateService)

	router.Get("/swagger/*", httpSwagger.WrapHandler)

	setupAuthRoutes(router, authHandler, jwtService)
	setupTemplateRoutes(router, templateHandler, jwtService)

	runServer(ctx, srv)
}

func setupAuthRoutes(r chi.Router, h *handler.AuthenticationHandler, jwtService *security.JWTService) {
	r.Route("/api/auth", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(security.AuthGuard(jwtService))
			r.Get("/me", h.GetCurrentUser)
		})
		r.Group(func(r chi.Router) {
			r.Post("/login", h.Login)
			r.Post("/refresh", h.Refresh)
			r.Post("/logout", h.Logout)
			r.Post("/register", h.Register)
			r.Get("/oauth/callback", h.OAuthCallback)
		})
	})
}

func setupTemplateRoutes(r chi.Router, h *handler.TemplateHandler, jwtService *security.JWTService) {
	r.Route("/api/templates", func(r chi.Router) {
		r.Use(security.AuthGuard(jwtService))
		r.Get("/", h.ListTemplates)
		r.Post("/", h.CreateTemplate)
		r.Put("/", h.UpdateTemplate)
		r.Get("/team/{teamId}", h.ListTemplatesByTeam)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.GetTemplate)
			r.Delete("/", h.DeleteTemplate)
			r.Post("/schedule", h.CreateScheduleFromTemplate)
		})
	})
}

func runServer(ctx context.Context, server *http.Server) {
	serverErrors := make(chan error, 1)
	go func() {
		log.Println("сервер запущен на " + server.Addr)
		serverErrors <- server.ListenAndServe()
	}()

	signalChannel := make(chan os.Signal, 1)
	signal.Notify(signalChannel, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil {
			log.Fatalf("ошибка работы сервера: %v", err)
		}
	case sig := <-signalChannel:
		log.Printf("получен сигнал %v остановки работы сервера ", sig)
	}

	shutDownCtx, shutDownCancel := context.WithTimeout(ctx, 5*time.Second)
	defer shutDownCancel()

	if err := server.Shutdown(shutDownCtx); err != nil {
		log.Printf("ошибка при остановке сервера: %v", err)
	} else {
		log.Println("Сервер успешно остановлен")
	}
}
