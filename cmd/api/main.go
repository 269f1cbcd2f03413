package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/rngenius/rngenius-go/internal/config"
	"github.com/rngenius/rngenius-go/internal/handler"
	"github.com/rngenius/rngenius-go/internal/middleware"
	"github.com/rngenius/rngenius-go/internal/repository"
	"github.com/rngenius/rngenius-go/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := repository.NewDB(cfg.DatabaseDSN)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	userRepo := repository.NewUserRepository(db)
	generatorRepo := repository.NewGeneratorRepository(db)

	userService := service.NewUserService(userRepo, cfg.JWTSecret, cfg.JWTExpiry)
	generatorService := service.NewGeneratorService(generatorRepo, userRepo)

	userHandler := handler.NewUserHandler(userService)
	generatorHandler := handler.NewGeneratorHandler(generatorService)

	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(5, 10))
		r.Post("/user/signup", userHandler.HandleSignUp)
		r.Post("/user/login", userHandler.HandleLogin)
		r.Post("/user/refresh", userHandler.HandleRefresh)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.JWTAuth(cfg.JWTSecret))
		r.Get("/user/me", userHandler.HandleMe)
		r.Put("/user/changePassword", userHandler.HandleChangePassword)

		r.Get("/generator/myGenerators", generatorHandler.HandleMyGenerators)
		r.Get("/generator/generate/{id}", generatorHandler.HandleGenerate)
		r.Get("/generator/{id}", generatorHandler.HandleGetGenerator)
		r.Post("/generator/add", generatorHandler.HandleAddGenerator)
		r.Delete("/generator/delete/{id}", generatorHandler.HandleDeleteGenerator)
		r.Put("/generator/addOption/{generatorId}", generatorHandler.HandleAddOption)
		r.Put("/generator/deleteOption/{optionId}", generatorHandler.HandleDeleteOption)
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
