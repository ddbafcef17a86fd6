package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hirefusion/hirefusion-go/internal/config"
	"github.com/hirefusion/hirefusion-go/internal/crypto"
	"github.com/hirefusion/hirefusion-go/internal/repository"
	"github.com/hirefusion/hirefusion-go/internal/server"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	deps := server.Deps{
		Tokens:       crypto.NewTokenIssuer(cfg.TokenSecret, cfg.TokenTTL),
		Jobs:         repository.NewMemoryJobRepository(),
		Applications: repository.NewMemoryApplicationRepository(),
		CORSOrigins:  cfg.CORSOrigins,
	}

	var client *mongo.Client
	switch {
	case cfg.Store == config.StoreMemory:
		slog.Info("using in-memory store")
	case cfg.MongoURI == "":
		slog.Warn("no MongoDB credentials configured, falling back to in-memory store")
	default:
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		client, err = repository.Connect(ctx, cfg.MongoURI)
		cancel()
		if err != nil {
			slog.Error("mongodb connection failed", "error", err)
			os.Exit(1)
		}

		db := client.Database(cfg.DBName)
		deps.Jobs = repository.NewJobRepository(db.Collection(repository.JobsCollection))
		deps.Applications = repository.NewApplicationRepository(db.Collection(repository.ApplicationCollection))
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: server.NewRouter(deps),
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env, "store", cfg.Store)
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

	if client != nil {
		if err := client.Disconnect(ctx); err != nil {
			slog.Error("mongodb disconnect", "error", err)
		}
	}

	slog.Info("server stopped")
}
