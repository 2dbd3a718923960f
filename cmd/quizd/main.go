package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"quizgen/internal/api"
	"quizgen/internal/auth"
	"quizgen/internal/config"
	"quizgen/internal/generator"
	"quizgen/internal/otel"
	"quizgen/internal/store"
	"quizgen/pkg/bus"
)

const serviceName = "quizd"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	_ = godotenv.Load()

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	cleanup, err := otel.Init(ctx, serviceName, cfg.OTLPEndpoint)
	if err != nil {
		log.Fatal().Err(err).Msg("init otel")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := cleanup(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("shutdown otel")
		}
	}()

	client, err := store.Connect(ctx, cfg.MongoURI)
	if err != nil {
		log.Fatal().Err(err).Msg("connect mongodb")
	}
	defer func() {
		if err := store.Close(context.Background(), client); err != nil {
			log.Error().Err(err).Msg("close mongodb")
		}
	}()

	db := client.Database(cfg.MongoDatabase)

	users, err := store.NewUserMongoStore(ctx, &log.Logger, db)
	if err != nil {
		log.Fatal().Err(err).Msg("init user store")
	}
	submissions := store.NewSubmissionMongoStore(db)
	contacts := store.NewContactMongoStore(db)

	tokens, err := auth.NewTokens([]byte(cfg.JWTSigningKey), cfg.TokenTTL)
	if err != nil {
		log.Fatal().Err(err).Msg("init token issuer")
	}

	invoker, err := generator.NewExec(cfg.GeneratorBin, cfg.GeneratorScript, cfg.GeneratorTimeout, log.Logger)
	if err != nil {
		log.Fatal().Err(err).Msg("init generator")
	}

	var eventBus *bus.Bus
	if cfg.NATSURL != "" {
		eventBus, err = bus.New(cfg.NATSURL)
		if err != nil {
			log.Fatal().Err(err).Msg("connect nats")
		}
		defer eventBus.Close()
	}

	app, err := api.New(users, submissions, contacts, invoker, tokens, eventBus, log.Logger, api.Config{
		UploadDir:      cfg.UploadDir,
		AllowedOrigins: cfg.AllowedOrigins,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("init api")
	}

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           app.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", cfg.Addr).Msg("starting quizd")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("http server")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown server")
	}
}
