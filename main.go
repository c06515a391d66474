package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vidhub/infrastructure/cache"
	"vidhub/infrastructure/configuration"
	"vidhub/infrastructure/logger"
	"vidhub/infrastructure/persistence"
	"vidhub/infrastructure/storage"
	httpHandler "vidhub/interfaces/http"
	"vidhub/seeder"
	"vidhub/server"
	"vidhub/usecase"

	"golang.org/x/sync/errgroup"
)

var httpServer *http.Server

func recoverPanic() {
	if err := recover(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Application panic recovered")
	}
}

func main() {
	defer recoverPanic()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interrupt)

	g, ctx := errgroup.WithContext(ctx)

	// Env files are non-destructive; OS env still has precedence.
	configuration.LoadEnvFromFile("config.env", ".env")

	app := configuration.C.App

	mongoClient, err := persistence.NewMongoDb(
		configuration.C.Database.Mongo.Host,
		configuration.C.Database.Mongo.Port,
		configuration.C.Database.Mongo.User,
		configuration.C.Database.Mongo.Password,
	)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Cannot connect to MongoDB")
		os.Exit(1)
	}
	if err := mongoClient.Ping(ctx, nil); err != nil {
		logger.GetLogger().WithField("error", err).Error("MongoDB ping failed")
		os.Exit(1)
	}
	logger.GetLogger().Info("MongoDB connected successfully")
	db := mongoClient.Database(configuration.C.Database.Mongo.Name)

	// Redis only backs the suggestion cache; search works without it.
	redisClient, err := cache.NewCache(
		ctx,
		fmt.Sprintf("%s:%s", configuration.C.RedisClient.Host, configuration.C.RedisClient.Port),
		configuration.C.RedisClient.Username,
		configuration.C.RedisClient.Password,
	)
	if err != nil {
		logger.GetLogger().WithField("error", err).Warn("Redis not available - suggestion caching disabled")
		redisClient = nil
	}

	mediaStore, err := storage.NewMediaStore(
		ctx,
		configuration.C.Media.Endpoint,
		configuration.C.Media.AccessKey,
		configuration.C.Media.SecretKey,
		configuration.C.Media.Bucket,
		configuration.C.Media.PublicURL,
		configuration.C.Media.UseSSL,
	)
	if err != nil {
		logger.GetLogger().WithField("error", err).Warn("Media store not available - uploads disabled")
		mediaStore = nil
	}

	userRepository := persistence.NewUserRepository(db)
	channelRepository := persistence.NewChannelRepository(db)
	videoRepository := persistence.NewVideoRepository(db)
	playlistRepository := persistence.NewPlaylistRepository(db)

	if configuration.C.Seed {
		if err := seeder.Seed(ctx, db); err != nil {
			logger.GetLogger().WithField("error", err).Error("Seeding failed")
		}
	}

	userUsecase := usecase.NewUserUsecase(userRepository, channelRepository, videoRepository, playlistRepository, mediaStore, app.SecretKey)
	channelUsecase := usecase.NewChannelUsecase(channelRepository, userRepository, videoRepository, mediaStore)
	videoUsecase := usecase.NewVideoUsecase(videoRepository, channelRepository, userRepository, mediaStore)
	playlistUsecase := usecase.NewPlaylistUsecase(playlistRepository, videoRepository, userRepository)
	searchUsecase := usecase.NewSearchUsecase(videoRepository, playlistRepository, cache.NewSuggestionCache(redisClient, time.Minute))

	userHandler := httpHandler.NewUserHandler(userUsecase)
	channelHandler := httpHandler.NewChannelHandler(channelUsecase)
	videoHandler := httpHandler.NewVideoHandler(videoUsecase)
	playlistHandler := httpHandler.NewPlaylistHandler(playlistUsecase)
	commentHandler := httpHandler.NewCommentHandler(videoUsecase)
	searchHandler := httpHandler.NewSearchHandler(searchUsecase)

	router := server.InitiateRouter(
		userHandler,
		channelHandler,
		videoHandler,
		playlistHandler,
		commentHandler,
		searchHandler,
		userRepository,
		app.SecretKey,
	)

	port := app.Port
	logger.GetLogger().WithField("port", port).Info("Starting application")
	g.Go(func() error {
		httpServer = &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: router,
		}
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	select {
	case <-interrupt:
		logger.GetLogger().Info("Application shutdown requested")
	case <-ctx.Done():
	}

	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if httpServer != nil {
		_ = httpServer.Shutdown(shutdownCtx)
	}
	_ = mongoClient.Disconnect(shutdownCtx)
	if redisClient != nil {
		_ = redisClient.Close()
	}

	if err := g.Wait(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Server returned an error")
		os.Exit(2)
	}
}
