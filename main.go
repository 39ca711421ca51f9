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

	"golang.org/x/sync/errgroup"

	"vidtube/infrastructure/cache"
	"vidtube/infrastructure/clients/media"
	"vidtube/infrastructure/configuration"
	"vidtube/infrastructure/logger"
	"vidtube/infrastructure/persistence"
	httpHandler "vidtube/interfaces/http"
	"vidtube/server"
	"vidtube/usecase"
)

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

	// Load env from files (non-destructive; OS env still has precedence).
	configuration.LoadEnvFromFile("config.env", ".env")

	cfg := configuration.C

	mongoClient, err := persistence.NewMongoDb(
		cfg.Database.Mongo.Host,
		cfg.Database.Mongo.Port,
		cfg.Database.Mongo.User,
		cfg.Database.Mongo.Password,
		cfg.Database.Mongo.Name,
	)
	if err != nil {
		logger.GetLogger().WithField("error", err).Fatal("MongoDB initialization failed")
	}
	pingCtx, cancelPing := context.WithTimeout(ctx, 10*time.Second)
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		cancelPing()
		logger.GetLogger().WithField("error", err).Fatal("MongoDB ping failed")
	}
	cancelPing()
	logger.GetLogger().Info("MongoDB connected successfully")
	db := persistence.Database(mongoClient, cfg.Database.Mongo.Name)

	redisClient, err := cache.NewCache(
		ctx,
		fmt.Sprintf("%s:%s", cfg.RedisClient.Host, cfg.RedisClient.Port),
		cfg.RedisClient.Username,
		cfg.RedisClient.Password,
	)
	if err != nil {
		logger.GetLogger().WithField("error", err).Warn("Redis not available - stats caching disabled")
		redisClient = nil
	}
	statsCache := cache.NewStatsCache(redisClient, time.Duration(cfg.RedisClient.StatsTTLSeconds)*time.Second)

	mediaStorage := media.NewClient(media.Config{
		UploadURL: cfg.Media.UploadURL,
		APIKey:    cfg.Media.APIKey,
		Timeout:   time.Duration(cfg.Media.TimeoutSeconds) * time.Second,
	})

	userRepository := persistence.NewUserRepository(db)
	videoRepository := persistence.NewVideoRepository(db)
	commentRepository := persistence.NewCommentRepository(db)
	likeRepository := persistence.NewLikeRepository(db)
	tweetRepository := persistence.NewTweetRepository(db)
	playlistRepository := persistence.NewPlaylistRepository(db)
	subscriptionRepository := persistence.NewSubscriptionRepository(db)
	dashboardRepository := persistence.NewDashboardRepository(db)

	userUsecase := usecase.NewUserUsecase(userRepository, mediaStorage)
	videoUsecase := usecase.NewVideoUsecase(videoRepository, commentRepository, likeRepository, userRepository, mediaStorage)
	commentUsecase := usecase.NewCommentUsecase(commentRepository, videoRepository, likeRepository)
	likeUsecase := usecase.NewLikeUsecase(likeRepository, videoRepository, commentRepository, tweetRepository)
	tweetUsecase := usecase.NewTweetUsecase(tweetRepository, likeRepository)
	playlistUsecase := usecase.NewPlaylistUsecase(playlistRepository, videoRepository)
	subscriptionUsecase := usecase.NewSubscriptionUsecase(subscriptionRepository, userRepository)
	dashboardUsecase := usecase.NewDashboardUsecase(dashboardRepository, statsCache)

	handlers := server.Handlers{
		User:         httpHandler.NewUserHandler(userUsecase),
		Video:        httpHandler.NewVideoHandler(videoUsecase),
		Comment:      httpHandler.NewCommentHandler(commentUsecase),
		Like:         httpHandler.NewLikeHandler(likeUsecase),
		Tweet:        httpHandler.NewTweetHandler(tweetUsecase),
		Playlist:     httpHandler.NewPlaylistHandler(playlistUsecase),
		Subscription: httpHandler.NewSubscriptionHandler(subscriptionUsecase),
		Dashboard:    httpHandler.NewDashboardHandler(dashboardUsecase),
		Health: httpHandler.NewHealthHandler(func(ctx context.Context) error {
			return mongoClient.Ping(ctx, nil)
		}),
	}

	router := server.InitiateRouter(handlers, userRepository)

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	logger.GetLogger().WithField("port", cfg.App.Port).Info("Starting application")
	g.Go(func() error {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		select {
		case sig := <-interrupt:
			logger.GetLogger().WithField("signal", sig.String()).Info("Shutdown signal received")
		case <-ctx.Done():
		}

		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancelShutdown()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.GetLogger().WithField("error", err).Error("Error while shutting down HTTP server")
		}
		if redisClient != nil {
			if err := redisClient.Close(); err != nil {
				logger.GetLogger().WithField("error", err).Error("Error while closing Redis client")
			}
		}
		persistence.CloseMongoDb(shutdownCtx, mongoClient)
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Application terminated with error")
	}
	logger.GetLogger().Info("Application stopped")
}
