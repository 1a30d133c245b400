package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"academicHub/internal/api/handlers"
	"academicHub/internal/api/server"
	"academicHub/internal/auth"
	"academicHub/internal/config"
	"academicHub/internal/logger"
	"academicHub/internal/metrics"
	"academicHub/internal/notify"
	"academicHub/internal/service"
	storageGorm "academicHub/internal/storage/gorm"
)

const metricsInterval = 5 * time.Second

func main() {
	if err := godotenv.Load(".env"); err != nil {
		fmt.Println("No .env file found")
	}
	envConfig := config.NewEnvConfig()
	envConfig.PrintConfigWithHiddenSecrets()

	logger.Setup(envConfig)

	db, err := storageGorm.ConnectDB(envConfig)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to get sql.DB")
	}

	// Коллектор connection pool и пересчёт gauge метрик workflow из БД
	stopCh := make(chan struct{})
	go metrics.StartDBStatsCollector(sqlDB, metricsInterval, stopCh)
	go metrics.StartWorkflowReconciler(func() (metrics.WorkflowSnapshot, error) {
		ctx, cancel := context.WithTimeout(context.Background(), metricsInterval)
		defer cancel()
		return storageGorm.WorkflowSnapshot(ctx, db)
	}, metricsInterval, stopCh)

	var publisher notify.Publisher = notify.NopPublisher{}
	if envConfig.Redis.URL != "" {
		redisPublisher, err := notify.NewRedisPublisher(envConfig.Redis.URL, envConfig.Redis.Channel)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize redis publisher")
		}
		defer redisPublisher.Close()
		publisher = redisPublisher
	} else {
		log.Warn().Msg("REDIS_URL is not set, workflow events are not published")
	}

	tokens, err := auth.NewManager(envConfig.JWT.Secret, envConfig.JWT.TTL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize token manager")
	}

	txManager := storageGorm.NewTxManager(db)
	appService := service.New(txManager, publisher)
	appHandler := handlers.NewHandler(appService, tokens)
	apiServer := server.NewServer(envConfig, appHandler)

	go apiServer.Run()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	s := <-sig
	log.Info().Msg(fmt.Sprintf("signal received: %s, starting graceful shutdown", s))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	apiServer.Shutdown(ctx)
	close(stopCh)

	if err := sqlDB.Close(); err != nil {
		log.Error().Err(err).Msg("failed to close database")
	}

	log.Info().Msg("service shutdown gracefully")
}
