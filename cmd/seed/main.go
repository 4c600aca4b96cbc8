package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"particleapi/internal/config"
	"particleapi/internal/infrastructure/database"
	"particleapi/internal/logger"
	"particleapi/internal/seed"
	"particleapi/internal/service"

	"github.com/rs/zerolog"
)

func main() {
	configPath := os.Getenv("PARTICLES_CONFIG")
	if configPath == "" {
		configPath = "config/config.yaml"
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		bootLog := zerolog.New(os.Stderr)
		bootLog.Fatal().Err(err).Msg("加载配置失败")
	}

	log := logger.New(cfg.Log)

	db, err := database.InitPostgres(cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("初始化数据库失败")
	}
	defer database.Close(db, log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	created, err := seed.Run(ctx, service.NewParticleService(db))
	if err != nil {
		log.Error().Err(err).Int("created", len(created)).Msg("写入初始数据失败")
		stop()
		database.Close(db, log)
		os.Exit(1)
	}

	log.Info().Int("created", len(created)).Msg("初始数据写入完成")
}
