package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"particleapi/internal/config"
	"particleapi/internal/handler"
	"particleapi/internal/infrastructure/database"
	"particleapi/internal/job"
	"particleapi/internal/logger"
	"particleapi/internal/service"
	"particleapi/pkg/idgen"

	"github.com/rs/zerolog"
)

const shutdownTimeout = 5 * time.Second

func main() {
	// 加载配置
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

	// 初始化 ID 生成器
	ids, err := idgen.NewSnowflake(1)
	if err != nil {
		log.Fatal().Err(err).Msg("初始化 ID 生成器失败")
	}

	// 初始化 PostgreSQL
	db, err := database.InitPostgres(cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("初始化数据库失败")
	}
	defer database.Close(db, log)

	// 创建上下文（用于优雅关闭）
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 启动后台任务
	if cfg.Job.PoolStatsIntervalSeconds > 0 {
		sqlDB, err := db.DB()
		if err != nil {
			log.Fatal().Err(err).Msg("获取底层 DB 失败")
		}
		reporter := job.NewPoolStatsReporter(sqlDB, time.Duration(cfg.Job.PoolStatsIntervalSeconds)*time.Second, log)
		go reporter.Start(ctx)
	}

	// 设置路由
	router := handler.SetupRouter(service.NewParticleService(db), log, ids, cfg.Server.Mode)

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// 每个请求由 net/http 在独立 goroutine 中处理，阻塞的数据库调用不会卡住其他请求
	serverErr := make(chan error, 1)
	go func() {
		log.Info().Str("addr", server.Addr).Msg("服务启动")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// 等待中断信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		log.Info().Str("signal", sig.String()).Msg("正在关闭服务...")
	case err := <-serverErr:
		log.Error().Err(err).Msg("服务启动失败")
	}

	// 取消上下文，停止后台任务
	cancel()

	// 关闭 HTTP 服务（等待最多5秒）
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("服务关闭异常")
	}

	log.Info().Msg("服务已关闭")
}
