// Package logger 基于 zerolog 构建应用日志，并把 gorm 的 SQL 日志接入同一个 logger。
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"particleapi/internal/config"

	"github.com/rs/zerolog"
)

// New 根据配置创建 logger，format 为 console 时输出人类可读格式
func New(cfg config.LogConfig) zerolog.Logger {
	return NewWithWriter(cfg, os.Stdout)
}

func NewWithWriter(cfg config.LogConfig, w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	if cfg.Format == "console" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}
