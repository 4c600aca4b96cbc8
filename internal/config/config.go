package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix 环境变量前缀，例如 PARTICLES_SERVER_PORT -> server.port
const EnvPrefix = "PARTICLES"

// Config 全局配置结构
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Log      LogConfig      `mapstructure:"log"`
	Job      JobConfig      `mapstructure:"job"`
}

type ServerConfig struct {
	Host         string `mapstructure:"host" validate:"required"`
	Port         int    `mapstructure:"port" validate:"min=1,max=65535"`
	Mode         string `mapstructure:"mode" validate:"oneof=debug release test"`
	ReadTimeout  int    `mapstructure:"read_timeout" validate:"min=0"`
	WriteTimeout int    `mapstructure:"write_timeout" validate:"min=0"`
	IdleTimeout  int    `mapstructure:"idle_timeout" validate:"min=0"`
}

// Addr 返回 HTTP 监听地址
func (c ServerConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

type DatabaseConfig struct {
	// URL 优先级最高，兼容 DATABASE_URL
	URL             string `mapstructure:"url"`
	Host            string `mapstructure:"host" validate:"required_without=URL"`
	Port            int    `mapstructure:"port" validate:"min=1,max=65535"`
	User            string `mapstructure:"user"`
	Password        string `mapstructure:"password"`
	Name            string `mapstructure:"name" validate:"required_without=URL"`
	SSLMode         string `mapstructure:"ssl_mode"`
	MaxOpenConns    int    `mapstructure:"max_open_conns" validate:"min=1"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns" validate:"min=0"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
	ConnMaxIdleTime int    `mapstructure:"conn_max_idle_time"`
	PingTimeout     int    `mapstructure:"ping_timeout" validate:"min=1"`
	SlowThresholdMs int    `mapstructure:"slow_threshold_ms"`
}

// DSN 返回 PostgreSQL 连接串
func (c DatabaseConfig) DSN() string {
	if c.URL != "" {
		return c.URL
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     net.JoinHostPort(c.Host, strconv.Itoa(c.Port)),
		Path:     "/" + c.Name,
		RawQuery: "sslmode=" + url.QueryEscape(c.SSLMode),
	}
	return u.String()
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format" validate:"oneof=json console"`
}

type JobConfig struct {
	// 0 表示关闭连接池统计任务
	PoolStatsIntervalSeconds int `mapstructure:"pool_stats_interval_seconds" validate:"min=0"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", 3000)
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.read_timeout", 15)
	v.SetDefault("server.write_timeout", 15)
	v.SetDefault("server.idle_timeout", 60)

	v.SetDefault("database.url", "")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "")
	v.SetDefault("database.name", "particles")
	v.SetDefault("database.ssl_mode", "disable")
	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime", 3600)
	v.SetDefault("database.conn_max_idle_time", 300)
	v.SetDefault("database.ping_timeout", 5)
	v.SetDefault("database.slow_threshold_ms", 200)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	v.SetDefault("job.pool_stats_interval_seconds", 60)
}

// LoadConfig 加载配置
//
// 读取顺序：默认值 < 配置文件 < PARTICLES_* 环境变量 < DATABASE_URL。
// 配置文件不存在时只使用默认值和环境变量，最终结果经 validate 标签校验。
func LoadConfig(configPath string) (*Config, error) {
	// .env 不会覆盖已存在的环境变量
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("读取 .env 失败: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("读取配置文件失败: %w", err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("解析配置文件失败: %w", err)
	}

	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		cfg.Database.URL = dsn
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("配置校验失败: %w", err)
	}

	return cfg, nil
}
