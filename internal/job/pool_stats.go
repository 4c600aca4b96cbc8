package job

import (
	"context"
	"database/sql"
	"time"

	"github.com/rs/zerolog"
)

// StatsSource 提供连接池统计，*sql.DB 满足该接口
type StatsSource interface {
	Stats() sql.DBStats
}

// PoolStatsReporter 定期输出连接池使用情况
type PoolStatsReporter struct {
	source   StatsSource
	log      zerolog.Logger
	interval time.Duration
}

func NewPoolStatsReporter(source StatsSource, interval time.Duration, log zerolog.Logger) *PoolStatsReporter {
	return &PoolStatsReporter{
		source:   source,
		log:      log.With().Str("job", "pool_stats").Logger(),
		interval: interval,
	}
}

// Start 阻塞运行，ctx 取消后退出
func (j *PoolStatsReporter) Start(ctx context.Context) {
	j.log.Info().Dur("interval", j.interval).Msg("连接池统计任务启动")

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			j.log.Info().Msg("收到停止信号，任务退出")
			return
		case <-ticker.C:
			j.report()
		}
	}
}

func (j *PoolStatsReporter) report() {
	s := j.source.Stats()

	event := j.log.Info()
	// 有请求在等待连接时升级为 warn
	if s.WaitCount > 0 {
		event = j.log.Warn()
	}
	event.
		Int("max_open", s.MaxOpenConnections).
		Int("open", s.OpenConnections).
		Int("in_use", s.InUse).
		Int("idle", s.Idle).
		Int64("wait_count", s.WaitCount).
		Dur("wait_duration", s.WaitDuration).
		Int64("max_idle_closed", s.MaxIdleClosed).
		Int64("max_lifetime_closed", s.MaxLifetimeClosed).
		Msg("连接池状态")
}
