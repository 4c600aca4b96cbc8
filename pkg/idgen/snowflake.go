package idgen

import (
	"fmt"
	"strconv"
	"sync"
	"time"
)

// 雪花算法结构（64位）
//
//	0 - 41位时间戳 - 10位机器ID - 12位序列号
//
// 用于生成请求 ID，同一进程内严格递增
const (
	epoch          = int64(1704067200000) // 2024-01-01 00:00:00 UTC
	workerIDBits   = 10
	sequenceBits   = 12
	maxWorkerID    = -1 ^ (-1 << workerIDBits)
	maxSequence    = -1 ^ (-1 << sequenceBits)
	workerIDShift  = sequenceBits
	timestampShift = sequenceBits + workerIDBits
)

// RequestIDPrefix 请求 ID 前缀
const RequestIDPrefix = "REQ"

// Snowflake 雪花算法ID生成器，并发安全
type Snowflake struct {
	mu        sync.Mutex
	timestamp int64
	workerID  int64
	sequence  int64
}

// NewSnowflake workerID 必须在 0-1023 之间
func NewSnowflake(workerID int64) (*Snowflake, error) {
	if workerID < 0 || workerID > maxWorkerID {
		return nil, fmt.Errorf("workerID 必须在 0-%d 之间，当前为 %d", maxWorkerID, workerID)
	}
	return &Snowflake{workerID: workerID}, nil
}

// Generate 生成ID
func (s *Snowflake) Generate() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UnixMilli()

	if now <= s.timestamp {
		// 同一毫秒（或时钟回拨）内沿用上次时间戳，序列号递增
		now = s.timestamp
		s.sequence = (s.sequence + 1) & maxSequence
		if s.sequence == 0 {
			// 序列号用完，等待下一毫秒
			for now <= s.timestamp {
				now = time.Now().UnixMilli()
			}
		}
	} else {
		s.sequence = 0
	}

	s.timestamp = now

	return ((now - epoch) << timestampShift) |
		(s.workerID << workerIDShift) |
		s.sequence
}

// NewRequestID 格式：REQ + 雪花ID的36进制表示
func (s *Snowflake) NewRequestID() string {
	return RequestIDPrefix + strconv.FormatInt(s.Generate(), 36)
}
