package model

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// TimestampLayout 无时区时间的解析格式，小数秒位数不限
const TimestampLayout = "2006-01-02T15:04:05.999999"

const secondsLayout = "2006-01-02T15:04:05"

// Timestamp 对应 PostgreSQL 的 timestamp（不带时区）
//
// 只保留本地墙上时间，精度截断到微秒，与数据库存储精度一致，
// 这样写入后再读出的值完全相等。
type Timestamp struct {
	time.Time
}

// Now 当前本地时间
func Now() Timestamp {
	return NewTimestamp(time.Now())
}

// NewTimestamp 丢弃时区，只保留墙上时间
func NewTimestamp(t time.Time) Timestamp {
	wall := time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
	return Timestamp{Time: wall.Truncate(time.Microsecond)}
}

// String 小数秒按 0、3、6、9 位输出，例如 13、13.500、13.461100、13.000000120
func (t Timestamp) String() string {
	base := t.Time.Format(secondsLayout)
	ns := t.Time.Nanosecond()
	switch {
	case ns == 0:
		return base
	case ns%int(time.Millisecond) == 0:
		return fmt.Sprintf("%s.%03d", base, ns/int(time.Millisecond))
	case ns%int(time.Microsecond) == 0:
		return fmt.Sprintf("%s.%06d", base, ns/int(time.Microsecond))
	default:
		return fmt.Sprintf("%s.%09d", base, ns)
	}
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		*t = Timestamp{}
		return nil
	}
	return t.parse(strings.Trim(s, `"`))
}

func (t *Timestamp) parse(s string) error {
	for _, layout := range []string{TimestampLayout, time.RFC3339Nano, "2006-01-02 15:04:05.999999999-07:00", "2006-01-02 15:04:05.999999"} {
		if parsed, err := time.Parse(layout, s); err == nil {
			*t = NewTimestamp(parsed)
			return nil
		}
	}
	return fmt.Errorf("invalid timestamp %q", s)
}

// Scan 实现 sql.Scanner
func (t *Timestamp) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*t = Timestamp{}
		return nil
	case time.Time:
		*t = NewTimestamp(v)
		return nil
	case string:
		return t.parse(v)
	case []byte:
		return t.parse(string(v))
	default:
		return fmt.Errorf("cannot scan %T into Timestamp", value)
	}
}

// Value 实现 driver.Valuer
func (t Timestamp) Value() (driver.Value, error) {
	return t.Time, nil
}

// GormDataType AutoMigrate 时使用 timestamp 列类型
func (Timestamp) GormDataType() string {
	return "timestamp"
}
