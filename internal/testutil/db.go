// Package testutil 提供测试用的内存 SQLite 数据库，与 PostgreSQL 的 particles 表结构一致
package testutil

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const particlesSchema = `
CREATE TABLE IF NOT EXISTS particles (
	part_id    INTEGER PRIMARY KEY AUTOINCREMENT,
	part_type  VARCHAR NOT NULL,
	part_name  VARCHAR NOT NULL,
	mass       BIGINT NOT NULL,
	charge     VARCHAR NOT NULL,
	spin       VARCHAR NOT NULL,
	created_at TIMESTAMP NOT NULL,
	updated_at TIMESTAMP NOT NULL
)`

// NewDB 打开内存库并建表
//
// 连接池限制为 1 个连接，否则每个新连接都会看到一个空的内存库
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.Exec(particlesSchema).Error; err != nil {
		t.Fatalf("create schema: %v", err)
	}
	return db
}
