// Package localstore 提供客户端的持久化键值存储，
// 对应浏览器端 localStorage 的角色（令牌、用户快照、主题、偏好）。
package localstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// 持久化键名，与原前端 localStorage 键保持一致。
const (
	KeyAuthToken   = "authToken"
	KeyUserData    = "userData"
	KeyTheme       = "app-theme"
	KeyPreferences = "app-user-preferences"
)

// ErrNotFound 表示键不存在。
var ErrNotFound = errors.New("localstore: key not found")

// Entry 是存储表中的一行。
type Entry struct {
	Key       string `gorm:"primaryKey;size:128"`
	Value     []byte
	UpdatedAt time.Time
}

// Store 封装底层 SQLite 数据库。
type Store struct {
	db *gorm.DB
}

// Open 打开（必要时创建）状态库文件。path 传 ":memory:" 可得到测试用内存库。
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open state db: %w", err)
	}
	if path == ":memory:" {
		// 内存库只在单个连接上可见，连接池必须收敛到 1
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.SetMaxOpenConns(1)
		}
	}
	if err := db.AutoMigrate(&Entry{}); err != nil {
		return nil, fmt.Errorf("migrate state db: %w", err)
	}
	return &Store{db: db}, nil
}

// Get 读取键对应的原始值。
func (s *Store) Get(key string) ([]byte, error) {
	var entry Entry
	if err := s.db.First(&entry, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get %s: %w", key, err)
	}
	return entry.Value, nil
}

// Set 写入键值，存在则覆盖。
func (s *Store) Set(key string, value []byte) error {
	entry := Entry{Key: key, Value: value, UpdatedAt: time.Now()}
	if err := s.db.Save(&entry).Error; err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

// Delete 删除键；键不存在不视为错误。
func (s *Store) Delete(key string) error {
	if err := s.db.Delete(&Entry{}, "key = ?", key).Error; err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

// GetString 读取字符串值。
func (s *Store) GetString(key string) (string, error) {
	b, err := s.Get(key)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// SetString 写入字符串值。
func (s *Store) SetString(key, value string) error {
	return s.Set(key, []byte(value))
}

// GetJSON 读取并反序列化 JSON 值到 out。
func (s *Store) GetJSON(key string, out any) error {
	b, err := s.Get(key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}

// SetJSON 序列化 value 并写入。
func (s *Store) SetJSON(key string, value any) error {
	b, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return s.Set(key, b)
}
