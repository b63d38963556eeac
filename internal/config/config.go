package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Mode 标识客户端的部署形态：连接真实后端，或使用内置 Mock 后端。
const (
	ModeAPI  = "api"
	ModeMock = "mock"
)

// Config aggregates application settings that may be sourced from files or environment variables.
type Config struct {
	Client  ClientConfig  `mapstructure:"client"`
	Storage StorageConfig `mapstructure:"storage"`
	Mock    MockConfig    `mapstructure:"mock"`
}

// ClientConfig contains settings for the outbound HTTP gateway.
type ClientConfig struct {
	BaseURL       string        `mapstructure:"base_url"`
	Timeout       time.Duration `mapstructure:"timeout"`
	PollInterval  time.Duration `mapstructure:"poll_interval"`
	Mode          string        `mapstructure:"mode"`
	PageSize      int           `mapstructure:"page_size"`
	ForumPageSize int           `mapstructure:"forum_page_size"`
	PostsPageSize int           `mapstructure:"posts_page_size"`
}

// StorageConfig 描述本地状态库（浏览器 localStorage 的等价物）的位置。
type StorageConfig struct {
	Path string `mapstructure:"path"`
}

// MockConfig contains settings for the in-process mock backend.
type MockConfig struct {
	Port      int    `mapstructure:"port"`
	JWTSecret string `mapstructure:"jwt_secret"`
}

// Load reads configuration solely from environment variables (with optional defaults).
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if err := bindEnv(v); err != nil {
		return nil, fmt.Errorf("bind env: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// MustLoad wraps Load and panics on failure.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("client.base_url", "http://localhost:8080/api")
	v.SetDefault("client.timeout", 15*time.Second)
	v.SetDefault("client.poll_interval", 2*time.Second)
	v.SetDefault("client.mode", ModeMock)
	v.SetDefault("client.page_size", 10)
	v.SetDefault("client.forum_page_size", 15)
	v.SetDefault("client.posts_page_size", 10)
	v.SetDefault("storage.path", "coach-state.db")
	v.SetDefault("mock.port", 8080)
	v.SetDefault("mock.jwt_secret", "dev-only-secret")
}

func bindEnv(v *viper.Viper) error {
	mappings := map[string]string{
		"client.base_url":        "COACH_API_BASE_URL",
		"client.timeout":         "COACH_HTTP_TIMEOUT",
		"client.poll_interval":   "COACH_POLL_INTERVAL",
		"client.mode":            "COACH_MODE",
		"client.page_size":       "COACH_PAGE_SIZE",
		"client.forum_page_size": "COACH_FORUM_PAGE_SIZE",
		"client.posts_page_size": "COACH_POSTS_PAGE_SIZE",
		"storage.path":           "COACH_STORAGE_PATH",
		"mock.port":              "COACH_MOCK_PORT",
		"mock.jwt_secret":        "COACH_MOCK_JWT_SECRET",
	}

	for key, env := range mappings {
		if err := v.BindEnv(key, env); err != nil {
			return fmt.Errorf("bind %s to %s: %w", key, env, err)
		}
	}

	return nil
}

func validate(cfg Config) error {
	if cfg.Client.BaseURL == "" {
		return errors.New("client base url is required")
	}
	if cfg.Client.Timeout <= 0 {
		return errors.New("client timeout must be positive")
	}
	if cfg.Client.PollInterval <= 0 {
		return errors.New("client poll interval must be positive")
	}
	if cfg.Client.Mode != ModeAPI && cfg.Client.Mode != ModeMock {
		return fmt.Errorf("client mode must be %q or %q", ModeAPI, ModeMock)
	}
	if cfg.Client.PageSize <= 0 {
		return errors.New("client page size must be positive")
	}
	if cfg.Storage.Path == "" {
		return errors.New("storage path is required")
	}
	if cfg.Mock.Port <= 0 {
		return errors.New("mock port must be positive")
	}
	if cfg.Mock.JWTSecret == "" {
		return errors.New("mock jwt secret is required")
	}
	return nil
}
