package config

import (
	"os"
	"strings"

	"github.com/pkg/errors"

	"taglog/logger"
)

// 環境変数名
const (
	EnvLevel = "TAGLOG_LEVEL"
	EnvTag   = "TAGLOG_TAG"
)

// Config はCLIのロガー設定
type Config struct {
	Level string
	Tag   string
	NoTag bool
}

// FromEnv は環境変数から設定を読み込む
func FromEnv() Config {
	return Config{
		Level: getString(EnvLevel, logger.LevelInfo.String()),
		Tag:   getString(EnvTag, logger.DefaultTag),
	}
}

func getString(key, fallback string) string {
	val, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	return val
}

// Validate は設定を検証する
func (c Config) Validate() error {
	if _, err := logger.ParseLevel(c.Level); err != nil {
		return errors.Wrap(err, "level")
	}
	if strings.ContainsAny(c.Tag, " \t\r\n") {
		return errors.Errorf("tag must not contain whitespace: %q", c.Tag)
	}
	return nil
}

// ToLoggerConfig はConfigをlogger.Configに変換する
func (c Config) ToLoggerConfig() (logger.Config, error) {
	cfg := logger.DefaultConfig()

	if err := c.Validate(); err != nil {
		return cfg, err
	}

	level, _ := logger.ParseLevel(c.Level)
	cfg.Level = &level
	cfg.Tag = c.Tag
	// 空のタグは「タグなし」として扱う
	if c.NoTag || c.Tag == "" {
		cfg.NoTag = true
	}

	return cfg, nil
}
