package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// DefaultTag はタグ未指定時のタグ
const DefaultTag = "main"

// Logger はしきい値とタグを持つロガー。生成後は変更されない
type Logger struct {
	minLevel Level
	tag      string
	stdout   io.Writer
	stderr   io.Writer
	now      func() time.Time
}

// Option は Logger の生成オプション
type Option func(*Logger)

// WithLevel はしきい値を設定する
func WithLevel(level Level) Option {
	return func(l *Logger) {
		l.minLevel = level
	}
}

// WithTag はタグを設定する。空文字列はタグなし
func WithTag(tag string) Option {
	return func(l *Logger) {
		l.tag = tag
	}
}

// WithoutTag はタグを出力しない
func WithoutTag() Option {
	return WithTag("")
}

// WithOutput は出力先を差し替える
func WithOutput(stdout, stderr io.Writer) Option {
	return func(l *Logger) {
		l.stdout = stdout
		l.stderr = stderr
	}
}

// WithClock は時刻の取得元を差し替える
func WithClock(now func() time.Time) Option {
	return func(l *Logger) {
		l.now = now
	}
}

// New は新しいロガーを作成する
func New(opts ...Option) *Logger {
	l := &Logger{
		minLevel: LevelInfo,
		tag:      DefaultTag,
		stdout:   os.Stdout,
		stderr:   os.Stderr,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Config は Create に渡す設定。
// Level が nil なら INFO、Tag が空なら DefaultTag を使う。NoTag はタグを出力しない
type Config struct {
	Level *Level `yaml:"level,omitempty" json:"level,omitempty"`
	Tag   string `yaml:"tag,omitempty" json:"tag,omitempty"`
	NoTag bool   `yaml:"no_tag,omitempty" json:"no_tag,omitempty"`
}

// DefaultConfig はデフォルト設定を返す
func DefaultConfig() Config {
	level := LevelInfo
	return Config{
		Level: &level,
		Tag:   DefaultTag,
	}
}

// Options は Config を Option に変換する。未指定の項目はデフォルト値になる
func (c Config) Options() ([]Option, error) {
	level := LevelInfo
	if c.Level != nil {
		level = *c.Level
	}
	if err := level.Validate(); err != nil {
		return nil, err
	}

	tag := c.Tag
	switch {
	case c.NoTag:
		tag = ""
	case tag == "":
		tag = DefaultTag
	}

	return []Option{WithLevel(level), WithTag(tag)}, nil
}

// Create は設定からロガーを作成する
func Create(cfg Config, opts ...Option) (*Logger, error) {
	base, err := cfg.Options()
	if err != nil {
		return nil, err
	}
	return New(append(base, opts...)...), nil
}

// Level はしきい値を返す
func (l *Logger) Level() Level {
	return l.minLevel
}

// Tag はタグを返す
func (l *Logger) Tag() string {
	return l.tag
}

// Enabled は level のメッセージが出力されるかどうかを返す
func (l *Logger) Enabled(level Level) bool {
	if level == LevelNone || l.minLevel == LevelNone {
		return false
	}
	return level >= l.minLevel
}

// Write は指定されたレベルでログを出力する
func (l *Logger) Write(level Level, messages ...any) error {
	if err := level.Validate(); err != nil {
		return err
	}
	if !l.Enabled(level) {
		return nil
	}

	out := l.stdout
	if level == LevelError {
		out = l.stderr
	}

	line, err := Format(level, l.now(), l.tag, messages...)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(out, line); err != nil {
		return errors.Wrapf(err, "write %s line", level)
	}
	return nil
}

// Info は情報ログを出力する
func (l *Logger) Info(messages ...any) error {
	return l.Write(LevelInfo, messages...)
}

// Debug はデバッグログを出力する
func (l *Logger) Debug(messages ...any) error {
	return l.Write(LevelDebug, messages...)
}

// Warn は警告ログを出力する
func (l *Logger) Warn(messages ...any) error {
	return l.Write(LevelWarn, messages...)
}

// Error はエラーログを出力する
func (l *Logger) Error(messages ...any) error {
	return l.Write(LevelError, messages...)
}

// Format は1行分のログを組み立てる。末尾に改行を含む。
// LevelNone と定義外のレベルは ErrInvalidLevel
func Format(level Level, t time.Time, tag string, messages ...any) (string, error) {
	if level == LevelNone {
		return "", errors.Wrap(ErrInvalidLevel, "none is not a message level")
	}
	if err := level.Validate(); err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(level.Label())
	b.WriteByte(' ')
	b.WriteString(FormatTime(t))
	if tag != "" {
		b.WriteByte(' ')
		b.WriteString(tag)
	}
	b.WriteString(" -")
	for _, m := range messages {
		b.WriteByte(' ')
		b.WriteString(fmt.Sprint(m))
	}
	b.WriteByte('\n')
	return b.String(), nil
}
