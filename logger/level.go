package logger

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ErrInvalidLevel は定義外のレベルが渡されたことを表す
var ErrInvalidLevel = errors.New("invalid level")

// Level はログレベルを表す
type Level int

// LevelNone はしきい値専用で、メッセージの重要度としては使わない
const (
	LevelNone Level = iota
	LevelInfo
	LevelDebug
	LevelWarn
	LevelError
)

var labels = [...]string{
	LevelNone:  "NONE ",
	LevelInfo:  "INFO ",
	LevelDebug: "DEBUG",
	LevelWarn:  "WARN ",
	LevelError: "ERROR",
}

var names = [...]string{
	LevelNone:  "none",
	LevelInfo:  "info",
	LevelDebug: "debug",
	LevelWarn:  "warn",
	LevelError: "error",
}

// Levels は定義済みのレベルを昇順で返す
func Levels() []Level {
	return []Level{LevelNone, LevelInfo, LevelDebug, LevelWarn, LevelError}
}

// Valid はレベルが定義済みかどうかを返す
func (l Level) Valid() bool {
	return l >= LevelNone && l <= LevelError
}

// Validate は定義外のレベルに対して ErrInvalidLevel を返す
func (l Level) Validate() error {
	if !l.Valid() {
		return errors.Wrapf(ErrInvalidLevel, "level(%d)", int(l))
	}
	return nil
}

// Ptr は Config 用にレベルのポインタを返す
func (l Level) Ptr() *Level {
	return &l
}

// Label は5文字幅の表示ラベルを返す
func (l Level) Label() string {
	if !l.Valid() {
		return ""
	}
	return labels[l]
}

func (l Level) String() string {
	if !l.Valid() {
		return "level(" + strconv.Itoa(int(l)) + ")"
	}
	return names[l]
}

// ParseLevel は名前または数値からレベルを求める
func ParseLevel(s string) (Level, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if v == "warning" {
		return LevelWarn, nil
	}
	for i, name := range names {
		if v == name {
			return Level(i), nil
		}
	}
	if n, err := strconv.Atoi(v); err == nil {
		l := Level(n)
		if err := l.Validate(); err != nil {
			return LevelNone, err
		}
		return l, nil
	}
	return LevelNone, errors.Wrapf(ErrInvalidLevel, "%q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (l Level) MarshalText() ([]byte, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return []byte(names[l]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Level) UnmarshalText(text []byte) error {
	v, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = v
	return nil
}

// UnmarshalYAML は名前と数値の両方を受け付ける
func (l *Level) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return errors.Wrapf(ErrInvalidLevel, "line %d: expected a scalar", value.Line)
	}
	v, err := ParseLevel(value.Value)
	if err != nil {
		return errors.Wrapf(err, "line %d", value.Line)
	}
	*l = v
	return nil
}
