package logger

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestLevelLabel(t *testing.T) {
	tests := []struct {
		level    Level
		expected string
	}{
		{LevelNone, "NONE "},
		{LevelInfo, "INFO "},
		{LevelDebug, "DEBUG"},
		{LevelWarn, "WARN "},
		{LevelError, "ERROR"},
	}

	for _, tt := range tests {
		if got := tt.level.Label(); got != tt.expected {
			t.Errorf("Level(%d).Label() = %q, want %q", tt.level, got, tt.expected)
		}
		if len(tt.level.Label()) != 5 {
			t.Errorf("Level(%d) label is not 5 characters wide", tt.level)
		}
	}
}

func TestLevelOrder(t *testing.T) {
	levels := Levels()
	for i := 1; i < len(levels); i++ {
		if !(levels[i-1] < levels[i]) {
			t.Errorf("expected %s < %s", levels[i-1], levels[i])
		}
	}
}

func TestLevelValidate(t *testing.T) {
	for _, l := range Levels() {
		if err := l.Validate(); err != nil {
			t.Errorf("unexpected error for %s: %v", l, err)
		}
	}
	for _, l := range []Level{-1, 5, 99} {
		if err := l.Validate(); !errors.Is(err, ErrInvalidLevel) {
			t.Errorf("Level(%d): expected ErrInvalidLevel, got %v", l, err)
		}
		if l.Label() != "" {
			t.Errorf("Level(%d): expected empty label", l)
		}
	}
	if got := Level(99).String(); got != "level(99)" {
		t.Errorf("Level(99).String() = %s", got)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
		hasError bool
	}{
		{"none", LevelNone, false},
		{"INFO", LevelInfo, false},
		{" debug ", LevelDebug, false},
		{"Warn", LevelWarn, false},
		{"warning", LevelWarn, false},
		{"error", LevelError, false},
		{"3", LevelWarn, false},
		{"0", LevelNone, false},
		{"5", LevelNone, true},
		{"-1", LevelNone, true},
		{"fatal", LevelNone, true},
		{"", LevelNone, true},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.input)
		if tt.hasError {
			if !errors.Is(err, ErrInvalidLevel) {
				t.Errorf("ParseLevel(%q): expected ErrInvalidLevel, got %v", tt.input, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseLevel(%q): unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.expected {
			t.Errorf("ParseLevel(%q) = %s, want %s", tt.input, got, tt.expected)
		}
	}
}

func TestParseLevelRoundTrip(t *testing.T) {
	for _, l := range Levels() {
		got, err := ParseLevel(l.String())
		if err != nil || got != l {
			t.Errorf("ParseLevel(%q) = %s, %v", l.String(), got, err)
		}
	}
}

func TestConfigYAML(t *testing.T) {
	content := `
level: warn
tag: worker_1
`
	var cfg Config
	if err := yaml.Unmarshal([]byte(content), &cfg); err != nil {
		t.Fatalf("failed to parse YAML: %v", err)
	}
	if cfg.Level == nil || *cfg.Level != LevelWarn {
		t.Errorf("expected level warn, got %v", cfg.Level)
	}
	if cfg.Tag != "worker_1" {
		t.Errorf("expected tag 'worker_1', got '%s'", cfg.Tag)
	}
}

func TestConfigYAMLNumericLevel(t *testing.T) {
	var cfg Config
	if err := yaml.Unmarshal([]byte("level: 4\n"), &cfg); err != nil {
		t.Fatalf("failed to parse YAML: %v", err)
	}
	if cfg.Level == nil || *cfg.Level != LevelError {
		t.Errorf("expected level error, got %v", cfg.Level)
	}
}

func TestConfigYAMLInvalidLevel(t *testing.T) {
	tests := []string{
		"level: verbose\n",
		"level: [info]\n",
	}

	for _, content := range tests {
		var cfg Config
		if err := yaml.Unmarshal([]byte(content), &cfg); err == nil {
			t.Errorf("expected error for %q", content)
		}
	}
}

func TestConfigJSON(t *testing.T) {
	var cfg Config
	if err := json.Unmarshal([]byte(`{"level": "debug", "tag": "a.b"}`), &cfg); err != nil {
		t.Fatalf("failed to parse JSON: %v", err)
	}
	if cfg.Level == nil || *cfg.Level != LevelDebug || cfg.Tag != "a.b" {
		t.Errorf("unexpected config: %+v", cfg)
	}

	data, err := json.Marshal(Config{Level: LevelError.Ptr(), Tag: "x"})
	if err != nil {
		t.Fatalf("failed to marshal: %v", err)
	}
	if string(data) != `{"level":"error","tag":"x"}` {
		t.Errorf("unexpected JSON: %s", data)
	}
}

func TestFormatTime(t *testing.T) {
	tests := []struct {
		input    time.Time
		expected string
	}{
		{time.Date(2021, 9, 2, 1, 3, 4, 0, time.UTC), "2021-09-02 01:03:04"},
		{time.Date(2021, 9, 2, 1, 3, 4, 999999999, time.UTC), "2021-09-02 01:03:04"},
		// 10:03:04 in UTC+9 is 01:03:04 UTC
		{time.Date(2021, 9, 2, 10, 3, 4, 0, time.FixedZone("JST", 9*60*60)), "2021-09-02 01:03:04"},
		{time.Date(2021, 1, 1, 0, 30, 0, 0, time.FixedZone("UTC+1", 60*60)), "2020-12-31 23:30:00"},
		{time.Date(812, 3, 4, 5, 6, 7, 0, time.UTC), "0812-03-04 05:06:07"},
	}

	for _, tt := range tests {
		if got := FormatTime(tt.input); got != tt.expected {
			t.Errorf("FormatTime(%v) = %s, want %s", tt.input, got, tt.expected)
		}
	}
}

func TestNow(t *testing.T) {
	before := time.Now().UTC().Truncate(time.Second)
	got := Now()
	after := time.Now().UTC()

	ts, err := time.Parse(TimeLayout, got)
	if err != nil {
		t.Fatalf("Now() returned unparsable %q: %v", got, err)
	}
	if ts.Before(before) || ts.After(after) {
		t.Errorf("Now() = %s, not between %v and %v", got, before, after)
	}
}
