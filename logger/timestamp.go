package logger

import "time"

// TimeLayout はログ行のタイムスタンプ形式
const TimeLayout = "2006-01-02 15:04:05"

// FormatTime は t を UTC の "YYYY-MM-DD HH:MM:SS" に整形する
func FormatTime(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}

// Now は現在時刻を整形する
func Now() string {
	return FormatTime(time.Now())
}
