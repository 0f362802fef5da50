package logger

// Default はデフォルトのロガー。しきい値 INFO、タグ "main"
var Default = New()

// グローバル関数（デフォルトロガーを使用）

// Write は指定されたレベルでログを出力する
func Write(level Level, messages ...any) error {
	return Default.Write(level, messages...)
}

// Info は情報ログを出力する
func Info(messages ...any) error {
	return Default.Info(messages...)
}

// Debug はデバッグログを出力する
func Debug(messages ...any) error {
	return Default.Debug(messages...)
}

// Warn は警告ログを出力する
func Warn(messages ...any) error {
	return Default.Warn(messages...)
}

// Error はエラーログを出力する
func Error(messages ...any) error {
	return Default.Error(messages...)
}
