// Package logger provides a small leveled, tagged line logger.
//
// Every line has the form
//
//	<LABEL> <YYYY-MM-DD HH:MM:SS>[ <tag>] -[ <message...>]
//
// where LABEL is a 5 character, space padded level name and the timestamp is
// always UTC. INFO, DEBUG and WARN go to standard output, ERROR goes to
// standard error.
//
// # Basic Usage
//
// Using the default logger:
//
//	logger.Info("Application started")
//	logger.Error("Failed:", err)
//
// Creating a custom logger:
//
//	l := logger.New(logger.WithLevel(logger.LevelWarn), logger.WithTag("db.pool"))
//	l.Warn("slow query", elapsed)
//
// Or from a Config, for example one decoded from a host application's YAML:
//
//	l, err := logger.Create(logger.Config{Level: logger.LevelDebug.Ptr(), Tag: "worker_1"})
//
// Fields left out of a Config get their defaults: level INFO, tag "main".
// Set NoTag to drop the tag segment.
//
// # Log Levels
//
// Levels are ordered NONE < INFO < DEBUG < WARN < ERROR. Messages below the
// threshold are dropped:
//   - LevelInfo: Info, Debug, Warn, Error
//   - LevelDebug: Debug, Warn, Error
//   - LevelWarn: Warn, Error
//   - LevelError: Error only
//   - LevelNone: nothing
//
// # Thread Safety
//
// A Logger is immutable after construction and holds no lock. Each line is
// handed to its sink in a single Write call.
package logger
