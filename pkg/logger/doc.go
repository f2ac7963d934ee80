// Package logger provides a thin factory around Go's slog package plus helper
// attribute constructors used across the SDK.
//
// The factory, New, builds a *slog.Logger from a set of Option functions:
// output format (text or json), minimum level, output destination, and static
// attributes applied to every record. NewDiscard returns a silent logger for
// components where callers did not inject one.
//
// Helper constructors such as Error, StatusCode, Method, and Route live in
// attr.go and return commonly-used slog.Attr instances to keep attribute
// naming consistent across the codebase.
//
// # Usage
//
//	import "github.com/panelkit/panelkit/pkg/logger"
//
//	log := logger.New(
//	    logger.WithTextFormatter(),
//	    logger.WithLevel(slog.LevelDebug),
//	)
//	log.Info("request completed",
//	    logger.Method(http.MethodGet),
//	    logger.Path("/api/v1/users"),
//	    logger.StatusCode(200),
//	)
package logger
