package logger

import (
	"log/slog"
	"time"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// StatusCode records an HTTP status code under the key "status_code".
func StatusCode(code int) slog.Attr {
	return slog.Int("status_code", code)
}

// Method records an HTTP method under the key "method".
func Method(method string) slog.Attr {
	return slog.String("method", method)
}

// Path records a request path under the key "path".
func Path(path string) slog.Attr {
	return slog.String("path", path)
}

// Route records a navigation route under the key "route".
func Route(route string) slog.Attr {
	return slog.String("route", route)
}

// UserID records the user identifier under the key "user_id".
// If id is nil, it returns an empty Attr.
func UserID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("user_id", id)
}

// RequestID records the outbound request identifier under the key "request_id".
func RequestID(id string) slog.Attr {
	return slog.String("request_id", id)
}

// Duration records an operation duration under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}
