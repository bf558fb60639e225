package middleware

import "time"

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type HTTPMetrics interface {
	ObserveHTTP(method, route string, status int, duration time.Duration)
}

// SessionChecker сообщает, есть ли действующая сессия
type SessionChecker interface {
	IsAuthenticated() bool
}
