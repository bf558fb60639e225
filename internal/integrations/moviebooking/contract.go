package moviebooking

import "time"

// TokenSource источник bearer токена текущей сессии
type TokenSource interface {
	Token() (string, bool)
}

// Metrics коллектор метрик вызовов бэкенда
type Metrics interface {
	ObserveBackend(endpoint, outcome string, duration time.Duration)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
