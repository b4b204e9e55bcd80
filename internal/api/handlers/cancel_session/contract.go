package cancel_session

import "context"

type SessionService interface {
	Cancel(ctx context.Context, sessionID string) error
}

// Metrics интерфейс доменных счетчиков
type Metrics interface {
	IncCancelled()
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
