package complete_session

import "context"

type SessionService interface {
	Complete(ctx context.Context, sessionID string) error
}

// Metrics интерфейс доменных счетчиков
type Metrics interface {
	IncCompleted()
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
