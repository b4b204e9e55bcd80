package sessions

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена
	ErrSessionNotFound = errors.New("sessions: session not found")

	// ErrClientNotFound возвращается, когда клиент не найден в ростере
	ErrClientNotFound = errors.New("sessions: client not found")

	// ErrCannotCancel возвращается при попытке отменить завершенную сессию
	ErrCannotCancel = errors.New("sessions: session cannot be cancelled")

	// ErrCannotComplete возвращается при попытке завершить отмененную сессию
	ErrCannotComplete = errors.New("sessions: session cannot be completed")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("sessions: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("sessions: internal error")
)
