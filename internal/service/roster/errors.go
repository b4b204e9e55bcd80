package roster

import "errors"

var (
	// ErrClientNotFound возвращается, когда клиент не найден
	ErrClientNotFound = errors.New("roster: client not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("roster: internal error")
)
