package roster

import "errors"

var (
	// ErrClientNotFound возвращается, когда клиент не найден в ростере
	ErrClientNotFound = errors.New("roster.store: client not found")
)
