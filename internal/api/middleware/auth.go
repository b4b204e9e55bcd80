package middleware

import (
	"net/http"

	"github.com/m04kA/FitClub-BookingService/internal/api/handlers"
)

// TrainerIDHeader заголовок идентификации тренера
const TrainerIDHeader = "X-Trainer-ID"

// Auth проверяет наличие заголовка X-Trainer-ID на защищенных маршрутах
// Это идентификация вызывающего, а не полноценная аутентификация:
// многопользовательский контроль доступа вне рамок сервиса
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get(TrainerIDHeader) == "" {
			handlers.RespondUnauthorized(w, "отсутствует заголовок X-Trainer-ID")
			return
		}

		next.ServeHTTP(w, r)
	})
}
