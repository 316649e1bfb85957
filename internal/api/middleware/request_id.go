package middleware

import (
	"net/http"

	"github.com/google/uuid"
)

// RequestIDHeader заголовок идентификатора запроса
const RequestIDHeader = "X-Request-ID"

// RequestID присваивает каждому запросу уникальный идентификатор,
// если клиент не передал свой
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
			r.Header.Set(RequestIDHeader, requestID)
		}

		w.Header().Set(RequestIDHeader, requestID)

		next.ServeHTTP(w, r)
	})
}
