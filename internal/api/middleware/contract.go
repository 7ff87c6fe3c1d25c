package middleware

import (
	"time"

	"github.com/m04kA/SMC-HotelQuoteService/pkg/jwt"
)

// HTTPMetrics интерфейс сборщика HTTP метрик
type HTTPMetrics interface {
	ObserveHTTPRequest(method, path string, status int, duration time.Duration)
}

// TokenValidator интерфейс проверки JWT токенов администратора
type TokenValidator interface {
	ValidateToken(tokenStr string) (*jwt.Claims, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
