package settings

import (
	"context"

	"github.com/m04kA/SMC-HotelQuoteService/internal/domain"
)

// SettingsRepository интерфейс репозитория настроек
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.HotelSettings, error)
	Save(ctx context.Context, s *domain.HotelSettings) (*domain.HotelSettings, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
