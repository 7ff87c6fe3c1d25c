package preview_quote

import (
	"context"

	"github.com/m04kA/SMC-HotelQuoteService/internal/domain"
)

// RoomTypeProvider интерфейс реестра типов номеров
type RoomTypeProvider interface {
	GetAll(ctx context.Context) (domain.RoomTypes, error)
}

// SettingsProvider интерфейс глобальных настроек отеля
type SettingsProvider interface {
	Get(ctx context.Context) (*domain.HotelSettings, error)
}

// Metrics интерфейс счетчиков расчетов
type Metrics interface {
	IncQuote(outcome string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
