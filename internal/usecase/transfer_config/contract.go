package transfer_config

import (
	"context"
	"time"

	"github.com/m04kA/SMC-HotelQuoteService/internal/domain"
	roomTypeModels "github.com/m04kA/SMC-HotelQuoteService/internal/service/roomtypes/models"
	settingsModels "github.com/m04kA/SMC-HotelQuoteService/internal/service/settings/models"
)

// RoomTypeService интерфейс реестра типов номеров
type RoomTypeService interface {
	GetAll(ctx context.Context) (domain.RoomTypes, error)
	Save(ctx context.Context, currentSlug string, input *roomTypeModels.RoomTypeInput) (*domain.RoomType, error)
}

// SettingsService интерфейс сервиса настроек
type SettingsService interface {
	Get(ctx context.Context) (*domain.HotelSettings, error)
	Update(ctx context.Context, req *settingsModels.UpdateSettingsRequest) (*domain.HotelSettings, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
