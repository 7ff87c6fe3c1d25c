package migrate_legacy

import (
	"context"

	"github.com/m04kA/SMC-HotelQuoteService/internal/domain"
	roomTypeModels "github.com/m04kA/SMC-HotelQuoteService/internal/service/roomtypes/models"
)

// RoomTypeService интерфейс реестра типов номеров
type RoomTypeService interface {
	IsSlugAvailable(ctx context.Context, slug, currentSlug string) (bool, error)
	Save(ctx context.Context, currentSlug string, input *roomTypeModels.RoomTypeInput) (*domain.RoomType, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
