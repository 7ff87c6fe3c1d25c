package save_room_type

import (
	"context"

	"github.com/m04kA/SMC-HotelQuoteService/internal/domain"
	"github.com/m04kA/SMC-HotelQuoteService/internal/service/roomtypes/models"
)

type RoomTypeService interface {
	Save(ctx context.Context, currentSlug string, input *models.RoomTypeInput) (*domain.RoomType, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
