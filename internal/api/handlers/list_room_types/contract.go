package list_room_types

import (
	"context"

	"github.com/m04kA/SMC-HotelQuoteService/internal/domain"
)

type RoomTypeService interface {
	GetAll(ctx context.Context) (domain.RoomTypes, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
