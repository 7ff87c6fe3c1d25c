package list_bookings

import (
	"context"

	"github.com/m04kA/SMC-HotelQuoteService/internal/service/bookings/models"
)

type BookingService interface {
	GetRecent(ctx context.Context, req *models.GetRecentRequest) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
