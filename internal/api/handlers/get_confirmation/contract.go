package get_confirmation

import (
	"context"

	"github.com/m04kA/SMC-HotelQuoteService/internal/service/bookings/models"
)

type BookingService interface {
	GetByConfirmationCode(ctx context.Context, code string) (*models.ConfirmationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
