package update_settings

import (
	"context"

	"github.com/m04kA/SMC-HotelQuoteService/internal/domain"
	"github.com/m04kA/SMC-HotelQuoteService/internal/service/settings/models"
)

type SettingsService interface {
	Update(ctx context.Context, req *models.UpdateSettingsRequest) (*domain.HotelSettings, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
