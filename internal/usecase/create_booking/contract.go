package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-HotelQuoteService/internal/domain"
	"github.com/m04kA/SMC-HotelQuoteService/internal/integrations/mailer"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// RoomTypeProvider интерфейс реестра типов номеров
type RoomTypeProvider interface {
	GetAll(ctx context.Context) (domain.RoomTypes, error)
}

// SettingsProvider интерфейс глобальных настроек отеля
type SettingsProvider interface {
	Get(ctx context.Context) (*domain.HotelSettings, error)
}

// Notifier интерфейс отправки писем о бронировании
type Notifier interface {
	SendStaffNotification(ctx context.Context, recipients []string, n *mailer.BookingNotification) error
	SendGuestConfirmation(ctx context.Context, n *mailer.BookingNotification) error
}

// Metrics интерфейс счетчиков бронирований и писем
type Metrics interface {
	IncBooking(result string)
	IncNotification(recipient string, err error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// CodeGenerator интерфейс генерации кода подтверждения
type CodeGenerator interface {
	NewCode() string
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
