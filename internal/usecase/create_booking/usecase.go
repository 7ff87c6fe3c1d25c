package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-HotelQuoteService/internal/domain"
	"github.com/m04kA/SMC-HotelQuoteService/internal/integrations/mailer"
	"github.com/m04kA/SMC-HotelQuoteService/internal/service/quote"
)

// uuidGenerator генерирует коды подтверждения в формате UUID v4
type uuidGenerator struct{}

func (uuidGenerator) NewCode() string {
	return uuid.NewString()
}

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo       BookingRepository
	roomTypes         RoomTypeProvider
	settings          SettingsProvider
	notifier          Notifier
	metrics           Metrics
	fallbackRecipient string
	timeProvider      TimeProvider
	codes             CodeGenerator
	logger            Logger
}

// NewUseCase создает новый экземпляр use case.
// fallbackRecipient получает письмо сотрудникам, если в настройках не указан ни один адрес.
func NewUseCase(
	bookingRepo BookingRepository,
	roomTypes RoomTypeProvider,
	settings SettingsProvider,
	notifier Notifier,
	metrics Metrics,
	fallbackRecipient string,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:       bookingRepo,
		roomTypes:         roomTypes,
		settings:          settings,
		notifier:          notifier,
		metrics:           metrics,
		fallbackRecipient: strings.TrimSpace(fallbackRecipient),
		timeProvider:      &RealTimeProvider{},
		codes:             uuidGenerator{},
		logger:            logger,
	}
}

// Execute выполняет use case создания бронирования.
// Стоимость всегда считается на сервере, сумма из браузера игнорируется.
// Ошибки отправки писем только логируются и не отменяют бронирование.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: room_type=%q, check_in=%s, nights=%d, adults=%d, kids=%d",
		req.RoomTypeSlug, req.CheckIn, req.Nights, req.Adults, req.Kids)

	// 1. Honeypot
	if req.Honeypot.Filled() {
		uc.logger.Warn("CreateBooking: honeypot field filled, request dropped")
		uc.metrics.IncBooking(resultSpam)
		return nil, ErrSpamDetected
	}

	// 2. Контактные данные
	req, err := normalizeRequest(req)
	if err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		uc.metrics.IncBooking(resultInvalid)
		return nil, err
	}

	// 3. Дата заезда
	now := uc.timeProvider.Now()
	checkIn, err := parseCheckIn(req.CheckIn, now)
	if err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		uc.metrics.IncBooking(resultInvalid)
		return nil, err
	}

	// 4. Снимок реестра и настройки
	roomTypes, err := uc.roomTypes.GetAll(ctx)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to load room types: %v", err)
		uc.metrics.IncBooking(resultError)
		return nil, fmt.Errorf("%w: failed to load room types: %v", ErrInternal, err)
	}

	hotelSettings, err := uc.settings.Get(ctx)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to load settings: %v", err)
		uc.metrics.IncBooking(resultError)
		return nil, fmt.Errorf("%w: failed to load settings: %v", ErrInternal, err)
	}

	// 5. Проверка размещения и расчет стоимости
	breakdown, err := quote.Calculate(roomTypes, hotelSettings.ExtraRates(), quote.Request{
		RoomTypeSlug: req.RoomTypeSlug,
		Adults:       req.Adults,
		Kids:         req.Kids,
		Nights:       req.Nights,
	})
	if err != nil {
		uc.logger.Warn("CreateBooking: occupancy rejected for room_type=%q: %v", req.RoomTypeSlug, err)
		uc.metrics.IncBooking(resultRejected)
		return nil, err
	}
	uc.logClientTotal(req.ClientTotal, breakdown.Total)

	// 6. Сохраняем бронирование
	booking := &domain.Booking{
		ConfirmationCode: uc.codes.NewCode(),
		GuestName:        req.GuestName,
		GuestEmail:       req.GuestEmail,
		GuestPhone:       req.GuestPhone,
		CheckInDate:      checkIn,
		CheckOutDate:     checkIn.AddDate(0, 0, req.Nights),
		Nights:           req.Nights,
		RoomTypeSlug:     req.RoomTypeSlug,
		AdultsCount:      req.Adults,
		KidsCount:        req.Kids,
		TotalPrice:       breakdown.Total,
		Status:           domain.StatusPending,
		Notes:            req.Notes,
	}

	created, err := uc.bookingRepo.Create(ctx, booking)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to create booking: %v", err)
		uc.metrics.IncBooking(resultError)
		return nil, fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
	}

	uc.metrics.IncBooking(resultCreated)
	uc.logger.Info("CreateBooking: successfully created booking id=%d, total=%s",
		created.ID, created.TotalPrice.StringFixed(domain.PriceScale))

	// 7. Письма сотрудникам и гостю
	roomTypeName := created.RoomTypeSlug
	if rt, ok := roomTypes.Find(created.RoomTypeSlug); ok {
		roomTypeName = rt.Name
	}
	uc.notify(ctx, hotelSettings, &mailer.BookingNotification{
		Booking:       created,
		RoomTypeName:  roomTypeName,
		Breakdown:     breakdown,
		ShowBreakdown: hotelSettings.ShowPriceBreakdown,
	})

	return &Response{
		ID:               created.ID,
		ConfirmationCode: created.ConfirmationCode,
		CheckInDate:      created.CheckInDate,
		CheckOutDate:     created.CheckOutDate,
		Nights:           created.Nights,
		RoomTypeSlug:     created.RoomTypeSlug,
		Adults:           created.AdultsCount,
		Kids:             created.KidsCount,
		Status:           string(created.Status),
		Breakdown:        breakdown,
		ShowBreakdown:    hotelSettings.ShowPriceBreakdown,
		ThankYouPageURL:  hotelSettings.ThankYouPageURL,
		CreatedAt:        created.CreatedAt,
	}, nil
}

// notify отправляет письма. Бронирование к этому моменту уже сохранено.
func (uc *UseCase) notify(ctx context.Context, hotelSettings *domain.HotelSettings, n *mailer.BookingNotification) {
	recipients := hotelSettings.StaffEmails
	if !hotelSettings.HasStaffRecipients() && uc.fallbackRecipient != "" {
		recipients = []string{uc.fallbackRecipient}
	}

	err := uc.notifier.SendStaffNotification(ctx, recipients, n)
	uc.metrics.IncNotification(recipientStaff, err)
	if err != nil {
		if errors.Is(err, mailer.ErrNoRecipients) {
			uc.logger.Warn("CreateBooking: no staff recipients configured for booking id=%d", n.Booking.ID)
		} else {
			uc.logger.Error("CreateBooking: failed to notify staff for booking id=%d: %v", n.Booking.ID, err)
		}
	}

	err = uc.notifier.SendGuestConfirmation(ctx, n)
	uc.metrics.IncNotification(recipientGuest, err)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to send guest confirmation for booking id=%d: %v", n.Booking.ID, err)
	}
}

func (uc *UseCase) logClientTotal(clientTotal *string, serverTotal decimal.Decimal) {
	if clientTotal == nil || *clientTotal == "" {
		return
	}
	value, err := decimal.NewFromString(strings.TrimSpace(*clientTotal))
	if err != nil || !value.Equal(serverTotal) {
		uc.logger.Warn("CreateBooking: client total %q differs from server total %s",
			*clientTotal, serverTotal.StringFixed(domain.PriceScale))
	}
}
