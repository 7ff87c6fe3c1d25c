package preview_quote

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-HotelQuoteService/internal/domain"
	"github.com/m04kA/SMC-HotelQuoteService/internal/service/occupancy"
	"github.com/m04kA/SMC-HotelQuoteService/internal/service/quote"
)

// UseCase use case предварительного расчета стоимости для формы бронирования
type UseCase struct {
	roomTypes RoomTypeProvider
	settings  SettingsProvider
	metrics   Metrics
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(roomTypes RoomTypeProvider, settings SettingsProvider, metrics Metrics, logger Logger) *UseCase {
	return &UseCase{
		roomTypes: roomTypes,
		settings:  settings,
		metrics:   metrics,
		logger:    logger,
	}
}

// Execute подбирает подходящие типы номеров и считает стоимость выбранного или единственного варианта.
// Если не подходит ни один тип, возвращает *occupancy.ValidationError основной причины.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("PreviewQuote: adults=%d, kids=%d, nights=%d, room_type=%q",
		req.Adults, req.Kids, req.Nights, req.RoomTypeSlug)

	// 1. Нормализация входных данных
	req = normalizeRequest(req)

	// 2. Снимок реестра и цены за дополнительных гостей
	roomTypes, err := uc.roomTypes.GetAll(ctx)
	if err != nil {
		uc.logger.Error("PreviewQuote: failed to load room types: %v", err)
		return nil, fmt.Errorf("%w: failed to load room types: %v", ErrInternal, err)
	}

	hotelSettings, err := uc.settings.Get(ctx)
	if err != nil {
		uc.logger.Error("PreviewQuote: failed to load settings: %v", err)
		return nil, fmt.Errorf("%w: failed to load settings: %v", ErrInternal, err)
	}

	// 3. Подбор типов номеров
	resolution := occupancy.Resolve(roomTypes, req.Adults, req.Kids)
	uc.metrics.IncQuote(string(resolution.Outcome))

	if resolution.Outcome == occupancy.OutcomeRejected {
		err := resolution.Err()
		uc.logger.Warn("PreviewQuote: no eligible room type: %v", err)
		return nil, err
	}

	resp := &Response{
		Outcome:       resolution.Outcome,
		Forced:        resolution.Forced,
		Eligible:      resolution.Eligible,
		Rejections:    resolution.Rejections,
		ShowBreakdown: hotelSettings.ShowPriceBreakdown,
	}

	// 4. Выбор типа номера: единственный подходящий важнее выбора гостя
	slug := req.RoomTypeSlug
	if resolution.Outcome == occupancy.OutcomeForced {
		slug = resolution.Forced
	}
	if slug == "" {
		uc.logger.Info("PreviewQuote: %d room types eligible, waiting for guest choice", len(resp.Eligible))
		return resp, nil
	}

	// 5. Повторная проверка и расчет тем же кодом, что и при бронировании
	breakdown, err := quote.Calculate(roomTypes, hotelSettings.ExtraRates(), quote.Request{
		RoomTypeSlug: slug,
		Adults:       req.Adults,
		Kids:         req.Kids,
		Nights:       req.Nights,
	})
	if err != nil {
		if !resolution.IsEligible(slug) {
			if _, ok := roomTypes.Find(slug); ok {
				uc.logger.Warn("PreviewQuote: room type %s not eligible: %v", slug, err)
				return nil, fmt.Errorf("%w: %w", ErrRoomTypeNotEligible, err)
			}
		}
		uc.logger.Warn("PreviewQuote: room type %s rejected: %v", slug, err)
		return nil, err
	}

	resp.RoomTypeSlug = slug
	resp.Breakdown = breakdown

	uc.logger.Info("PreviewQuote: room_type=%s, total=%s", slug, breakdown.Total.StringFixed(domain.PriceScale))
	return resp, nil
}
