package quote

import (
	"github.com/m04kA/SMC-HotelQuoteService/internal/domain"
	"github.com/m04kA/SMC-HotelQuoteService/internal/service/occupancy"
	"github.com/m04kA/SMC-HotelQuoteService/internal/service/pricing"
)

// Request входные данные расчета по конкретному типу номера
type Request struct {
	RoomTypeSlug string
	Adults       int
	Kids         int
	Nights       int
}

// Calculate проверяет состав гостей и только после успешной проверки считает стоимость.
// Используется и для предварительного расчета, и для итоговой суммы бронирования.
// Возвращает *occupancy.ValidationError, если состав не проходит правила типа номера.
func Calculate(roomTypes domain.RoomTypes, rates domain.ExtraRates, req Request) (*domain.PriceBreakdown, error) {
	result := occupancy.ValidateSlug(roomTypes, req.RoomTypeSlug, req.Adults, req.Kids)
	if !result.Valid {
		return nil, result.Err()
	}

	breakdown := pricing.Compute(result.RoomType, req.Adults, req.Kids, req.Nights, rates)
	return &breakdown, nil
}
