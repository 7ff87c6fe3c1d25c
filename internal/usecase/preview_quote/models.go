package preview_quote

import (
	"github.com/m04kA/SMC-HotelQuoteService/internal/domain"
	"github.com/m04kA/SMC-HotelQuoteService/internal/service/occupancy"
)

// Request модель запроса предварительного расчета
type Request struct {
	Adults       int    // Количество взрослых
	Kids         int    // Количество детей
	Nights       int    // Количество ночей, меньше 1 приводится к 1
	RoomTypeSlug string // Выбранный тип номера (опционально)
}

// Response результат подбора типов номеров и расчета
type Response struct {
	Outcome    occupancy.Outcome
	Forced     string
	Eligible   []string
	Rejections []occupancy.Rejection

	// Тип номера, по которому посчитана стоимость. Пусто, если гость еще не выбрал.
	RoomTypeSlug  string
	Breakdown     *domain.PriceBreakdown
	ShowBreakdown bool
}
