package handlers

import "github.com/m04kA/SMC-HotelQuoteService/internal/domain"

// BreakdownResponse расшифровка стоимости проживания
type BreakdownResponse struct {
	RoomType         string `json:"roomType"`
	Base             string `json:"base"`
	ExtraAdults      int    `json:"extraAdults"`
	ExtraKids        int    `json:"extraKids"`
	ExtraAdultPrice  string `json:"extraAdultPrice"`
	ExtraKidPrice    string `json:"extraKidPrice"`
	ExtraAdultsCost  string `json:"extraAdultsCost"`
	ExtraKidsCost    string `json:"extraKidsCost"`
	SubtotalPerNight string `json:"subtotalPerNight"`
	Nights           int    `json:"nights"`
	Total            string `json:"total"`
}

// FromBreakdown конвертирует расчет в ответ, суммы форматируются с двумя знаками
func FromBreakdown(b *domain.PriceBreakdown) *BreakdownResponse {
	if b == nil {
		return nil
	}
	return &BreakdownResponse{
		RoomType:         b.RoomTypeSlug,
		Base:             b.Base.StringFixed(domain.PriceScale),
		ExtraAdults:      b.ExtraAdultsCount,
		ExtraKids:        b.ExtraKidsCount,
		ExtraAdultPrice:  b.ExtraAdultPrice.StringFixed(domain.PriceScale),
		ExtraKidPrice:    b.ExtraKidPrice.StringFixed(domain.PriceScale),
		ExtraAdultsCost:  b.ExtraAdultsCost.StringFixed(domain.PriceScale),
		ExtraKidsCost:    b.ExtraKidsCost.StringFixed(domain.PriceScale),
		SubtotalPerNight: b.SubtotalPerNight.StringFixed(domain.PriceScale),
		Nights:           b.Nights,
		Total:            b.Total.StringFixed(domain.PriceScale),
	}
}
