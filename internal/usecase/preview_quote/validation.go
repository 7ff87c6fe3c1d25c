package preview_quote

import (
	"strings"

	"github.com/m04kA/SMC-HotelQuoteService/internal/domain"
)

// normalizeRequest приводит значения к допустимым.
// Состав гостей не ограничивается здесь: лимиты проверяет occupancy, как и при бронировании.
func normalizeRequest(req *Request) *Request {
	normalized := *req
	if normalized.Nights < domain.MinNights {
		normalized.Nights = domain.MinNights
	}
	normalized.RoomTypeSlug = strings.ToLower(strings.TrimSpace(req.RoomTypeSlug))

	return &normalized
}
