package roomtypes

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-HotelQuoteService/internal/domain"
	"github.com/m04kA/SMC-HotelQuoteService/internal/service/roomtypes/models"
)

// SanitizeSlug приводит slug к нижнему регистру и оставляет только [a-z0-9_-]
func SanitizeSlug(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' || r == '-' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Normalize применяет значения по умолчанию и ограничения к входным данным
func Normalize(input *models.RoomTypeInput) (*domain.RoomType, error) {
	slug := SanitizeSlug(input.Slug)
	if slug == "" {
		return nil, fmt.Errorf("%w: slug is required", ErrInvalidInput)
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(name) > domain.MaxRoomTypeNameLength {
		return nil, fmt.Errorf("%w: name is longer than %d characters", ErrInvalidInput, domain.MaxRoomTypeNameLength)
	}

	price := decimal.Zero
	if input.BasePrice != nil && input.BasePrice.IsPositive() {
		price = input.BasePrice.Round(domain.PriceScale)
	}

	rule := domain.DefaultOverflowRule
	if input.OverflowRule != nil && domain.OverflowRule(*input.OverflowRule).IsValid() {
		rule = domain.OverflowRule(*input.OverflowRule)
	}

	rt := &domain.RoomType{
		Slug:          slug,
		Name:          name,
		BasePrice:     price,
		Beds:          clamp(input.Beds, domain.DefaultBeds, 1),
		BaseOccupancy: clamp(input.BaseOccupancy, domain.DefaultBaseOccupancy, 1),
		MaxTotal:      clamp(input.MaxTotal, domain.DefaultMaxTotal, 1),
		MaxAdults:     clamp(input.MaxAdults, domain.DefaultMaxAdults, 1),
		MaxKids:       clamp(input.MaxKids, domain.DefaultMaxKids, 0),
		OverflowRule:  rule,
	}
	if input.DetailPageURL != nil {
		rt.DetailPageURL = strings.TrimSpace(*input.DetailPageURL)
	}

	if rt.BaseOccupancy > rt.MaxTotal {
		return nil, fmt.Errorf("%w: base_occupancy=%d exceeds max_total=%d", ErrInvalidInput, rt.BaseOccupancy, rt.MaxTotal)
	}

	return rt, nil
}

func clamp(v *int, def, lower int) int {
	if v == nil {
		return def
	}
	return max(*v, lower)
}
