package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-HotelQuoteService/internal/domain"
)

// Compute рассчитывает детализацию стоимости проживания.
// Состав гостей должен быть предварительно проверен occupancy.Validate для этого типа номера.
// Округление до копеек выполняется только для итоговой суммы.
func Compute(roomType *domain.RoomType, adults, kids, nights int, rates domain.ExtraRates) domain.PriceBreakdown {
	breakdown := domain.PriceBreakdown{
		RoomTypeSlug:    roomType.Slug,
		Base:            roomType.BasePrice,
		ExtraAdultPrice: rates.ExtraAdult,
		ExtraKidPrice:   rates.ExtraKid,
		Nights:          nights,
	}

	total := adults + kids
	if !roomType.IncludedInBase(total) {
		overflow := total - roomType.BaseOccupancy
		breakdown.ExtraAdultsCount = max(adults-roomType.BaseOccupancy, 0)
		breakdown.ExtraKidsCount = overflow - breakdown.ExtraAdultsCount
	}

	breakdown.ExtraAdultsCost = rates.ExtraAdult.Mul(decimal.NewFromInt(int64(breakdown.ExtraAdultsCount)))
	breakdown.ExtraKidsCost = rates.ExtraKid.Mul(decimal.NewFromInt(int64(breakdown.ExtraKidsCount)))
	breakdown.SubtotalPerNight = breakdown.Base.Add(breakdown.ExtraAdultsCost).Add(breakdown.ExtraKidsCost)
	breakdown.Total = breakdown.SubtotalPerNight.Mul(decimal.NewFromInt(int64(nights))).Round(domain.PriceScale)

	return breakdown
}
