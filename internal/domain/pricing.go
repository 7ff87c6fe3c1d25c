package domain

import "github.com/shopspring/decimal"

// ExtraRates are the global per-night prices for guests above base occupancy
type ExtraRates struct {
	ExtraAdult decimal.Decimal
	ExtraKid   decimal.Decimal
}

// PriceBreakdown is an itemized stay price
type PriceBreakdown struct {
	RoomTypeSlug     string
	Base             decimal.Decimal
	ExtraAdultsCount int
	ExtraKidsCount   int
	ExtraAdultPrice  decimal.Decimal
	ExtraKidPrice    decimal.Decimal
	ExtraAdultsCost  decimal.Decimal
	ExtraKidsCost    decimal.Decimal
	SubtotalPerNight decimal.Decimal
	Nights           int
	Total            decimal.Decimal // rounded to 2 places
}

// HasExtras returns true if any extra guest is charged
func (b *PriceBreakdown) HasExtras() bool {
	return b.ExtraAdultsCount > 0 || b.ExtraKidsCount > 0
}
