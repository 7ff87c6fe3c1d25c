package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// HotelSettings holds global, admin-managed settings
type HotelSettings struct {
	PriceExtraAdult    decimal.Decimal
	PriceExtraKid      decimal.Decimal
	StaffEmails        []string
	ShowPriceBreakdown bool
	ThankYouPageURL    string
	UpdatedAt          time.Time
}

// ExtraRates returns the extra guest prices used by the pricing engine
func (s *HotelSettings) ExtraRates() ExtraRates {
	return ExtraRates{
		ExtraAdult: s.PriceExtraAdult,
		ExtraKid:   s.PriceExtraKid,
	}
}

// HasStaffRecipients returns true if at least one staff email is configured
func (s *HotelSettings) HasStaffRecipients() bool {
	return len(s.StaffEmails) > 0
}

// DefaultHotelSettings returns settings used when none are stored yet
func DefaultHotelSettings() *HotelSettings {
	return &HotelSettings{
		PriceExtraAdult:    DefaultPriceExtraAdult,
		PriceExtraKid:      DefaultPriceExtraKid,
		StaffEmails:        []string{},
		ShowPriceBreakdown: true,
	}
}
