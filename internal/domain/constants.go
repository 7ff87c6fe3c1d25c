package domain

import "github.com/shopspring/decimal"

// Default prices (per night)
var (
	DefaultPriceSingle     = decimal.RequireFromString("1850.00")
	DefaultPriceDouble     = decimal.RequireFromString("2100.00")
	DefaultPriceExtraAdult = decimal.RequireFromString("450.00")
	DefaultPriceExtraKid   = decimal.RequireFromString("250.00")
)

// Room type field defaults, applied when a field is missing on save
const (
	DefaultBeds          = 2
	DefaultBaseOccupancy = 2
	DefaultMaxTotal      = 4
	DefaultMaxAdults     = 3
	DefaultMaxKids       = 3
	DefaultOverflowRule  = OverflowKidsOnly
)

// Business validation constants
const (
	MinNights             = 1
	MaxNotesLength        = 1000
	MaxGuestNameLength    = 255
	MaxGuestPhoneLength   = 20
	MaxRoomTypeNameLength = 255
	DefaultRecentLimit    = 10
	MaxRecentLimit        = 200
	PriceScale            = 2 // decimal places of stored and displayed prices
)

// Date format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
