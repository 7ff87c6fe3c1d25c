package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OverflowRule governs who may occupy slots beyond the base occupancy
type OverflowRule string

const (
	OverflowKidsOnly OverflowRule = "kids_only" // only kids may exceed base occupancy
	OverflowAny      OverflowRule = "any"       // adults and kids may exceed base occupancy
)

// IsValid reports whether the rule is one of the known values
func (r OverflowRule) IsValid() bool {
	return r == OverflowKidsOnly || r == OverflowAny
}

// RoomType represents a bookable room category
type RoomType struct {
	Slug          string
	Name          string
	BasePrice     decimal.Decimal // per night, covers BaseOccupancy guests
	Beds          int             // informational only
	BaseOccupancy int
	MaxTotal      int
	MaxAdults     int
	MaxKids       int
	OverflowRule  OverflowRule
	DetailPageURL string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// AllowsAdultOverflow returns true if adults may take slots above the base occupancy
func (rt *RoomType) AllowsAdultOverflow() bool {
	return rt.OverflowRule == OverflowAny
}

// IncludedInBase returns true if the given guest total is covered by the base price
func (rt *RoomType) IncludedInBase(total int) bool {
	return total <= rt.BaseOccupancy
}

// RoomTypes is a registry snapshot. Order is the registry iteration order (by slug).
type RoomTypes []*RoomType

// Find returns the room type with the given slug
func (ts RoomTypes) Find(slug string) (*RoomType, bool) {
	for _, rt := range ts {
		if rt.Slug == slug {
			return rt, true
		}
	}
	return nil, false
}

// Slugs returns slugs in registry order
func (ts RoomTypes) Slugs() []string {
	slugs := make([]string, 0, len(ts))
	for _, rt := range ts {
		slugs = append(slugs, rt.Slug)
	}
	return slugs
}

// GuestComposition is the party size of a quote request
type GuestComposition struct {
	Adults int
	Kids   int
}

// Total returns adults + kids
func (g GuestComposition) Total() int {
	return g.Adults + g.Kids
}

// DefaultRoomTypes returns the room types seeded into an empty registry
func DefaultRoomTypes() RoomTypes {
	return RoomTypes{
		{
			Slug:          "double",
			Name:          "Doble",
			BasePrice:     DefaultPriceDouble,
			Beds:          2,
			BaseOccupancy: 2,
			MaxTotal:      4,
			MaxAdults:     4,
			MaxKids:       3,
			OverflowRule:  OverflowAny,
		},
		{
			Slug:          "single",
			Name:          "Sencilla",
			BasePrice:     DefaultPriceSingle,
			Beds:          2,
			BaseOccupancy: 2,
			MaxTotal:      4,
			MaxAdults:     3,
			MaxKids:       3,
			OverflowRule:  OverflowKidsOnly,
		},
	}
}
