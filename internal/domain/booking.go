package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BookingStatus represents the status of a booking request
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// IsValid reports whether the status is known
func (s BookingStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	}
	return false
}

// Booking represents a stay quote request submitted by a guest
type Booking struct {
	ID               int64
	ConfirmationCode string
	GuestName        string
	GuestEmail       string
	GuestPhone       string
	CheckInDate      time.Time
	CheckOutDate     time.Time
	Nights           int
	RoomTypeSlug     string
	AdultsCount      int
	KidsCount        int
	TotalPrice       decimal.Decimal // always server-computed
	Status           BookingStatus
	Notes            *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// Guests returns the guest composition of the booking
func (b *Booking) Guests() GuestComposition {
	return GuestComposition{Adults: b.AdultsCount, Kids: b.KidsCount}
}
