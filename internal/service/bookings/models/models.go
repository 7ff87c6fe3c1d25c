package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-HotelQuoteService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// UpdateStatusRequest запрос на обновление статуса бронирования
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// GetRecentRequest запрос последних бронирований для админки
type GetRecentRequest struct {
	Limit  int     `json:"limit"`            // 0 означает значение по умолчанию
	Status *string `json:"status,omitempty"` // Фильтр по статусу (опционально)
}

// Response модели

// BookingResponse ответ с данными бронирования для админки
type BookingResponse struct {
	ID               int64   `json:"id"`
	ConfirmationCode string  `json:"confirmationCode"`
	GuestName        string  `json:"guestName"`
	GuestEmail       string  `json:"guestEmail"`
	GuestPhone       string  `json:"guestPhone"`
	CheckInDate      string  `json:"checkInDate"`  // "2026-11-02"
	CheckOutDate     string  `json:"checkOutDate"` // "2026-11-04"
	Nights           int     `json:"nights"`
	RoomType         string  `json:"roomType"`
	Adults           int     `json:"adults"`
	Kids             int     `json:"kids"`
	TotalPrice       string  `json:"totalPrice"` // "4200.00"
	Status           string  `json:"status"`
	Notes            *string `json:"notes,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ConfirmationResponse публичные данные для страницы подтверждения (без контактов гостя)
type ConfirmationResponse struct {
	ConfirmationCode string `json:"confirmationCode"`
	GuestName        string `json:"guestName"`
	CheckInDate      string `json:"checkInDate"`
	CheckOutDate     string `json:"checkOutDate"`
	Nights           int    `json:"nights"`
	RoomType         string `json:"roomType"`
	Adults           int    `json:"adults"`
	Kids             int    `json:"kids"`
	TotalPrice       string `json:"totalPrice"`
	Status           string `json:"status"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:               b.ID,
		ConfirmationCode: b.ConfirmationCode,
		GuestName:        b.GuestName,
		GuestEmail:       b.GuestEmail,
		GuestPhone:       b.GuestPhone,
		CheckInDate:      b.CheckInDate.Format(domain.DateFormat),
		CheckOutDate:     b.CheckOutDate.Format(domain.DateFormat),
		Nights:           b.Nights,
		RoomType:         b.RoomTypeSlug,
		Adults:           b.AdultsCount,
		Kids:             b.KidsCount,
		TotalPrice:       b.TotalPrice.StringFixed(domain.PriceScale),
		Status:           string(b.Status),
		Notes:            b.Notes,
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.UpdatedAt,
	}
}

// FromDomainConfirmation конвертирует domain модель в публичный DTO
func FromDomainConfirmation(b *domain.Booking) *ConfirmationResponse {
	return &ConfirmationResponse{
		ConfirmationCode: b.ConfirmationCode,
		GuestName:        b.GuestName,
		CheckInDate:      b.CheckInDate.Format(domain.DateFormat),
		CheckOutDate:     b.CheckOutDate.Format(domain.DateFormat),
		Nights:           b.Nights,
		RoomType:         b.RoomTypeSlug,
		Adults:           b.AdultsCount,
		Kids:             b.KidsCount,
		TotalPrice:       b.TotalPrice.StringFixed(domain.PriceScale),
		Status:           string(b.Status),
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}
