package create_booking

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/m04kA/SMC-HotelQuoteService/internal/domain"
)

// normalizeRequest проверяет контактные данные и приводит строки к каноничному виду
func normalizeRequest(req *Request) (*Request, error) {
	normalized := *req
	normalized.GuestName = strings.TrimSpace(req.GuestName)
	normalized.GuestEmail = strings.ToLower(strings.TrimSpace(req.GuestEmail))
	normalized.GuestPhone = strings.TrimSpace(req.GuestPhone)
	normalized.RoomTypeSlug = strings.ToLower(strings.TrimSpace(req.RoomTypeSlug))
	normalized.CheckIn = strings.TrimSpace(req.CheckIn)

	if normalized.GuestName == "" || normalized.GuestEmail == "" || normalized.GuestPhone == "" {
		return nil, fmt.Errorf("%w: name, email and phone are required", ErrInvalidInput)
	}

	if utf8.RuneCountInString(normalized.GuestName) > domain.MaxGuestNameLength {
		return nil, fmt.Errorf("%w: name exceeds %d characters", ErrInvalidInput, domain.MaxGuestNameLength)
	}

	if utf8.RuneCountInString(normalized.GuestPhone) > domain.MaxGuestPhoneLength {
		return nil, fmt.Errorf("%w: phone exceeds %d characters", ErrInvalidInput, domain.MaxGuestPhoneLength)
	}

	if !domain.IsValidEmail(normalized.GuestEmail) {
		return nil, fmt.Errorf("%w: invalid email %q", ErrInvalidInput, normalized.GuestEmail)
	}

	if normalized.Notes != nil {
		notes := strings.TrimSpace(*normalized.Notes)
		if utf8.RuneCountInString(notes) > domain.MaxNotesLength {
			return nil, fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
		}
		if notes == "" {
			normalized.Notes = nil
		} else {
			normalized.Notes = &notes
		}
	}

	if normalized.Nights < domain.MinNights {
		normalized.Nights = domain.MinNights
	}

	return &normalized, nil
}

// parseCheckIn разбирает дату заезда и проверяет, что она не в прошлом
func parseCheckIn(value string, now time.Time) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("%w: check-in date is required", ErrInvalidDate)
	}

	checkIn, err := time.ParseInLocation(domain.DateFormat, value, now.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q is not YYYY-MM-DD", ErrInvalidDate, value)
	}

	if isDateInPast(checkIn, now) {
		return time.Time{}, fmt.Errorf("%w: %s is in the past", ErrInvalidDate, value)
	}

	return checkIn, nil
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
