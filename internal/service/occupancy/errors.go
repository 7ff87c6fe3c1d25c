package occupancy

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-HotelQuoteService/internal/domain"
)

// ErrorKind вид нарушения правил размещения
type ErrorKind string

const (
	KindNone                    ErrorKind = ""
	KindInvalidRoomType         ErrorKind = "invalid_room_type"
	KindNoAdult                 ErrorKind = "no_adult"
	KindNoGuests                ErrorKind = "no_guests"
	KindTooManyAdults           ErrorKind = "too_many_adults"
	KindTooManyKids             ErrorKind = "too_many_kids"
	KindCapacityExceeded        ErrorKind = "capacity_exceeded"
	KindAdultOverflowNotAllowed ErrorKind = "adult_overflow_not_allowed"
)

var (
	// ErrInvalidRoomType возвращается, когда тип номера не найден в реестре
	ErrInvalidRoomType = errors.New("occupancy: invalid room type")

	// ErrNoAdult возвращается, когда в запросе нет ни одного взрослого
	ErrNoAdult = errors.New("occupancy: at least one adult is required")

	// ErrNoGuests возвращается, когда состав гостей пустой или отрицательный
	ErrNoGuests = errors.New("occupancy: at least one guest is required")

	// ErrTooManyAdults возвращается при превышении max_adults
	ErrTooManyAdults = errors.New("occupancy: too many adults")

	// ErrTooManyKids возвращается при превышении max_kids
	ErrTooManyKids = errors.New("occupancy: too many kids")

	// ErrCapacityExceeded возвращается при превышении max_total
	ErrCapacityExceeded = errors.New("occupancy: capacity exceeded")

	// ErrAdultOverflowNotAllowed возвращается, когда сверх базового размещения могут быть только дети
	ErrAdultOverflowNotAllowed = errors.New("occupancy: extra guests above base occupancy must be kids")
)

var kindErrors = map[ErrorKind]error{
	KindInvalidRoomType:         ErrInvalidRoomType,
	KindNoAdult:                 ErrNoAdult,
	KindNoGuests:                ErrNoGuests,
	KindTooManyAdults:           ErrTooManyAdults,
	KindTooManyKids:             ErrTooManyKids,
	KindCapacityExceeded:        ErrCapacityExceeded,
	KindAdultOverflowNotAllowed: ErrAdultOverflowNotAllowed,
}

// Err возвращает sentinel-ошибку для вида нарушения (nil для KindNone)
func (k ErrorKind) Err() error {
	return kindErrors[k]
}

// ValidationError ошибка валидации с конфигурацией типа номера для формирования сообщения
type ValidationError struct {
	Kind     ErrorKind
	RoomType *domain.RoomType // nil для KindInvalidRoomType
}

func (e *ValidationError) Error() string {
	if e.RoomType == nil {
		return e.Kind.Err().Error()
	}
	return fmt.Sprintf("%v (room_type=%s)", e.Kind.Err(), e.RoomType.Slug)
}

// Unwrap позволяет сравнивать ошибку через errors.Is с sentinel-ошибками пакета
func (e *ValidationError) Unwrap() error {
	return e.Kind.Err()
}
