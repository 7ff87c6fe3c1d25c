package create_booking

import "errors"

var (
	// ErrSpamDetected возвращается, когда заполнено одно из скрытых полей формы
	ErrSpamDetected = errors.New("create_booking: spam detected")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInvalidDate возвращается при некорректной или прошедшей дате заезда
	ErrInvalidDate = errors.New("create_booking: invalid check-in date")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

// Результаты для метрики бронирований
const (
	resultCreated  = "created"
	resultSpam     = "spam"
	resultInvalid  = "invalid"
	resultRejected = "rejected"
	resultError    = "error"
)

// Получатели для метрики писем
const (
	recipientStaff = "staff"
	recipientGuest = "guest"
)
