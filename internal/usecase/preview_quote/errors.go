package preview_quote

import "errors"

var (
	// ErrRoomTypeNotEligible возвращается, когда выбранный тип номера не подходит под состав гостей
	ErrRoomTypeNotEligible = errors.New("preview_quote: room type is not eligible for this party")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("preview_quote: internal error")
)
