package roomtypes

import (
	"errors"
	"fmt"
)

var (
	// ErrRoomTypeNotFound возвращается, когда тип номера не найден
	ErrRoomTypeNotFound = errors.New("roomtypes: room type not found")

	// ErrInvalidInput возвращается при некорректных данных типа номера
	ErrInvalidInput = errors.New("roomtypes: invalid input data")

	// ErrSlugImmutable возвращается при попытке сменить slug существующего типа номера.
	// Оборачивает ErrInvalidInput.
	ErrSlugImmutable = fmt.Errorf("%w: slug is immutable", ErrInvalidInput)

	// ErrCannotDeleteLast возвращается при попытке удалить последний тип номера
	ErrCannotDeleteLast = errors.New("roomtypes: cannot delete the last room type")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("roomtypes: internal error")
)
