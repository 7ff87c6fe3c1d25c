package migrate_legacy

import "errors"

var (
	// ErrInvalidInput возвращается, когда файл не удалось разобрать как легаси реестр
	ErrInvalidInput = errors.New("migrate_legacy: invalid legacy data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("migrate_legacy: internal error")
)
