package transfer_config

import "errors"

var (
	// ErrInvalidDocument возвращается, когда документ не является корректным JSON или содержит недопустимые значения
	ErrInvalidDocument = errors.New("transfer_config: invalid document")

	// ErrEmptyDocument возвращается, когда в документе нет ни настроек, ни типов номеров
	ErrEmptyDocument = errors.New("transfer_config: document is empty")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("transfer_config: internal error")
)
