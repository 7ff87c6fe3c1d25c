package import_config

import (
	"context"

	transferConfig "github.com/m04kA/SMC-HotelQuoteService/internal/usecase/transfer_config"
)

type ImportUseCase interface {
	Import(ctx context.Context, doc *transferConfig.Document) (*transferConfig.ImportResult, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
