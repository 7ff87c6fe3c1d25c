package export_config

import (
	"context"

	transferConfig "github.com/m04kA/SMC-HotelQuoteService/internal/usecase/transfer_config"
)

type ExportUseCase interface {
	Export(ctx context.Context) (*transferConfig.Document, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
