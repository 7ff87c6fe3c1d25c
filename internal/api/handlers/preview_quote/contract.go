package preview_quote

import (
	"context"

	previewQuote "github.com/m04kA/SMC-HotelQuoteService/internal/usecase/preview_quote"
)

type PreviewQuoteUseCase interface {
	Execute(ctx context.Context, req *previewQuote.Request) (*previewQuote.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
