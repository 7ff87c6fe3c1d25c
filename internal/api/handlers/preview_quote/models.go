package preview_quote

import (
	"github.com/m04kA/SMC-HotelQuoteService/internal/api/handlers"
	previewQuote "github.com/m04kA/SMC-HotelQuoteService/internal/usecase/preview_quote"
)

// PreviewQuoteRequest HTTP request model
type PreviewQuoteRequest struct {
	Adults   int    `json:"adults"`
	Kids     int    `json:"kids"`
	Nights   int    `json:"nights"`
	RoomType string `json:"roomType,omitempty"`
}

// RejectionResponse причина, по которой тип номера не подходит
type RejectionResponse struct {
	RoomType string `json:"roomType"`
	Code     string `json:"code"`
	Message  string `json:"message"`
}

// PreviewQuoteResponse HTTP response model.
// Breakdown заполняется только если расшифровка включена в настройках.
type PreviewQuoteResponse struct {
	Outcome    string                      `json:"outcome"`
	Forced     string                      `json:"forced,omitempty"`
	Eligible   []string                    `json:"eligible"`
	Rejections []RejectionResponse         `json:"rejections"`
	RoomType   string                      `json:"roomType,omitempty"`
	Nights     int                         `json:"nights,omitempty"`
	Total      string                      `json:"total,omitempty"`
	Breakdown  *handlers.BreakdownResponse `json:"breakdown,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *PreviewQuoteRequest) ToUseCaseRequest() *previewQuote.Request {
	return &previewQuote.Request{
		Adults:       r.Adults,
		Kids:         r.Kids,
		Nights:       r.Nights,
		RoomTypeSlug: r.RoomType,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *previewQuote.Response) *PreviewQuoteResponse {
	out := &PreviewQuoteResponse{
		Outcome:    string(resp.Outcome),
		Forced:     resp.Forced,
		Eligible:   resp.Eligible,
		Rejections: make([]RejectionResponse, 0, len(resp.Rejections)),
		RoomType:   resp.RoomTypeSlug,
	}
	if out.Eligible == nil {
		out.Eligible = []string{}
	}

	for _, rejection := range resp.Rejections {
		out.Rejections = append(out.Rejections, RejectionResponse{
			RoomType: rejection.Slug,
			Code:     string(rejection.Kind),
			Message:  handlers.OccupancyMessage(rejection.Kind, rejection.RoomType),
		})
	}

	if resp.Breakdown != nil {
		out.Nights = resp.Breakdown.Nights
		out.Total = handlers.FromBreakdown(resp.Breakdown).Total
		if resp.ShowBreakdown {
			out.Breakdown = handlers.FromBreakdown(resp.Breakdown)
		}
	}

	return out
}
