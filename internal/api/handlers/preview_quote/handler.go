package preview_quote

import (
	"net/http"

	"github.com/m04kA/SMC-HotelQuoteService/internal/api/handlers"
)

const msgInvalidRequestBody = "Solicitud no válida."

type Handler struct {
	useCase PreviewQuoteUseCase
	logger  Logger
}

func NewHandler(useCase PreviewQuoteUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/quotes/preview
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req PreviewQuoteRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /quotes/preview - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		if occupancyErr, ok := handlers.OccupancyError(err); ok {
			h.logger.Warn("POST /quotes/preview - Occupancy rejected: code=%s, room_type=%s",
				occupancyErr.Code, occupancyErr.RoomType)
			handlers.RespondOccupancyError(w, occupancyErr)
			return
		}

		h.logger.Error("POST /quotes/preview - Failed to preview quote: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /quotes/preview - Quote previewed: outcome=%s, room_type=%s", result.Outcome, result.RoomTypeSlug)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
