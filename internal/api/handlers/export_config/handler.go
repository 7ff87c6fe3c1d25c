package export_config

import (
	"net/http"

	"github.com/m04kA/SMC-HotelQuoteService/internal/api/handlers"
)

const exportFilename = "hotel-quote-config.json"

type Handler struct {
	useCase ExportUseCase
	logger  Logger
}

func NewHandler(useCase ExportUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/config/export
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	doc, err := h.useCase.Export(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/config/export - Failed to export config: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/config/export - Config exported: room_types=%d", len(doc.RoomTypes))
	w.Header().Set("Content-Disposition", `attachment; filename="`+exportFilename+`"`)
	handlers.RespondJSON(w, http.StatusOK, doc)
}
