package list_room_types

import (
	"net/http"

	"github.com/m04kA/SMC-HotelQuoteService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelQuoteService/internal/service/roomtypes/models"
)

type Handler struct {
	service RoomTypeService
	logger  Logger
}

func NewHandler(service RoomTypeService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/room-types
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	roomTypes, err := h.service.GetAll(r.Context())
	if err != nil {
		h.logger.Error("GET /room-types - Failed to get room types: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /room-types - Room types retrieved: count=%d", len(roomTypes))
	handlers.RespondJSON(w, http.StatusOK, models.FromDomainList(roomTypes))
}
