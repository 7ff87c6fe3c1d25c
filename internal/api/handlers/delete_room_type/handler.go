package delete_room_type

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HotelQuoteService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelQuoteService/internal/api/middleware"
	"github.com/m04kA/SMC-HotelQuoteService/internal/service/roomtypes"
)

const (
	msgNotFound         = "тип номера не найден"
	msgCannotDeleteLast = "нельзя удалить последний тип номера"
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

// Handle DELETE /api/v1/admin/room-types/{slug}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]
	login, _ := middleware.GetAdminLogin(r.Context())

	if err := h.service.Delete(r.Context(), slug); err != nil {
		switch {
		case errors.Is(err, roomtypes.ErrRoomTypeNotFound):
			h.logger.Warn("DELETE /admin/room-types/{slug} - Room type not found: slug=%s", slug)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, roomtypes.ErrCannotDeleteLast):
			h.logger.Warn("DELETE /admin/room-types/{slug} - Last room type: slug=%s", slug)
			handlers.RespondConflict(w, msgCannotDeleteLast)

		default:
			h.logger.Error("DELETE /admin/room-types/{slug} - Failed to delete room type: slug=%s, error=%v", slug, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/room-types/{slug} - Room type deleted: slug=%s, admin=%s", slug, login)
	w.WriteHeader(http.StatusNoContent)
}
