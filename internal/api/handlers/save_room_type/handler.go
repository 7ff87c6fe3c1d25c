package save_room_type

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HotelQuoteService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelQuoteService/internal/api/middleware"
	"github.com/m04kA/SMC-HotelQuoteService/internal/service/roomtypes"
	"github.com/m04kA/SMC-HotelQuoteService/internal/service/roomtypes/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные типа номера"
	msgSlugImmutable      = "slug типа номера нельзя изменить"
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

// Handle PUT /api/v1/admin/room-types/{slug}
// Slug в пути задает редактируемый тип; slug в теле должен с ним совпадать.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	currentSlug := mux.Vars(r)["slug"]
	login, _ := middleware.GetAdminLogin(r.Context())

	var req models.RoomTypeInput
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/room-types/{slug} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Пустой slug в теле означает сохранение под текущим slug
	if req.Slug == "" {
		req.Slug = currentSlug
	}

	saved, err := h.service.Save(r.Context(), currentSlug, &req)
	if err != nil {
		switch {
		case errors.Is(err, roomtypes.ErrSlugImmutable):
			h.logger.Warn("PUT /admin/room-types/{slug} - Slug change rejected: slug=%s, new_slug=%s", currentSlug, req.Slug)
			handlers.RespondBadRequest(w, msgSlugImmutable)

		case errors.Is(err, roomtypes.ErrInvalidInput):
			h.logger.Warn("PUT /admin/room-types/{slug} - Invalid input: slug=%s, error=%v", currentSlug, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /admin/room-types/{slug} - Failed to save room type: slug=%s, error=%v", currentSlug, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/room-types/{slug} - Room type saved: slug=%s, admin=%s", saved.Slug, login)
	handlers.RespondJSON(w, http.StatusOK, models.FromDomain(saved))
}
