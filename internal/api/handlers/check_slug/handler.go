package check_slug

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HotelQuoteService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelQuoteService/internal/service/roomtypes"
)

// SlugAvailabilityResponse HTTP response model
type SlugAvailabilityResponse struct {
	Slug      string `json:"slug"`
	Available bool   `json:"available"`
}

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

// Handle GET /api/v1/admin/room-types/{slug}/available?current={slug}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]
	current := r.URL.Query().Get("current")

	available, err := h.service.IsSlugAvailable(r.Context(), slug, current)
	if err != nil {
		h.logger.Error("GET /admin/room-types/{slug}/available - Failed to check slug: slug=%s, error=%v", slug, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, SlugAvailabilityResponse{
		Slug:      roomtypes.SanitizeSlug(slug),
		Available: available,
	})
}
