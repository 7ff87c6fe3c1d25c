package import_config

import (
	"errors"
	"io"
	"net/http"

	"github.com/m04kA/SMC-HotelQuoteService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelQuoteService/internal/api/middleware"
	transferConfig "github.com/m04kA/SMC-HotelQuoteService/internal/usecase/transfer_config"
)

const (
	maxDocumentSize = 1 << 20

	msgUnreadableBody  = "не удалось прочитать тело запроса"
	msgEmptyDocument   = "документ не содержит настроек и типов номеров"
	msgInvalidDocument = "некорректный документ конфигурации"
)

type Handler struct {
	useCase ImportUseCase
	logger  Logger
}

func NewHandler(useCase ImportUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/config/import
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	login, _ := middleware.GetAdminLogin(r.Context())

	data, err := io.ReadAll(io.LimitReader(r.Body, maxDocumentSize))
	if err != nil {
		h.logger.Warn("POST /admin/config/import - Failed to read body: %v", err)
		handlers.RespondBadRequest(w, msgUnreadableBody)
		return
	}

	doc, err := transferConfig.ParseDocument(data)
	if err == nil {
		var result *transferConfig.ImportResult
		result, err = h.useCase.Import(r.Context(), doc)
		if err == nil {
			h.logger.Info("POST /admin/config/import - Config imported by admin=%s: settings=%t, room_types=%d",
				login, result.SettingsUpdated, len(result.RoomTypesSaved))
			handlers.RespondJSON(w, http.StatusOK, result)
			return
		}
	}

	switch {
	case errors.Is(err, transferConfig.ErrEmptyDocument):
		h.logger.Warn("POST /admin/config/import - Empty document")
		handlers.RespondBadRequest(w, msgEmptyDocument)

	case errors.Is(err, transferConfig.ErrInvalidDocument):
		h.logger.Warn("POST /admin/config/import - Invalid document: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDocument)

	default:
		h.logger.Error("POST /admin/config/import - Failed to import config: %v", err)
		handlers.RespondInternalError(w)
	}
}
