package transfer_config

import (
	"context"
	"errors"
	"fmt"
	"strings"

	settingsRepo "github.com/m04kA/SMC-HotelQuoteService/internal/infra/storage/settings"
	"github.com/m04kA/SMC-HotelQuoteService/internal/service/roomtypes"
	roomTypeModels "github.com/m04kA/SMC-HotelQuoteService/internal/service/roomtypes/models"
	"github.com/m04kA/SMC-HotelQuoteService/internal/service/settings"
	settingsModels "github.com/m04kA/SMC-HotelQuoteService/internal/service/settings/models"
)

// UseCase use case экспорта и импорта конфигурации отеля
type UseCase struct {
	roomTypes    RoomTypeService
	settings     SettingsService
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(roomTypes RoomTypeService, settings SettingsService, txManager TransactionManager, logger Logger) *UseCase {
	return &UseCase{
		roomTypes:    roomTypes,
		settings:     settings,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Export собирает настройки и все типы номеров в один документ
func (uc *UseCase) Export(ctx context.Context) (*Document, error) {
	uc.logger.Info("ExportConfig: exporting settings and room types")

	current, err := uc.settings.Get(ctx)
	if err != nil {
		uc.logger.Error("ExportConfig: failed to load settings: %v", err)
		return nil, fmt.Errorf("%w: failed to load settings: %v", ErrInternal, err)
	}

	roomTypes, err := uc.roomTypes.GetAll(ctx)
	if err != nil {
		uc.logger.Error("ExportConfig: failed to load room types: %v", err)
		return nil, fmt.Errorf("%w: failed to load room types: %v", ErrInternal, err)
	}

	extraAdult, extraKid := current.PriceExtraAdult, current.PriceExtraKid
	staffEmails := settingsRepo.JoinEmails(current.StaffEmails)
	showBreakdown := current.ShowPriceBreakdown
	thankYou := current.ThankYouPageURL
	exportedAt := uc.timeProvider.Now().UTC()

	doc := &Document{
		Version:    DocumentVersion,
		ExportedAt: &exportedAt,
		Settings: &settingsModels.UpdateSettingsRequest{
			PriceExtraAdult:    &extraAdult,
			PriceExtraKid:      &extraKid,
			StaffEmails:        &staffEmails,
			ShowPriceBreakdown: &showBreakdown,
			ThankYouPageURL:    &thankYou,
		},
		RoomTypes: make([]roomTypeModels.RoomTypeInput, 0, len(roomTypes)),
	}
	for _, rt := range roomTypes {
		doc.RoomTypes = append(doc.RoomTypes, *roomTypeModels.ToInput(rt))
	}

	uc.logger.Info("ExportConfig: exported %d room types", len(doc.RoomTypes))
	return doc, nil
}

// Import применяет документ в одной транзакции: настройки частично, типы номеров через Save
func (uc *UseCase) Import(ctx context.Context, doc *Document) (*ImportResult, error) {
	if doc == nil || doc.IsEmpty() {
		uc.logger.Warn("ImportConfig: empty document")
		return nil, ErrEmptyDocument
	}

	uc.logger.Info("ImportConfig: importing settings=%t, room_types=%d",
		doc.Settings != nil && !doc.Settings.IsEmpty(), len(doc.RoomTypes))

	result := &ImportResult{RoomTypesSaved: make([]string, 0, len(doc.RoomTypes))}

	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		if doc.Settings != nil && !doc.Settings.IsEmpty() {
			if _, err := uc.settings.Update(txCtx, doc.Settings); err != nil {
				return classify("settings", err)
			}
			result.SettingsUpdated = true
		}

		for i := range doc.RoomTypes {
			input := doc.RoomTypes[i]
			if strings.TrimSpace(input.Slug) == "" {
				return fmt.Errorf("%w: roomTypes[%d]: slug is required", ErrInvalidDocument, i)
			}
			saved, err := uc.roomTypes.Save(txCtx, "", &input)
			if err != nil {
				return classify(fmt.Sprintf("roomTypes[%d] %q", i, input.Slug), err)
			}
			result.RoomTypesSaved = append(result.RoomTypesSaved, saved.Slug)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrInvalidDocument) {
			uc.logger.Warn("ImportConfig: rejected: %v", err)
			return nil, err
		}
		uc.logger.Error("ImportConfig: failed: %v", err)
		if errors.Is(err, ErrInternal) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: transaction: %v", ErrInternal, err)
	}

	uc.logger.Info("ImportConfig: settings_updated=%t, room_types_saved=%d",
		result.SettingsUpdated, len(result.RoomTypesSaved))
	return result, nil
}

// classify отделяет ошибки данных документа от внутренних
func classify(field string, err error) error {
	if errors.Is(err, settings.ErrInvalidInput) || errors.Is(err, roomtypes.ErrInvalidInput) {
		return fmt.Errorf("%w: %s: %v", ErrInvalidDocument, field, err)
	}
	return fmt.Errorf("%w: %s: %v", ErrInternal, field, err)
}
