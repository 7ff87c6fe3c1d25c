package migrate_legacy

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-HotelQuoteService/internal/domain"
	"github.com/m04kA/SMC-HotelQuoteService/internal/service/roomtypes"
	roomTypeModels "github.com/m04kA/SMC-HotelQuoteService/internal/service/roomtypes/models"
)

// UseCase use case переноса реестра типов номеров из старого формата
type UseCase struct {
	roomTypes RoomTypeService
	txManager TransactionManager
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(roomTypes RoomTypeService, txManager TransactionManager, logger Logger) *UseCase {
	return &UseCase{
		roomTypes: roomTypes,
		txManager: txManager,
		logger:    logger,
	}
}

// Execute сохраняет легаси типы номеров в каноничном виде.
// Типы без параметров размещения получают значения по умолчанию для своего slug.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("MigrateLegacy: room_types=%d, overwrite=%t, dry_run=%t",
		len(req.RoomTypes), req.Overwrite, req.DryRun)

	resp := &Response{
		Migrated:  make([]string, 0),
		Canonical: make([]string, 0),
		Skipped:   make([]string, 0),
	}

	legacy := req.RoomTypes
	if len(legacy) == 0 {
		resp.Seeded = true
		for _, rt := range domain.DefaultRoomTypes() {
			legacy = append(legacy, fromDomain(rt))
		}
	}

	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		for i := range legacy {
			item := &legacy[i]
			slug := roomtypes.SanitizeSlug(item.Slug)
			if slug == "" || item.Name == "" {
				return fmt.Errorf("%w: room type #%d: slug and name are required", ErrInvalidInput, i+1)
			}

			if !req.Overwrite {
				available, err := uc.roomTypes.IsSlugAvailable(txCtx, slug, "")
				if err != nil {
					return fmt.Errorf("%w: check slug %s: %v", ErrInternal, slug, err)
				}
				if !available {
					resp.Skipped = append(resp.Skipped, slug)
					continue
				}
			}

			canonical := item.HasOccupancy()
			input := toInput(item)

			if !req.DryRun {
				if _, err := uc.roomTypes.Save(txCtx, "", input); err != nil {
					if errors.Is(err, roomtypes.ErrInvalidInput) {
						return fmt.Errorf("%w: room type %s: %v", ErrInvalidInput, slug, err)
					}
					return fmt.Errorf("%w: save %s: %v", ErrInternal, slug, err)
				}
			}

			if canonical {
				resp.Canonical = append(resp.Canonical, slug)
			} else {
				resp.Migrated = append(resp.Migrated, slug)
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			uc.logger.Warn("MigrateLegacy: rejected: %v", err)
			return nil, err
		}
		uc.logger.Error("MigrateLegacy: failed: %v", err)
		if errors.Is(err, ErrInternal) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: transaction: %v", ErrInternal, err)
	}

	uc.logger.Info("MigrateLegacy: migrated=%d, canonical=%d, skipped=%d",
		len(resp.Migrated), len(resp.Canonical), len(resp.Skipped))
	return resp, nil
}

// toInput переносит только каноничные поля, недостающие параметры размещения берутся из умолчаний slug
func toInput(l *LegacyRoomType) *roomTypeModels.RoomTypeInput {
	input := &roomTypeModels.RoomTypeInput{
		Slug:          l.Slug,
		Name:          l.Name,
		BasePrice:     l.BasePrice,
		Beds:          l.Beds,
		BaseOccupancy: l.BaseOccupancy,
		MaxTotal:      l.MaxTotal,
		MaxAdults:     l.MaxAdults,
		MaxKids:       l.MaxKids,
		OverflowRule:  l.OverflowRule,
	}
	if l.DetailPageURL != "" {
		url := l.DetailPageURL
		input.DetailPageURL = &url
	}

	if l.HasOccupancy() {
		return input
	}

	d := defaultsFor(roomtypes.SanitizeSlug(l.Slug))
	rule := string(d.overflowRule)
	input.Beds = &d.beds
	input.BaseOccupancy = &d.baseOccupancy
	input.MaxTotal = &d.maxTotal
	input.MaxAdults = &d.maxAdults
	input.MaxKids = &d.maxKids
	input.OverflowRule = &rule
	return input
}

func fromDomain(rt *domain.RoomType) LegacyRoomType {
	price := rt.BasePrice
	beds, base := rt.Beds, rt.BaseOccupancy
	maxTotal, maxAdults, maxKids := rt.MaxTotal, rt.MaxAdults, rt.MaxKids
	rule := string(rt.OverflowRule)
	return LegacyRoomType{
		Slug:          rt.Slug,
		Name:          rt.Name,
		BasePrice:     &price,
		Beds:          &beds,
		BaseOccupancy: &base,
		MaxTotal:      &maxTotal,
		MaxAdults:     &maxAdults,
		MaxKids:       &maxKids,
		OverflowRule:  &rule,
	}
}
