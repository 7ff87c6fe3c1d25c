package roomtypes

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-HotelQuoteService/internal/domain"
	roomTypeRepo "github.com/m04kA/SMC-HotelQuoteService/internal/infra/storage/roomtype"
	"github.com/m04kA/SMC-HotelQuoteService/internal/service/roomtypes/models"
)

// Service реестр типов номеров
type Service struct {
	repo      RoomTypeRepository
	txManager TransactionManager
	logger    Logger
}

// NewService создает новый экземпляр реестра типов номеров
func NewService(repo RoomTypeRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		repo:      repo,
		txManager: txManager,
		logger:    logger,
	}
}

// GetAll возвращает снимок реестра в порядке slug.
// Пустой реестр при первом чтении заполняется типами по умолчанию.
func (s *Service) GetAll(ctx context.Context) (domain.RoomTypes, error) {
	roomTypes, err := s.repo.GetAll(ctx)
	if err != nil {
		s.logger.Error("GetAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetAll - repository error: %v", ErrInternal, err)
	}

	if len(roomTypes) > 0 {
		return roomTypes, nil
	}

	s.logger.Info("GetAll: registry is empty, seeding default room types")
	seeded, err := s.seed(ctx)
	if err != nil {
		s.logger.Error("GetAll: failed to seed default room types: %v", err)
		return nil, fmt.Errorf("%w: GetAll - seed defaults: %v", ErrInternal, err)
	}

	return seeded, nil
}

// Get возвращает тип номера по slug
func (s *Service) Get(ctx context.Context, slug string) (*domain.RoomType, error) {
	rt, err := s.repo.GetBySlug(ctx, SanitizeSlug(slug))
	if err != nil {
		if errors.Is(err, roomTypeRepo.ErrRoomTypeNotFound) {
			s.logger.Warn("Get: room type slug=%s not found", slug)
			return nil, ErrRoomTypeNotFound
		}
		s.logger.Error("Get: repository error for slug=%s: %v", slug, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	return rt, nil
}

// Save создает или обновляет тип номера по slug.
// currentSlug задает редактируемый тип; slug после создания не меняется.
func (s *Service) Save(ctx context.Context, currentSlug string, input *models.RoomTypeInput) (*domain.RoomType, error) {
	rt, err := Normalize(input)
	if err != nil {
		s.logger.Warn("Save: invalid room type input slug=%q: %v", input.Slug, err)
		return nil, err
	}

	currentSlug = SanitizeSlug(currentSlug)
	if currentSlug != "" && currentSlug != rt.Slug {
		s.logger.Warn("Save: slug change from slug=%s to slug=%s rejected", currentSlug, rt.Slug)
		return nil, fmt.Errorf("%w: slug %s cannot be changed to %s", ErrSlugImmutable, currentSlug, rt.Slug)
	}

	saved, err := s.repo.Upsert(ctx, rt)
	if err != nil {
		s.logger.Error("Save: repository error for slug=%s: %v", rt.Slug, err)
		return nil, fmt.Errorf("%w: Save - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Save: room type slug=%s saved", saved.Slug)
	return saved, nil
}

// Delete удаляет тип номера. Последний тип удалить нельзя.
func (s *Service) Delete(ctx context.Context, slug string) error {
	slug = SanitizeSlug(slug)
	s.logger.Info("Delete: deleting room type slug=%s", slug)

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		exists, err := s.repo.Exists(txCtx, slug)
		if err != nil {
			return fmt.Errorf("%w: Delete - check slug: %v", ErrInternal, err)
		}
		if !exists {
			return ErrRoomTypeNotFound
		}

		count, err := s.repo.Count(txCtx)
		if err != nil {
			return fmt.Errorf("%w: Delete - count: %v", ErrInternal, err)
		}
		if count <= 1 {
			return ErrCannotDeleteLast
		}

		if err := s.repo.Delete(txCtx, slug); err != nil {
			if errors.Is(err, roomTypeRepo.ErrRoomTypeNotFound) {
				return ErrRoomTypeNotFound
			}
			return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrRoomTypeNotFound) || errors.Is(err, ErrCannotDeleteLast) {
			s.logger.Warn("Delete: slug=%s rejected: %v", slug, err)
			return err
		}
		s.logger.Error("Delete: slug=%s failed: %v", slug, err)
		if errors.Is(err, ErrInternal) {
			return err
		}
		return fmt.Errorf("%w: Delete - transaction: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: room type slug=%s deleted", slug)
	return nil
}

// IsSlugAvailable проверяет, можно ли использовать slug.
// Slug редактируемого типа (currentSlug) считается доступным.
func (s *Service) IsSlugAvailable(ctx context.Context, slug, currentSlug string) (bool, error) {
	slug = SanitizeSlug(slug)
	if slug == "" {
		return false, nil
	}
	if slug == SanitizeSlug(currentSlug) {
		return true, nil
	}

	exists, err := s.repo.Exists(ctx, slug)
	if err != nil {
		s.logger.Error("IsSlugAvailable: repository error for slug=%s: %v", slug, err)
		return false, fmt.Errorf("%w: IsSlugAvailable - repository error: %v", ErrInternal, err)
	}

	return !exists, nil
}

func (s *Service) seed(ctx context.Context) (domain.RoomTypes, error) {
	seeded := make(domain.RoomTypes, 0, 2)
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		for _, rt := range domain.DefaultRoomTypes() {
			saved, err := s.repo.Upsert(txCtx, rt)
			if err != nil {
				return err
			}
			seeded = append(seeded, saved)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return seeded, nil
}
