package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-HotelQuoteService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-HotelQuoteService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-HotelQuoteService/internal/service/bookings/models"
)

// Service сервис для работы с сохраненными бронированиями
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", id)

	booking, err := s.getBooking(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	s.logger.Info("GetByID: successfully fetched booking id=%d", id)
	return models.FromDomainBooking(booking), nil
}

// GetByConfirmationCode получает данные для публичной страницы подтверждения
func (s *Service) GetByConfirmationCode(ctx context.Context, code string) (*models.ConfirmationResponse, error) {
	if _, err := uuid.Parse(code); err != nil {
		s.logger.Warn("GetByConfirmationCode: malformed code=%q", code)
		return nil, fmt.Errorf("%w: malformed confirmation code", ErrInvalidInput)
	}

	booking, err := s.bookingRepo.GetByConfirmationCode(ctx, code)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByConfirmationCode: booking code=%s not found", code)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByConfirmationCode: repository error for code=%s: %v", code, err)
		return nil, fmt.Errorf("%w: GetByConfirmationCode - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainConfirmation(booking), nil
}

// GetRecent получает последние бронирования, сначала новые.
// Limit 0 дает значение по умолчанию, слишком большой limit ограничивается сверху.
func (s *Service) GetRecent(ctx context.Context, req *models.GetRecentRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetRecent: fetching bookings limit=%d, status=%v", req.Limit, req.Status)

	if req.Limit < 0 {
		s.logger.Warn("GetRecent: negative limit=%d", req.Limit)
		return nil, fmt.Errorf("%w: limit must not be negative", ErrInvalidInput)
	}

	limit := req.Limit
	if limit == 0 {
		limit = domain.DefaultRecentLimit
	}
	limit = min(limit, domain.MaxRecentLimit)

	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetRecent: invalid status=%s", *req.Status)
			return nil, ErrInvalidStatus
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.GetRecent(ctx, uint64(limit), domainStatus)
	if err != nil {
		s.logger.Error("GetRecent: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetRecent - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetRecent: successfully fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// UpdateStatus обновляет статус бронирования (pending, confirmed, cancelled)
func (s *Service) UpdateStatus(ctx context.Context, id int64, req *models.UpdateStatusRequest) (*models.BookingResponse, error) {
	s.logger.Info("UpdateStatus: updating booking id=%d to status=%s", id, req.Status)

	newStatus, err := models.ToDomainBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%d", req.Status, id)
		return nil, ErrInvalidStatus
	}

	booking, err := s.getBooking(ctx, "UpdateStatus", id)
	if err != nil {
		return nil, err
	}

	if booking.Status == newStatus {
		s.logger.Info("UpdateStatus: booking id=%d already has status=%s", id, newStatus)
		return models.FromDomainBooking(booking), nil
	}

	if err := s.bookingRepo.UpdateStatus(ctx, id, newStatus); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%d not found during update", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	booking.Status = newStatus
	s.logger.Info("UpdateStatus: successfully updated booking id=%d to status=%s", id, newStatus)
	return models.FromDomainBooking(booking), nil
}

// Delete удаляет бронирование
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting booking id=%d", id)

	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Delete: booking id=%d not found", id)
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted booking id=%d", id)
	return nil
}

func (s *Service) getBooking(ctx context.Context, op string, id int64) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%d not found", op, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return booking, nil
}
