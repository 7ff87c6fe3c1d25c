package bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelQuoteService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-HotelQuoteService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-HotelQuoteService/internal/service/bookings/models"
	"github.com/m04kA/SMC-HotelQuoteService/pkg/logger"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	b, _ := args.Get(0).(*domain.Booking)
	return b, args.Error(1)
}

func (m *mockRepo) GetByConfirmationCode(ctx context.Context, code string) (*domain.Booking, error) {
	args := m.Called(ctx, code)
	b, _ := args.Get(0).(*domain.Booking)
	return b, args.Error(1)
}

func (m *mockRepo) GetRecent(ctx context.Context, limit uint64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	args := m.Called(ctx, limit, status)
	list, _ := args.Get(0).([]*domain.Booking)
	return list, args.Error(1)
}

func (m *mockRepo) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *mockRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

const code = "4d3c1f0e-7c59-4a5a-9e8f-3f2a9d0b6c11"

func sampleBooking() *domain.Booking {
	checkIn := time.Date(2026, 11, 2, 0, 0, 0, 0, time.UTC)
	return &domain.Booking{
		ID:               42,
		ConfirmationCode: code,
		GuestName:        "Ana Lopez",
		GuestEmail:       "ana@mail.test",
		GuestPhone:       "+5215550000",
		CheckInDate:      checkIn,
		CheckOutDate:     checkIn.AddDate(0, 0, 2),
		Nights:           2,
		RoomTypeSlug:     "single",
		AdultsCount:      2,
		KidsCount:        1,
		TotalPrice:       decimal.RequireFromString("4200"),
		Status:           domain.StatusPending,
	}
}

func TestService_GetByID(t *testing.T) {
	repo := &mockRepo{}
	repo.On("GetByID", mock.Anything, int64(42)).Return(sampleBooking(), nil)

	resp, err := NewService(repo, logger.Discard()).GetByID(context.Background(), 42)
	require.NoError(t, err)

	assert.Equal(t, "2026-11-02", resp.CheckInDate)
	assert.Equal(t, "2026-11-04", resp.CheckOutDate)
	assert.Equal(t, "4200.00", resp.TotalPrice)
	assert.Equal(t, "pending", resp.Status)
}

func TestService_GetByID_Errors(t *testing.T) {
	repo := &mockRepo{}
	repo.On("GetByID", mock.Anything, int64(1)).Return(nil, bookingRepo.ErrBookingNotFound)
	repo.On("GetByID", mock.Anything, int64(2)).Return(nil, errors.New("db down"))
	svc := NewService(repo, logger.Discard())

	_, err := svc.GetByID(context.Background(), 1)
	assert.ErrorIs(t, err, ErrBookingNotFound)

	_, err = svc.GetByID(context.Background(), 2)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestService_GetByConfirmationCode(t *testing.T) {
	repo := &mockRepo{}
	repo.On("GetByConfirmationCode", mock.Anything, code).Return(sampleBooking(), nil)
	svc := NewService(repo, logger.Discard())

	resp, err := svc.GetByConfirmationCode(context.Background(), code)
	require.NoError(t, err)
	assert.Equal(t, "Ana Lopez", resp.GuestName)

	_, err = svc.GetByConfirmationCode(context.Background(), "42")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_GetRecent_Limits(t *testing.T) {
	tests := []struct {
		name      string
		limit     int
		wantLimit uint64
	}{
		{"default", 0, uint64(domain.DefaultRecentLimit)},
		{"explicit", 25, 25},
		{"capped", 5000, uint64(domain.MaxRecentLimit)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockRepo{}
			repo.On("GetRecent", mock.Anything, tt.wantLimit, (*domain.BookingStatus)(nil)).
				Return([]*domain.Booking{sampleBooking()}, nil)

			resp, err := NewService(repo, logger.Discard()).GetRecent(context.Background(), &models.GetRecentRequest{Limit: tt.limit})
			require.NoError(t, err)
			assert.Len(t, resp.Bookings, 1)
			repo.AssertExpectations(t)
		})
	}
}

func TestService_GetRecent_InvalidInput(t *testing.T) {
	svc := NewService(&mockRepo{}, logger.Discard())

	_, err := svc.GetRecent(context.Background(), &models.GetRecentRequest{Limit: -1})
	assert.ErrorIs(t, err, ErrInvalidInput)

	status := "archived"
	_, err = svc.GetRecent(context.Background(), &models.GetRecentRequest{Status: &status})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestService_UpdateStatus(t *testing.T) {
	repo := &mockRepo{}
	repo.On("GetByID", mock.Anything, int64(42)).Return(sampleBooking(), nil)
	repo.On("UpdateStatus", mock.Anything, int64(42), domain.StatusConfirmed).Return(nil)

	resp, err := NewService(repo, logger.Discard()).UpdateStatus(context.Background(), 42, &models.UpdateStatusRequest{Status: "confirmed"})
	require.NoError(t, err)
	assert.Equal(t, "confirmed", resp.Status)
	repo.AssertExpectations(t)
}

func TestService_UpdateStatus_SameStatusIsNoop(t *testing.T) {
	repo := &mockRepo{}
	repo.On("GetByID", mock.Anything, int64(42)).Return(sampleBooking(), nil)

	_, err := NewService(repo, logger.Discard()).UpdateStatus(context.Background(), 42, &models.UpdateStatusRequest{Status: "pending"})
	require.NoError(t, err)
	repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_UpdateStatus_Invalid(t *testing.T) {
	repo := &mockRepo{}

	_, err := NewService(repo, logger.Discard()).UpdateStatus(context.Background(), 42, &models.UpdateStatusRequest{Status: "no_show"})
	assert.ErrorIs(t, err, ErrInvalidStatus)
	repo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestService_Delete(t *testing.T) {
	repo := &mockRepo{}
	repo.On("Delete", mock.Anything, int64(42)).Return(nil)
	repo.On("Delete", mock.Anything, int64(43)).Return(bookingRepo.ErrBookingNotFound)
	svc := NewService(repo, logger.Discard())

	require.NoError(t, svc.Delete(context.Background(), 42))
	assert.ErrorIs(t, svc.Delete(context.Background(), 43), ErrBookingNotFound)
}
