package create_booking

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-HotelQuoteService/internal/domain"
	"github.com/m04kA/SMC-HotelQuoteService/internal/integrations/mailer"
)

type mockBookingRepo struct {
	mock.Mock
}

func (m *mockBookingRepo) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	args := m.Called(ctx, booking)
	if err := args.Error(1); err != nil {
		return nil, err
	}
	created := *booking
	created.ID = 42
	created.CreatedAt = booking.CheckInDate
	created.UpdatedAt = booking.CheckInDate
	return &created, nil
}

type mockRoomTypes struct {
	mock.Mock
}

func (m *mockRoomTypes) GetAll(ctx context.Context) (domain.RoomTypes, error) {
	args := m.Called(ctx)
	roomTypes, _ := args.Get(0).(domain.RoomTypes)
	return roomTypes, args.Error(1)
}

type mockSettings struct {
	mock.Mock
}

func (m *mockSettings) Get(ctx context.Context) (*domain.HotelSettings, error) {
	args := m.Called(ctx)
	s, _ := args.Get(0).(*domain.HotelSettings)
	return s, args.Error(1)
}

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) SendStaffNotification(ctx context.Context, recipients []string, n *mailer.BookingNotification) error {
	return m.Called(ctx, recipients, n).Error(0)
}

func (m *mockNotifier) SendGuestConfirmation(ctx context.Context, n *mailer.BookingNotification) error {
	return m.Called(ctx, n).Error(0)
}

type recordingMetrics struct {
	bookings      []string
	notifications map[string]error
}

func (r *recordingMetrics) IncBooking(result string) {
	r.bookings = append(r.bookings, result)
}

func (r *recordingMetrics) IncNotification(recipient string, err error) {
	if r.notifications == nil {
		r.notifications = map[string]error{}
	}
	r.notifications[recipient] = err
}

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time { return f.now }

type fixedCode string

func (f fixedCode) NewCode() string { return string(f) }
