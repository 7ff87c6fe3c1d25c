package create_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelQuoteService/internal/domain"
	"github.com/m04kA/SMC-HotelQuoteService/internal/integrations/mailer"
	"github.com/m04kA/SMC-HotelQuoteService/internal/service/occupancy"
	"github.com/m04kA/SMC-HotelQuoteService/pkg/logger"
)

const testCode = "6f1c2d3e-4b5a-4c7d-8e9f-0a1b2c3d4e5f"

type fixture struct {
	repo     *mockBookingRepo
	notifier *mockNotifier
	metrics  *recordingMetrics
	settings *domain.HotelSettings
	uc       *UseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		repo:     &mockBookingRepo{},
		notifier: &mockNotifier{},
		metrics:  &recordingMetrics{},
		settings: domain.DefaultHotelSettings(),
	}
	f.settings.StaffEmails = []string{"reservas@hotel.example"}
	f.settings.ThankYouPageURL = "https://hotel.example/gracias"

	roomTypes := &mockRoomTypes{}
	roomTypes.On("GetAll", mock.Anything).Return(domain.DefaultRoomTypes(), nil)
	settings := &mockSettings{}
	settings.On("Get", mock.Anything).Return(f.settings, nil)

	f.uc = NewUseCase(f.repo, roomTypes, settings, f.notifier, f.metrics, "admin@hotel.example", logger.Discard())
	f.uc.timeProvider = fixedTime{now: time.Date(2026, 10, 14, 15, 30, 0, 0, time.UTC)}
	f.uc.codes = fixedCode(testCode)
	return f
}

func validRequest() *Request {
	notes := "  Llegamos tarde  "
	total := "4200.00"
	return &Request{
		GuestName:    " Ana López ",
		GuestEmail:   "Ana@Example.com",
		GuestPhone:   "+52 55 1234 5678",
		CheckIn:      "2026-11-02",
		Nights:       2,
		RoomTypeSlug: "single",
		Adults:       2,
		Kids:         1,
		Notes:        &notes,
		ClientTotal:  &total,
	}
}

func TestUseCase_Execute_Success(t *testing.T) {
	f := newFixture(t)
	f.repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Booking")).Return(nil, nil)
	f.notifier.On("SendStaffNotification", mock.Anything, []string{"reservas@hotel.example"}, mock.Anything).Return(nil)
	f.notifier.On("SendGuestConfirmation", mock.Anything, mock.Anything).Return(nil)

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, testCode, resp.ConfirmationCode)
	assert.Equal(t, "2026-11-04", resp.CheckOutDate.Format(domain.DateFormat))
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, "4200.00", resp.Breakdown.Total.StringFixed(2))
	assert.Equal(t, "https://hotel.example/gracias", resp.ThankYouPageURL)

	saved := f.repo.Calls[0].Arguments.Get(1).(*domain.Booking)
	assert.Equal(t, "Ana López", saved.GuestName)
	assert.Equal(t, "ana@example.com", saved.GuestEmail)
	require.NotNil(t, saved.Notes)
	assert.Equal(t, "Llegamos tarde", *saved.Notes)
	assert.Equal(t, domain.StatusPending, saved.Status)

	n := f.notifier.Calls[0].Arguments.Get(2).(*mailer.BookingNotification)
	assert.Equal(t, "Sencilla", n.RoomTypeName)
	assert.True(t, n.ShowBreakdown)

	assert.Equal(t, []string{"created"}, f.metrics.bookings)
	assert.NoError(t, f.metrics.notifications["staff"])
	assert.NoError(t, f.metrics.notifications["guest"])
}

func TestUseCase_Execute_IgnoresClientTotal(t *testing.T) {
	f := newFixture(t)
	f.repo.On("Create", mock.Anything, mock.Anything).Return(nil, nil)
	f.notifier.On("SendStaffNotification", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	f.notifier.On("SendGuestConfirmation", mock.Anything, mock.Anything).Return(nil)

	req := validRequest()
	tampered := "1.00"
	req.ClientTotal = &tampered

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	saved := f.repo.Calls[0].Arguments.Get(1).(*domain.Booking)
	assert.Equal(t, "4200.00", saved.TotalPrice.StringFixed(2))
	assert.Equal(t, "4200.00", resp.Breakdown.Total.StringFixed(2))
}

func TestUseCase_Execute_NightsClamped(t *testing.T) {
	f := newFixture(t)
	f.repo.On("Create", mock.Anything, mock.Anything).Return(nil, nil)
	f.notifier.On("SendStaffNotification", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	f.notifier.On("SendGuestConfirmation", mock.Anything, mock.Anything).Return(nil)

	req := validRequest()
	req.Nights = 0
	req.ClientTotal = nil

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Nights)
	assert.Equal(t, "2026-11-03", resp.CheckOutDate.Format(domain.DateFormat))
	assert.Equal(t, "2100.00", resp.Breakdown.Total.StringFixed(2))
}

func TestUseCase_Execute_FallbackRecipient(t *testing.T) {
	f := newFixture(t)
	f.settings.StaffEmails = nil
	f.repo.On("Create", mock.Anything, mock.Anything).Return(nil, nil)
	f.notifier.On("SendStaffNotification", mock.Anything, []string{"admin@hotel.example"}, mock.Anything).Return(nil)
	f.notifier.On("SendGuestConfirmation", mock.Anything, mock.Anything).Return(nil)

	_, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	f.notifier.AssertExpectations(t)
}

func TestUseCase_Execute_MailFailureKeepsBooking(t *testing.T) {
	f := newFixture(t)
	smtpErr := errors.New("smtp: connection refused")
	f.repo.On("Create", mock.Anything, mock.Anything).Return(nil, nil)
	f.notifier.On("SendStaffNotification", mock.Anything, mock.Anything, mock.Anything).Return(smtpErr)
	f.notifier.On("SendGuestConfirmation", mock.Anything, mock.Anything).Return(smtpErr)

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, smtpErr, f.metrics.notifications["staff"])
	assert.Equal(t, smtpErr, f.metrics.notifications["guest"])
	assert.Equal(t, []string{"created"}, f.metrics.bookings)
}

func TestUseCase_Execute_Honeypot(t *testing.T) {
	for _, hp := range []Honeypot{{HPField: "x"}, {WebsiteURL: "http://spam"}, {CompanyName: "ACME"}} {
		f := newFixture(t)
		req := validRequest()
		req.Honeypot = hp

		_, err := f.uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrSpamDetected)
		f.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		assert.Equal(t, []string{"spam"}, f.metrics.bookings)
	}
}

func TestUseCase_Execute_InvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		modify func(r *Request)
	}{
		{"missing name", func(r *Request) { r.GuestName = "  " }},
		{"missing email", func(r *Request) { r.GuestEmail = "" }},
		{"missing phone", func(r *Request) { r.GuestPhone = "" }},
		{"bad email", func(r *Request) { r.GuestEmail = "ana@" }},
		{"long phone", func(r *Request) { r.GuestPhone = "+52 55 1234 5678 9012 34" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			req := validRequest()
			tt.modify(req)

			_, err := f.uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Equal(t, []string{"invalid"}, f.metrics.bookings)
		})
	}
}

func TestUseCase_Execute_InvalidDate(t *testing.T) {
	for _, checkIn := range []string{"", "02/11/2026", "2026-10-13"} {
		f := newFixture(t)
		req := validRequest()
		req.CheckIn = checkIn

		_, err := f.uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidDate, checkIn)
	}
}

func TestUseCase_Execute_TodayIsAllowed(t *testing.T) {
	f := newFixture(t)
	f.repo.On("Create", mock.Anything, mock.Anything).Return(nil, nil)
	f.notifier.On("SendStaffNotification", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	f.notifier.On("SendGuestConfirmation", mock.Anything, mock.Anything).Return(nil)

	req := validRequest()
	req.CheckIn = "2026-10-14"

	_, err := f.uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestUseCase_Execute_OccupancyRejected(t *testing.T) {
	tests := []struct {
		name    string
		slug    string
		adults  int
		kids    int
		wantErr error
	}{
		{"unknown room type", "suite", 2, 0, occupancy.ErrInvalidRoomType},
		{"no adult", "double", 0, 2, occupancy.ErrNoAdult},
		{"too many kids", "double", 1, 4, occupancy.ErrTooManyKids},
		{"capacity", "double", 3, 2, occupancy.ErrCapacityExceeded},
		{"adult overflow", "single", 3, 0, occupancy.ErrAdultOverflowNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			req := validRequest()
			req.RoomTypeSlug = tt.slug
			req.Adults = tt.adults
			req.Kids = tt.kids

			_, err := f.uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
			f.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			assert.Equal(t, []string{"rejected"}, f.metrics.bookings)
		})
	}
}

func TestUseCase_Execute_RepositoryError(t *testing.T) {
	f := newFixture(t)
	f.repo.On("Create", mock.Anything, mock.Anything).Return(nil, errors.New("insert failed"))

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInternal)
	f.notifier.AssertNotCalled(t, "SendStaffNotification", mock.Anything, mock.Anything, mock.Anything)
	assert.Equal(t, []string{"error"}, f.metrics.bookings)
}
