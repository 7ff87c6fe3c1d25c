package settings

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelQuoteService/internal/domain"
	settingsRepo "github.com/m04kA/SMC-HotelQuoteService/internal/infra/storage/settings"
	"github.com/m04kA/SMC-HotelQuoteService/internal/service/settings/models"
	"github.com/m04kA/SMC-HotelQuoteService/pkg/logger"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) Get(ctx context.Context) (*domain.HotelSettings, error) {
	args := m.Called(ctx)
	s, _ := args.Get(0).(*domain.HotelSettings)
	return s, args.Error(1)
}

func (m *mockRepo) Save(ctx context.Context, s *domain.HotelSettings) (*domain.HotelSettings, error) {
	args := m.Called(ctx, s)
	return s, args.Error(0)
}

func strPtr(v string) *string { return &v }

func TestService_Get_SeedsDefaults(t *testing.T) {
	repo := &mockRepo{}
	repo.On("Get", mock.Anything).Return(nil, settingsRepo.ErrSettingsNotFound)
	repo.On("Save", mock.Anything, mock.AnythingOfType("*domain.HotelSettings")).Return(nil)

	s, err := NewService(repo, nil, logger.Discard()).Get(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "450.00", s.PriceExtraAdult.StringFixed(2))
	assert.Equal(t, "250.00", s.PriceExtraKid.StringFixed(2))
	assert.True(t, s.ShowPriceBreakdown)
	repo.AssertExpectations(t)
}

func TestService_Get_RepositoryError(t *testing.T) {
	repo := &mockRepo{}
	repo.On("Get", mock.Anything).Return(nil, errors.New("db down"))

	_, err := NewService(repo, nil, logger.Discard()).Get(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
}

func TestService_Update_Partial(t *testing.T) {
	repo := &mockRepo{}
	repo.On("Get", mock.Anything).Return(domain.DefaultHotelSettings(), nil)
	repo.On("Save", mock.Anything, mock.AnythingOfType("*domain.HotelSettings")).Return(nil)

	negative := decimal.NewFromInt(-5)
	updated, err := NewService(repo, nil, logger.Discard()).Update(context.Background(), &models.UpdateSettingsRequest{
		PriceExtraKid: &negative,
		StaffEmails:   strPtr("front@hotel.test, manager@hotel.test"),
	})
	require.NoError(t, err)

	assert.True(t, updated.PriceExtraKid.IsZero())
	assert.Equal(t, "450.00", updated.PriceExtraAdult.StringFixed(2))
	assert.Equal(t, []string{"front@hotel.test", "manager@hotel.test"}, updated.StaffEmails)
	assert.True(t, updated.ShowPriceBreakdown)
}

func TestService_Update_Invalid(t *testing.T) {
	tests := []struct {
		name string
		req  *models.UpdateSettingsRequest
	}{
		{"bad email", &models.UpdateSettingsRequest{StaffEmails: strPtr("front@hotel.test, nope")}},
		{"relative url", &models.UpdateSettingsRequest{ThankYouPageURL: strPtr("/gracias")}},
		{"ftp url", &models.UpdateSettingsRequest{ThankYouPageURL: strPtr("ftp://hotel.example/x")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockRepo{}
			repo.On("Get", mock.Anything).Return(domain.DefaultHotelSettings(), nil)

			_, err := NewService(repo, nil, logger.Discard()).Update(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
			repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
		})
	}
}

func TestService_ExtraRates(t *testing.T) {
	repo := &mockRepo{}
	stored := domain.DefaultHotelSettings()
	stored.PriceExtraAdult = decimal.RequireFromString("500.00")
	repo.On("Get", mock.Anything).Return(stored, nil)

	rates, err := NewService(repo, nil, logger.Discard()).ExtraRates(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "500.00", rates.ExtraAdult.StringFixed(2))
}
