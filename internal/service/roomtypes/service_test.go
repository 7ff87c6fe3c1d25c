package roomtypes

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelQuoteService/internal/domain"
	roomTypeRepo "github.com/m04kA/SMC-HotelQuoteService/internal/infra/storage/roomtype"
	"github.com/m04kA/SMC-HotelQuoteService/internal/service/roomtypes/models"
	"github.com/m04kA/SMC-HotelQuoteService/pkg/logger"
)

func newService(repo *mockRepo) *Service {
	return NewService(repo, inlineTx{}, logger.Discard())
}

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }

func TestService_GetAll_SeedsEmptyRegistry(t *testing.T) {
	repo := &mockRepo{}
	repo.On("GetAll", mock.Anything).Return(domain.RoomTypes{}, nil)
	repo.On("Upsert", mock.Anything, mock.AnythingOfType("*domain.RoomType")).
		Return(func(_ context.Context, rt *domain.RoomType) *domain.RoomType { return rt }, nil)

	roomTypes, err := newService(repo).GetAll(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"double", "single"}, roomTypes.Slugs())
	single, ok := roomTypes.Find("single")
	require.True(t, ok)
	assert.Equal(t, domain.OverflowKidsOnly, single.OverflowRule)
	assert.Equal(t, 3, single.MaxAdults)
	repo.AssertNumberOfCalls(t, "Upsert", 2)
}

func TestService_GetAll_NoSeedWhenPresent(t *testing.T) {
	repo := &mockRepo{}
	repo.On("GetAll", mock.Anything).Return(domain.DefaultRoomTypes(), nil)

	roomTypes, err := newService(repo).GetAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, roomTypes, 2)
	repo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestService_GetAll_RepositoryError(t *testing.T) {
	repo := &mockRepo{}
	repo.On("GetAll", mock.Anything).Return(nil, errors.New("db down"))

	_, err := newService(repo).GetAll(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
}

func TestService_Get_NotFound(t *testing.T) {
	repo := &mockRepo{}
	repo.On("GetBySlug", mock.Anything, "suite").Return(nil, roomTypeRepo.ErrRoomTypeNotFound)

	_, err := newService(repo).Get(context.Background(), "Suite")
	assert.ErrorIs(t, err, ErrRoomTypeNotFound)
}

func TestService_Save_AppliesDefaultsAndClamps(t *testing.T) {
	repo := &mockRepo{}
	repo.On("Upsert", mock.Anything, mock.AnythingOfType("*domain.RoomType")).
		Return(func(_ context.Context, rt *domain.RoomType) *domain.RoomType { return rt }, nil)

	negative := decimal.NewFromInt(-10)
	saved, err := newService(repo).Save(context.Background(), "", &models.RoomTypeInput{
		Slug:         " Junior Suite! ",
		Name:         "Junior",
		BasePrice:    &negative,
		Beds:         intPtr(0),
		MaxKids:      intPtr(-2),
		OverflowRule: strPtr("everyone"),
	})
	require.NoError(t, err)

	assert.Equal(t, "juniorsuite", saved.Slug)
	assert.True(t, saved.BasePrice.IsZero())
	assert.Equal(t, 1, saved.Beds)
	assert.Equal(t, domain.DefaultBaseOccupancy, saved.BaseOccupancy)
	assert.Equal(t, domain.DefaultMaxTotal, saved.MaxTotal)
	assert.Equal(t, domain.DefaultMaxAdults, saved.MaxAdults)
	assert.Equal(t, 0, saved.MaxKids)
	assert.Equal(t, domain.OverflowKidsOnly, saved.OverflowRule)
}

func TestService_Save_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input *models.RoomTypeInput
	}{
		{"missing slug", &models.RoomTypeInput{Slug: "!!!", Name: "X"}},
		{"missing name", &models.RoomTypeInput{Slug: "x", Name: "  "}},
		{"base above max total", &models.RoomTypeInput{Slug: "x", Name: "X", BaseOccupancy: intPtr(5), MaxTotal: intPtr(4)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockRepo{}
			_, err := newService(repo).Save(context.Background(), "", tt.input)
			assert.ErrorIs(t, err, ErrInvalidInput)
			repo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
		})
	}
}

func TestService_Save_SameSlugUpdates(t *testing.T) {
	repo := &mockRepo{}
	repo.On("Upsert", mock.Anything, mock.AnythingOfType("*domain.RoomType")).
		Return(func(_ context.Context, rt *domain.RoomType) *domain.RoomType { return rt }, nil)

	saved, err := newService(repo).Save(context.Background(), "Double", &models.RoomTypeInput{Slug: "double", Name: "Doble Superior"})
	require.NoError(t, err)
	assert.Equal(t, "double", saved.Slug)
	assert.Equal(t, "Doble Superior", saved.Name)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestService_Save_SlugChangeRejected(t *testing.T) {
	tests := []struct {
		name    string
		newSlug string
	}{
		{"free slug", "matrimonial"},
		{"taken slug", "single"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockRepo{}

			saved, err := newService(repo).Save(context.Background(), "double", &models.RoomTypeInput{Slug: tt.newSlug, Name: "Matrimonial"})
			assert.Nil(t, saved)
			assert.ErrorIs(t, err, ErrSlugImmutable)
			assert.ErrorIs(t, err, ErrInvalidInput)
			repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
			repo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
			repo.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything)
		})
	}
}

func TestService_Delete(t *testing.T) {
	repo := &mockRepo{}
	repo.On("Exists", mock.Anything, "single").Return(true, nil)
	repo.On("Count", mock.Anything).Return(2, nil)
	repo.On("Delete", mock.Anything, "single").Return(nil)

	require.NoError(t, newService(repo).Delete(context.Background(), "single"))
	repo.AssertExpectations(t)
}

func TestService_Delete_Last(t *testing.T) {
	repo := &mockRepo{}
	repo.On("Exists", mock.Anything, "single").Return(true, nil)
	repo.On("Count", mock.Anything).Return(1, nil)

	err := newService(repo).Delete(context.Background(), "single")
	assert.ErrorIs(t, err, ErrCannotDeleteLast)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestService_Delete_NotFound(t *testing.T) {
	repo := &mockRepo{}
	repo.On("Exists", mock.Anything, "suite").Return(false, nil)

	assert.ErrorIs(t, newService(repo).Delete(context.Background(), "suite"), ErrRoomTypeNotFound)
}

func TestService_IsSlugAvailable(t *testing.T) {
	repo := &mockRepo{}
	repo.On("Exists", mock.Anything, "single").Return(true, nil)
	repo.On("Exists", mock.Anything, "family").Return(false, nil)
	svc := newService(repo)

	available, err := svc.IsSlugAvailable(context.Background(), "single", "")
	require.NoError(t, err)
	assert.False(t, available)

	available, err = svc.IsSlugAvailable(context.Background(), "single", "single")
	require.NoError(t, err)
	assert.True(t, available)

	available, err = svc.IsSlugAvailable(context.Background(), "Family", "")
	require.NoError(t, err)
	assert.True(t, available)

	available, err = svc.IsSlugAvailable(context.Background(), "***", "")
	require.NoError(t, err)
	assert.False(t, available)
}
