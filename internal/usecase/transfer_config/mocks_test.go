package transfer_config

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-HotelQuoteService/internal/domain"
	roomTypeModels "github.com/m04kA/SMC-HotelQuoteService/internal/service/roomtypes/models"
	settingsModels "github.com/m04kA/SMC-HotelQuoteService/internal/service/settings/models"
)

type mockRoomTypes struct {
	mock.Mock
}

func (m *mockRoomTypes) GetAll(ctx context.Context) (domain.RoomTypes, error) {
	args := m.Called(ctx)
	roomTypes, _ := args.Get(0).(domain.RoomTypes)
	return roomTypes, args.Error(1)
}

func (m *mockRoomTypes) Save(ctx context.Context, currentSlug string, input *roomTypeModels.RoomTypeInput) (*domain.RoomType, error) {
	args := m.Called(ctx, currentSlug, input)
	if err := args.Error(1); err != nil {
		return nil, err
	}
	return &domain.RoomType{Slug: input.Slug, Name: input.Name}, nil
}

type mockSettings struct {
	mock.Mock
}

func (m *mockSettings) Get(ctx context.Context) (*domain.HotelSettings, error) {
	args := m.Called(ctx)
	s, _ := args.Get(0).(*domain.HotelSettings)
	return s, args.Error(1)
}

func (m *mockSettings) Update(ctx context.Context, req *settingsModels.UpdateSettingsRequest) (*domain.HotelSettings, error) {
	args := m.Called(ctx, req)
	s, _ := args.Get(0).(*domain.HotelSettings)
	return s, args.Error(1)
}

// inlineTx выполняет функцию без реальной транзакции
type inlineTx struct{}

func (inlineTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time { return f.now }

type (
	roomTypeInput  = roomTypeModels.RoomTypeInput
	settingsUpdate = settingsModels.UpdateSettingsRequest
)
