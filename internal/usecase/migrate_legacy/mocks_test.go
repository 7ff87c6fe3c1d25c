package migrate_legacy

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-HotelQuoteService/internal/domain"
	roomTypeModels "github.com/m04kA/SMC-HotelQuoteService/internal/service/roomtypes/models"
)

type mockRoomTypes struct {
	mock.Mock
}

func (m *mockRoomTypes) IsSlugAvailable(ctx context.Context, slug, currentSlug string) (bool, error) {
	args := m.Called(ctx, slug, currentSlug)
	return args.Bool(0), args.Error(1)
}

func (m *mockRoomTypes) Save(ctx context.Context, currentSlug string, input *roomTypeModels.RoomTypeInput) (*domain.RoomType, error) {
	args := m.Called(ctx, currentSlug, input)
	if err := args.Error(1); err != nil {
		return nil, err
	}
	return &domain.RoomType{Slug: input.Slug, Name: input.Name}, nil
}

// inlineTx выполняет функцию без реальной транзакции
type inlineTx struct{}

func (inlineTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func savedInputs(m *mockRoomTypes) map[string]*roomTypeModels.RoomTypeInput {
	inputs := make(map[string]*roomTypeModels.RoomTypeInput)
	for _, call := range m.Calls {
		if call.Method != "Save" {
			continue
		}
		input := call.Arguments.Get(2).(*roomTypeModels.RoomTypeInput)
		inputs[input.Slug] = input
	}
	return inputs
}
