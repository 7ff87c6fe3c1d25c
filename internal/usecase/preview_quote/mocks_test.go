package preview_quote

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-HotelQuoteService/internal/domain"
)

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

type quoteCounter struct {
	outcomes []string
}

func (c *quoteCounter) IncQuote(outcome string) {
	c.outcomes = append(c.outcomes, outcome)
}
