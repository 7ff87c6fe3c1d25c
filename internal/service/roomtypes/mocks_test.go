package roomtypes

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-HotelQuoteService/internal/domain"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) GetAll(ctx context.Context) (domain.RoomTypes, error) {
	args := m.Called(ctx)
	roomTypes, _ := args.Get(0).(domain.RoomTypes)
	return roomTypes, args.Error(1)
}

func (m *mockRepo) GetBySlug(ctx context.Context, slug string) (*domain.RoomType, error) {
	args := m.Called(ctx, slug)
	rt, _ := args.Get(0).(*domain.RoomType)
	return rt, args.Error(1)
}

func (m *mockRepo) Exists(ctx context.Context, slug string) (bool, error) {
	args := m.Called(ctx, slug)
	return args.Bool(0), args.Error(1)
}

func (m *mockRepo) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *mockRepo) Upsert(ctx context.Context, rt *domain.RoomType) (*domain.RoomType, error) {
	args := m.Called(ctx, rt)
	if fn, ok := args.Get(0).(func(context.Context, *domain.RoomType) *domain.RoomType); ok {
		return fn(ctx, rt), args.Error(1)
	}
	saved, _ := args.Get(0).(*domain.RoomType)
	return saved, args.Error(1)
}

func (m *mockRepo) Delete(ctx context.Context, slug string) error {
	return m.Called(ctx, slug).Error(0)
}

// inlineTx выполняет функцию без реальной транзакции
type inlineTx struct{}

func (inlineTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (inlineTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
