package roomtypes

import (
	"context"

	"github.com/m04kA/SMC-HotelQuoteService/internal/domain"
)

// RoomTypeRepository интерфейс репозитория типов номеров
type RoomTypeRepository interface {
	GetAll(ctx context.Context) (domain.RoomTypes, error)
	GetBySlug(ctx context.Context, slug string) (*domain.RoomType, error)
	Exists(ctx context.Context, slug string) (bool, error)
	Count(ctx context.Context) (int, error)
	Upsert(ctx context.Context, rt *domain.RoomType) (*domain.RoomType, error)
	Delete(ctx context.Context, slug string) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
