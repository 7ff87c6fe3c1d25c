package delete_room_type

import "context"

type RoomTypeService interface {
	Delete(ctx context.Context, slug string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
