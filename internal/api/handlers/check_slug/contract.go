package check_slug

import "context"

type RoomTypeService interface {
	IsSlugAvailable(ctx context.Context, slug, currentSlug string) (bool, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
