package middleware

import "context"

type contextKey string

const (
	adminLoginKey contextKey = "admin_login"
	requestIDKey  contextKey = "request_id"
)

// GetAdminLogin возвращает логин администратора из контекста
func GetAdminLogin(ctx context.Context) (string, bool) {
	login, ok := ctx.Value(adminLoginKey).(string)
	return login, ok && login != ""
}

// GetRequestID возвращает ID запроса из контекста
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
