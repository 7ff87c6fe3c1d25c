package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-HotelQuoteService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelQuoteService/pkg/jwt"
)

const (
	msgMissingToken = "отсутствует токен авторизации"
	msgInvalidToken = "недействительный токен"
	msgForbidden    = "доступ запрещен"
)

// AdminAuth пропускает только запросы с действительным Bearer токеном роли admin
func AdminAuth(validator TokenValidator, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				logger.Warn("AdminAuth: missing Authorization header path=%s", r.URL.Path)
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			scheme, tokenStr, found := strings.Cut(header, " ")
			tokenStr = strings.TrimSpace(tokenStr)
			if !found || !strings.EqualFold(scheme, "Bearer") || tokenStr == "" {
				logger.Warn("AdminAuth: malformed Authorization header path=%s", r.URL.Path)
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			claims, err := validator.ValidateToken(tokenStr)
			if err != nil {
				logger.Warn("AdminAuth: invalid token path=%s: %v", r.URL.Path, err)
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			if claims.Role != jwt.RoleAdmin {
				logger.Warn("AdminAuth: role=%s is not allowed, login=%s", claims.Role, claims.Login)
				handlers.RespondForbidden(w, msgForbidden)
				return
			}

			ctx := context.WithValue(r.Context(), adminLoginKey, claims.Login)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
