package jwt

import (
	"errors"
	"fmt"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

// RoleAdmin роль сотрудника отеля с доступом к администрированию
const RoleAdmin = "admin"

var (
	// ErrInvalidToken возвращается, когда токен не прошел проверку подписи или срока
	ErrInvalidToken = errors.New("jwt: invalid token")

	// ErrInvalidClaims возвращается, когда в токене неожиданный набор полей
	ErrInvalidClaims = errors.New("jwt: invalid claims")
)

// Service выпускает и проверяет HS256 токены администраторов
type Service struct {
	secret []byte
	ttl    time.Duration
	issuer string
}

// Claims данные токена
type Claims struct {
	Login string `json:"login"`
	Role  string `json:"role"`
	jwtlib.RegisteredClaims
}

func New(secret string, ttl time.Duration, issuer string) *Service {
	return &Service{
		secret: []byte(secret),
		ttl:    ttl,
		issuer: issuer,
	}
}

// GenerateToken выпускает токен для сотрудника (логин или email)
func (s *Service) GenerateToken(login, role string) (string, error) {
	now := time.Now()
	claims := Claims{
		Login: login,
		Role:  role,
		RegisteredClaims: jwtlib.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   login,
			ExpiresAt: jwtlib.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwtlib.NewNumericDate(now),
		},
	}

	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("jwt: sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken проверяет подпись, алгоритм и срок действия токена
func (s *Service) ValidateToken(tokenStr string) (*Claims, error) {
	token, err := jwtlib.ParseWithClaims(tokenStr, &Claims{}, func(t *jwtlib.Token) (any, error) {
		return s.secret, nil
	},
		jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Alg()}),
		jwtlib.WithIssuer(s.issuer),
	)
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, ErrInvalidClaims
	}

	return claims, nil
}
