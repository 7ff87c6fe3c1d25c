package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_RoundTrip(t *testing.T) {
	svc := New("secret", time.Hour, "hotel-quote")

	token, err := svc.GenerateToken("reception@hotel.test", RoleAdmin)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "reception@hotel.test", claims.Login)
	assert.Equal(t, RoleAdmin, claims.Role)
}

func TestService_RejectsForeignSecret(t *testing.T) {
	token, err := New("secret", time.Hour, "hotel-quote").GenerateToken("x", RoleAdmin)
	require.NoError(t, err)

	_, err = New("other", time.Hour, "hotel-quote").ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestService_RejectsExpired(t *testing.T) {
	svc := New("secret", -time.Minute, "hotel-quote")

	token, err := svc.GenerateToken("x", RoleAdmin)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestService_RejectsGarbage(t *testing.T) {
	_, err := New("secret", time.Hour, "hotel-quote").ValidateToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
