package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testHookSecret = "test-hook-secret-for-unit-tests"

func TestJWTTokenService_GenerateAndValidate(t *testing.T) {
	svc := NewJWTTokenService(testHookSecret, time.Hour, "karla-connector")

	tokenStr, expiresAt, err := svc.Generate("demo-shop")
	require.NoError(t, err)
	assert.NotEmpty(t, tokenStr)
	assert.True(t, expiresAt.After(time.Now()))

	claims, err := svc.Validate(tokenStr)
	require.NoError(t, err)
	assert.Equal(t, "demo-shop", claims.Subject)
	assert.WithinDuration(t, expiresAt, claims.ExpiresAt, time.Second)
}

func TestJWTTokenService_Rejections(t *testing.T) {
	good := NewJWTTokenService(testHookSecret, time.Hour, "karla-connector")

	expired, _, err := NewJWTTokenService(testHookSecret, -time.Hour, "karla-connector").Generate("shop")
	require.NoError(t, err)
	otherSecret, _, err := NewJWTTokenService("another-secret", time.Hour, "karla-connector").Generate("shop")
	require.NoError(t, err)
	otherIssuer, _, err := NewJWTTokenService(testHookSecret, time.Hour, "someone-else").Generate("shop")
	require.NoError(t, err)
	noSubject, _, err := good.Generate("")
	require.NoError(t, err)
	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject: "shop",
		Issuer:  "karla-connector",
	}).SignedString([]byte(testHookSecret))
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"expired", expired},
		{"wrong secret", otherSecret},
		{"wrong issuer", otherIssuer},
		{"missing subject", noSubject},
		{"missing expiry", noExpiry},
		{"garbage", "not.a.valid.jwt"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := good.Validate(tt.token)
			assert.Error(t, err)
		})
	}
}
