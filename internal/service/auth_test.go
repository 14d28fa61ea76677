package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/algonotes/backend/config"
)

func newAuth(t *testing.T) *authService {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)
	return &authService{
		admin: config.AdminConfig{Username: "admin", PasswordHash: string(hash)},
		jwt:   config.JWTConfig{Secret: "test-secret", ExpireHours: 2},
		now:   time.Now,
	}
}

func TestLoginIssuesAdminToken(t *testing.T) {
	svc := newAuth(t)

	result, err := svc.Login(context.Background(), "admin", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "admin", result.Username)
	assert.WithinDuration(t, time.Now().Add(2*time.Hour), result.ExpiresAt, time.Minute)

	claims, err := svc.ParseToken(result.Token)
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, claims.Role)
	assert.Equal(t, "admin", claims.Username)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := newAuth(t)

	_, err := svc.Login(context.Background(), "admin", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.Login(context.Background(), "root", "s3cret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	svc.admin.PasswordHash = ""
	_, err = svc.Login(context.Background(), "admin", "s3cret")
	assert.ErrorIs(t, err, ErrAuthNotConfigured)
}

func TestParseTokenFailures(t *testing.T) {
	svc := newAuth(t)

	result, err := svc.Login(context.Background(), "admin", "s3cret")
	require.NoError(t, err)

	svc.now = func() time.Time { return time.Now().Add(3 * time.Hour) }
	_, err = svc.ParseToken(result.Token)
	assert.ErrorIs(t, err, ErrExpiredToken)
	svc.now = time.Now

	other := &authService{admin: svc.admin, jwt: config.JWTConfig{Secret: "other"}, now: time.Now}
	_, err = other.ParseToken(result.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	// 非管理员角色
	claims := &Claims{Username: "admin", Role: "reader", RegisteredClaims: jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	_, err = svc.ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = svc.ParseToken("not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("pa55")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("pa55")))
}
