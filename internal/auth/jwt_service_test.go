package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTService_IssueAndVerify(t *testing.T) {
	svc := NewJWTService("test-secret")

	token, err := svc.IssueToken("0b6f1e36-4c58-4d5a-9d1f-7b4ad3a5f0c1", "Ann", "user")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "0b6f1e36-4c58-4d5a-9d1f-7b4ad3a5f0c1", claims.UserID)
	assert.Equal(t, "Ann", claims.Name)
	assert.Equal(t, "user", claims.Role)
	assert.WithinDuration(t, time.Now().Add(TokenExpiry), claims.ExpiresAt.Time, 5*time.Second)
}

func TestJWTService_VerifyToken_Failures(t *testing.T) {
	svc := NewJWTService("test-secret")

	expired := NewJWTService("test-secret")
	expired.now = func() time.Time { return time.Now().Add(-TokenExpiry - time.Minute) }
	expiredToken, err := expired.IssueToken("id-1", "Ann", "user")
	require.NoError(t, err)

	otherSecret, err := NewJWTService("another-secret").IssueToken("id-1", "Ann", "admin")
	require.NoError(t, err)

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{
		UserID: "id-1",
		Role:   "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	missingID, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		Name: "Ann",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "expired", token: expiredToken},
		{name: "wrong secret", token: otherSecret},
		{name: "unsigned", token: noneToken},
		{name: "missing user id", token: missingID},
		{name: "malformed", token: "not.a.jwt"},
		{name: "empty", token: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := svc.VerifyToken(tt.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
			assert.Nil(t, claims)
		})
	}
}

func TestPassword_HashAndVerify(t *testing.T) {
	hash, err := HashPassword("pw123456")
	require.NoError(t, err)

	assert.NotEqual(t, "pw123456", hash)
	assert.True(t, VerifyPassword("pw123456", hash))
	assert.False(t, VerifyPassword("wrong", hash))
	assert.False(t, VerifyPassword("pw123456", "not-a-bcrypt-hash"))

	again, err := HashPassword("pw123456")
	require.NoError(t, err)
	assert.NotEqual(t, hash, again, "hashes are salted")
}

func TestPassword_LongerThanBcryptLimit(t *testing.T) {
	long := strings.Repeat("p", 80)

	hash, err := HashPassword(long)
	require.NoError(t, err)

	assert.True(t, VerifyPassword(long, hash))
	assert.True(t, VerifyPassword(long[:72], hash), "bytes past 72 are ignored")
	assert.False(t, VerifyPassword(long[:71], hash))
}
