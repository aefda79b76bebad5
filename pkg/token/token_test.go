package token

import (
	"testing"
	"time"

	"campus_market/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessTokenRoundtrip(t *testing.T) {
	secret := []byte("test-secret")
	user := &model.User{ID: 42}

	tokenStr, err := GenerateAccessToken(user, secret, time.Minute)
	require.NoError(t, err)

	claims, err := VerifyToken(tokenStr, secret)
	require.NoError(t, err)
	assert.Equal(t, "42", claims.ID)
}

func TestVerifyTokenWrongSecret(t *testing.T) {
	tokenStr, err := GenerateAccessToken(&model.User{ID: 1}, []byte("secret-a"), time.Minute)
	require.NoError(t, err)

	_, err = VerifyToken(tokenStr, []byte("secret-b"))
	assert.Error(t, err)
}

func TestVerifyTokenExpired(t *testing.T) {
	tokenStr, err := GenerateAccessToken(&model.User{ID: 1}, []byte("secret"), -time.Minute)
	require.NoError(t, err)

	_, err = VerifyToken(tokenStr, []byte("secret"))
	assert.Error(t, err)
}

func TestRefreshTokenRoundtrip(t *testing.T) {
	token, err := GenerateRefreshToken()
	require.NoError(t, err)
	require.NotEmpty(t, token)

	hash := HashRefreshToken(token)
	assert.True(t, VerifyRefreshToken(token, hash))
	assert.False(t, VerifyRefreshToken("other-token", hash))
}
