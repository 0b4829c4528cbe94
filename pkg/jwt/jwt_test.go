package jwt

import (
	"testing"
	"time"

	"truedoc-admin/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(secret string) *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:       secret,
		Issuer:       "truedoc-admin",
		AccessExpiry: time.Hour,
	})
}

func TestGenerateAndValidateSessionToken(t *testing.T) {
	svc := newTestService("secret")
	accountID := uuid.New()

	token, sessionID, expiresAt, err := svc.GenerateSessionToken(accountID, "mod@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, sessionID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, accountID, claims.AccountID)
	assert.Equal(t, "mod@example.com", claims.Email)
	assert.Equal(t, sessionID, claims.SessionID)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	token, _, _, err := newTestService("secret").GenerateSessionToken(uuid.New(), "mod@example.com")
	require.NoError(t, err)

	_, err = newTestService("other").ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateToken_Expired(t *testing.T) {
	svc := newTestService("secret")
	svc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	token, _, _, err := svc.GenerateSessionToken(uuid.New(), "mod@example.com")
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateToken_Garbage(t *testing.T) {
	_, err := newTestService("secret").ValidateToken("not-a-token")
	assert.Error(t, err)
}
