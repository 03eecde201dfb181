package jwt

import (
	"Melt-App/domain"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *jwtService {
	return &jwtService{secretKey: "test-secret", issuer: "MELT"}
}

func TestGenerateAndValidateUserToken(t *testing.T) {
	svc := newTestService()
	userID := uuid.New().String()

	token := svc.GenerateTokenUser(userID, domain.RoleUser)
	require.NotEmpty(t, token)

	id, role, err := svc.GetUserIDByToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, id)
	assert.Equal(t, domain.RoleUser, role)
}

func TestGetUserIDByTokenRejectsGarbage(t *testing.T) {
	svc := newTestService()

	_, _, err := svc.GetUserIDByToken("not-a-token")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestGetUserIDByTokenRejectsWrongSecret(t *testing.T) {
	svc := newTestService()
	other := &jwtService{secretKey: "different-secret", issuer: "MELT"}

	token := svc.GenerateTokenUser(uuid.New().String(), domain.RoleAdmin)
	_, _, err := other.GetUserIDByToken(token)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestVerificationTokenRoundTrip(t *testing.T) {
	svc := newTestService()

	token, err := svc.GenerateVerificationToken(map[string]any{"email": "user@example.com"}, time.Hour)
	require.NoError(t, err)

	claims, err := svc.ValidateVerificationToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", claims["email"])
	assert.Equal(t, "MELT", claims["iss"])
}

func TestVerificationTokenExpired(t *testing.T) {
	svc := newTestService()

	token, err := svc.GenerateVerificationToken(map[string]any{"email": "user@example.com"}, -time.Minute)
	require.NoError(t, err)

	_, err = svc.ValidateVerificationToken(token)
	assert.ErrorIs(t, err, domain.ErrTokenExpired)
}
