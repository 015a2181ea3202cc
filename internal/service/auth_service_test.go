package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pinnedAuthService(t *testing.T) *AuthService {
	t.Helper()
	t.Setenv("AGENT_USERNAME", "admin")
	t.Setenv("AGENT_PASSWORD", "password123")
	t.Setenv("JWT_SECRET", "test-secret")
	return NewAuthService()
}

func TestLoginWithDefaultCredentials(t *testing.T) {
	svc := pinnedAuthService(t)

	resp, err := svc.Login("admin", "password123")
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.NotEmpty(t, resp.AgentID)

	claims, err := svc.ValidateAgentToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.AgentID, claims.AgentID)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := pinnedAuthService(t)

	_, err := svc.Login("admin", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login("nobody", "password123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestVIPTokenRoundTrip(t *testing.T) {
	svc := pinnedAuthService(t)

	token, err := svc.GenerateVIPToken("vip-1", "agent-1")
	require.NoError(t, err)

	claims, err := svc.ValidateVIPToken(token)
	require.NoError(t, err)
	assert.Equal(t, "vip-1", claims.VIPID)
	assert.Equal(t, "agent-1", claims.AgentID)
}

func TestValidateRejectsGarbageTokens(t *testing.T) {
	svc := pinnedAuthService(t)

	_, err := svc.ValidateAgentToken("not.a.jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = svc.ValidateVIPToken("")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
