package jwtutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parttimejobs/pkg/config"
)

func testConfig() *config.JWTConfig {
	return &config.JWTConfig{
		SigningKey:      "test-signing-key",
		Issuer:          "parttimejobs-api",
		Audience:        "parttimejobs-web",
		ExpirationHours: 1,
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	util := NewJWTUtil(testConfig())

	token, expiresAt, err := util.GenerateToken("anna@example.com", 7, "Student")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

	claims, err := util.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "anna@example.com", claims.Email)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "Student", claims.Role)
}

func TestValidateToken_WrongKey(t *testing.T) {
	token, _, err := NewJWTUtil(testConfig()).GenerateToken("anna@example.com", 7, "Student")
	require.NoError(t, err)

	other := testConfig()
	other.SigningKey = "different-key"
	_, err = NewJWTUtil(other).ValidateToken(token)
	require.Error(t, err)
}

func TestValidateToken_WrongIssuer(t *testing.T) {
	issuerCfg := testConfig()
	issuerCfg.Issuer = "someone-else"
	token, _, err := NewJWTUtil(issuerCfg).GenerateToken("anna@example.com", 7, "Student")
	require.NoError(t, err)

	_, err = NewJWTUtil(testConfig()).ValidateToken(token)
	require.Error(t, err)
}

func TestValidateToken_WrongAudience(t *testing.T) {
	audienceCfg := testConfig()
	audienceCfg.Audience = "someone-else"
	token, _, err := NewJWTUtil(audienceCfg).GenerateToken("anna@example.com", 7, "Student")
	require.NoError(t, err)

	_, err = NewJWTUtil(testConfig()).ValidateToken(token)
	require.Error(t, err)
}

func TestValidateToken_Garbage(t *testing.T) {
	_, err := NewJWTUtil(testConfig()).ValidateToken("not.a.token")
	require.Error(t, err)
}

func TestGenerateToken_NoConfig(t *testing.T) {
	util := NewJWTUtil(nil)
	_, _, err := util.GenerateToken("anna@example.com", 7, "Student")
	require.Error(t, err)
}
