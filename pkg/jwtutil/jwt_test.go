package jwtutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventory-service/pkg/config"
)

func TestTokenRoundTrip(t *testing.T) {
	Initialize(&config.JWTConfig{SigningKey: "test-signing-key", ExpirationHours: 1})

	token, err := GenerateToken(7, "owner@example.com", 3, "Mita Fashion", "owner")
	require.NoError(t, err)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	require.NotNil(t, claims.StoreID)
	assert.Equal(t, uint(3), *claims.StoreID)
	assert.Equal(t, "Mita Fashion", claims.StoreName)
	assert.Equal(t, "owner", claims.Role)
}

func TestValidateTokenRejectsTampered(t *testing.T) {
	Initialize(&config.JWTConfig{SigningKey: "test-signing-key", ExpirationHours: 1})

	token, err := GenerateToken(7, "owner@example.com", 3, "Mita Fashion", "owner")
	require.NoError(t, err)

	_, err = ValidateToken(token + "x")
	assert.Error(t, err)

	_, err = ValidateToken("not-a-token")
	assert.Error(t, err)
}
