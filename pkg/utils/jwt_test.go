package utils

import (
	"testing"
	"time"

	"github.com/psaswat/testyourmodels/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	profile := models.Profile{
		ID:      "u-1",
		Name:    "Ada Lovelace",
		Email:   "ada@example.com",
		Picture: "https://x/avatar.png",
	}

	token, err := GenerateToken("secret", profile, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken("secret", token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, "ada@example.com", claims.Email)
	assert.Equal(t, "Ada Lovelace", claims.Name)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken("secret", models.Profile{ID: "u-1"}, time.Hour)
	require.NoError(t, err)

	_, err = ValidateToken("other", token)
	assert.Error(t, err)
}

func TestValidateTokenExpired(t *testing.T) {
	token, err := GenerateToken("secret", models.Profile{ID: "u-1"}, -time.Minute)
	require.NoError(t, err)

	_, err = ValidateToken("secret", token)
	assert.Error(t, err)
}

func TestValidateTokenGarbage(t *testing.T) {
	_, err := ValidateToken("secret", "not.a.token")
	assert.Error(t, err)
}
