package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	token, err := GenerateAccessToken("emp-7", "nora@example.com", "employee")
	require.NoError(t, err)

	claims, err := ValidateToken(token)
	require.NoError(t, err)

	assert.Equal(t, "emp-7", claims.EmployeeID)
	assert.Equal(t, "nora@example.com", claims.Email)
	assert.Equal(t, "employee", claims.Role)
}

func TestRefreshTokenCarriesOnlyEmployeeID(t *testing.T) {
	token, err := GenerateRefreshToken("emp-7")
	require.NoError(t, err)

	claims, err := ValidateToken(token)
	require.NoError(t, err)

	assert.Equal(t, "emp-7", claims.EmployeeID)
	assert.Empty(t, claims.Email)
	assert.Empty(t, claims.Role)
}

func TestValidateTokenRejectsTampering(t *testing.T) {
	token, err := GenerateAccessToken("emp-7", "nora@example.com", "employee")
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	tampered := parts[0] + "." + parts[1] + ".AAAA" + parts[2][4:]

	_, err = ValidateToken(tampered)
	assert.Error(t, err)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	_, err := ValidateToken("not-a-token")
	assert.Error(t, err)
}
