package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkhalitov/shoplist/models"
)

const (
	testSignKey = "test-sign-key"
	testIssuer  = "shoplist-test"
)

func testUser() models.User {
	return models.User{
		ID:       "0190a1b2-0000-7000-8000-000000000001",
		Username: "john",
	}
}

func TestGenerateJWTToken_RoundTrip(t *testing.T) {
	tokenString, err := GenerateJWTToken(testIssuer, testUser(), time.Hour, testSignKey)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	claims, err := ValidateAndParseJWTToken(tokenString, testSignKey, testIssuer)
	require.NoError(t, err)

	assert.Equal(t, testUser().ID, claims.UserID)
	assert.Equal(t, testUser().Username, claims.Username)
	assert.Equal(t, testIssuer, claims.Issuer)
	assert.Equal(t, testUser().ID, claims.Subject)
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name          string
		issuer        string
		user          models.User
		tokenDuration time.Duration
		signKey       string
	}{
		{name: "empty issuer", user: testUser(), tokenDuration: time.Hour, signKey: testSignKey},
		{name: "empty user id", issuer: testIssuer, tokenDuration: time.Hour, signKey: testSignKey},
		{name: "zero duration", issuer: testIssuer, user: testUser(), signKey: testSignKey},
		{name: "empty sign key", issuer: testIssuer, user: testUser(), tokenDuration: time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, tt.user, tt.tokenDuration, tt.signKey)
			assert.Error(t, err)
		})
	}
}

func TestValidateAndParseJWTToken_WrongKey(t *testing.T) {
	tokenString, err := GenerateJWTToken(testIssuer, testUser(), time.Hour, testSignKey)
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(tokenString, "different-key", testIssuer)
	assert.Error(t, err)
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	tokenString, err := GenerateJWTToken(testIssuer, testUser(), time.Hour, testSignKey)
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(tokenString, testSignKey, "other-service")
	assert.Error(t, err)
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	tokenString, err := GenerateJWTToken(testIssuer, testUser(), -time.Minute, testSignKey)
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(tokenString, testSignKey, testIssuer)
	assert.Error(t, err)
}

func TestValidateAndParseJWTToken_Garbage(t *testing.T) {
	_, err := ValidateAndParseJWTToken("not.a.token", testSignKey, testIssuer)
	assert.Error(t, err)
}
