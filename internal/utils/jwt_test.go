// internal/utils/jwt_test.go
package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdminJWTRoundTrip(t *testing.T) {
	SetJWTSecret("test-secret")

	token, err := GenerateAdminJWT("admin@warehouse414.com", 1)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := ValidateAdminJWT(token)
	assert.NoError(t, err)
	assert.Equal(t, "admin@warehouse414.com", claims.Email)
}

func TestAdminJWTRejectsWrongSecret(t *testing.T) {
	SetJWTSecret("first-secret")
	token, err := GenerateAdminJWT("admin@warehouse414.com", 1)
	assert.NoError(t, err)

	SetJWTSecret("second-secret")
	_, err = ValidateAdminJWT(token)
	assert.Error(t, err)
}

func TestAdminJWTRejectsGarbage(t *testing.T) {
	SetJWTSecret("test-secret")

	_, err := ValidateAdminJWT("not-a-token")
	assert.Error(t, err)
}
