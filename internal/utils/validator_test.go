// internal/utils/validator_test.go
package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type slugFixture struct {
	Slug string `validate:"slug"`
}

type hexFixture struct {
	Hex string `validate:"hex_color"`
}

func TestSlugValidation(t *testing.T) {
	valid := []string{"walnut-credenza", "no-45-lounge-chair", "a", "x9"}
	for _, s := range valid {
		assert.NoError(t, ValidateStruct(&slugFixture{Slug: s}), s)
	}

	invalid := []string{"", "Walnut", "double--hyphen", "-leading", "trailing-", "has space", "ümlauts"}
	for _, s := range invalid {
		assert.Error(t, ValidateStruct(&slugFixture{Slug: s}), s)
	}
}

func TestHexColorValidation(t *testing.T) {
	assert.NoError(t, ValidateStruct(&hexFixture{Hex: "#a52a2a"}))
	assert.NoError(t, ValidateStruct(&hexFixture{Hex: "#FF00AA"}))
	assert.NoError(t, ValidateStruct(&hexFixture{Hex: ""}))

	assert.Error(t, ValidateStruct(&hexFixture{Hex: "a52a2a"}))
	assert.Error(t, ValidateStruct(&hexFixture{Hex: "#fff"}))
	assert.Error(t, ValidateStruct(&hexFixture{Hex: "#gggggg"}))
}

func TestGetValidationErrors(t *testing.T) {
	type form struct {
		Name  string `validate:"required"`
		Email string `validate:"required,email"`
	}

	errs := GetValidationErrors(ValidateStruct(&form{Email: "not-an-email"}))

	assert.Len(t, errs, 2)
	assert.Equal(t, "name", errs[0].Field)
	assert.Equal(t, "required", errs[0].Tag)
	assert.Equal(t, "email", errs[1].Field)
	assert.Equal(t, "Invalid email format", errs[1].Message)
}

func TestGetValidationErrorsNilError(t *testing.T) {
	assert.Empty(t, GetValidationErrors(nil))
}
