package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestBrandValidate(t *testing.T) {
	brand := Brand{
		BrandName:  "Jackpot BOB",
		BrandImage: strPtr("https://example.com/jackpot-bob.png"),
		Rating:     5,
	}
	assert.NoError(t, brand.Validate())
}

func TestBrandValidateImageOptional(t *testing.T) {
	brand := Brand{BrandName: "Madnix", Rating: 4}
	assert.NoError(t, brand.Validate())
}

func TestBrandValidateRequiredName(t *testing.T) {
	brand := Brand{Rating: 3}
	require.Error(t, brand.Validate())
}

func TestBrandValidateNameTooLong(t *testing.T) {
	brand := Brand{BrandName: strings.Repeat("x", 256), Rating: 3}
	require.Error(t, brand.Validate())
}

func TestBrandValidateRatingRange(t *testing.T) {
	for _, rating := range []int{-1, 0, 6, 100} {
		brand := Brand{BrandName: "Winoui Casino", Rating: rating}
		assert.Error(t, brand.Validate(), "rating %d must be rejected", rating)
	}
	for rating := 1; rating <= 5; rating++ {
		brand := Brand{BrandName: "Winoui Casino", Rating: rating}
		assert.NoError(t, brand.Validate(), "rating %d must be accepted", rating)
	}
}

func TestBrandValidateBadImageURL(t *testing.T) {
	brand := Brand{BrandName: "Wild Sultan", BrandImage: strPtr("not-a-url"), Rating: 4}
	require.Error(t, brand.Validate())
}
