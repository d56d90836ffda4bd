package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	assert.True(t, isValidEmail("fan@example.com"))
	assert.True(t, isValidEmail("ana.silva+promo@tikaramspirits.com"))

	assert.False(t, isValidEmail("not-an-email"))
	assert.False(t, isValidEmail("@example.com"))
	assert.False(t, isValidEmail(""))
}

func TestParseBirthDate(t *testing.T) {
	birth, err := parseBirthDate("1990-05-15")
	assert.NoError(t, err)
	assert.Equal(t, 1990, birth.Year())
	assert.Equal(t, time.May, birth.Month())

	_, err = parseBirthDate("15/05/1990")
	assert.Error(t, err)

	_, err = parseBirthDate("1990-13-40")
	assert.Error(t, err)
}

func TestAgeAtBirthdayBoundary(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	// Turns 21 today.
	assert.Equal(t, 21, ageAt(time.Date(2005, 8, 30, 0, 0, 0, 0, time.UTC), now))
	// Turns 21 tomorrow.
	assert.Equal(t, 20, ageAt(time.Date(2005, 8, 31, 0, 0, 0, 0, time.UTC), now))
	// Birthday later this year, in a later month.
	assert.Equal(t, 20, ageAt(time.Date(2005, 12, 1, 0, 0, 0, 0, time.UTC), now))
}

func TestIsOfLegalAge(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	assert.True(t, isOfLegalAge(time.Date(2005, 8, 30, 0, 0, 0, 0, time.UTC), now))
	assert.True(t, isOfLegalAge(time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC), now))
	assert.False(t, isOfLegalAge(time.Date(2005, 8, 31, 0, 0, 0, 0, time.UTC), now))
	assert.False(t, isOfLegalAge(time.Date(2010, 1, 1, 0, 0, 0, 0, time.UTC), now))
}
