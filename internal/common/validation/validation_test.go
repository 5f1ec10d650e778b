package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateTelegramID(t *testing.T) {
	assert.NoError(t, ValidateTelegramID("123456789"))
	assert.Error(t, ValidateTelegramID(""))
	assert.Error(t, ValidateTelegramID("12a"))
	assert.Error(t, ValidateTelegramID("-100"))
	assert.Error(t, ValidateTelegramID(strings.Repeat("1", 21)))
}

func TestIsIPv4(t *testing.T) {
	for _, ok := range []string{"1.2.3.4", "255.255.255.255", "0.0.0.0", "10.0.0.01"} {
		assert.True(t, IsIPv4(ok), ok)
	}
	for _, bad := range []string{"256.1.1.1", "1.2.3", "1.2.3.4/24", "1.2.3.4:53", "example.com", " 1.2.3.4"} {
		assert.False(t, IsIPv4(bad), bad)
	}
}

func TestSplitIPv4Lines(t *testing.T) {
	valid, rejected := SplitIPv4Lines([]string{" 1.1.1.1 ", "", "8.8.8.8:53", "9.9.9.9"})
	assert.Equal(t, []string{"1.1.1.1", "9.9.9.9"}, valid)
	assert.Equal(t, []string{"8.8.8.8:53"}, rejected)
}

func TestNormalizeCountry(t *testing.T) {
	code, err := NormalizeCountry(" UK ")
	require.NoError(t, err)
	assert.Equal(t, "uk", code)

	_, err = NormalizeCountry("")
	assert.Error(t, err)
	_, err = NormalizeCountry("u k")
	assert.Error(t, err)
	_, err = NormalizeCountry("uk:used")
	assert.Error(t, err)
}
