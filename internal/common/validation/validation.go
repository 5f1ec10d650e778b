package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	MaxTelegramIDLength = 20
	MaxCountryLength    = 16
	MaxKeyLength        = 256
)

var validate = validator.New()

var (
	// Dotted-quad IPv4 only: no CIDR suffix, no port.
	ipv4Regex    = regexp.MustCompile(`^(25[0-5]|2[0-4]\d|1?\d?\d)(\.(25[0-5]|2[0-4]\d|1?\d?\d)){3}$`)
	countryRegex = regexp.MustCompile(`^[a-z0-9_-]+$`)
)

// ValidateTelegramID checks that id is a non-empty numeric Telegram chat id.
func ValidateTelegramID(id string) error {
	if id == "" {
		return fmt.Errorf("telegram id cannot be empty")
	}
	if len(id) > MaxTelegramIDLength {
		return fmt.Errorf("telegram id cannot exceed %d digits", MaxTelegramIDLength)
	}
	if err := validate.Var(id, "number"); err != nil {
		return fmt.Errorf("telegram id must be numeric")
	}
	return nil
}

// IsIPv4 reports whether s is a bare dotted-quad IPv4 address.
func IsIPv4(s string) bool {
	return ipv4Regex.MatchString(s)
}

// SplitIPv4Lines trims each entry and partitions the non-empty ones into
// valid IPv4 addresses and rejected entries, preserving order.
func SplitIPv4Lines(lines []string) (valid, rejected []string) {
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if IsIPv4(line) {
			valid = append(valid, line)
		} else {
			rejected = append(rejected, line)
		}
	}
	return valid, rejected
}

// NormalizeCountry lower-cases and validates a country code.
func NormalizeCountry(code string) (string, error) {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" {
		return "", fmt.Errorf("country code cannot be empty")
	}
	if len(code) > MaxCountryLength {
		return "", fmt.Errorf("country code cannot exceed %d characters", MaxCountryLength)
	}
	if !countryRegex.MatchString(code) {
		return "", fmt.Errorf("country code must contain only letters, digits, '-' or '_'")
	}
	return code, nil
}

// ValidateKey checks a generic KV key.
func ValidateKey(key string) error {
	if key == "" {
		return fmt.Errorf("key is required")
	}
	if len(key) > MaxKeyLength {
		return fmt.Errorf("key cannot exceed %d characters", MaxKeyLength)
	}
	return nil
}
