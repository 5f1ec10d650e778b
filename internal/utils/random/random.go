package random

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"math/big"
)

// Intn returns a uniform, cryptographically secure integer in [0, n).
func Intn(n int) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("random: invalid bound %d", n)
	}
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("failed to generate random number: %w", err)
	}
	return int(v.Int64()), nil
}

// Digits returns a decimal code in [min, max], zero-padded to width.
func Digits(min, max, width int) (string, error) {
	n, err := Intn(max - min + 1)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%0*d", width, min+n), nil
}

// Hex returns n random bytes hex-encoded (2n characters).
func Hex(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
