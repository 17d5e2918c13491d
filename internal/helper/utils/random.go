package utils

import (
	"crypto/rand"
	"errors"
	"math/big"
)

// RandomOTP returns a numeric one-time code of the given length. Leading
// zeros are allowed.
func RandomOTP(length int) (string, error) {
	if length <= 0 {
		return "", errors.New("otp length must be positive")
	}

	digits := make([]byte, length)
	for i := range digits {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", errors.New("failed to generate otp")
		}
		digits[i] = byte('0' + n.Int64())
	}
	return string(digits), nil
}
