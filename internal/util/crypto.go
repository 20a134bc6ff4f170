package util

import (
	"fmt"
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

// HashPIN returns a bcrypt hash suitable for KIOSK_SETTINGS_PIN_HASH.
func HashPIN(pin string) (string, error) {
	if err := ValidatePIN(pin); err != nil {
		return "", err
	}
	sum, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(sum), nil
}

// CheckPIN reports whether pin matches the stored bcrypt hash.
func CheckPIN(hash, pin string) bool {
	if hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pin)) == nil
}

func ValidatePIN(pin string) error {
	if len(pin) < 4 || len(pin) > 12 {
		return fmt.Errorf("PIN must be 4 to 12 digits")
	}
	for _, r := range pin {
		if !unicode.IsDigit(r) {
			return fmt.Errorf("PIN must contain digits only")
		}
	}
	return nil
}
