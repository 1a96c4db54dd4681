package keyring

import (
	"errors"
	"fmt"
	"os"

	"github.com/zalando/go-keyring"

	"github.com/noorjournal/noor/internal/constants"
)

var (
	// ErrNotFound is returned when no API key is stored in the keyring
	ErrNotFound = errors.New("API key not found in keyring")
	// ErrKeyringUnavailable is returned when the OS keyring is not available
	ErrKeyringUnavailable = errors.New("OS keyring is not available")
)

// GetAPIKey returns the Gemini API key. The environment variable takes
// precedence over the OS keyring, so headless setups work without one.
func GetAPIKey() (string, error) {
	if key := os.Getenv(constants.GeminiAPIKeyEnv); key != "" {
		return key, nil
	}
	key, err := keyring.Get(constants.AppName, constants.GeminiKeyringUser)
	if err != nil {
		if err == keyring.ErrNotFound {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}
	return key, nil
}

// SetAPIKey stores the Gemini API key in the OS keyring.
func SetAPIKey(key string) error {
	if key == "" {
		return errors.New("API key cannot be empty")
	}
	if err := keyring.Set(constants.AppName, constants.GeminiKeyringUser, key); err != nil {
		return fmt.Errorf("failed to store API key in keyring: %w", err)
	}
	return nil
}

// DeleteAPIKey removes the Gemini API key from the OS keyring.
func DeleteAPIKey() error {
	err := keyring.Delete(constants.AppName, constants.GeminiKeyringUser)
	if err != nil {
		if err == keyring.ErrNotFound {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete API key from keyring: %w", err)
	}
	return nil
}
