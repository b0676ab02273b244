// Package secrets stores the LinkedIn account password in the OS
// keychain so it never has to live in a config file or shell history.
package secrets

import (
	"errors"
	"strings"

	"github.com/zalando/go-keyring"
)

// KeyringService groups this app's secrets in the OS keychain.
const KeyringService = "linkedin-mcp"

// GetPassword reads the stored password for the given account email.
func GetPassword(email string) (string, error) {
	if strings.TrimSpace(email) == "" {
		return "", errors.New("account email is empty")
	}
	pw, err := keyring.Get(KeyringService, email)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(pw) == "" {
		return "", errors.New("stored password is empty")
	}
	return pw, nil
}

// SetPassword stores the password for the given account email.
func SetPassword(email, password string) error {
	if strings.TrimSpace(email) == "" {
		return errors.New("account email is empty")
	}
	if strings.TrimSpace(password) == "" {
		return errors.New("password is empty")
	}
	return keyring.Set(KeyringService, email, password)
}

// DeletePassword removes the stored password for the given account email.
func DeletePassword(email string) error {
	if strings.TrimSpace(email) == "" {
		return errors.New("account email is empty")
	}
	err := keyring.Delete(KeyringService, email)
	if errors.Is(err, keyring.ErrNotFound) {
		return nil
	}
	return err
}
