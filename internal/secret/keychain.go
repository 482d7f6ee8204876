package secret

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

const keychainService = "bistro-credentials"

// exit status of `security find-generic-password` when no item matches
const keychainItemNotFound = 44

// KeychainStore implements SecretStore using the macOS Keychain
// via the `security` CLI tool. Keys map to keychain accounts.
type KeychainStore struct {
	run func(name string, args ...string) ([]byte, error)
}

func NewKeychainStore() *KeychainStore {
	return &KeychainStore{run: func(name string, args ...string) ([]byte, error) {
		return exec.Command(name, args...).Output()
	}}
}

// Set adds or replaces the secret for key.
func (k *KeychainStore) Set(key string, value []byte) error {
	out, err := k.run("security", "add-generic-password",
		"-a", key,
		"-s", keychainService,
		"-w", string(value),
		"-U", // update if exists
	)
	if err != nil {
		return fmt.Errorf("keychain set %s: %s: %w", key, strings.TrimSpace(string(out)), err)
	}
	return nil
}

// Get returns nil, nil when the key has no item.
func (k *KeychainStore) Get(key string) ([]byte, error) {
	out, err := k.run("security", "find-generic-password",
		"-a", key,
		"-s", keychainService,
		"-w",
	)
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() == keychainItemNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("keychain get %s: %w", key, err)
	}
	return []byte(strings.TrimSpace(string(out))), nil
}

// Delete removes the item for key; a missing item is not an error.
func (k *KeychainStore) Delete(key string) error {
	_, err := k.run("security", "delete-generic-password",
		"-a", key,
		"-s", keychainService,
	)
	var exitErr *exec.ExitError
	if err != nil && !(errors.As(err, &exitErr) && exitErr.ExitCode() == keychainItemNotFound) {
		return fmt.Errorf("keychain delete %s: %w", key, err)
	}
	return nil
}
