package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"bistro/internal/secret"
)

// CredentialVerifier checks passwords for the session store. Swapping the
// implementation does not change the session state machine.
type CredentialVerifier interface {
	// Enroll records the password for email at registration. The returned
	// undo puts back whatever was enrolled for email before the call.
	Enroll(ctx context.Context, email, password string) (undo func(context.Context) error, err error)
	// Verify reports whether password matches the enrolled one.
	Verify(ctx context.Context, email, password string) (bool, error)
	// Forget drops whatever Enroll stored.
	Forget(ctx context.Context, email string) error
}

// MockVerifier accepts any password. Login then rests on email equality
// alone, which is all the demo profile screen ever checked.
type MockVerifier struct{}

func (MockVerifier) Enroll(context.Context, string, string) (func(context.Context) error, error) {
	return func(context.Context) error { return nil }, nil
}
func (MockVerifier) Verify(context.Context, string, string) (bool, error) { return true, nil }
func (MockVerifier) Forget(context.Context, string) error                 { return nil }

// BcryptVerifier keeps a bcrypt hash per email in a SecretStore.
type BcryptVerifier struct {
	secrets secret.SecretStore
	cost    int
}

func NewBcryptVerifier(secrets secret.SecretStore, cost int) *BcryptVerifier {
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptVerifier{secrets: secrets, cost: cost}
}

func secretKey(email string) string {
	return "password:" + email
}

func (v *BcryptVerifier) Enroll(_ context.Context, email, password string) (func(context.Context) error, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), v.cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	key := secretKey(email)
	prev, err := v.secrets.Get(key)
	if err != nil {
		return nil, fmt.Errorf("load previous hash: %w", err)
	}
	if err := v.secrets.Set(key, hash); err != nil {
		return nil, err
	}
	return func(context.Context) error {
		if len(prev) == 0 {
			return v.secrets.Delete(key)
		}
		return v.secrets.Set(key, prev)
	}, nil
}

func (v *BcryptVerifier) Verify(_ context.Context, email, password string) (bool, error) {
	hash, err := v.secrets.Get(secretKey(email))
	if err != nil {
		return false, fmt.Errorf("load password hash: %w", err)
	}
	if len(hash) == 0 {
		return false, nil
	}
	err = bcrypt.CompareHashAndPassword(hash, []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("compare password: %w", err)
	}
	return true, nil
}

func (v *BcryptVerifier) Forget(_ context.Context, email string) error {
	return v.secrets.Delete(secretKey(email))
}
