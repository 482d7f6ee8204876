package domain

import "context"

type SessionStatus string

const (
	SessionSignedOut SessionStatus = "signed_out"
	SessionSignedIn  SessionStatus = "signed_in"
)

// SessionRecord is the single locally persisted user.
type SessionRecord struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// SessionState is what the profile screen renders. User is nil when signed out.
type SessionState struct {
	Status SessionStatus  `json:"status"`
	User   *SessionRecord `json:"user,omitempty"`
}

// SignedIn reports whether a user is present.
func (s SessionState) SignedIn() bool {
	return s.Status == SessionSignedIn && s.User != nil
}

// SettingsStore is a durable string key/value store.
// Get returns ok=false when the key is absent.
type SettingsStore interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	SetMany(ctx context.Context, values map[string]string) error
	Delete(ctx context.Context, keys ...string) error
}
