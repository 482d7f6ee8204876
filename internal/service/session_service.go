package service

import (
	"context"
	"strings"
	"sync"

	"go.uber.org/zap"

	"bistro/internal/domain"
)

// ─────────────────────────────────────────────────────────────
// Session Service: single local mock user
// ─────────────────────────────────────────────────────────────

// Keys in the settings store. Absence of either means signed out.
const (
	KeyUserName  = "userName"
	KeyUserEmail = "userEmail"
)

const fallbackUserName = "User"

type AuthMode string

const (
	AuthModeSignIn   AuthMode = "signin"
	AuthModeRegister AuthMode = "register"
)

// AuthForm is the in-memory sign-in / register form.
type AuthForm struct {
	Mode            AuthMode `json:"mode"`
	Name            string   `json:"name"`
	Email           string   `json:"email"`
	Password        string   `json:"password"`
	ConfirmPassword string   `json:"confirmPassword"`
}

// RegisterInput is the registration form payload.
type RegisterInput struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// SessionService is the SignedOut / SignedIn state machine backed by the
// settings store. Validation failures come back as *ValidationError.
// Store failures are logged and leave the state unchanged without an error,
// the store being a best-effort cache.
type SessionService struct {
	mu       sync.Mutex
	store    domain.SettingsStore
	verifier CredentialVerifier
	emitter  EventEmitter
	log      *zap.Logger

	state domain.SessionState
	form  AuthForm
}

func NewSessionService(
	store domain.SettingsStore,
	verifier CredentialVerifier,
	emitter EventEmitter,
	log *zap.Logger,
) *SessionService {
	return &SessionService{
		store:    store,
		verifier: verifier,
		emitter:  emitter,
		log:      log.Named("session"),
		state:    signedOut(),
		form:     AuthForm{Mode: AuthModeSignIn},
	}
}

func signedOut() domain.SessionState {
	return domain.SessionState{Status: domain.SessionSignedOut}
}

func signedIn(name, email string) domain.SessionState {
	return domain.SessionState{
		Status: domain.SessionSignedIn,
		User:   &domain.SessionRecord{Name: name, Email: email},
	}
}

// State returns the current session.
func (s *SessionService) State() domain.SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Restore reloads the session from the settings store. Called at startup and
// whenever another process may have changed the store; session:changed fires
// only if the state differs.
func (s *SessionService) Restore(ctx context.Context) domain.SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()

	name, okName, err := s.store.Get(ctx, KeyUserName)
	if err != nil {
		s.log.Error("restore: read name", zap.Error(err))
		return s.state
	}
	email, okEmail, err := s.store.Get(ctx, KeyUserEmail)
	if err != nil {
		s.log.Error("restore: read email", zap.Error(err))
		return s.state
	}

	next := signedOut()
	if okName && okEmail && name != "" && email != "" {
		next = signedIn(name, email)
	}
	s.transition(ctx, next)
	return s.state
}

// Register validates the form, persists name and email and signs in.
func (s *SessionService) Register(ctx context.Context, in RegisterInput) (domain.SessionState, error) {
	if strings.TrimSpace(in.Email) == "" || strings.TrimSpace(in.Password) == "" {
		return s.State(), validation(MsgFillEmailPassword)
	}
	if strings.TrimSpace(in.Name) == "" {
		return s.State(), validation(MsgEnterName)
	}
	if in.Password != in.ConfirmPassword {
		return s.State(), validation(MsgPasswordsMismatch)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	prevEmail, _, err := s.store.Get(ctx, KeyUserEmail)
	if err != nil {
		s.log.Error("register: read email", zap.Error(err))
		return s.state, nil
	}
	undo, err := s.verifier.Enroll(ctx, in.Email, in.Password)
	if err != nil {
		s.log.Error("register: enroll credentials", zap.String("email", in.Email), zap.Error(err))
		return s.state, nil
	}
	if err := s.store.SetMany(ctx, map[string]string{
		KeyUserName:  in.Name,
		KeyUserEmail: in.Email,
	}); err != nil {
		s.log.Error("register: save user", zap.String("email", in.Email), zap.Error(err))
		if err := undo(ctx); err != nil {
			s.log.Warn("register: restore credentials", zap.Error(err))
		}
		return s.state, nil
	}
	// The replaced profile's password no longer belongs to anyone.
	if prevEmail != "" && prevEmail != in.Email {
		if err := s.verifier.Forget(ctx, prevEmail); err != nil {
			s.log.Warn("register: forget previous credentials", zap.Error(err))
		}
	}

	s.transition(ctx, signedIn(in.Name, in.Email))
	return s.state, nil
}

// Login signs in when email matches the persisted user and the verifier
// accepts the password.
func (s *SessionService) Login(ctx context.Context, email, password string) (domain.SessionState, error) {
	if strings.TrimSpace(email) == "" || strings.TrimSpace(password) == "" {
		return s.State(), validation(MsgFillEmailPassword)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	saved, ok, err := s.store.Get(ctx, KeyUserEmail)
	if err != nil {
		s.log.Error("login: read email", zap.Error(err))
		return s.state, nil
	}
	if !ok || saved != email {
		return s.state, ErrInvalidCredentials
	}

	valid, err := s.verifier.Verify(ctx, email, password)
	if err != nil {
		s.log.Error("login: verify credentials", zap.String("email", email), zap.Error(err))
		return s.state, nil
	}
	if !valid {
		return s.state, ErrInvalidCredentials
	}

	name, _, err := s.store.Get(ctx, KeyUserName)
	if err != nil {
		s.log.Error("login: read name", zap.Error(err))
		return s.state, nil
	}
	if name == "" {
		name = fallbackUserName
	}

	s.transition(ctx, signedIn(name, saved))
	return s.state, nil
}

// Logout clears the persisted user and the form.
func (s *SessionService) Logout(ctx context.Context) domain.SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Delete(ctx, KeyUserName, KeyUserEmail); err != nil {
		s.log.Error("logout: delete user", zap.Error(err))
		return s.state
	}
	if s.state.User != nil {
		if err := s.verifier.Forget(ctx, s.state.User.Email); err != nil {
			s.log.Warn("logout: forget credentials", zap.Error(err))
		}
	}

	s.form = AuthForm{Mode: s.form.Mode}
	s.transition(ctx, signedOut())
	return s.state
}

// Form returns the auth form contents.
func (s *SessionService) Form() AuthForm {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form
}

// SetForm replaces the form fields, keeping the current mode when f.Mode is empty.
func (s *SessionService) SetForm(f AuthForm) AuthForm {
	s.mu.Lock()
	defer s.mu.Unlock()
	if f.Mode == "" {
		f.Mode = s.form.Mode
	}
	s.form = f
	return s.form
}

// SwitchMode toggles between sign-in and register. Email survives the
// switch; name and passwords do not.
func (s *SessionService) SwitchMode() AuthForm {
	s.mu.Lock()
	defer s.mu.Unlock()
	mode := AuthModeRegister
	if s.form.Mode == AuthModeRegister {
		mode = AuthModeSignIn
	}
	s.form = AuthForm{Mode: mode, Email: s.form.Email}
	return s.form
}

// SubmitForm runs Register or Login depending on the form mode.
func (s *SessionService) SubmitForm(ctx context.Context) (domain.SessionState, error) {
	f := s.Form()
	if f.Mode == AuthModeRegister {
		return s.Register(ctx, RegisterInput{
			Name:            f.Name,
			Email:           f.Email,
			Password:        f.Password,
			ConfirmPassword: f.ConfirmPassword,
		})
	}
	return s.Login(ctx, f.Email, f.Password)
}

// transition must be called with s.mu held. Only real changes are emitted.
func (s *SessionService) transition(ctx context.Context, next domain.SessionState) {
	if sameSession(s.state, next) {
		return
	}
	s.state = next
	s.emitter.Emit(ctx, EventSessionChanged, next)
}

func sameSession(a, b domain.SessionState) bool {
	if a.Status != b.Status || (a.User == nil) != (b.User == nil) {
		return false
	}
	return a.User == nil || *a.User == *b.User
}
