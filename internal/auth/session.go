// Package auth implements the mocked authentication flow: a user registry
// and the active session, both persisted in the same key-value store the
// board snapshots live in. There is no server; signup creates a local record
// and login verifies against it.
//
// The session drives the persistence bridge's lifecycle: login binds the user
// (loading their snapshot or defaults), a login over an existing session
// switches users without carrying state over, and logout resets the in-memory
// board while retaining the persisted snapshot.
package auth

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/hypejab/triage/internal/storage"
	"github.com/hypejab/triage/internal/validate"
)

// User is the authenticated identity. Email doubles as the user ID for
// storage-key scoping.
type User struct {
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// userRecord is the registry entry persisted per user.
type userRecord struct {
	Email        string    `json:"email"`
	PasswordHash string    `json:"passwordHash"`
	CreatedAt    time.Time `json:"createdAt"`
}

// sessionState is the persisted active-session marker, stored under a global
// (non-user-scoped) key so the next process picks the session back up.
type sessionState struct {
	Email string `json:"email"`
}

// Session manages the current user and the registry.
type Session struct {
	kv        storage.KV
	namespace string
	bridge    *storage.Bridge
	current   *User
}

// NewSession creates a session manager. Call Restore afterwards to resume a
// previously persisted session.
func NewSession(kv storage.KV, namespace string, bridge *storage.Bridge) *Session {
	return &Session{kv: kv, namespace: namespace, bridge: bridge}
}

func (s *Session) userKey(email string) string {
	return fmt.Sprintf("%s_users_%s", s.namespace, email)
}

func (s *Session) sessionKey() string {
	return fmt.Sprintf("%s_auth", s.namespace)
}

// Current returns the active user, or nil.
func (s *Session) Current() *User {
	return s.current
}

// CurrentUserID returns the active user's identity, or "" when logged out.
func (s *Session) CurrentUserID() string {
	if s.current == nil {
		return ""
	}
	return s.current.Email
}

// Signup registers a new user and logs them in. The new user starts with the
// default board.
func (s *Session) Signup(email, password string) (*User, error) {
	if err := validateCredentials(email, password); err != nil {
		return nil, err
	}

	if _, ok, err := s.kv.Get(s.userKey(email)); err != nil {
		return nil, fmt.Errorf("failed to check user registry: %w", err)
	} else if ok {
		return nil, ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	record := userRecord{
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	data, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize user record: %w", err)
	}
	if err := s.kv.Set(s.userKey(email), string(data)); err != nil {
		return nil, fmt.Errorf("failed to store user record: %w", err)
	}

	return s.activate(User{Email: record.Email, CreatedAt: record.CreatedAt}), nil
}

// Login verifies credentials and activates the user's session. Logging in
// while another user is active is a user switch: the previous user's
// in-memory board is never carried over.
func (s *Session) Login(email, password string) (*User, error) {
	if err := validateCredentials(email, password); err != nil {
		return nil, err
	}

	raw, ok, err := s.kv.Get(s.userKey(email))
	if err != nil {
		return nil, fmt.Errorf("failed to read user registry: %w", err)
	}
	if !ok {
		return nil, ErrInvalidCredentials
	}

	var record userRecord
	if err := json.Unmarshal([]byte(raw), &record); err != nil {
		slog.Error("corrupt user record", "email", email, "error", err)
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(record.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	return s.activate(User{Email: record.Email, CreatedAt: record.CreatedAt}), nil
}

// Logout ends the session: in-memory board resets to defaults, the persisted
// snapshot is retained for the next login.
func (s *Session) Logout() {
	s.current = nil
	s.bridge.Unbind()
	s.persistSession("")
}

// DeleteAccount wipes the current user's persisted data (board snapshot and
// registry record) and ends the session. This is the only operation that
// deletes stored user state.
func (s *Session) DeleteAccount() error {
	if s.current == nil {
		return ErrNotLoggedIn
	}
	email := s.current.Email

	if err := s.bridge.DeleteUserData(email); err != nil {
		return err
	}
	// Exact delete: the registry key carries no trailing delimiter, so a
	// prefix delete here would also hit users whose email extends this one
	if err := s.kv.Delete(s.userKey(email)); err != nil {
		return fmt.Errorf("failed to remove user record: %w", err)
	}
	s.Logout()
	return nil
}

// Restore resumes a previously persisted session, binding that user's board.
// Returns the restored user, or nil when no session was active.
func (s *Session) Restore() *User {
	raw, ok, err := s.kv.Get(s.sessionKey())
	if err != nil {
		slog.Error("failed to read session state", "error", err)
		return nil
	}
	if !ok {
		return nil
	}

	var state sessionState
	if err := json.Unmarshal([]byte(raw), &state); err != nil || state.Email == "" {
		return nil
	}

	user := User{Email: state.Email}
	s.current = &user
	s.bridge.BindUser(state.Email)
	return &user
}

// activate makes user the current session: binds the bridge (loading their
// snapshot or defaults) and persists the session marker.
func (s *Session) activate(user User) *User {
	s.current = &user
	s.bridge.BindUser(user.Email)
	s.persistSession(user.Email)
	return &user
}

func (s *Session) persistSession(email string) {
	data, err := json.Marshal(sessionState{Email: email})
	if err != nil {
		slog.Error("failed to serialize session state", "error", err)
		return
	}
	if err := s.kv.Set(s.sessionKey(), string(data)); err != nil {
		slog.Error("failed to persist session state", "error", err)
	}
}

func validateCredentials(email, password string) error {
	if err := validate.Email(email); err != nil {
		return ErrInvalidEmail
	}
	if len(password) < 6 {
		return ErrPasswordTooShort
	}
	return nil
}
