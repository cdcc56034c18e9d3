package session

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"time"
)

// tokenLength is the size of the raw session token in bytes (256 bits).
const tokenLength = 32

// Session is an opaque, optionally expiring record of named values.
//
// The ID is stable for the life of the session and is derived from a secret
// random token: the token itself is handed to the client as the cookie value,
// while the ID stored server-side is a hash of it. Knowing an ID is therefore
// not enough to forge a valid cookie.
type Session struct {
	// ID is the stable unique session identifier. It never changes during
	// the session lifecycle except through Regenerate.
	ID string `json:"id"`

	// ExpiresAt is the absolute expiration instant. The zero value means
	// the session never expires.
	ExpiresAt time.Time `json:"expires_at,omitzero"`

	// Values holds named session data. Values must be JSON-serializable.
	Values map[string]any `json:"values"`

	// cookieValue is the client-facing encoded token. It is set only when
	// the session was created or regenerated in this process, never when
	// loaded back from a store, and is excluded from serialization.
	cookieValue string
}

// New creates a session with a freshly generated token and ID.
func New() (*Session, error) {
	token, err := generateToken()
	if err != nil {
		return nil, err
	}

	return &Session{
		ID:          idFromToken(token),
		Values:      make(map[string]any),
		cookieValue: base64.RawURLEncoding.EncodeToString(token),
	}, nil
}

// IDFromCookieValue recovers the session ID encoded in a cookie value.
// Returns ErrInvalidCookie if the value is not a well-formed token.
func IDFromCookieValue(cookieValue string) (string, error) {
	token, err := base64.RawURLEncoding.DecodeString(cookieValue)
	if err != nil {
		return "", errors.Join(ErrInvalidCookie, err)
	}
	if len(token) != tokenLength {
		return "", ErrInvalidCookie
	}
	return idFromToken(token), nil
}

// CookieValue returns the client-facing encoded token, or an empty string
// when the session was loaded from a store and no new cookie needs issuing.
func (s *Session) CookieValue() string {
	return s.cookieValue
}

// Regenerate replaces the session's token and ID with fresh values.
// The old backend record, if any, is not removed here; callers that rotate
// an existing session should destroy the old record themselves.
func (s *Session) Regenerate() error {
	token, err := generateToken()
	if err != nil {
		return err
	}
	s.ID = idFromToken(token)
	s.cookieValue = base64.RawURLEncoding.EncodeToString(token)
	return nil
}

// Set stores a named value in the session.
func (s *Session) Set(key string, value any) {
	if s.Values == nil {
		s.Values = make(map[string]any)
	}
	s.Values[key] = value
}

// Get returns a named value and whether it is present.
func (s *Session) Get(key string) (any, bool) {
	v, ok := s.Values[key]
	return v, ok
}

// Delete removes a named value from the session.
func (s *Session) Delete(key string) {
	delete(s.Values, key)
}

// Len returns the number of named values in the session.
func (s *Session) Len() int {
	return len(s.Values)
}

// ExpireIn sets the session to expire after the given duration from now.
func (s *Session) ExpireIn(d time.Duration) {
	s.ExpiresAt = time.Now().Add(d)
}

// SetExpiry sets the absolute expiration instant. A zero time removes the
// expiration entirely.
func (s *Session) SetExpiry(t time.Time) {
	s.ExpiresAt = t
}

// ExpiresIn returns the remaining lifetime of the session. The second return
// value is false when no expiration is set; the duration may be negative or
// zero when the expiration has already elapsed.
func (s *Session) ExpiresIn() (time.Duration, bool) {
	if s.ExpiresAt.IsZero() {
		return 0, false
	}
	return time.Until(s.ExpiresAt), true
}

// IsExpired returns true if the session has an expiration and it has passed.
func (s *Session) IsExpired() bool {
	return !s.ExpiresAt.IsZero() && time.Now().After(s.ExpiresAt)
}

func idFromToken(token []byte) string {
	sum := sha256.Sum256(token)
	return base64.RawURLEncoding.EncodeToString(sum[:])
}

func generateToken() ([]byte, error) {
	b := make([]byte, tokenLength)
	if _, err := rand.Read(b); err != nil {
		return nil, errors.Join(ErrTokenGeneration, err)
	}
	return b, nil
}
