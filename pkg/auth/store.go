package auth

import "sync"

// TokenStore holds the session's bearer token in memory. It satisfies the
// apiclient.TokenSource interface, so a single store can both receive the
// token at login and feed it to every subsequent request.
//
// The zero value is an empty, usable store.
type TokenStore struct {
	mu    sync.RWMutex
	token string
}

// NewTokenStore creates an empty token store.
func NewTokenStore() *TokenStore {
	return &TokenStore{}
}

// Token returns the stored token. The second value is false when no
// session is active.
func (s *TokenStore) Token() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, s.token != ""
}

// SetToken stores the token obtained from the login endpoint.
func (s *TokenStore) SetToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

// Clear drops the stored token, ending the session locally. It is the
// host's sign-out hook of choice for the client's 401 handling.
func (s *TokenStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
}

// IsAuthenticated reports whether a token is currently stored.
func (s *TokenStore) IsAuthenticated() bool {
	_, ok := s.Token()
	return ok
}
