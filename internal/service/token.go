package service

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// tokenRegistry is the process-local registry of one-time contact form
// tokens. It is volatile: a restart discards outstanding tokens, which is
// acceptable since tokens are meant for single-session use within minutes.
// Issued tokens never expire; they live until consumed.
type tokenRegistry struct {
	mu     sync.Mutex
	tokens map[string]time.Time
}

func newTokenRegistry() *tokenRegistry {
	return &tokenRegistry{tokens: make(map[string]time.Time)}
}

// issue generates a random token and records its issuance time
func (r *tokenRegistry) issue() string {
	token := uuid.New().String()
	r.mu.Lock()
	r.tokens[token] = time.Now()
	r.mu.Unlock()
	return token
}

// consume removes the token and reports whether it was present. A token is
// accepted at most once.
func (r *tokenRegistry) consume(token string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tokens[token]; !ok {
		return false
	}
	delete(r.tokens, token)
	return true
}
