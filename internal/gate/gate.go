// Package gate guards challenge solutions behind a shared password.
package gate

import (
	"crypto/sha256"
	"crypto/subtle"
	"sync"
)

// Gate tracks whether solutions have been unlocked in this process. The
// unlocked state is never written anywhere.
type Gate struct {
	mu       sync.Mutex
	digest   [sha256.Size]byte
	open     bool
	attempts int
}

// New returns a gate for password. An empty password leaves the gate open.
func New(password string) *Gate {
	return &Gate{
		digest: sha256.Sum256([]byte(password)),
		open:   password == "",
	}
}

// Unlock opens the gate when attempt matches the configured password.
// Comparison is constant time over the digests.
func (g *Gate) Unlock(attempt string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.open {
		return true
	}
	g.attempts++
	d := sha256.Sum256([]byte(attempt))
	if subtle.ConstantTimeCompare(d[:], g.digest[:]) == 1 {
		g.open = true
	}
	return g.open
}

// Unlocked reports whether solutions may be shown.
func (g *Gate) Unlocked() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.open
}

// Attempts counts failed and successful unlock tries while locked.
func (g *Gate) Attempts() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.attempts
}
