package identity

import (
	"sync"
)

var (
	mu       sync.RWMutex
	verifier Verifier
)

// Init installs the process-wide verifier. The first call wins; repeated
// initialization is a no-op so hot paths cannot swap the verifier mid-flight.
func Init(v Verifier) {
	mu.Lock()
	defer mu.Unlock()
	if verifier != nil {
		return
	}
	verifier = v
}

// Default returns the installed verifier, or nil when Init has not run
func Default() Verifier {
	mu.RLock()
	defer mu.RUnlock()
	return verifier
}

// Reset tears down the global verifier for test isolation
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	verifier = nil
}
