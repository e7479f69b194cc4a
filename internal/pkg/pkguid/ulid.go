package pkguid

import (
	mathrand "math/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// ULID generates lexicographically sortable identifiers.
//
// Entropy is monotonic so IDs created within the same millisecond still sort
// in creation order. ulid.MonotonicReader is not goroutine-safe, hence the mutex.
type ULID struct {
	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

// NewULID returns a ULID generator seeded from the current time.
func NewULID() *ULID {
	//nolint:gosec // ids are not secrets
	return &ULID{entropy: ulid.Monotonic(mathrand.New(mathrand.NewSource(time.Now().UnixNano())), 0)}
}

// Generate returns a new ULID string.
func (u *ULID) Generate() string {
	u.mu.Lock()
	defer u.mu.Unlock()

	return ulid.MustNew(ulid.Timestamp(time.Now()), u.entropy).String()
}
