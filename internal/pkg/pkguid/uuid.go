package pkguid

import "github.com/google/uuid"

// UUID generates RFC 9562 UUID strings, version 7 so they sort by time.
type UUID struct{}

// NewUUID returns a UUID generator.
func NewUUID() *UUID {
	return &UUID{}
}

// Generate returns a new UUID string. If a v7 cannot be built it falls back
// to a random v4.
func (u *UUID) Generate() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
