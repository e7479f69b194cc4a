package pkguid

import (
	"fmt"
	"strconv"
	"strings"
)

// StringID generates unique string identifiers.
type StringID interface {
	// Generate generates a unique identifier as a string.
	Generate() string
}

// NumberID generates unique numeric identifiers.
type NumberID interface {
	// Generate generates a unique identifier as an int64 number.
	Generate() int64
}

// Strategy names accepted by NewStringID.
const (
	StrategyUUID      = "uuid"
	StrategyULID      = "ulid"
	StrategySnowflake = "snowflake"
)

// NewStringID returns the string generator for the named strategy. An empty
// name selects UUID.
func NewStringID(strategy string) (StringID, error) {
	switch strings.ToLower(strings.TrimSpace(strategy)) {
	case "", StrategyUUID:
		return NewUUID(), nil
	case StrategyULID:
		return NewULID(), nil
	case StrategySnowflake:
		sf, err := NewSnowflake()
		if err != nil {
			return nil, err
		}
		return numberString{id: sf}, nil
	default:
		return nil, fmt.Errorf("pkguid: unknown id strategy %q", strategy)
	}
}

type numberString struct {
	id NumberID
}

func (n numberString) Generate() string {
	return strconv.FormatInt(n.id.Generate(), 10)
}
