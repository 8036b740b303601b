package utils

import "github.com/google/uuid"

// UUIDGenerator produces time-ordered (version 7) UUID strings.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate falls back to a random version 4 UUID if the clock-based one
// cannot be produced.
func (g *UUIDGenerator) Generate() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
