package utils

import "github.com/google/uuid"

// UUIDGenerator produces time-ordered identifiers. It falls back to a random
// v4 UUID if a v7 one cannot be generated.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
