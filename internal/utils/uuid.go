package utils

import "github.com/google/uuid"

// UUIDGenerator issues identifiers for request tracing. Version 7 ids sort by
// creation time, which keeps trace ids of one server roughly ordered in logs.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a UUIDv7 string, falling back to a random UUIDv4 if the
// time-based source fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
