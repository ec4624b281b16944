package utils

import "github.com/google/uuid"

// UUIDGenerator produces opaque string identifiers for newly created
// entities. V7 UUIDs are time-ordered, which keeps identifier order aligned
// with creation order.
type UUIDGenerator struct {
}

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
