package utils

import "github.com/google/uuid"

// UUIDGenerator produces session and trace identifiers. Time-ordered V7
// uuids are preferred so identifiers sort by creation time in logs and
// session listings.
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
