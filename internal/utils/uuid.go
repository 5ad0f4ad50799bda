// Package utils provides small helpers shared by the service and media layers.
package utils

import "github.com/google/uuid"

// IDGenerator produces opaque, universally unique identifiers for course
// sheets and attachments.
type IDGenerator interface {
	Generate() string
}

// UUIDGenerator is the default [IDGenerator]. It emits time-ordered UUIDv7
// values and falls back to a random UUIDv4 if the clock source fails.
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

// IDGeneratorFunc adapts a plain function to [IDGenerator].
type IDGeneratorFunc func() string

func (f IDGeneratorFunc) Generate() string {
	return f()
}
