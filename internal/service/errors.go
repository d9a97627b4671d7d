package service

import "errors"

// Sentinel errors shared by all services. Handlers translate them into
// status codes so repositories never need to know about HTTP.
var (
	// ErrNotFound marks a lookup whose id (or phone, or pair) has no record.
	ErrNotFound = errors.New("record not found")

	// ErrPhoneTaken marks a registration against an already captured phone.
	ErrPhoneTaken = errors.New("phone already registered")

	// ErrInvalid marks input that passed shape validation but fails a
	// business rule (e.g. a price that does not parse as a decimal).
	ErrInvalid = errors.New("invalid input")
)
