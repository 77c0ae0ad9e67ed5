// Package digits provides a seedable stream of random decimal digits and
// bounded integers for building fixture identifiers.
//
// A Stream wraps a single math/rand generator behind a mutex, so one Stream
// can be shared by concurrent callers while a seeded Stream stays fully
// reproducible within a single goroutine: the same seed always replays the
// same draw sequence.
//
// # Usage
//
// Import the package:
//
//	import "github.com/dmitrymomot/idnumber/pkg/digits"
//
// Deterministic fixtures:
//
//	s := digits.NewSeeded(42)
//	block := s.Digits(9)       // nine digits, zero padding preserved
//	n := s.Between(10, 99)     // inclusive of both bounds
//	c := digits.Pick(s, []byte{'0', '1'})
//
// Non-deterministic use (seeded from the wall clock):
//
//	s := digits.New()
//
// # Error Handling
//
// The package never returns errors. Violating a documented precondition
// (Between with lo > hi, Pick from an empty slice) panics, mirroring
// math/rand's own contract for invalid arguments.
package digits
