// Package kernel provides the core domain primitives shared by the work
// order model. It contains the fundamental building blocks used throughout
// the domain layer:
//
//   - UUID: a value object for entity identifiers with validation and comparison
//
// These primitives are immutable and safe for concurrent use; they enforce
// the invariant that a zero value is never treated as a valid identifier.
package kernel
