// Package kernel provides the domain primitives shared by the rest of the model.
//
// The package includes:
//   - PositiveValue: an immutable integer that can only exist when it is > 0
//   - UUID: a value object for unique identifiers
//
// Every primitive is built by a constructor that checks its input before the
// value exists, returns the zero value together with an error on failure, and
// marks successful results with a guard.ConstructorGuard so zero values fail Validate.
// Values are immutable and safe for concurrent readers.
package kernel
