// Package kernel holds the shared domain primitives of the kitchen system.
// Aggregates across the model build on these fundamental types rather than
// reaching for infrastructure libraries directly.
//
// Currently the package provides:
//   - UUID: a value object for identifiers, with validation and comparison
//
// Kernel types are immutable value objects. They validate themselves on
// construction, so an instance that exists is an instance that is valid,
// and they are safe to share between goroutines.
package kernel
