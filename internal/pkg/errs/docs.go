// Package errs provides the standard error types used across the kitchen service.
// Every validation and lookup failure in the domain layer is expressed through
// one of these types so callers can classify errors with errors.Is.
//
// Error types cover the common failure scenarios:
//   - ValueIsRequiredError: a mandatory value is missing
//   - ValueIsInvalidError: a value fails validation rules
//   - ValueIsOutOfRangeError: a value lies outside its allowed bounds
//   - ObjectNotFoundError: a requested object does not exist
//   - VersionIsInvalidError: an aggregate version check failed
//
// Each type follows the same shape:
//   - a sentinel error variable (e.g., ErrValueIsRequired)
//   - a struct carrying the failure details
//   - constructors with and without an underlying cause
//   - Error() for the formatted message
//   - Unwrap() returning the sentinel for classification
//
// HTTP adapters map the sentinels onto status codes, so constructing errors
// through this package is what keeps API error responses consistent.
package errs
