// Package errs provides standardized error types for the order delivery service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ObjectNotFoundError: for when an object cannot be found
//   - ValueIsInvalidError: for when a value is invalid
//   - ValueIsRequiredError: for when a required value is missing
//   - ValueIsOutOfRangeError: for when a value falls outside its allowed bounds
//   - ObjectIsStaleError: for when a conditional update lost a concurrent race
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is can classify the error
//
// The boundary layer relies on these sentinels to translate domain failures
// into HTTP status codes without inspecting error strings.
package errs
