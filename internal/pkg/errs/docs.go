// Package errs provides standardized error types for the rugops application.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The package includes error types for the common failure scenarios:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value failed validation
//   - ValueIsOutOfRangeError: a numeric value lies outside its bounds
//   - ObjectNotFoundError: a lookup by identifier found nothing
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error classification via errors.Is
//
// Request handlers rely on the sentinels to translate failures into HTTP
// status codes, so every error that crosses the application boundary should
// be one of these types or wrap one of them.
package errs
