// Package errs provides standardized error types for the concierge application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ObjectNotFoundError: For when an object cannot be found
//   - PermissionDeniedError: For when the policy authorizer denies an operation
//   - ConflictError: For when a write collides with existing state
//   - DependencyFailedError: For when a downstream collaborator fails
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// Error categories map one-to-one onto the API's response classes: not-found,
// forbidden, bad-request, conflict, and internal. The HTTP adapter performs
// that mapping; everything below it deals only in these types.
package errs
