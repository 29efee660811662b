// Package errs provides standardized error types for the governance service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used by the domain model, repositories and rule evaluators.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsOutOfRangeError: For when a value falls outside its allowed bounds
//   - ObjectNotFoundError: For when an object cannot be found
//   - TransitionIsInvalidError: For a status change the lifecycle table rejects
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// Rule evaluators rely on errors.Is(err, ErrObjectNotFound) to tell a missing
// referenced entity (a rule violation) apart from a data-access outage.
package errs
