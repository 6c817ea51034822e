// Package validation provides input validation for decoded RPC inputs.
//
// Two complementary styles:
//
//   - Validate(s) checks struct tags (`validate:"required,min=1"`) via
//     go-playground/validator. The pipeline runs this on every decoded input.
//   - Validator is a fluent builder for ad-hoc checks, useful inside
//     endpoint-specific authorization predicates.
//
// Both return *errors.AppError values with per-field details.
package validation
