// Package validator implements rule-based field validation.
//
// Each rule captures a predicate together with a field-level error. Rules are
// composed at the call site and executed with Apply, which returns a
// ValidationErrors value listing every failed field:
//
//	err := validator.Apply(
//		validator.ValidEmail("email", email),
//		validator.StrongPassword("password", password, validator.DefaultPasswordStrength()),
//	)
//
// Callers distinguish shape failures from other errors with errors.As against
// ValidationErrors, or the IsValidationError helper.
package validator
