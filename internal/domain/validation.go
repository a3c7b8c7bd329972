package domain

// ValidationResult is the outcome of a domain validation. Domain rule
// violations travel through this type as ordinary control flow;
// infrastructure failures travel through error returns instead.
type ValidationResult struct {
	valid   bool
	message string
	errType ValidationErrorType
}

// Success returns a passing result.
func Success() ValidationResult {
	return ValidationResult{valid: true}
}

// Failure returns a failing result classified as invalid input.
func Failure(message string) ValidationResult {
	return ValidationResult{message: message, errType: ErrorInvalidInput}
}

// BusinessFailure returns a failing result classified as a business
// rule violation.
func BusinessFailure(message string) ValidationResult {
	return ValidationResult{message: message, errType: ErrorBusinessRule}
}

// NotFound returns a failing result classified as a missing resource.
func NotFound(message string) ValidationResult {
	return ValidationResult{message: message, errType: ErrorNotFound}
}

// IsValid reports whether the validation passed.
func (r ValidationResult) IsValid() bool {
	return r.valid
}

// IsNotFound reports whether the failure is a missing-resource failure.
func (r ValidationResult) IsNotFound() bool {
	return !r.valid && r.errType == ErrorNotFound
}

// Message returns the failure message. Empty on success.
func (r ValidationResult) Message() string {
	return r.message
}

// ErrorType returns the failure classification. Meaningful only when
// IsValid is false.
func (r ValidationResult) ErrorType() ValidationErrorType {
	return r.errType
}
