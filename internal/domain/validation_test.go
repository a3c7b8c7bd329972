package domain

import "testing"

func TestValidationResultSuccess(t *testing.T) {
	r := Success()
	if !r.IsValid() {
		t.Error("Success should be valid")
	}
	if r.IsNotFound() {
		t.Error("Success should not be not-found")
	}
	if r.Message() != "" {
		t.Errorf("Success message should be empty, got %q", r.Message())
	}
}

func TestValidationResultFailure(t *testing.T) {
	r := Failure("Customer name is required")
	if r.IsValid() {
		t.Error("Failure should not be valid")
	}
	if r.IsNotFound() {
		t.Error("Failure should not be not-found")
	}
	if r.Message() != "Customer name is required" {
		t.Errorf("message: got %q", r.Message())
	}
	if r.ErrorType() != ErrorInvalidInput {
		t.Errorf("error type: got %s, want %s", r.ErrorType(), ErrorInvalidInput)
	}
}

func TestValidationResultBusinessFailure(t *testing.T) {
	r := BusinessFailure("Size 'large' is not available for Espresso. Allowed sizes: small")
	if r.IsValid() || r.IsNotFound() {
		t.Error("BusinessFailure should be a plain failure")
	}
	if r.ErrorType() != ErrorBusinessRule {
		t.Errorf("error type: got %s, want %s", r.ErrorType(), ErrorBusinessRule)
	}
}

func TestValidationResultNotFound(t *testing.T) {
	r := NotFound("Order with ID 99 not found")
	if r.IsValid() {
		t.Error("NotFound should not be valid")
	}
	if !r.IsNotFound() {
		t.Error("NotFound should report IsNotFound")
	}
	if r.ErrorType() != ErrorNotFound {
		t.Errorf("error type: got %s, want %s", r.ErrorType(), ErrorNotFound)
	}
}
