package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestWrap(t *testing.T) {
	cause := fmt.Errorf("connection reset")
	err := Wrap(ErrInternalServer, cause)

	if err.Code != "INTERNAL_ERROR" {
		t.Errorf("expected INTERNAL_ERROR, got %s", err.Code)
	}
	if !stderrors.Is(err, cause) {
		t.Error("expected wrapped error to unwrap to its cause")
	}
	if !stderrors.Is(err, ErrInternalServer) {
		t.Error("expected wrapped error to match its sentinel")
	}
}

func TestWithMessage(t *testing.T) {
	err := WithMessage(ErrInvalidAmountCondition, "value must be non-negative")

	if err.Message != "value must be non-negative" {
		t.Errorf("unexpected message %q", err.Message)
	}
	if err.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", err.StatusCode)
	}
	if !stderrors.Is(err, ErrInvalidAmountCondition) {
		t.Error("expected re-messaged error to match its sentinel")
	}
	if stderrors.Is(err, ErrInvalidInput) {
		t.Error("did not expect match against a different code")
	}
}
