package factory_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/danpasecinic/factory"
)

func TestErrorString(t *testing.T) {
	t.Parallel()

	err := &factory.Error{
		Code:      factory.ErrCodeNotAssignable,
		Message:   "carries markers format but is not assignable to Parser",
		Candidate: "*acme.XmlReader",
	}
	want := `[NOT_ASSIGNABLE] candidate="*acme.XmlReader": carries markers format but is not assignable to Parser`
	if err.Error() != want {
		t.Errorf("got %q, want %q", err.Error(), want)
	}

	wrapped := factory.NewConfigurationError("bad level", errors.New("not a number"))
	if wrapped.Error() != "[CONFIGURATION_FAILED] bad level: not a number" {
		t.Errorf("unexpected message %q", wrapped.Error())
	}
}

func TestErrorCodeString(t *testing.T) {
	t.Parallel()

	if factory.ErrCodeImplementationNotFound.String() != "IMPLEMENTATION_NOT_FOUND" {
		t.Errorf("unexpected name %s", factory.ErrCodeImplementationNotFound)
	}
	if factory.ErrorCode(999).String() != "UNKNOWN(999)" {
		t.Errorf("unexpected name %s", factory.ErrorCode(999))
	}
}

func TestErrorCodeFamilies(t *testing.T) {
	t.Parallel()

	tests := []struct {
		code    factory.ErrorCode
		factory bool
	}{
		{factory.ErrCodeUnknown, false},
		{factory.ErrCodeInvalidArgument, false},
		{factory.ErrCodeImplementationNotFound, true},
		{factory.ErrCodeNotAssignable, true},
		{factory.ErrCodeAmbiguous, true},
		{factory.ErrCodeInstantiationFailed, true},
		{factory.ErrCodeResolutionFailed, true},
		{factory.ErrCodeInvalidCandidate, true},
		{factory.ErrCodeDuplicateCandidate, true},
		{factory.ErrCodeConfigurationFailed, false},
		{factory.ErrCodeMarkerNotFound, false},
	}

	for _, tt := range tests {
		if got := tt.code.IsFactoryError(); got != tt.factory {
			t.Errorf("%s.IsFactoryError() = %v, want %v", tt.code, got, tt.factory)
		}
	}
}

func TestErrorIsMatchesCode(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("loading codec: %w", factory.NewConfigurationError("bad", nil))

	if !errors.Is(err, &factory.Error{Code: factory.ErrCodeConfigurationFailed}) {
		t.Error("expected errors.Is to match by code through wrapping")
	}
	if errors.Is(err, &factory.Error{Code: factory.ErrCodeAmbiguous}) {
		t.Error("expected errors.Is to reject another code")
	}
	if errors.Is(err, errors.New("bad")) {
		t.Error("expected errors.Is to reject non-factory errors")
	}
}

func TestErrorHelpersWalkTheChain(t *testing.T) {
	t.Parallel()

	inner := &factory.Error{Code: factory.ErrCodeMarkerNotFound, Message: "marker encoding not declared"}
	outer := &factory.Error{Code: factory.ErrCodeResolutionFailed, Message: "failed to read markers", Cause: inner}

	if !factory.IsMarkerNotFound(outer) {
		t.Error("expected IsMarkerNotFound to see the wrapped cause")
	}
	if !factory.IsFactoryError(outer) {
		t.Error("expected resolution failure to be a factory error")
	}
	if factory.IsFactoryError(inner) {
		t.Error("marker not found alone is not a factory error")
	}
	if factory.CodeOf(outer) != factory.ErrCodeResolutionFailed {
		t.Errorf("expected outermost code, got %s", factory.CodeOf(outer))
	}
	if factory.CodeOf(errors.New("plain")) != factory.ErrCodeUnknown {
		t.Error("expected unknown code for plain errors")
	}
	if !errors.Is(outer, inner) {
		t.Error("expected errors.Is to find the cause")
	}
}

func TestErrorHelpersOnNil(t *testing.T) {
	t.Parallel()

	checks := map[string]func(error) bool{
		"IsInvalidArgument":        factory.IsInvalidArgument,
		"IsFactoryError":           factory.IsFactoryError,
		"IsConfigurationError":     factory.IsConfigurationError,
		"IsMarkerNotFound":         factory.IsMarkerNotFound,
		"IsImplementationNotFound": factory.IsImplementationNotFound,
		"IsNotAssignable":          factory.IsNotAssignable,
		"IsAmbiguous":              factory.IsAmbiguous,
		"IsInstantiationFailed":    factory.IsInstantiationFailed,
	}
	for name, check := range checks {
		if check(nil) {
			t.Errorf("%s(nil) = true", name)
		}
	}
}
