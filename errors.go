package factory

import (
	"errors"
	"fmt"
	"strings"
)

type ErrorCode uint16

const (
	ErrCodeUnknown ErrorCode = iota
	ErrCodeInvalidArgument
	ErrCodeImplementationNotFound
	ErrCodeNotAssignable
	ErrCodeAmbiguous
	ErrCodeInstantiationFailed
	ErrCodeResolutionFailed
	ErrCodeInvalidCandidate
	ErrCodeDuplicateCandidate
	ErrCodeConfigurationFailed
	ErrCodeMarkerNotFound
)

var codeNames = map[ErrorCode]string{
	ErrCodeUnknown:                "UNKNOWN",
	ErrCodeInvalidArgument:        "INVALID_ARGUMENT",
	ErrCodeImplementationNotFound: "IMPLEMENTATION_NOT_FOUND",
	ErrCodeNotAssignable:          "NOT_ASSIGNABLE",
	ErrCodeAmbiguous:              "AMBIGUOUS",
	ErrCodeInstantiationFailed:    "INSTANTIATION_FAILED",
	ErrCodeResolutionFailed:       "RESOLUTION_FAILED",
	ErrCodeInvalidCandidate:       "INVALID_CANDIDATE",
	ErrCodeDuplicateCandidate:     "DUPLICATE_CANDIDATE",
	ErrCodeConfigurationFailed:    "CONFIGURATION_FAILED",
	ErrCodeMarkerNotFound:         "MARKER_NOT_FOUND",
}

func (c ErrorCode) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN(%d)", c)
}

// IsFactoryError reports whether the code belongs to the factory failure
// family: lookup, candidate declaration and construction problems.
func (c ErrorCode) IsFactoryError() bool {
	switch c {
	case ErrCodeImplementationNotFound,
		ErrCodeNotAssignable,
		ErrCodeAmbiguous,
		ErrCodeInstantiationFailed,
		ErrCodeResolutionFailed,
		ErrCodeInvalidCandidate,
		ErrCodeDuplicateCandidate:
		return true
	default:
		return false
	}
}

type Error struct {
	Code      ErrorCode
	Message   string
	Candidate string
	Cause     error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("[%s]", e.Code))

	if e.Candidate != "" {
		b.WriteString(fmt.Sprintf(" candidate=%q:", e.Candidate))
	}

	b.WriteString(" ")
	b.WriteString(e.Message)

	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}

	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches any *Error carrying the same code, so
// errors.Is(err, &Error{Code: ErrCodeAmbiguous}) works through wrapping.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

func (e *Error) WithCandidate(candidate string) *Error {
	e.Candidate = candidate
	return e
}

func newError(code ErrorCode, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// NewConfigurationError builds the error a Configure method returns when the
// supplied configuration cannot be applied.
func NewConfigurationError(message string, cause error) *Error {
	return newError(ErrCodeConfigurationFailed, message, cause)
}

func errInvalidArgument(position int, kind MarkerKind) *Error {
	return newError(
		ErrCodeInvalidArgument,
		fmt.Sprintf("identifier %d (%s) cannot be empty", position+1, kind),
		nil,
	)
}

func errImplementationNotFound(base string, kinds []MarkerKind, ids []string) *Error {
	return newError(
		ErrCodeImplementationNotFound,
		fmt.Sprintf("no %s implementation found for %s", base, describeTuple(kinds, ids)),
		nil,
	)
}

func errNotAssignable(candidate, base string, kinds []MarkerKind) *Error {
	return newError(
		ErrCodeNotAssignable,
		fmt.Sprintf("carries markers %s but is not assignable to %s", joinKinds(kinds), base),
		nil,
	).WithCandidate(candidate)
}

func errAmbiguous(base string, kinds []MarkerKind, ids []string, candidates []string) *Error {
	return newError(
		ErrCodeAmbiguous,
		fmt.Sprintf(
			"%d %s implementations match %s: %s",
			len(candidates), base, describeTuple(kinds, ids), strings.Join(candidates, ", "),
		),
		nil,
	)
}

func errInstantiationFailed(candidate string, kinds []MarkerKind, ids []string, cause error) *Error {
	return newError(
		ErrCodeInstantiationFailed,
		fmt.Sprintf("failed to instantiate implementation for %s", describeTuple(kinds, ids)),
		cause,
	).WithCandidate(candidate)
}

func errResolutionFailed(candidate string, kinds []MarkerKind, ids []string, cause error) *Error {
	return newError(
		ErrCodeResolutionFailed,
		fmt.Sprintf("failed to read markers while resolving %s", describeTuple(kinds, ids)),
		cause,
	).WithCandidate(candidate)
}

func errInvalidCandidate(candidate, reason string) *Error {
	return newError(ErrCodeInvalidCandidate, reason, nil).WithCandidate(candidate)
}

func errDuplicateCandidate(candidate string) *Error {
	return newError(
		ErrCodeDuplicateCandidate,
		"type is already declared in this catalog",
		nil,
	).WithCandidate(candidate)
}

func errAmbiguousDeclaration(candidate, existing string) *Error {
	return newError(
		ErrCodeAmbiguous,
		fmt.Sprintf("declares the same markers as %s", existing),
		nil,
	).WithCandidate(candidate)
}

func errMarkerNotFound(candidate string, kind MarkerKind) *Error {
	return newError(
		ErrCodeMarkerNotFound,
		fmt.Sprintf("marker %s not declared", kind),
		nil,
	).WithCandidate(candidate)
}

func describeTuple(kinds []MarkerKind, ids []string) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprintf("%s=%q", kinds[i], id)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func joinKinds(kinds []MarkerKind) string {
	parts := make([]string, len(kinds))
	for i, k := range kinds {
		parts[i] = string(k)
	}
	return strings.Join(parts, ", ")
}

// CodeOf returns the code of the outermost *Error in err's chain, or
// ErrCodeUnknown.
func CodeOf(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ErrCodeUnknown
}

func hasCode(err error, code ErrorCode) bool {
	return errors.Is(err, &Error{Code: code})
}

func IsInvalidArgument(err error) bool {
	return hasCode(err, ErrCodeInvalidArgument)
}

// IsFactoryError reports whether err is a factory failure: no match, a
// misconfigured or ambiguous candidate, or a construction failure.
func IsFactoryError(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code.IsFactoryError()
}

func IsConfigurationError(err error) bool {
	return hasCode(err, ErrCodeConfigurationFailed)
}

func IsMarkerNotFound(err error) bool {
	return hasCode(err, ErrCodeMarkerNotFound)
}

func IsImplementationNotFound(err error) bool {
	return hasCode(err, ErrCodeImplementationNotFound)
}

func IsNotAssignable(err error) bool {
	return hasCode(err, ErrCodeNotAssignable)
}

func IsAmbiguous(err error) bool {
	return hasCode(err, ErrCodeAmbiguous)
}

func IsInstantiationFailed(err error) bool {
	return hasCode(err, ErrCodeInstantiationFailed)
}
