package factory

import (
	"fmt"
	reflectPkg "reflect"
	"strings"

	"github.com/danpasecinic/factory/internal/reflect"
)

// Constructor builds a new, unconfigured instance of a candidate.
type Constructor[T any] func() (T, error)

// Initializer is implemented by candidates that need to finish their own
// construction. Init runs once on every freshly built instance, before the
// instance is handed to the caller.
type Initializer interface {
	Init() error
}

// Candidate is a concrete type eligible for production, together with the
// markers it declares.
type Candidate struct {
	typ       reflectPkg.Type
	scope     string
	markers   []Marker
	values    map[MarkerKind]string
	construct func() (any, error)
}

// NewCandidate describes T as a default-constructible candidate. Pointer
// types are allocated with new, value types start from their zero value.
// Interface types are accepted but fail at construction.
func NewCandidate[T any](markers ...Marker) *Candidate {
	t := reflect.TypeOf[T]()
	return newCandidate(
		t, markers, func() (any, error) {
			return reflect.New(t)
		},
	)
}

// NewCandidateFunc describes T as a candidate built by ctor.
func NewCandidateFunc[T any](ctor Constructor[T], markers ...Marker) *Candidate {
	t := reflect.TypeOf[T]()
	return newCandidate(
		t, markers, func() (any, error) {
			if ctor == nil {
				return nil, fmt.Errorf("nil constructor")
			}
			return ctor()
		},
	)
}

func newCandidate(t reflectPkg.Type, markers []Marker, construct func() (any, error)) *Candidate {
	c := &Candidate{
		typ:       t,
		scope:     reflect.PkgPath(t),
		markers:   append([]Marker(nil), markers...),
		values:    make(map[MarkerKind]string, len(markers)),
		construct: construct,
	}
	for _, m := range markers {
		if _, exists := c.values[m.Kind]; !exists {
			c.values[m.Kind] = m.Value
		}
	}
	return c
}

// InScope overrides the scope the candidate is indexed under. By default a
// candidate lives in the import path of its package.
func (c *Candidate) InScope(scope string) *Candidate {
	c.scope = scope
	return c
}

func (c *Candidate) Type() reflectPkg.Type {
	return c.typ
}

func (c *Candidate) Name() string {
	return reflect.TypeName(c.typ)
}

func (c *Candidate) Scope() string {
	return c.scope
}

// Markers returns the declared markers in declaration order.
func (c *Candidate) Markers() []Marker {
	out := make([]Marker, len(c.markers))
	copy(out, c.markers)
	return out
}

func (c *Candidate) Has(kind MarkerKind) bool {
	_, ok := c.values[kind]
	return ok
}

func (c *Candidate) Value(kind MarkerKind) (string, bool) {
	v, ok := c.values[kind]
	return v, ok
}

func (c *Candidate) String() string {
	parts := make([]string, len(c.markers))
	for i, m := range c.markers {
		parts[i] = m.String()
	}
	return c.Name() + "{" + strings.Join(parts, ", ") + "}"
}

// New builds a fresh instance. Panics raised while constructing are
// returned as errors.
func (c *Candidate) New() (instance any, err error) {
	defer func() {
		if r := recover(); r != nil {
			instance = nil
			if e, ok := r.(error); ok {
				err = fmt.Errorf("constructor panicked: %w", e)
			} else {
				err = fmt.Errorf("constructor panicked: %v", r)
			}
		}
	}()

	instance, err = c.construct()
	if err != nil {
		return nil, err
	}
	if reflect.IsNil(instance) {
		return nil, fmt.Errorf("constructor returned nil %s", c.Name())
	}

	if initializer, ok := instance.(Initializer); ok {
		if err := initializer.Init(); err != nil {
			return nil, fmt.Errorf("init: %w", err)
		}
	}

	return instance, nil
}

func (c *Candidate) validate() error {
	if c.typ == nil {
		return errInvalidCandidate("<nil>", "candidate type is nil")
	}
	if len(c.markers) == 0 {
		return errInvalidCandidate(c.Name(), "candidate declares no markers")
	}

	seen := make(map[MarkerKind]bool, len(c.markers))
	for _, m := range c.markers {
		if m.Kind == "" {
			return errInvalidCandidate(c.Name(), "marker kind cannot be empty")
		}
		if m.Value == "" {
			return errInvalidCandidate(c.Name(), fmt.Sprintf("marker %s has no value", m.Kind))
		}
		if seen[m.Kind] {
			return errInvalidCandidate(c.Name(), fmt.Sprintf("marker %s declared more than once", m.Kind))
		}
		seen[m.Kind] = true
	}
	return nil
}

func (c *Candidate) sameMarkers(other *Candidate) bool {
	if len(c.values) != len(other.values) {
		return false
	}
	for kind, v := range c.values {
		if ov, ok := other.values[kind]; !ok || ov != v {
			return false
		}
	}
	return true
}
