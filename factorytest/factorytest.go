// Package factorytest provides helpers for testing code built on factory:
// isolated indexes, a call-counting index stub and must-style helpers that
// fail the test instead of returning errors.
package factorytest

import (
	"errors"
	"sync"

	"github.com/danpasecinic/factory"
)

type TB interface {
	Helper()
	Fatal(args ...any)
	Fatalf(format string, args ...any)
	Cleanup(f func())
}

// Declaration adds candidates to a catalog.
type Declaration func(cat *factory.Catalog) error

// Candidate declares T with markers.
func Candidate[T any](markers ...factory.Marker) Declaration {
	return func(cat *factory.Catalog) error {
		return factory.Declare[T](cat, markers...)
	}
}

// CandidateFunc declares T built by ctor.
func CandidateFunc[T any](ctor factory.Constructor[T], markers ...factory.Marker) Declaration {
	return func(cat *factory.Catalog) error {
		return factory.DeclareFunc(cat, ctor, markers...)
	}
}

// NewIndex builds a private catalog from decls and returns an index over it,
// already initialized with the root scope.
func NewIndex(tb TB, decls ...Declaration) *factory.Index {
	tb.Helper()

	cat := factory.NewCatalog()
	for _, decl := range decls {
		if err := decl(cat); err != nil {
			tb.Fatalf("failed to declare candidate: %v", err)
		}
	}

	ix := factory.NewIndex(cat)
	ix.Initialize()
	return ix
}

// StubIndex wraps a MarkerIndex and counts the calls made to it.
type StubIndex struct {
	inner factory.MarkerIndex

	mu            sync.Mutex
	candidateCall int
	valueCall     int
	kinds         []factory.MarkerKind
	failValues    map[factory.MarkerKind]bool
}

// NewStubIndex wraps inner. A nil inner behaves as an empty index.
func NewStubIndex(inner factory.MarkerIndex) *StubIndex {
	return &StubIndex{
		inner:      inner,
		failValues: make(map[factory.MarkerKind]bool),
	}
}

func (s *StubIndex) CandidatesWithMarker(kind factory.MarkerKind) []*factory.Candidate {
	s.mu.Lock()
	s.candidateCall++
	s.kinds = append(s.kinds, kind)
	s.mu.Unlock()

	if s.inner == nil {
		return nil
	}
	return s.inner.CandidatesWithMarker(kind)
}

func (s *StubIndex) MarkerValue(c *factory.Candidate, kind factory.MarkerKind) (string, error) {
	s.mu.Lock()
	s.valueCall++
	fail := s.failValues[kind]
	s.mu.Unlock()

	if fail {
		return "", errors.New("marker lookup disabled by stub")
	}
	if s.inner == nil {
		return "", errors.New("stub index has no candidates")
	}
	return s.inner.MarkerValue(c, kind)
}

// FailMarkerValue makes every MarkerValue lookup for kind fail.
func (s *StubIndex) FailMarkerValue(kind factory.MarkerKind) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.failValues[kind] = true
}

// Calls returns the total number of index calls.
func (s *StubIndex) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.candidateCall + s.valueCall
}

// QueriedKinds returns the kinds passed to CandidatesWithMarker, in order.
func (s *StubIndex) QueriedKinds() []factory.MarkerKind {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]factory.MarkerKind, len(s.kinds))
	copy(out, s.kinds)
	return out
}

func (s *StubIndex) AssertNoCalls(tb TB) {
	tb.Helper()

	if n := s.Calls(); n != 0 {
		tb.Fatalf("expected no index calls, got %d", n)
	}
}

func MustCreate[T any](tb TB, f *factory.Factory[T], id string) T {
	tb.Helper()

	v, err := f.Create(id)
	if err != nil {
		tb.Fatalf("failed to create %q: %v", id, err)
	}
	return v
}

func MustCreateBinary[T any](tb TB, f *factory.BinaryFactory[T], id1, id2 string) T {
	tb.Helper()

	v, err := f.Create(id1, id2)
	if err != nil {
		tb.Fatalf("failed to create (%q, %q): %v", id1, id2, err)
	}
	return v
}

func MustCreateTernary[T any](tb TB, f *factory.TernaryFactory[T], id1, id2, id3 string) T {
	tb.Helper()

	v, err := f.Create(id1, id2, id3)
	if err != nil {
		tb.Fatalf("failed to create (%q, %q, %q): %v", id1, id2, id3, err)
	}
	return v
}

// AssertCode fails unless err carries code somewhere in its chain.
func AssertCode(tb TB, err error, code factory.ErrorCode) {
	tb.Helper()

	if err == nil {
		tb.Fatalf("expected %s error, got nil", code)
		return
	}
	if !errors.Is(err, &factory.Error{Code: code}) {
		tb.Fatalf("expected %s error, got %v", code, err)
	}
}
