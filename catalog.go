package factory

import (
	"sync"

	"github.com/danpasecinic/factory/internal/reflect"
)

// Catalog is the list of declared candidates an Index is populated from.
// Candidates are usually declared from init functions.
type Catalog struct {
	mu         sync.RWMutex
	candidates []*Candidate
	byType     map[string]*Candidate
}

// DefaultCatalog is the process-wide catalog backing DefaultIndex.
var DefaultCatalog = NewCatalog()

func NewCatalog() *Catalog {
	return &Catalog{
		byType: make(map[string]*Candidate),
	}
}

// Add validates and appends c. A type may be declared once per catalog, and
// two candidates in the same scope may not declare the same marker set.
func (cat *Catalog) Add(c *Candidate) error {
	if c == nil {
		return errInvalidCandidate("<nil>", "candidate is nil")
	}
	if err := c.validate(); err != nil {
		return err
	}

	cat.mu.Lock()
	defer cat.mu.Unlock()

	key := reflect.TypeKey(c.typ)
	if _, exists := cat.byType[key]; exists {
		return errDuplicateCandidate(c.Name())
	}
	for _, existing := range cat.candidates {
		if existing.scope == c.scope && existing.sameMarkers(c) {
			return errAmbiguousDeclaration(c.Name(), existing.Name())
		}
	}

	cat.candidates = append(cat.candidates, c)
	cat.byType[key] = c
	return nil
}

// Candidates returns the declared candidates in declaration order.
func (cat *Catalog) Candidates() []*Candidate {
	cat.mu.RLock()
	defer cat.mu.RUnlock()

	out := make([]*Candidate, len(cat.candidates))
	copy(out, cat.candidates)
	return out
}

func (cat *Catalog) Size() int {
	cat.mu.RLock()
	defer cat.mu.RUnlock()

	return len(cat.candidates)
}

// Declare adds T to cat as a default-constructible candidate.
func Declare[T any](cat *Catalog, markers ...Marker) error {
	return cat.Add(NewCandidate[T](markers...))
}

// DeclareFunc adds T to cat, built by ctor.
func DeclareFunc[T any](cat *Catalog, ctor Constructor[T], markers ...Marker) error {
	return cat.Add(NewCandidateFunc(ctor, markers...))
}

func MustDeclare[T any](cat *Catalog, markers ...Marker) {
	if err := Declare[T](cat, markers...); err != nil {
		panic(err)
	}
}

func MustDeclareFunc[T any](cat *Catalog, ctor Constructor[T], markers ...Marker) {
	if err := DeclareFunc(cat, ctor, markers...); err != nil {
		panic(err)
	}
}
