package factory

import (
	"github.com/danpasecinic/factory/internal/reflect"
)

// Factory produces T implementations selected by one marker kind.
type Factory[T any] struct {
	r *resolver
}

// New returns a factory for T keyed by kind. Unless WithIndex is given the
// factory uses DefaultIndex, initializing it with the WithScopes scopes (or
// RootScope) if no one has yet.
func New[T any](kind MarkerKind, opts ...Option) *Factory[T] {
	return &Factory[T]{r: newResolver(reflect.TypeOf[T](), []MarkerKind{kind}, opts)}
}

// Create builds a new instance of the candidate whose kind marker equals id.
func (f *Factory[T]) Create(id string) (T, error) {
	return produce[T](f.r, id)
}

func (f *Factory[T]) MustCreate(id string) T {
	v, err := f.Create(id)
	if err != nil {
		panic(err)
	}
	return v
}

func (f *Factory[T]) Kinds() []MarkerKind {
	return f.r.kindsCopy()
}

// BinaryFactory produces T implementations selected by two marker kinds.
type BinaryFactory[T any] struct {
	r *resolver
}

func NewBinary[T any](kind1, kind2 MarkerKind, opts ...Option) *BinaryFactory[T] {
	return &BinaryFactory[T]{r: newResolver(reflect.TypeOf[T](), []MarkerKind{kind1, kind2}, opts)}
}

// Create builds a new instance of the candidate declaring id1 for the first
// kind and id2 for the second.
func (f *BinaryFactory[T]) Create(id1, id2 string) (T, error) {
	return produce[T](f.r, id1, id2)
}

func (f *BinaryFactory[T]) MustCreate(id1, id2 string) T {
	v, err := f.Create(id1, id2)
	if err != nil {
		panic(err)
	}
	return v
}

func (f *BinaryFactory[T]) Kinds() []MarkerKind {
	return f.r.kindsCopy()
}

// TernaryFactory produces T implementations selected by three marker kinds.
type TernaryFactory[T any] struct {
	r *resolver
}

func NewTernary[T any](kind1, kind2, kind3 MarkerKind, opts ...Option) *TernaryFactory[T] {
	return &TernaryFactory[T]{r: newResolver(reflect.TypeOf[T](), []MarkerKind{kind1, kind2, kind3}, opts)}
}

func (f *TernaryFactory[T]) Create(id1, id2, id3 string) (T, error) {
	return produce[T](f.r, id1, id2, id3)
}

func (f *TernaryFactory[T]) MustCreate(id1, id2, id3 string) T {
	v, err := f.Create(id1, id2, id3)
	if err != nil {
		panic(err)
	}
	return v
}

func (f *TernaryFactory[T]) Kinds() []MarkerKind {
	return f.r.kindsCopy()
}

func produce[T any](r *resolver, ids ...string) (T, error) {
	var zero T

	instance, err := r.create(ids...)
	if err != nil {
		return zero, err
	}

	typed, ok := instance.(T)
	if !ok {
		return zero, errInstantiationFailed(reflect.TypeName(reflect.TypeOf[T]()), r.kinds, ids, nil)
	}
	return typed, nil
}

func (r *resolver) kindsCopy() []MarkerKind {
	out := make([]MarkerKind, len(r.kinds))
	copy(out, r.kinds)
	return out
}
