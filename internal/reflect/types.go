package reflect

import (
	"fmt"
	"reflect"
	"strconv"
	"sync"
)

var typeKeyCache sync.Map

// TypeOf returns the static type of T, including interface types.
func TypeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// TypeKey returns a fully qualified, stable name for t.
func TypeKey(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	if cached, ok := typeKeyCache.Load(t); ok {
		return cached.(string)
	}

	key := buildTypeKey(t)
	typeKeyCache.Store(t, key)
	return key
}

func buildTypeKey(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}

	switch t.Kind() {
	case reflect.Ptr:
		return "*" + buildTypeKey(t.Elem())
	case reflect.Slice:
		return "[]" + buildTypeKey(t.Elem())
	case reflect.Array:
		return "[" + strconv.Itoa(t.Len()) + "]" + buildTypeKey(t.Elem())
	case reflect.Map:
		return "map[" + buildTypeKey(t.Key()) + "]" + buildTypeKey(t.Elem())
	case reflect.Func, reflect.Chan:
		return t.String()
	default:
		if t.PkgPath() != "" {
			return t.PkgPath() + "." + t.Name()
		}
		return t.String()
	}
}

// TypeName returns the short, package-qualified name of t (e.g. "*csv.Parser").
func TypeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}

// PkgPath returns the import path of the package declaring t, looking
// through pointers, slices and arrays. Unnamed and builtin types return "".
func PkgPath(t reflect.Type) string {
	for t != nil {
		switch t.Kind() {
		case reflect.Ptr, reflect.Slice, reflect.Array:
			t = t.Elem()
		default:
			return t.PkgPath()
		}
	}
	return ""
}

func IsAbstract(t reflect.Type) bool {
	return t != nil && t.Kind() == reflect.Interface
}

// AssignableTo reports whether a value of type t can be used as base.
func AssignableTo(t, base reflect.Type) bool {
	if t == nil || base == nil {
		return false
	}
	if base.Kind() == reflect.Interface {
		return t.Implements(base)
	}
	return t.AssignableTo(base)
}

// New allocates the default value of t. Pointer types get a freshly
// allocated element, value types their zero value. Interface types have no
// default value.
func New(t reflect.Type) (any, error) {
	switch {
	case t == nil:
		return nil, fmt.Errorf("nil type")
	case IsAbstract(t):
		return nil, fmt.Errorf("%s is an interface type and cannot be instantiated", t)
	case t.Kind() == reflect.Ptr:
		return reflect.New(t.Elem()).Interface(), nil
	default:
		return reflect.Zero(t).Interface(), nil
	}
}

func IsNil(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
		return rv.IsNil()
	default:
		return false
	}
}
