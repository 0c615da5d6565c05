package reflect

import (
	"context"
	"reflect"
	"strings"
	"testing"
)

type testInterface interface {
	DoSomething()
}

type testStruct struct {
	Name string
}

func (t *testStruct) DoSomething() {}

func TestTypeOf(t *testing.T) {
	t.Parallel()

	if got := TypeOf[testInterface](); got.Kind() != reflect.Interface {
		t.Errorf("expected interface kind, got %s", got.Kind())
	}
	if got := TypeOf[*testStruct](); got.Kind() != reflect.Ptr {
		t.Errorf("expected pointer kind, got %s", got.Kind())
	}
	if got := TypeOf[context.Context](); got.Name() != "Context" {
		t.Errorf("expected Context, got %s", got.Name())
	}
}

func TestTypeKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		typ  reflect.Type
		want string
	}{
		{"int", TypeOf[int](), "int"},
		{"pointer to struct", TypeOf[*testStruct](), "*github.com/danpasecinic/factory/internal/reflect.testStruct"},
		{"slice", TypeOf[[]string](), "[]string"},
		{"array", TypeOf[[3]int](), "[3]int"},
		{"map", TypeOf[map[string]int](), "map[string]int"},
		{"nil", nil, "<nil>"},
	}

	for _, tt := range tests {
		t.Run(
			tt.name, func(t *testing.T) {
				t.Parallel()
				if got := TypeKey(tt.typ); got != tt.want {
					t.Errorf("TypeKey() = %q, want %q", got, tt.want)
				}
			},
		)
	}
}

func TestTypeKeyUnique(t *testing.T) {
	t.Parallel()

	keys := map[string]bool{}
	types := []reflect.Type{
		TypeOf[int](),
		TypeOf[int32](),
		TypeOf[int64](),
		TypeOf[string](),
		TypeOf[*string](),
		TypeOf[[]string](),
		TypeOf[map[string]int](),
		TypeOf[testStruct](),
		TypeOf[*testStruct](),
		TypeOf[testInterface](),
	}

	for _, typ := range types {
		key := TypeKey(typ)
		if keys[key] {
			t.Errorf("duplicate key: %s", key)
		}
		keys[key] = true
	}
}

func TestTypeName(t *testing.T) {
	t.Parallel()

	if got := TypeName(TypeOf[*testStruct]()); got != "*reflect.testStruct" {
		t.Errorf("TypeName() = %q", got)
	}
	if got := TypeName(nil); got != "<nil>" {
		t.Errorf("TypeName(nil) = %q", got)
	}
}

func TestPkgPath(t *testing.T) {
	t.Parallel()

	want := "github.com/danpasecinic/factory/internal/reflect"
	if got := PkgPath(TypeOf[*testStruct]()); got != want {
		t.Errorf("PkgPath(*testStruct) = %q, want %q", got, want)
	}
	if got := PkgPath(TypeOf[[]*testStruct]()); got != want {
		t.Errorf("PkgPath([]*testStruct) = %q, want %q", got, want)
	}
	if got := PkgPath(TypeOf[int]()); got != "" {
		t.Errorf("PkgPath(int) = %q, want empty", got)
	}
}

func TestAssignableTo(t *testing.T) {
	t.Parallel()

	iface := TypeOf[testInterface]()

	if !AssignableTo(TypeOf[*testStruct](), iface) {
		t.Error("*testStruct should be assignable to testInterface")
	}
	if AssignableTo(TypeOf[testStruct](), iface) {
		t.Error("testStruct has a pointer receiver and should not be assignable")
	}
	if !AssignableTo(TypeOf[testStruct](), TypeOf[testStruct]()) {
		t.Error("a type should be assignable to itself")
	}
	if AssignableTo(nil, iface) {
		t.Error("nil type should not be assignable")
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	v, err := New(TypeOf[*testStruct]())
	if err != nil {
		t.Fatalf("New(*testStruct) failed: %v", err)
	}
	ptr, ok := v.(*testStruct)
	if !ok || ptr == nil {
		t.Fatalf("expected non-nil *testStruct, got %#v", v)
	}

	v, err = New(TypeOf[testStruct]())
	if err != nil {
		t.Fatalf("New(testStruct) failed: %v", err)
	}
	if _, ok := v.(testStruct); !ok {
		t.Fatalf("expected testStruct, got %T", v)
	}

	if _, err := New(TypeOf[testInterface]()); err == nil || !strings.Contains(err.Error(), "interface") {
		t.Errorf("expected interface error, got %v", err)
	}
	if _, err := New(nil); err == nil {
		t.Error("expected error for nil type")
	}
}

func TestNewReturnsDistinctInstances(t *testing.T) {
	t.Parallel()

	a, _ := New(TypeOf[*testStruct]())
	b, _ := New(TypeOf[*testStruct]())
	if a.(*testStruct) == b.(*testStruct) {
		t.Error("expected distinct allocations")
	}
}

func TestIsNil(t *testing.T) {
	t.Parallel()

	var nilPtr *testStruct
	var nilSlice []string
	var nilMap map[string]int
	var nilInterface testInterface

	tests := []struct {
		name string
		v    any
		want bool
	}{
		{"nil", nil, true},
		{"nil pointer", nilPtr, true},
		{"nil slice", nilSlice, true},
		{"nil map", nilMap, true},
		{"nil interface", nilInterface, true},
		{"non-nil int", 42, false},
		{"non-nil string", "hello", false},
		{"non-nil struct", testStruct{}, false},
		{"non-nil pointer", &testStruct{}, false},
	}

	for _, tt := range tests {
		t.Run(
			tt.name, func(t *testing.T) {
				t.Parallel()
				if got := IsNil(tt.v); got != tt.want {
					t.Errorf("IsNil() = %v, want %v", got, tt.want)
				}
			},
		)
	}
}

func BenchmarkTypeKey(b *testing.B) {
	typ := TypeOf[*testStruct]()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = TypeKey(typ)
	}
}
