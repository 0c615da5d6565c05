package factory_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/danpasecinic/factory"
)

func TestFprintEmpty(t *testing.T) {
	t.Parallel()

	ix := factory.NewIndex(factory.NewCatalog())

	var buf bytes.Buffer
	ix.Fprint(&buf)

	if !strings.Contains(buf.String(), "empty index") {
		t.Errorf("expected empty index message, got: %s", buf.String())
	}
}

func TestFprint(t *testing.T) {
	t.Parallel()

	ix := factory.NewIndex(scopedCatalog(t))

	var buf bytes.Buffer
	ix.Fprint(&buf)

	want := "● *factory_test.CsvParser [format=csv] (acme/parsers/csv)\n" +
		"● *factory_test.JsonParser [format=json] (acme/parsers/json)\n" +
		"● *factory_test.TsvParser [format=tsv] (acme/legacy)\n"
	if buf.String() != want {
		t.Errorf("unexpected output:\n%s", buf.String())
	}
}

func TestSprintOmitsEmptyScope(t *testing.T) {
	t.Parallel()

	cat := factory.NewCatalog()
	if err := cat.Add(factory.NewCandidate[*CsvParser](factory.Mark(Format, "csv")).InScope("")); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	out := factory.NewIndex(cat).Sprint()
	if out != "● *factory_test.CsvParser [format=csv]\n" {
		t.Errorf("unexpected output %q", out)
	}
}

func TestDescribe(t *testing.T) {
	t.Parallel()

	cat := factory.NewCatalog()
	factory.MustDeclare[*TsvParser](cat, factory.Mark(Format, "tsv"), factory.Mark(Encoding, "utf8"))
	factory.MustDeclare[*CsvParser](cat, factory.Mark(Format, "csv"))

	ix := factory.NewIndex(cat)
	ix.Initialize("github.com/danpasecinic")

	info := ix.Describe()
	if len(info.Scopes) != 1 || info.Scopes[0] != "github.com/danpasecinic" {
		t.Errorf("unexpected scopes %v", info.Scopes)
	}
	if len(info.Candidates) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(info.Candidates))
	}

	// Sorted by name, not declaration order.
	first := info.Candidates[0]
	if first.Name != "*factory_test.CsvParser" {
		t.Errorf("expected CsvParser first, got %s", first.Name)
	}
	if !strings.HasPrefix(first.Scope, "github.com/danpasecinic/factory") {
		t.Errorf("expected package scope, got %q", first.Scope)
	}
	if len(info.Candidates[1].Markers) != 2 {
		t.Errorf("expected 2 markers, got %v", info.Candidates[1].Markers)
	}
}
