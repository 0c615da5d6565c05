package factory

import (
	"log/slog"
	"slices"
	"strings"
	"sync"
)

// RootScope selects every declared candidate.
const RootScope = ""

// MarkerIndex answers the two questions the resolver asks: which candidates
// carry a marker kind, and which value a candidate declares for it.
type MarkerIndex interface {
	CandidatesWithMarker(kind MarkerKind) []*Candidate
	MarkerValue(c *Candidate, kind MarkerKind) (string, error)
}

// Bootstrapper is implemented by indexes that are populated on demand.
// Factories call Initialize with their scopes when they are constructed.
type Bootstrapper interface {
	Initialize(scopes ...string)
}

type IndexOption func(*indexConfig)

type indexConfig struct {
	logger *slog.Logger
}

func WithIndexLogger(logger *slog.Logger) IndexOption {
	return func(cfg *indexConfig) {
		cfg.logger = logger
	}
}

// Index is the default MarkerIndex over a Catalog. The first Initialize call
// fixes the scopes the index covers; every later call is ignored. Queries on
// an uninitialized Index initialize it with RootScope.
//
// Candidates are indexed on query, so declarations made after Initialize
// (for example from an init function running after a package-level factory
// was built) are still visible.
type Index struct {
	mu        sync.RWMutex
	catalog   *Catalog
	logger    *slog.Logger
	populated bool
	scopes    []string
	folded    int
	ordered   []*Candidate
	byMarker  map[MarkerKind][]*Candidate
}

// DefaultIndex is the process-wide index over DefaultCatalog.
var DefaultIndex = NewIndex(DefaultCatalog)

func NewIndex(cat *Catalog, opts ...IndexOption) *Index {
	cfg := &indexConfig{
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cat == nil {
		cat = NewCatalog()
	}

	return &Index{
		catalog:  cat,
		logger:   cfg.logger,
		byMarker: make(map[MarkerKind][]*Candidate),
	}
}

// Initialize restricts the index to candidates whose scope is one of scopes
// or nested below it (RootScope when none are given). Only the first call has
// an effect; later calls return silently whatever their arguments.
func (ix *Index) Initialize(scopes ...string) {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	if ix.populated {
		if len(scopes) > 0 && !slices.Equal(ix.scopes, scopes) {
			ix.logger.Debug("index already initialized, ignoring scopes", "scopes", scopes, "active", ix.scopes)
		}
		return
	}

	if len(scopes) == 0 {
		scopes = []string{RootScope}
	}
	ix.scopes = append([]string(nil), scopes...)
	ix.populated = true

	ix.logger.Debug("index initialized", "scopes", ix.scopes)
}

func (ix *Index) Initialized() bool {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	return ix.populated
}

// Scopes returns the scopes the index was populated with, or nil before
// initialization.
func (ix *Index) Scopes() []string {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	if !ix.populated {
		return nil
	}
	out := make([]string, len(ix.scopes))
	copy(out, ix.scopes)
	return out
}

// Candidates returns every indexed candidate in declaration order.
func (ix *Index) Candidates() []*Candidate {
	ix.refresh()

	ix.mu.RLock()
	defer ix.mu.RUnlock()

	out := make([]*Candidate, len(ix.ordered))
	copy(out, ix.ordered)
	return out
}

func (ix *Index) CandidatesWithMarker(kind MarkerKind) []*Candidate {
	ix.refresh()

	ix.mu.RLock()
	defer ix.mu.RUnlock()

	found := ix.byMarker[kind]
	out := make([]*Candidate, len(found))
	copy(out, found)
	return out
}

func (ix *Index) MarkerValue(c *Candidate, kind MarkerKind) (string, error) {
	if c == nil {
		return "", errMarkerNotFound("<nil>", kind)
	}
	v, ok := c.Value(kind)
	if !ok {
		return "", errMarkerNotFound(c.Name(), kind)
	}
	return v, nil
}

// refresh initializes the index if needed and indexes the candidates added
// to the catalog since the last query. The catalog only grows, so the
// candidates already folded in are a prefix of Catalog.Candidates.
func (ix *Index) refresh() {
	ix.mu.RLock()
	populated, folded := ix.populated, ix.folded
	ix.mu.RUnlock()

	if !populated {
		ix.Initialize()
	}
	if ix.catalog.Size() == folded {
		return
	}

	ix.mu.Lock()
	defer ix.mu.Unlock()

	candidates := ix.catalog.Candidates()
	if len(candidates) <= ix.folded {
		return
	}

	added := 0
	for _, c := range candidates[ix.folded:] {
		if !inScope(c.scope, ix.scopes) {
			continue
		}
		ix.ordered = append(ix.ordered, c)
		for _, m := range c.markers {
			ix.byMarker[m.Kind] = append(ix.byMarker[m.Kind], c)
		}
		added++
	}
	ix.folded = len(candidates)

	if added > 0 {
		ix.logger.Debug("index populated", "scopes", ix.scopes, "added", added, "candidates", len(ix.ordered))
	}
}

// inScope reports whether scope is one of roots or a path below one of them.
func inScope(scope string, roots []string) bool {
	for _, root := range roots {
		root = strings.TrimSuffix(root, "/")
		if root == RootScope || scope == root || strings.HasPrefix(scope, root+"/") {
			return true
		}
	}
	return false
}
