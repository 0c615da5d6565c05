package factory

import (
	"fmt"
	"log/slog"
	reflectPkg "reflect"
	"time"

	"github.com/danpasecinic/factory/internal/reflect"
)

// resolver implements the matching protocol shared by every factory arity:
// a candidate is produced when it carries all of kinds, is assignable to
// base, and declares exactly the requested identifier for each kind.
type resolver struct {
	base     reflectPkg.Type
	kinds    []MarkerKind
	index    MarkerIndex
	logger   *slog.Logger
	onCreate []CreateHook
}

func newResolver(base reflectPkg.Type, kinds []MarkerKind, opts []Option) *resolver {
	cfg := &factoryConfig{
		index:  DefaultIndex,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if b, ok := cfg.index.(Bootstrapper); ok {
		b.Initialize(cfg.scopes...)
	}

	return &resolver{
		base:     base,
		kinds:    append([]MarkerKind(nil), kinds...),
		index:    cfg.index,
		logger:   cfg.logger,
		onCreate: cfg.onCreate,
	}
}

func (r *resolver) baseName() string {
	return reflect.TypeName(r.base)
}

func (r *resolver) create(ids ...string) (any, error) {
	start := time.Now()
	instance, err := r.resolve(ids)
	r.callCreateHooks(ids, time.Since(start), err)
	return instance, err
}

func (r *resolver) callCreateHooks(ids []string, duration time.Duration, err error) {
	for _, hook := range r.onCreate {
		hook(r.baseName(), ids, duration, err)
	}
}

func (r *resolver) resolve(ids []string) (any, error) {
	if len(ids) != len(r.kinds) {
		return nil, newError(
			ErrCodeInvalidArgument,
			fmt.Sprintf("expected %d identifiers, got %d", len(r.kinds), len(ids)),
			nil,
		)
	}
	for i, id := range ids {
		if id == "" {
			return nil, errInvalidArgument(i, r.kinds[i])
		}
	}

	candidates := r.intersect()

	// A candidate that carries every marker but cannot be produced as base
	// is a declaration error and fails the call even if another one matches.
	for _, c := range candidates {
		if !reflect.AssignableTo(c.Type(), r.base) {
			return nil, errNotAssignable(c.Name(), r.baseName(), r.kinds)
		}
	}

	var matches []*Candidate
	for _, c := range candidates {
		ok, err := r.matches(c, ids)
		if err != nil {
			return nil, errResolutionFailed(c.Name(), r.kinds, ids, err)
		}
		if ok {
			matches = append(matches, c)
		}
	}

	switch len(matches) {
	case 0:
		return nil, errImplementationNotFound(r.baseName(), r.kinds, ids)
	case 1:
	default:
		names := make([]string, len(matches))
		for i, c := range matches {
			names[i] = c.Name()
		}
		return nil, errAmbiguous(r.baseName(), r.kinds, ids, names)
	}

	return r.instantiate(matches[0], ids)
}

// intersect returns the candidates carrying every required kind, in the
// enumeration order of the first kind.
func (r *resolver) intersect() []*Candidate {
	first := r.index.CandidatesWithMarker(r.kinds[0])

	others := make([]map[*Candidate]bool, 0, len(r.kinds)-1)
	for _, kind := range r.kinds[1:] {
		set := make(map[*Candidate]bool)
		for _, c := range r.index.CandidatesWithMarker(kind) {
			set[c] = true
		}
		others = append(others, set)
	}

	seen := make(map[*Candidate]bool, len(first))
	result := make([]*Candidate, 0, len(first))
	for _, c := range first {
		if c == nil || seen[c] {
			continue
		}
		seen[c] = true

		inAll := true
		for _, set := range others {
			if !set[c] {
				inAll = false
				break
			}
		}
		if inAll {
			result = append(result, c)
		}
	}
	return result
}

func (r *resolver) matches(c *Candidate, ids []string) (bool, error) {
	for i, kind := range r.kinds {
		value, err := r.index.MarkerValue(c, kind)
		if err != nil {
			return false, err
		}
		if value != ids[i] {
			return false, nil
		}
	}
	return true, nil
}

func (r *resolver) instantiate(c *Candidate, ids []string) (any, error) {
	instance, err := c.New()
	if err != nil {
		return nil, errInstantiationFailed(c.Name(), r.kinds, ids, err)
	}

	if !reflect.AssignableTo(reflectPkg.TypeOf(instance), r.base) {
		return nil, errInstantiationFailed(
			c.Name(), r.kinds, ids,
			fmt.Errorf("constructor returned %T, which is not assignable to %s", instance, r.baseName()),
		)
	}

	r.logger.Debug("instance created", "base", r.baseName(), "candidate", c.Name(), "ids", ids)
	return instance, nil
}
