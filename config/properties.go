package config

import (
	"fmt"
	"sort"
	"sync"

	"github.com/knadh/koanf/v2"

	"github.com/danpasecinic/factory"
)

const delim = "."

// Properties is a string-keyed Configuration with an optional chain of
// defaults consulted when a key is missing. Keys may be dotted ("csv.comma");
// they are stored as nested koanf paths.
type Properties struct {
	mu       sync.RWMutex
	k        *koanf.Koanf
	defaults *Properties
}

func NewProperties() *Properties {
	return &Properties{k: koanf.New(delim)}
}

// NewPropertiesWithDefaults returns an empty Properties falling back to
// defaults. defaults may be nil.
func NewPropertiesWithDefaults(defaults *Properties) *Properties {
	p := NewProperties()
	p.defaults = defaults
	return p
}

func (p *Properties) Defaults() *Properties {
	return p.defaults
}

func (p *Properties) SetProperty(key, value string) error {
	if key == "" {
		return fmt.Errorf("property key cannot be empty")
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	return p.k.Set(key, value)
}

// Property looks key up here, then in the defaults chain.
func (p *Properties) Property(key string) (string, bool) {
	for layer := p; layer != nil; layer = layer.defaults {
		if v, ok := layer.own(key); ok {
			return v, true
		}
	}
	return "", false
}

func (p *Properties) PropertyOr(key, fallback string) string {
	if v, ok := p.Property(key); ok {
		return v
	}
	return fallback
}

// Names returns every key defined here or in the defaults chain, sorted.
func (p *Properties) Names() []string {
	seen := make(map[string]bool)
	for layer := p; layer != nil; layer = layer.defaults {
		layer.mu.RLock()
		for _, key := range layer.k.Keys() {
			seen[key] = true
		}
		layer.mu.RUnlock()
	}

	names := make([]string, 0, len(seen))
	for key := range seen {
		names = append(names, key)
	}
	sort.Strings(names)
	return names
}

// Decode merges the defaults chain and the own values, then unmarshals the
// result into out using json struct tags.
func (p *Properties) Decode(out any) error {
	var chain []*Properties
	for layer := p; layer != nil; layer = layer.defaults {
		chain = append(chain, layer)
	}

	merged := koanf.New(delim)
	for i := len(chain) - 1; i >= 0; i-- {
		layer := chain[i]
		layer.mu.RLock()
		err := merged.Merge(layer.k)
		layer.mu.RUnlock()
		if err != nil {
			return factory.NewConfigurationError("merge properties", err)
		}
	}

	if err := merged.UnmarshalWithConf("", out, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return factory.NewConfigurationError("decode properties", err)
	}
	return nil
}

func (p *Properties) own(key string) (string, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	v := p.k.Get(key)
	switch val := v.(type) {
	case nil:
		return "", false
	case map[string]any:
		return "", false
	case string:
		return val, true
	default:
		return fmt.Sprint(val), true
	}
}
