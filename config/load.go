package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// LoadFile reads a Properties from path. The format follows the extension:
// .yaml/.yml and .json are parsed as documents, .env and .properties as
// KEY=VALUE lines.
func LoadFile(path string) (*Properties, error) {
	p := NewProperties()
	if err := p.LoadFile(path); err != nil {
		return nil, err
	}
	return p, nil
}

// LoadFile overlays the values read from path on p.
func (p *Properties) LoadFile(path string) error {
	ext := strings.ToLower(filepath.Ext(path))

	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	case ".env", ".properties":
		return p.loadLines(path)
	default:
		return fmt.Errorf("unsupported properties format: %s", ext)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.k.Load(file.Provider(path), parser); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

func (p *Properties) loadLines(path string) error {
	values, err := godotenv.Read(path)
	if err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	for key, value := range values {
		if err := p.k.Set(key, value); err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
	}
	return nil
}

// LoadEnv overlays environment variables starting with prefix on p. The
// prefix is stripped, the rest lowercased, and "__" separates nested keys:
// PARSER_CSV__COMMA becomes csv.comma for prefix "PARSER_".
func (p *Properties) LoadEnv(prefix string) error {
	provider := env.Provider(
		prefix, delim, func(s string) string {
			s = strings.ToLower(strings.TrimPrefix(s, prefix))
			return strings.ReplaceAll(s, "__", delim)
		},
	)

	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.k.Load(provider, nil); err != nil {
		return fmt.Errorf("load environment: %w", err)
	}
	return nil
}
