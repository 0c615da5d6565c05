package factory

import "log/slog"

type Option func(*factoryConfig)

type factoryConfig struct {
	index    MarkerIndex
	scopes   []string
	logger   *slog.Logger
	onCreate []CreateHook
}

// WithIndex makes the factory resolve against ix instead of DefaultIndex.
func WithIndex(ix MarkerIndex) Option {
	return func(cfg *factoryConfig) {
		cfg.index = ix
	}
}

// WithScopes is forwarded to the index's Initialize when the factory is
// built. It has no effect on an index that is already populated.
func WithScopes(scopes ...string) Option {
	return func(cfg *factoryConfig) {
		cfg.scopes = append(cfg.scopes, scopes...)
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(cfg *factoryConfig) {
		cfg.logger = logger
	}
}

func WithCreateObserver(hook CreateHook) Option {
	return func(cfg *factoryConfig) {
		cfg.onCreate = append(cfg.onCreate, hook)
	}
}
