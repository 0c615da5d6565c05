package factory

// Configuration is an opaque payload handed to Configurable.Configure. The
// factories never look inside it; Decode lets an implementation copy it into
// its own settings struct.
type Configuration interface {
	Decode(out any) error
}

// Configurable is implemented by types that set themselves up from a
// Configuration after default construction.
type Configurable[C Configuration] interface {
	Configure(cfg C) error
}

// ConfigurableFactory is a Factory that configures every instance it builds.
type ConfigurableFactory[T Configurable[C], C Configuration] struct {
	factory *Factory[T]
}

func NewConfigurable[T Configurable[C], C Configuration](kind MarkerKind, opts ...Option) *ConfigurableFactory[T, C] {
	return &ConfigurableFactory[T, C]{factory: New[T](kind, opts...)}
}

// Create builds the instance selected by id and calls its Configure method
// with cfg. Construction errors are returned before Configure runs; an error
// from Configure is returned as is.
func (f *ConfigurableFactory[T, C]) Create(id string, cfg C) (T, error) {
	instance, err := f.factory.Create(id)
	if err != nil {
		return instance, err
	}
	return configure(instance, cfg)
}

func (f *ConfigurableFactory[T, C]) MustCreate(id string, cfg C) T {
	v, err := f.Create(id, cfg)
	if err != nil {
		panic(err)
	}
	return v
}

func (f *ConfigurableFactory[T, C]) Kinds() []MarkerKind {
	return f.factory.Kinds()
}

type ConfigurableBinaryFactory[T Configurable[C], C Configuration] struct {
	factory *BinaryFactory[T]
}

func NewConfigurableBinary[T Configurable[C], C Configuration](
	kind1, kind2 MarkerKind,
	opts ...Option,
) *ConfigurableBinaryFactory[T, C] {
	return &ConfigurableBinaryFactory[T, C]{factory: NewBinary[T](kind1, kind2, opts...)}
}

func (f *ConfigurableBinaryFactory[T, C]) Create(id1, id2 string, cfg C) (T, error) {
	instance, err := f.factory.Create(id1, id2)
	if err != nil {
		return instance, err
	}
	return configure(instance, cfg)
}

func (f *ConfigurableBinaryFactory[T, C]) MustCreate(id1, id2 string, cfg C) T {
	v, err := f.Create(id1, id2, cfg)
	if err != nil {
		panic(err)
	}
	return v
}

func (f *ConfigurableBinaryFactory[T, C]) Kinds() []MarkerKind {
	return f.factory.Kinds()
}

type ConfigurableTernaryFactory[T Configurable[C], C Configuration] struct {
	factory *TernaryFactory[T]
}

func NewConfigurableTernary[T Configurable[C], C Configuration](
	kind1, kind2, kind3 MarkerKind,
	opts ...Option,
) *ConfigurableTernaryFactory[T, C] {
	return &ConfigurableTernaryFactory[T, C]{factory: NewTernary[T](kind1, kind2, kind3, opts...)}
}

func (f *ConfigurableTernaryFactory[T, C]) Create(id1, id2, id3 string, cfg C) (T, error) {
	instance, err := f.factory.Create(id1, id2, id3)
	if err != nil {
		return instance, err
	}
	return configure(instance, cfg)
}

func (f *ConfigurableTernaryFactory[T, C]) MustCreate(id1, id2, id3 string, cfg C) T {
	v, err := f.Create(id1, id2, id3, cfg)
	if err != nil {
		panic(err)
	}
	return v
}

func (f *ConfigurableTernaryFactory[T, C]) Kinds() []MarkerKind {
	return f.factory.Kinds()
}

func configure[T Configurable[C], C Configuration](instance T, cfg C) (T, error) {
	if err := instance.Configure(cfg); err != nil {
		var zero T
		return zero, err
	}
	return instance, nil
}
