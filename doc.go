// Package factory builds plugin implementations selected by name.
//
// Implementations are declared once, together with the string markers that
// identify them. Callers then ask a factory for "the Parser whose format is
// csv" instead of calling a constructor, so new implementations can be added
// without touching the code that uses them.
//
// # Declaring candidates
//
// A candidate is a default-constructible type plus its markers:
//
//	const Format factory.MarkerKind = "format"
//
//	func init() {
//	    factory.MustDeclare[*CSVParser](factory.DefaultCatalog, factory.Mark(Format, "csv"))
//	    factory.MustDeclare[*JSONParser](factory.DefaultCatalog, factory.Mark(Format, "json"))
//	}
//
// Pointer types are allocated with new and value types start from their
// zero value. Use DeclareFunc for types that need a constructor, and
// implement Initializer to finish construction:
//
//	func (p *CSVParser) Init() error { p.delimiter = ','; return nil }
//
// Every marker needs a non-empty value, a type may be declared once per
// catalog, and two candidates in the same scope may not declare the same
// markers.
//
// # Creating instances
//
// Factories exist for one, two and three marker kinds:
//
//	parsers := factory.New[Parser](Format)
//	p, err := parsers.Create("csv")
//
//	codecs := factory.NewBinary[Codec](Format, Version)
//	c, err := codecs.Create("json", "v2")
//
//	drivers := factory.NewTernary[Driver](Vendor, Protocol, Mode)
//	d, err := drivers.Create("acme", "tcp", "pooled")
//
// A candidate is produced when it carries every kind, is assignable to the
// factory's type, and declares exactly the requested identifiers. Every call
// builds a new instance; nothing is cached.
//
// # Configurable factories
//
// Types implementing Configurable are configured right after construction:
//
//	type Parser interface {
//	    Parse(r io.Reader) ([]Record, error)
//	    Configure(cfg *config.Properties) error
//	}
//
//	parsers := factory.NewConfigurable[Parser, *config.Properties](Format)
//	p, err := parsers.Create("csv", props)
//
// Configure runs exactly once, only after a successful construction. Its
// error is returned to the caller unchanged. The config package provides two
// ready-made Configuration values: Map and Properties.
//
// # Index
//
// Factories resolve against a MarkerIndex. DefaultIndex covers
// DefaultCatalog. The first Initialize call decides which scopes (package
// paths, including the paths below them) are included, and it stays in force
// for the process. Candidates declared later, for example from init functions
// that run after a package-level factory is built, are picked up on the next
// query:
//
//	factory.DefaultIndex.Initialize("github.com/acme/plugins")
//	parsers := factory.New[Parser](Format, factory.WithScopes("ignored/after/first/call"))
//
// Use NewIndex with a private Catalog, or any MarkerIndex implementation,
// through WithIndex to keep a factory isolated, for example in tests.
//
// # Errors
//
// Failures are *Error values carrying an ErrorCode:
//
//	IsInvalidArgument(err)       // an empty identifier, no lookup was made
//	IsFactoryError(err)          // no match, ambiguous or misdeclared candidate, construction failure
//	IsConfigurationError(err)    // returned by Configure
//	IsMarkerNotFound(err)        // a marker value was read from a candidate that lacks it
//
// # Observers
//
//	parsers := factory.New[Parser](
//	    Format,
//	    factory.WithCreateObserver(func(base string, ids []string, d time.Duration, err error) {
//	        metrics.RecordCreate(base, ids, d, err)
//	    }),
//	)
//
// The metrics package adapts observers to Prometheus.
package factory
