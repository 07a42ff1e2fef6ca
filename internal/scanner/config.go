package scanner

// Kind identifies what a Match represents.
type Kind int

const (
	// KindURL marks a match produced by the schemed or schemeless URL
	// sub-scanner.
	KindURL Kind = iota
	// KindEmail marks a match produced by the email sub-scanner.
	KindEmail
)

// String returns the lowercase name of the kind, for logging and tests.
func (k Kind) String() string {
	switch k {
	case KindURL:
		return "url"
	case KindEmail:
		return "email"
	default:
		return "unknown"
	}
}

// Match is one non-overlapping hit produced by Scan. Text borrows directly
// from the input string; no copy is made.
type Match struct {
	Kind  Kind
	Start int
	End   int
	Text  string
}

// Config is the immutable set of knobs that change scanning behavior. It
// mirrors the Finder options exposed by package linkify one level up; the
// zero value is not valid on its own — use NewConfig to apply the
// documented defaults.
type Config struct {
	// URLs enables the schemed and (if URLMustHaveScheme is false)
	// schemeless URL sub-scanners.
	URLs bool
	// Emails enables the email sub-scanner.
	Emails bool
	// URLMustHaveScheme requires a scheme (e.g. "https://") before a URL
	// is considered. When false, the schemeless sub-scanner also runs.
	URLMustHaveScheme bool
	// URLCanBeIRI allows non-ASCII code points in hosts and paths. When
	// false, any non-ASCII code point terminates a URL/host scan.
	URLCanBeIRI bool
	// EmailDomainMustHaveDot requires at least one dot in the email
	// domain (rejecting bare hosts like "a@b").
	EmailDomainMustHaveDot bool
}

// NewConfig returns the default configuration: both kinds enabled, schemes
// required, IRI hosts allowed, and email domains required to contain a dot.
func NewConfig() Config {
	return Config{
		URLs:                   true,
		Emails:                 true,
		URLMustHaveScheme:      true,
		URLCanBeIRI:            true,
		EmailDomainMustHaveDot: true,
	}
}
