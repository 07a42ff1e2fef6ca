package linkify

// Option configures a Finder built with New.
type Option func(*Finder)

// WithKinds restricts scanning to the given kinds. Calling it with no
// arguments disables scanning entirely; the default, when WithKinds is
// never used, is both kinds enabled.
func WithKinds(kinds ...Kind) Option {
	return func(f *Finder) {
		f.cfg.URLs = false
		f.cfg.Emails = false

		for _, k := range kinds {
			switch k {
			case KindURL:
				f.cfg.URLs = true
			case KindEmail:
				f.cfg.Emails = true
			}
		}
	}
}

// RequireScheme rejects bare "example.com/path"-style URLs, matching
// only ones with an explicit scheme such as "https://". This is the
// default.
func RequireScheme() Option {
	return func(f *Finder) { f.cfg.URLMustHaveScheme = true }
}

// AllowSchemeless additionally matches bare "example.com/path"-style
// URLs that have no explicit scheme.
func AllowSchemeless() Option {
	return func(f *Finder) { f.cfg.URLMustHaveScheme = false }
}

// AllowIRI allows non-ASCII code points in hosts and paths (RFC 3987
// internationalized URLs). This is the default.
func AllowIRI() Option {
	return func(f *Finder) { f.cfg.URLCanBeIRI = true }
}

// ASCIIOnly stops a URL or host scan at the first non-ASCII code point.
func ASCIIOnly() Option {
	return func(f *Finder) { f.cfg.URLCanBeIRI = false }
}

// RequireEmailDomainDot rejects email addresses whose domain has no dot
// (e.g. "user@localhost"). This is the default.
func RequireEmailDomainDot() Option {
	return func(f *Finder) { f.cfg.EmailDomainMustHaveDot = true }
}

// AllowBareEmailDomain additionally matches email addresses whose
// domain has no dot.
func AllowBareEmailDomain() Option {
	return func(f *Finder) { f.cfg.EmailDomainMustHaveDot = false }
}
