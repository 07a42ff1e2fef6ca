package tlds

// Official is a list, grouped by category, of ICANN-delegated top-level domains and
// commonly used Public Suffix List eTLDs. It is a curated subset of the
// IANA root zone database, not an exhaustive mirror — wide enough to
// validate the TLDs seen in ordinary text, not a replacement for the
// generated list gen/TLDs/main.go can fetch.
//
// Sources:
//   - https://data.iana.org/TLD/tlds-alpha-by-domain.txt
//   - https://publicsuffix.org/list/public_suffix_list.dat
var Official = []string{
	// Generic
	`app`, `biz`, `blog`, `cloud`, `com`, `dev`, `info`, `name`, `net`,
	`online`, `org`, `page`, `shop`, `site`, `store`, `tech`, `xyz`,

	// Sponsored / restricted
	`edu`, `gov`, `int`, `mil`,

	// Country-code (ccTLDs)
	`ai`, `au`, `br`, `ca`, `ch`, `cn`, `co`, `de`, `es`, `eu`, `fr`,
	`in`, `io`, `it`, `jp`, `me`, `nl`, `nz`, `ru`, `se`, `sh`, `to`,
	`tv`, `uk`, `us`, `za`,

	// Common second-level suffixes (Public Suffix List eTLDs)
	`co.uk`, `org.uk`, `ac.uk`, `gov.uk`, `com.au`, `net.au`, `org.au`,
	`co.jp`, `co.nz`, `co.za`, `com.br`,
}
