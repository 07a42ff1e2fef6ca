// Package scanner implements the scanning core used to locate URLs and
// email addresses inside arbitrary UTF-8 text.
//
// The core is organized as four cooperating pieces, in dependency order:
//
//   - classify.go holds pure character predicates (email local-part atext,
//     scheme characters, hex digits, Unicode whitespace).
//   - authority.go walks the "userinfo@host:port" authority component
//     shared by both URLs and emails, including IPv4, IPv6-literal, and
//     reg-name hosts.
//   - email.go, urlscheme.go, and urlschemeless.go are the three forward
//     scanners that, given an anchor byte found by the dispatcher, try to
//     grow a candidate match to the left and right.
//   - dispatcher.go drives a single left-to-right pass over the input,
//     choosing which sub-scanner to try at each trigger byte and emitting
//     non-overlapping matches in input order.
//
// None of this is exported outside the module; package linkify at the
// repository root is the public façade.
package scanner
