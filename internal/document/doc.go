// Package document parses tour source documents: a front matter metadata
// block delimited by `---` lines, followed by a free-form body.
//
// The package provides:
//
//   - [Parse]: full document parse into a [Document]
//   - [ScanEntry]: single metadata-line scanner, usable in isolation
//   - [MalformedError]: fatal load-time parse failure with source context
//
// Metadata values are coerced in a fixed order: JSON-looking values get a
// strict JSON parse (falling back to the raw string on failure), quoted
// strings lose their quotes, `true`/`false` become booleans, finite numbers
// become float64, and everything else stays a string. A `|` or `>` value
// introduces a literal or folded block scalar.
//
// Parsing is side-effect free apart from diagnostic logging, which is silent
// unless enabled with [SetLogger].
package document
