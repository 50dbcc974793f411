// Package json encodes matches and translations with [sonic].
//
// The default configuration sorts map keys, so group names come out in a
// stable order, and leaves HTML characters unescaped, so patterns such as
// (?<name>...) stay readable.
package json
