// Package cast converts loosely typed values into the concrete types the
// pattern layer works with.
//
// Integer conversions go through [safemath] so that overflows and silent
// truncation are reported as errors. Everything else, including the
// text coercion applied to pattern arguments, uses [cast].
package cast
