// Package flatfield parses and formats individual fields of fixed-width
// flat-file records.
//
// Mainframe exports, bank clearing files, and similar fixed-width formats
// carve each record line into columns of exact character widths, with no
// delimiters. flatfield models one such column as a Field: an immutable
// specification built once by New from a Config and reused for every
// record. Field.Parse coerces a column's raw text to a typed Go value,
// and Field.Format renders a Go value as the column's exact-width text.
// Assembling fields into record layouts and slicing record lines is left
// to the caller.
//
// # Column types
//
//	type                   Parse yields   Format renders
//	string                 string         the value's text
//	integer                int64          the value's text
//	float                  float64        decimal text, via the column pattern when set
//	money                  float64        decimal text with two places
//	money_implied_decimal  float64        hundredths with no decimal point
//	date                   time.Time      the column's time layout
//
// # Tolerant parsing
//
// Fixed-width files in the wild carry stray characters, so numeric
// columns parse tolerantly: the longest leading numeric run is coerced
// and anything trailing it is ignored, and text with no numeric content
// at all coerces to zero rather than failing. The only numeric parse
// failure is a run that overflows its Go type. Date columns, by
// contrast, must match their layout exactly.
//
// # Widths
//
// Widths count Unicode code points, not bytes, so a column keeps its
// declared width when values contain multi-byte characters. Values that
// render longer than the column width are an error unless the column
// sets Truncate, in which case the aligned end of the value is kept.
//
// # Errors and logging
//
// Failures carry typed errors: *ConfigError from New, *ParseError from
// Parse, and *FormatError or *LengthExceededError from Format, each
// naming the column involved. Lossy non-failure paths, such as tolerant
// coercion to zero and truncation, are reported at debug level on the
// logger installed with SetLogger.
//
// # Concurrency
//
// A Field holds no mutable state after New returns. Any number of
// goroutines may call Parse and Format on the same Field concurrently.
package flatfield
