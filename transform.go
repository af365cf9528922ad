package flatfield

// ParseTransform post-processes the typed value a column produced from raw
// text. It runs after type coercion, so an Integer column hands it an
// int64, a Date column a time.Time, and so on. Returning an error aborts
// the parse; the error is surfaced as the cause of a *ParseError.
type ParseTransform func(v any) (any, error)

// FormatTransform rewrites a column's rendered text before width
// enforcement, so it may legitimately lengthen or shorten the value.
// Returning an error aborts the format; the error is surfaced as the
// cause of a *FormatError.
type FormatTransform func(s string) (string, error)
