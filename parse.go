package flatfield

import (
	"strings"
	"time"

	"go.uber.org/zap"
)

// Parse coerces the raw text of a single record field to the column's
// type. String columns yield a string with surrounding whitespace
// trimmed; Integer columns an int64; Float, Money, and
// MoneyImpliedDecimal columns a float64; Date columns a time.Time.
//
// Numeric coercion is tolerant by design: see scanInt and scanFloat. A
// numeric run that overflows its type, an unparseable date, and a
// rejecting ParseTransform all surface as a *ParseError carrying the
// column name and the raw text.
func (f *Field) Parse(raw string) (any, error) {
	v, err := f.coerce(raw)
	if err != nil {
		return nil, &ParseError{Column: f.name, Value: raw, Type: f.typ, Cause: err}
	}
	if f.parseTransform != nil {
		v, err = f.parseTransform(v)
		if err != nil {
			return nil, &ParseError{Column: f.name, Value: raw, Type: f.typ, Cause: err}
		}
	}
	return v, nil
}

func (f *Field) coerce(raw string) (any, error) {
	switch f.typ {
	case Integer:
		v, ok, err := scanInt(raw)
		if err != nil {
			return nil, err
		}
		if !ok {
			f.logTolerantZero(raw)
		}
		return v, nil
	case Float, Money:
		v, ok, err := scanFloat(raw)
		if err != nil {
			return nil, err
		}
		if !ok {
			f.logTolerantZero(raw)
		}
		return v, nil
	case MoneyImpliedDecimal:
		v, ok, err := scanFloat(raw)
		if err != nil {
			return nil, err
		}
		if !ok {
			f.logTolerantZero(raw)
		}
		return v / 100, nil
	case Date:
		return time.Parse(f.dateLayout(), strings.TrimSpace(raw))
	default:
		return strings.TrimSpace(raw), nil
	}
}

func (f *Field) logTolerantZero(raw string) {
	Logger().Debug("no numeric content, coerced to zero",
		zap.String("column", f.name),
		zap.String("type", string(f.typ)),
		zap.String("raw", raw),
	)
}
