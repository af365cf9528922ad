package flatfield

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
)

// Format renders a value as the column's fixed-width text. The pipeline
// is: substitute the configured default when the value renders empty,
// render by type, apply the FormatTransform, enforce the width, then pad
// and align. The result is exactly Width characters long, except for
// Float columns with a Precision override, which pad to Precision
// instead.
//
// A value the type cannot render and a rejecting FormatTransform surface
// as a *FormatError. An over-width value on a column without Truncate
// surfaces as a *LengthExceededError.
func (f *Field) Format(v any) (string, error) {
	if f.def != nil && stringify(v) == "" {
		v = f.def
	}
	s, err := f.render(v)
	if err != nil {
		return "", &FormatError{Column: f.name, Value: v, Type: f.typ, Cause: err}
	}
	if f.formatTransform != nil {
		s, err = f.formatTransform(s)
		if err != nil {
			return "", &FormatError{Column: f.name, Value: v, Type: f.typ, Cause: err}
		}
	}
	if utf8.RuneCountInString(s) > f.width {
		if !f.truncate {
			return "", &LengthExceededError{Column: f.name, Value: s, Width: f.width}
		}
		s = f.truncated(s)
	}
	return f.justify(s), nil
}

func (f *Field) render(v any) (string, error) {
	switch f.typ {
	case Date:
		if t, ok := timeValue(v); ok {
			return t.Format(f.dateLayout()), nil
		}
		// Not a time; pass the text through so pre-rendered dates
		// survive a format round trip.
		s := stringify(v)
		Logger().Debug("date column rendering non-time value as text",
			zap.String("column", f.name),
			zap.String("value", s),
		)
		return s, nil
	case Float:
		n, err := floatValue(v)
		if err != nil {
			return "", err
		}
		if f.pattern != "" {
			return fmt.Sprintf(f.pattern, n), nil
		}
		return strconv.FormatFloat(n, 'f', -1, 64), nil
	case Money:
		n, err := floatValue(v)
		if err != nil {
			return "", err
		}
		return strconv.FormatFloat(n, 'f', 2, 64), nil
	case MoneyImpliedDecimal:
		n, err := floatValue(v)
		if err != nil {
			return "", err
		}
		return strconv.FormatInt(int64(math.Round(n*100)), 10), nil
	default:
		return stringify(v), nil
	}
}

// truncated cuts s to the column width, keeping the end the value is
// aligned to: a left-aligned column keeps the leading runes, a
// right-aligned column the trailing ones.
func (f *Field) truncated(s string) string {
	r := []rune(s)
	var cut string
	if f.align == AlignLeft {
		cut = string(r[:f.width])
	} else {
		cut = string(r[len(r)-f.width:])
	}
	Logger().Debug("truncated over-width value",
		zap.String("column", f.name),
		zap.Int("width", f.width),
		zap.String("value", s),
	)
	return cut
}

func (f *Field) justify(s string) string {
	target := f.width
	if f.typ == Float && f.precision > 0 {
		target = f.precision
	}
	gap := target - utf8.RuneCountInString(s)
	if gap <= 0 {
		return s
	}
	fill := " "
	if f.pad == PadZero {
		fill = "0"
	}
	if f.align == AlignLeft {
		return s + strings.Repeat(fill, gap)
	}
	return strings.Repeat(fill, gap) + s
}
