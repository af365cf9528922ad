package flatfield

// Type selects the coercion rule a column applies on parse and the
// rendering rule it applies on format.
type Type string

const (
	String              Type = "string"
	Integer             Type = "integer"
	Float               Type = "float"
	Money               Type = "money"
	MoneyImpliedDecimal Type = "money_implied_decimal"
	Date                Type = "date"
)

// Valid reports whether t is a recognized column type.
func (t Type) Valid() bool {
	switch t {
	case String, Integer, Float, Money, MoneyImpliedDecimal, Date:
		return true
	default:
		return false
	}
}

// Alignment is the edge a value's significant characters are justified to,
// with fill characters on the opposite side.
type Alignment string

const (
	AlignLeft  Alignment = "left"
	AlignRight Alignment = "right"
)

// Valid reports whether a is a recognized alignment.
func (a Alignment) Valid() bool {
	switch a {
	case AlignLeft, AlignRight:
		return true
	default:
		return false
	}
}

// Padding is the fill style used to complete a field to its declared width.
type Padding string

const (
	PadSpace Padding = "space"
	PadZero  Padding = "zero"
)

// Valid reports whether p is a recognized padding style.
func (p Padding) Valid() bool {
	switch p {
	case PadSpace, PadZero:
		return true
	default:
		return false
	}
}

// Options left empty at construction take these values.
const (
	defaultType  = String
	defaultAlign = AlignRight
	defaultPad   = PadSpace
)

// defaultDateLayout is the conventional representation date columns use
// when no explicit pattern is configured.
const defaultDateLayout = "2006-01-02"

// Field is the immutable specification of a single fixed-width column:
// its width, type, and rendering options. A Field is created once by New,
// reused for every record processed, and holds no mutable state, so
// concurrent Parse and Format calls need no synchronization.
type Field struct {
	name            string
	width           int
	typ             Type
	align           Alignment
	pad             Padding
	precision       int
	def             any
	truncate        bool
	pattern         string
	parseTransform  ParseTransform
	formatTransform FormatTransform
}

// New builds a Field from cfg. Options left empty take their defaults
// (type string, alignment right, space padding). Every invalid option is
// collected and reported together in a single *ConfigError; a Field is
// never constructed from a partially valid configuration.
func New(cfg Config) (*Field, error) {
	cfg = cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		return nil, &ConfigError{Name: cfg.Name, Err: err}
	}
	return &Field{
		name:            cfg.Name,
		width:           cfg.Width,
		typ:             cfg.Type,
		align:           cfg.Align,
		pad:             cfg.Pad,
		precision:       cfg.Precision,
		def:             cfg.Default,
		truncate:        cfg.Truncate,
		pattern:         cfg.Pattern,
		parseTransform:  cfg.ParseTransform,
		formatTransform: cfg.FormatTransform,
	}, nil
}

// Name returns the column identifier used in diagnostics.
func (f *Field) Name() string { return f.name }

// Width returns the exact character count the column occupies in a record.
func (f *Field) Width() int { return f.width }

// Type returns the column's declared type.
func (f *Field) Type() Type { return f.typ }

// dateLayout returns the configured pattern, or the conventional default.
func (f *Field) dateLayout() string {
	if f.pattern != "" {
		return f.pattern
	}
	return defaultDateLayout
}
