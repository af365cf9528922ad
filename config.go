package flatfield

import (
	"fmt"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

// Config declares a single column. The zero value of every option is
// meaningful: it means "use the default". Configs are plain data and can
// be decoded from YAML or JSON layout documents; the two transform hooks
// are code and must be attached after decoding.
type Config struct {
	// Name identifies the column in error messages and logs.
	Name string `yaml:"name" json:"name"`

	// Width is the exact number of characters the column occupies.
	// It must be positive.
	Width int `yaml:"width" json:"width"`

	// Type selects the parse and format rules. Defaults to String.
	Type Type `yaml:"type" json:"type"`

	// Align selects which edge the value is justified to. Defaults to
	// AlignRight.
	Align Alignment `yaml:"align" json:"align"`

	// Pad selects the fill character style. Defaults to PadSpace.
	Pad Padding `yaml:"padding" json:"padding"`

	// Precision, for Float columns only, overrides Width as the padding
	// target so a column can reserve more room than it normally fills.
	Precision int `yaml:"precision" json:"precision"`

	// Default is substituted on format when the presented value renders
	// to an empty string. nil disables substitution.
	Default any `yaml:"default_value" json:"default_value"`

	// Truncate permits format to cut over-width values down to Width
	// instead of reporting a *LengthExceededError.
	Truncate bool `yaml:"truncate" json:"truncate"`

	// Pattern carries a type-specific format: a time layout for Date
	// columns (e.g. "20060102") or a Sprintf verb for Float columns
	// (e.g. "%07.2f").
	Pattern string `yaml:"format" json:"format"`

	// ParseTransform, when set, post-processes the typed value produced
	// by Parse.
	ParseTransform ParseTransform `yaml:"-" json:"-"`

	// FormatTransform, when set, rewrites the rendered text produced by
	// Format before width enforcement.
	FormatTransform FormatTransform `yaml:"-" json:"-"`
}

// ConfigFromYAML decodes a single column declaration from a YAML document.
func ConfigFromYAML(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("flatfield: decode config: %w", err)
	}
	return cfg, nil
}

func (cfg Config) withDefaults() Config {
	if cfg.Type == "" {
		cfg.Type = defaultType
	}
	if cfg.Align == "" {
		cfg.Align = defaultAlign
	}
	if cfg.Pad == "" {
		cfg.Pad = defaultPad
	}
	return cfg
}

// validate reports every problem with cfg at once rather than stopping at
// the first, so a layout author can fix a column in one pass.
func (cfg Config) validate() error {
	var err error
	if cfg.Name == "" {
		err = multierr.Append(err, fmt.Errorf("name must not be empty"))
	}
	if cfg.Width <= 0 {
		err = multierr.Append(err, fmt.Errorf("width must be positive, got %d", cfg.Width))
	}
	if !cfg.Type.Valid() {
		err = multierr.Append(err, fmt.Errorf("unknown type %q", cfg.Type))
	}
	if !cfg.Align.Valid() {
		err = multierr.Append(err, fmt.Errorf("unknown alignment %q", cfg.Align))
	}
	if !cfg.Pad.Valid() {
		err = multierr.Append(err, fmt.Errorf("unknown padding %q", cfg.Pad))
	}
	if cfg.Precision < 0 {
		err = multierr.Append(err, fmt.Errorf("precision must not be negative, got %d", cfg.Precision))
	}
	if cfg.Precision > 0 && cfg.Type != Float {
		err = multierr.Append(err, fmt.Errorf("precision applies to %s columns only, not %s", Float, cfg.Type))
	}
	if cfg.Pattern != "" && cfg.Type != Float && cfg.Type != Date {
		err = multierr.Append(err, fmt.Errorf("pattern applies to %s and %s columns only, not %s", Float, Date, cfg.Type))
	}
	return err
}
