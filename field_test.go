package flatfield

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaults(t *testing.T) {
	t.Parallel()

	f := mustField(t, Config{Name: "code", Width: 4})

	assert.Equal(t, "code", f.Name())
	assert.Equal(t, 4, f.Width())
	assert.Equal(t, String, f.Type())

	// Right aligned, space padded unless configured otherwise.
	got, err := f.Format("ab")
	require.NoError(t, err)
	assert.Equal(t, "  ab", got)
}

func TestNewInvalid(t *testing.T) {
	t.Parallel()

	tests := map[string]Config{
		"empty name":                 {Width: 4},
		"zero width":                 {Name: "code"},
		"negative width":             {Name: "code", Width: -3},
		"unknown type":               {Name: "code", Width: 4, Type: "decimal"},
		"unknown alignment":          {Name: "code", Width: 4, Align: "center"},
		"unknown padding":            {Name: "code", Width: 4, Pad: "dash"},
		"negative precision":         {Name: "code", Width: 4, Precision: -1},
		"precision on string column": {Name: "code", Width: 4, Precision: 6},
		"pattern on integer column":  {Name: "code", Width: 4, Type: Integer, Pattern: "%d"},
	}

	for name, cfg := range tests {
		cfg := cfg
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			f, err := New(cfg)
			assert.Nil(t, f)

			var cerr *ConfigError
			require.ErrorAs(t, err, &cerr)
			assert.Equal(t, cfg.Name, cerr.Name)
		})
	}
}

func TestNewCollectsEveryProblem(t *testing.T) {
	t.Parallel()

	_, err := New(Config{Type: "decimal", Align: "center"})
	require.Error(t, err)

	msg := err.Error()
	for _, want := range []string{
		"name must not be empty",
		"width must be positive",
		`unknown type "decimal"`,
		`unknown alignment "center"`,
	} {
		assert.Contains(t, msg, want)
	}
}

func TestTypeValid(t *testing.T) {
	for _, tt := range []struct {
		typ  Type
		want bool
	}{
		{String, true},
		{Integer, true},
		{Float, true},
		{Money, true},
		{MoneyImpliedDecimal, true},
		{Date, true},
		{Type(""), false},
		{Type("decimal"), false},
	} {
		if got := tt.typ.Valid(); got != tt.want {
			t.Errorf("Type(%q).Valid() = %v, want %v", string(tt.typ), got, tt.want)
		}
	}
}

func TestAlignmentValid(t *testing.T) {
	for _, tt := range []struct {
		a    Alignment
		want bool
	}{
		{AlignLeft, true},
		{AlignRight, true},
		{Alignment(""), false},
		{Alignment("center"), false},
	} {
		if got := tt.a.Valid(); got != tt.want {
			t.Errorf("Alignment(%q).Valid() = %v, want %v", string(tt.a), got, tt.want)
		}
	}
}

func TestPaddingValid(t *testing.T) {
	for _, tt := range []struct {
		p    Padding
		want bool
	}{
		{PadSpace, true},
		{PadZero, true},
		{Padding(""), false},
		{Padding("dash"), false},
	} {
		if got := tt.p.Valid(); got != tt.want {
			t.Errorf("Padding(%q).Valid() = %v, want %v", string(tt.p), got, tt.want)
		}
	}
}

func TestFieldConcurrentUse(t *testing.T) {
	t.Parallel()

	amount := mustField(t, Config{Name: "amount", Width: 10, Type: Money, Pad: PadZero})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				got, err := amount.Format(12.5)
				if err != nil || got != "0000012.50" {
					t.Errorf("Format(12.5) = %q, %v", got, err)
					return
				}
				v, err := amount.Parse("0000012.50")
				if err != nil || v != 12.5 {
					t.Errorf("Parse(%q) = %v, %v", "0000012.50", v, err)
					return
				}
			}
		}()
	}
	wg.Wait()
}
