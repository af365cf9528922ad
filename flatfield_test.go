package flatfield

import (
	"fmt"
	"testing"
	"time"
)

// mustField builds a Field or fails the test.
func mustField(t *testing.T, cfg Config) *Field {
	t.Helper()
	f, err := New(cfg)
	if err != nil {
		t.Fatalf("New(%+v): %v", cfg, err)
	}
	return f
}

// day returns midnight UTC on the given date.
func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func stringp(v string) *string { return &v }

// stringerValue exercises fmt.Stringer handling on the format path.
type stringerValue struct{ s string }

func (v stringerValue) String() string { return v.s }

var _ fmt.Stringer = stringerValue{}
