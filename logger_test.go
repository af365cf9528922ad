package flatfield

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// Deliberately not parallel: it swaps the package logger.
func TestDebugLogging(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	prev := Logger()
	SetLogger(zap.New(core))
	defer SetLogger(prev)

	qty := mustField(t, Config{Name: "qty", Width: 5, Type: Integer})
	v, err := qty.Parse("n/a")
	require.NoError(t, err)
	assert.Equal(t, int64(0), v)

	entries := logs.FilterMessage("no numeric content, coerced to zero").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "qty", entries[0].ContextMap()["column"])
	assert.Equal(t, "n/a", entries[0].ContextMap()["raw"])

	code := mustField(t, Config{Name: "code", Width: 3, Truncate: true})
	got, err := code.Format("TOOLONG")
	require.NoError(t, err)
	assert.Equal(t, "ONG", got)

	entries = logs.FilterMessage("truncated over-width value").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "code", entries[0].ContextMap()["column"])
}

func TestLoggerDefaultsToNop(t *testing.T) {
	assert.NotNil(t, Logger())
}
