package cellset

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	t.Run("NewLoggerDefault", func(t *testing.T) {
		l := NewLogger(nil)
		require.NotNil(t, l)
		require.NotNil(t, l.Logger)
	})

	t.Run("Noop", func(t *testing.T) {
		l := NoopLogger()
		assert.False(t, l.Enabled(context.Background(), slog.LevelError))
	})

	t.Run("WithFields", func(t *testing.T) {
		var buf bytes.Buffer
		l := NewLogger(slog.NewTextHandler(&buf, nil))

		l.WithResolution(9).WithCount(42).Info("indexed")

		out := buf.String()
		assert.Contains(t, out, "resolution=9")
		assert.Contains(t, out, "count=42")
		assert.Contains(t, out, "indexed")
	})

	t.Run("LogShard", func(t *testing.T) {
		var buf bytes.Buffer
		l := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

		l.LogShard(context.Background(), 3, 100)

		out := buf.String()
		assert.Contains(t, out, "shard completed")
		assert.Contains(t, out, "shard=3")
		assert.Contains(t, out, "count=100")
	})

	t.Run("LogBuild", func(t *testing.T) {
		var buf bytes.Buffer
		l := NewLogger(slog.NewTextHandler(&buf, nil))

		l.LogBuild(context.Background(), 500, 321, nil)
		assert.Contains(t, buf.String(), "bulk build completed")
		assert.Contains(t, buf.String(), "cardinality=321")

		buf.Reset()
		l.LogBuild(context.Background(), 500, 0, errors.New("boom"))
		assert.Contains(t, buf.String(), "bulk build failed")
		assert.Contains(t, buf.String(), "boom")
	})
}
