package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("Should write entries at or above level with run id", func(t *testing.T) {
		var buf bytes.Buffer
		log, err := New("info", &buf)
		require.NoError(t, err)
		log.Debug("hidden")
		log.Info("visible")
		require.NoError(t, log.Sync())
		out := buf.String()
		assert.NotContains(t, out, "hidden")
		assert.Contains(t, out, "INFO")
		assert.Contains(t, out, "visible")
		assert.Contains(t, out, "run_id")
	})
	t.Run("Should reject unknown level", func(t *testing.T) {
		_, err := New("verbose", &bytes.Buffer{})
		assert.ErrorContains(t, err, "invalid log level")
	})
}
