package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZerologAdapterLevel(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewZerologAdapter(&buf, "info")
	require.NoError(t, err)

	log.Debug("hidden")
	log.Info("shown")
	log.Error("also shown")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "shown", entry["message"])
	assert.Contains(t, entry, "time")
}

func TestZerologAdapterDefaultLevel(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewZerologAdapter(&buf, "")
	require.NoError(t, err)

	log.Trace("hidden")
	log.Debug("hidden")
	assert.Empty(t, buf.String())
}

func TestZerologAdapterWith(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewZerologAdapter(&buf, "trace")
	require.NoError(t, err)

	log.With("session", "abc").Trace("event")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "abc", entry["session"])
	assert.Equal(t, "trace", entry["level"])
}

func TestZerologAdapterBadLevel(t *testing.T) {
	_, err := NewZerologAdapter(&bytes.Buffer{}, "loud")
	assert.Error(t, err)
}
