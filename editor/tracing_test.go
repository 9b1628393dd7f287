package editor_test

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worldiety/vfspath/editor"
)

func TestTracingForwardsCallsAndLogs(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	var tb editor.TreeBuilder
	tracer := editor.NewTracing(&tb, logger)

	root, err := tracer.ReplaceRoot()
	require.NoError(t, err)
	fileBaton, err := tracer.AddFile(root, "a")
	require.NoError(t, err)
	handler, err := tracer.ApplyTextDelta(fileBaton)
	require.NoError(t, err)
	require.NoError(t, handler(&editor.TextDeltaWindow{Data: []byte("hi")}))
	require.NoError(t, handler(nil))
	require.NoError(t, tracer.CloseFile(fileBaton))
	require.NoError(t, tracer.CloseDirectory(root))

	assert.Equal(t, []byte("hi"), tb.Root.ChildByName("a").Content)

	logged := buf.String()
	assert.Contains(t, logged, "replace_root")
	assert.Contains(t, logged, "add_file")
	assert.Contains(t, logged, "close_file")
	assert.Contains(t, logged, "close_directory")
}

func TestTracingPropagatesUnderlyingError(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	var tb editor.TreeBuilder
	tracer := editor.NewTracing(&tb, logger)

	_, err := tracer.AddFile("not-a-node", "x")
	assert.Error(t, err)
}
