package progrock_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/modpack/internal/adapters/telemetry/progrock"
)

func newRecorder(t *testing.T) (*progrock.Recorder, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")
	buf := new(bytes.Buffer)
	return progrock.New(buf), buf
}

func TestRecorder_PrintsFinishedVertices(t *testing.T) {
	recorder, buf := newRecorder(t)

	fresh := recorder.Record("sodium@v1")
	assert.Empty(t, buf.String(), "running vertices are not printed")
	fresh.Complete(nil)

	cached := recorder.Record("lithium@v2")
	cached.Cached()
	cached.Complete(nil)

	failed := recorder.Record("iris@v3")
	failed.Complete(errors.New("download failed: connection refused"))

	require.NoError(t, recorder.Close())
	assert.Equal(t,
		"✓ sodium@v1\n"+
			"✓ lithium@v2 (cached)\n"+
			"✗ iris@v3: download failed: connection refused\n",
		buf.String())
}

func TestRecorder_Summary(t *testing.T) {
	recorder, buf := newRecorder(t)

	ok1 := recorder.Record("a")
	ok1.Cached()
	ok1.Cached()
	ok1.Complete(nil)

	ok2 := recorder.Record("b")
	ok2.Complete(nil)
	ok2.Complete(errors.New("late"))

	failed := recorder.Record("c")
	failed.Complete(errors.New("boom"))

	assert.Equal(t, progrock.Summary{Completed: 2, Failed: 1, Cached: 1}, recorder.Summary())
	assert.NotContains(t, buf.String(), "late", "only the first completion is reported")
	require.NoError(t, recorder.Close())
}
