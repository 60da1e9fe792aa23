package mediainfo

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestSetLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))
	t.Cleanup(func() { SetLogger(nil) })

	fake := newFakeSession()
	fake.seeks = []uint64{40}
	mi := newMediaInfo(fake)
	defer mi.Delete()

	_, err := mi.OpenReaderSize(bytes.NewReader(make([]byte, 64)), 16)
	require.NoError(t, err)

	seeks := logs.FilterMessage("engine requested seek").All()
	require.Len(t, seeks, 1)
	assert.Equal(t, "mediainfo", seeks[0].LoggerName)
	assert.Equal(t, uint64(40), seeks[0].ContextMap()["offset"])
}

func TestSetLoggerNil(t *testing.T) {
	SetLogger(nil)
	require.NotNil(t, Logger())
	Logger().Info("discarded")
}
