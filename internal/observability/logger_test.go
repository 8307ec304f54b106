// File: internal/observability/logger_test.go
package observability

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/AtlazReso87/QPFT/internal/config"
)

// syncBuffer adapts bytes.Buffer to zapcore.WriteSyncer.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) Sync() error { return nil }

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

var _ zapcore.WriteSyncer = (*syncBuffer)(nil)

func TestInitializeConsoleFormat(t *testing.T) {
	ResetForTest()
	t.Cleanup(ResetForTest)

	buf := &syncBuffer{}
	Initialize(config.LoggerConfig{
		Level:       "debug",
		Format:      "console",
		ServiceName: "qpft-test",
		Colors:      config.ColorConfig{Info: "green"},
	}, buf)

	logger := GetLogger()
	require.NotNil(t, logger)
	logger.Info("session started")
	Sync()

	out := buf.String()
	assert.Contains(t, out, "session started")
	assert.Contains(t, out, "qpft-test")
	assert.Contains(t, out, "\x1b[32mINFO\x1b[0m", "info level should be colorized green")
}

func TestInitializeJSONFormat(t *testing.T) {
	ResetForTest()
	t.Cleanup(ResetForTest)

	buf := &syncBuffer{}
	Initialize(config.LoggerConfig{Level: "info", Format: "json", ServiceName: "qpft-test"}, buf)

	GetLogger().Info("json line")
	Sync()

	out := buf.String()
	assert.Contains(t, out, `"msg":"json line"`)
	assert.False(t, strings.Contains(out, "\x1b["), "json output must not carry ANSI codes")
}

func TestInitializeRunsOnce(t *testing.T) {
	ResetForTest()
	t.Cleanup(ResetForTest)

	first := &syncBuffer{}
	second := &syncBuffer{}
	Initialize(config.LoggerConfig{Level: "info", Format: "json", ServiceName: "a"}, first)
	Initialize(config.LoggerConfig{Level: "info", Format: "json", ServiceName: "b"}, second)

	GetLogger().Info("only once")
	Sync()

	assert.Contains(t, first.String(), "only once")
	assert.Empty(t, second.String(), "second Initialize call must be a no-op")
}

func TestLevelFallsBackToInfo(t *testing.T) {
	ResetForTest()
	t.Cleanup(ResetForTest)

	buf := &syncBuffer{}
	Initialize(config.LoggerConfig{Level: "not-a-level", Format: "json", ServiceName: "qpft-test"}, buf)

	GetLogger().Debug("hidden")
	GetLogger().Info("visible")
	Sync()

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "visible")
}
