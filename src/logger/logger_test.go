package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	dev, err := New(false)
	require.NoError(t, err)
	assert.True(t, dev.SugaredLogger.Desugar().Core().Enabled(zapcore.DebugLevel))

	prod, err := New(true)
	require.NoError(t, err)
	assert.False(t, prod.SugaredLogger.Desugar().Core().Enabled(zapcore.DebugLevel))
	assert.True(t, prod.SugaredLogger.Desugar().Core().Enabled(zapcore.InfoLevel))
}

func TestSetDefault(t *testing.T) {
	prev := L()
	t.Cleanup(func() { SetDefault(prev) })

	lg := Nop()
	SetDefault(lg)
	assert.Same(t, lg, L())

	SetDefault(nil)
	assert.Same(t, lg, L())
}
