package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		"debug": zapcore.DebugLevel,
		"DEBUG": zapcore.DebugLevel,
		"info":  zapcore.InfoLevel,
		"warn":  zapcore.WarnLevel,
		"error": zapcore.ErrorLevel,
		"bogus": zapcore.InfoLevel,
		"":      zapcore.InfoLevel,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), "level %q", in)
	}
}

func TestNew(t *testing.T) {
	for _, format := range []string{"json", "console"} {
		t.Run(format, func(t *testing.T) {
			l, err := New("warn", format)
			require.NoError(t, err)
			require.NotNil(t, l)

			assert.False(t, l.Core().Enabled(zapcore.InfoLevel))
			assert.True(t, l.Core().Enabled(zapcore.WarnLevel))
		})
	}
}

func TestNewNop(t *testing.T) {
	l := NewNop()
	assert.False(t, l.Core().Enabled(zapcore.ErrorLevel))
}
