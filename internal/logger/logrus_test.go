package logger

import (
	"io"
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
)

func TestNewLogrusLoggerConsoleOutput(t *testing.T) {
	lgr := NewLogrusLogger(LogrusConfig{
		EnableConsole: true,
		Level:         logrus.DebugLevel,
	})

	assert.Equal(t, os.Stderr, lgr.Output)
	assert.Equal(t, logrus.DebugLevel, lgr.Logger.GetLevel())
	require.IsType(t, &prefixed.TextFormatter{}, lgr.Logger.Formatter)
}

func TestNewLogrusLoggerStructuredFormatter(t *testing.T) {
	lgr := NewLogrusLogger(LogrusConfig{
		EnableConsole: true,
		Structured:    true,
		Level:         logrus.InfoLevel,
	})

	require.IsType(t, &logrus.JSONFormatter{}, lgr.Logger.Formatter)
}

func TestNewLogrusLoggerDiscardsWhenDisabled(t *testing.T) {
	lgr := NewLogrusLogger(LogrusConfig{
		Level: logrus.WarnLevel,
	})

	assert.Equal(t, io.Discard, lgr.Output)
}
