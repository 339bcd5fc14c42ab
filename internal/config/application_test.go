package config

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gobom/cyclonedx/cyclonedx/spec"
	"github.com/gobom/cyclonedx/internal/format"
)

func TestParseLogLevelOption(t *testing.T) {
	tests := []struct {
		name     string
		cfg      Application
		expected logrus.Level
	}{
		{
			name:     "default is warn",
			cfg:      Application{},
			expected: logrus.WarnLevel,
		},
		{
			name:     "quiet wins over verbosity",
			cfg:      Application{Quiet: true, CliOptions: CliOnlyOptions{Verbosity: 2}},
			expected: logrus.PanicLevel,
		},
		{
			name:     "single -v means info",
			cfg:      Application{CliOptions: CliOnlyOptions{Verbosity: 1}},
			expected: logrus.InfoLevel,
		},
		{
			name:     "-vv means debug",
			cfg:      Application{CliOptions: CliOnlyOptions{Verbosity: 2}},
			expected: logrus.DebugLevel,
		},
		{
			name:     "explicit level string",
			cfg:      Application{Log: logging{Level: "trace"}},
			expected: logrus.TraceLevel,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cfg := test.cfg
			require.NoError(t, cfg.parseLogLevelOption())
			assert.Equal(t, test.expected, cfg.Log.LevelOpt)
		})
	}
}

func TestParseLogLevelOptionRejectsBadLevel(t *testing.T) {
	cfg := Application{Log: logging{Level: "shouting"}}
	assert.Error(t, cfg.parseLogLevelOption())
}

func TestParseFormatOption(t *testing.T) {
	cfg := Application{Format: "XML"}
	require.NoError(t, cfg.parseFormatOption())
	assert.Equal(t, format.XMLFormat, cfg.FormatOpt)

	cfg = Application{Format: "yaml"}
	assert.Error(t, cfg.parseFormatOption())
}

func TestParseSpecVersionOption(t *testing.T) {
	cfg := Application{SpecVersion: "1.4"}
	require.NoError(t, cfg.parseSpecVersionOption())
	assert.Equal(t, spec.V1_4, cfg.SpecVersionOpt)

	cfg = Application{SpecVersion: "2.0"}
	assert.Error(t, cfg.parseSpecVersionOption())
}

func TestLoadApplicationConfigDefaults(t *testing.T) {
	v := viper.New()

	cfg, err := LoadApplicationConfig(v, CliOnlyOptions{})
	require.NoError(t, err)

	assert.Equal(t, format.JSONFormat, cfg.FormatOpt)
	assert.Equal(t, spec.V1_5, cfg.SpecVersionOpt)
	assert.Equal(t, logrus.WarnLevel, cfg.Log.LevelOpt)
	assert.False(t, cfg.TopLevelOnly)
}
