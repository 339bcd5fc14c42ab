package config

import (
	"errors"
	"fmt"
	"path"
	"reflect"
	"strings"

	"github.com/adrg/xdg"
	"github.com/hashicorp/go-multierror"
	"github.com/mitchellh/go-homedir"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"

	"github.com/gobom/cyclonedx/cyclonedx/spec"
	"github.com/gobom/cyclonedx/internal"
	"github.com/gobom/cyclonedx/internal/format"
)

var ErrApplicationConfigNotFound = fmt.Errorf("application config not found")

type defaultValueLoader interface {
	loadDefaultValues(*viper.Viper)
}

type parser interface {
	parseConfigValues() error
}

type Application struct {
	ConfigPath    string         `yaml:",omitempty" json:"configPath"` // the location where the application config was read from (either from -c or discovered while loading)
	Format        string         `yaml:"format" json:"format" mapstructure:"format"`                         // --format, the output encoding (xml or json)
	SpecVersion   string         `yaml:"spec-version" json:"spec-version" mapstructure:"spec-version"`       // --spec-version, the CycloneDX schema revision to write
	OutputFile    string         `yaml:"output-file" json:"output-file" mapstructure:"output-file"`          // --output-file, the file to write the document to (default stdout)
	TopLevelOnly  bool           `yaml:"top-level" json:"top-level" mapstructure:"top-level"`                // --top-level, only include direct dependencies
	All           bool           `yaml:"all" json:"all" mapstructure:"all"`                                  // --all, include indirect dependencies
	LicenseStrict bool           `yaml:"license-strict" json:"license-strict" mapstructure:"license-strict"` // --license-strict, fail on malformed license expressions
	Quiet         bool           `yaml:"quiet" json:"quiet" mapstructure:"quiet"`                            // -q, indicates to not show any status output to stderr
	CliOptions    CliOnlyOptions `yaml:"-" json:"-"`
	Log           logging        `yaml:"log" json:"log" mapstructure:"log"`

	// resolved after parsing the format and spec-version hints
	FormatOpt      format.Format `yaml:"-" json:"-"`
	SpecVersionOpt spec.Version  `yaml:"-" json:"-"`
}

func newApplicationConfig(v *viper.Viper, cliOpts CliOnlyOptions) *Application {
	config := &Application{
		CliOptions: cliOpts,
	}
	config.loadDefaultValues(v)

	return config
}

func LoadApplicationConfig(v *viper.Viper, cliOpts CliOnlyOptions) (*Application, error) {
	// the user may not have a config, and this is OK, we can use the default config + default cobra cli values instead
	config := newApplicationConfig(v, cliOpts)

	if err := readConfig(v, cliOpts.ConfigPath); err != nil && !errors.Is(err, ErrApplicationConfigNotFound) {
		return nil, err
	}

	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("unable to parse config: %w", err)
	}
	config.ConfigPath = v.ConfigFileUsed()

	if err := config.parseConfigValues(); err != nil {
		return nil, fmt.Errorf("invalid application config: %w", err)
	}

	return config, nil
}

// loadDefaultValues loads the default configuration values into the viper instance (before the config values are read and parsed).
func (cfg Application) loadDefaultValues(v *viper.Viper) {
	v.SetDefault("format", "json")
	v.SetDefault("spec-version", spec.V1_5.String())
	v.SetDefault("output-file", "")
	v.SetDefault("top-level", false)
	v.SetDefault("all", false)
	v.SetDefault("license-strict", false)

	// for each field in the configuration struct, see if the field implements the defaultValueLoader interface and invoke it if it does
	value := reflect.ValueOf(cfg)
	for i := 0; i < value.NumField(); i++ {
		// note: the defaultValueLoader method receiver is NOT a pointer receiver.
		if loadable, ok := value.Field(i).Interface().(defaultValueLoader); ok {
			// the field implements defaultValueLoader, call it
			loadable.loadDefaultValues(v)
		}
	}
}

func (cfg *Application) parseConfigValues() error {
	var errs *multierror.Error
	for _, optionFn := range []func() error{
		cfg.parseLogLevelOption,
		cfg.parseFormatOption,
		cfg.parseSpecVersionOption,
	} {
		if err := optionFn(); err != nil {
			errs = multierror.Append(errs, err)
		}
	}
	return errs.ErrorOrNil()
}

func (cfg *Application) parseLogLevelOption() error {
	switch {
	case cfg.Quiet:
		cfg.Log.LevelOpt = logrus.PanicLevel
	case cfg.CliOptions.Verbosity == 1:
		cfg.Log.LevelOpt = logrus.InfoLevel
	case cfg.CliOptions.Verbosity >= 2:
		cfg.Log.LevelOpt = logrus.DebugLevel
	case cfg.Log.Level != "":
		level, err := logrus.ParseLevel(cfg.Log.Level)
		if err != nil {
			return fmt.Errorf("bad log level value '%s': %w", cfg.Log.Level, err)
		}
		cfg.Log.LevelOpt = level
	default:
		cfg.Log.LevelOpt = logrus.WarnLevel
	}
	return nil
}

func (cfg *Application) parseFormatOption() error {
	cfg.FormatOpt = format.Parse(cfg.Format)
	if cfg.FormatOpt == format.UnknownFormat {
		return fmt.Errorf("bad --format value '%s' (expected xml or json)", cfg.Format)
	}
	return nil
}

func (cfg *Application) parseSpecVersionOption() error {
	version, err := spec.Parse(cfg.SpecVersion)
	if err != nil {
		return fmt.Errorf("bad --spec-version value '%s'", cfg.SpecVersion)
	}
	cfg.SpecVersionOpt = version
	return nil
}

func (cfg Application) String() string {
	// yaml is pretty human friendly (at least when compared to json)
	appCfgStr, err := yaml.Marshal(&cfg)

	if err != nil {
		return err.Error()
	}

	return string(appCfgStr)
}

// readConfig attempts to read the given config path from disk or discover an alternate store location
func readConfig(v *viper.Viper, configPath string) error {
	var err error
	v.AutomaticEnv()
	v.SetEnvPrefix(internal.ApplicationName)
	// allow for nested options to be specified via environment variables
	// e.g. log.file = GOBOM_LOG_FILE
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	// use explicitly the given user config
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("unable to read application config=%q : %w", configPath, err)
		}
		// don't fall through to other options if the config path was explicitly provided
		return nil
	}

	// start searching for valid configs in order...

	// 1. look for .<appname>.yaml (in the current directory)
	v.AddConfigPath(".")
	v.SetConfigName("." + internal.ApplicationName)
	if err = v.ReadInConfig(); err == nil {
		return nil
	} else if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
		return fmt.Errorf("unable to parse config=%q: %w", v.ConfigFileUsed(), err)
	}

	// 2. look for .<appname>/config.yaml (in the current directory)
	v.AddConfigPath("." + internal.ApplicationName)
	v.SetConfigName("config")
	if err = v.ReadInConfig(); err == nil {
		return nil
	} else if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
		return fmt.Errorf("unable to parse config=%q: %w", v.ConfigFileUsed(), err)
	}

	// 3. look for ~/.<appname>.yaml
	home, err := homedir.Dir()
	if err == nil {
		v.AddConfigPath(home)
		v.SetConfigName("." + internal.ApplicationName)
		if err = v.ReadInConfig(); err == nil {
			return nil
		} else if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return fmt.Errorf("unable to parse config=%q: %w", v.ConfigFileUsed(), err)
		}
	}

	// 4. look for <appname>/config.yaml in xdg locations (starting with xdg home config dir, then moving upwards)
	v.AddConfigPath(path.Join(xdg.ConfigHome, internal.ApplicationName))
	for _, dir := range xdg.ConfigDirs {
		v.AddConfigPath(path.Join(dir, internal.ApplicationName))
	}
	v.SetConfigName("config")
	if err = v.ReadInConfig(); err == nil {
		return nil
	} else if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
		return fmt.Errorf("unable to parse config=%q: %w", v.ConfigFileUsed(), err)
	}

	return ErrApplicationConfigNotFound
}
