package config

// CliOnlyOptions are options that are in no way persisted in the application
// config, only settable via the command line.
type CliOnlyOptions struct {
	ConfigPath string
	Verbosity  int
}
