package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/gobom/cyclonedx/internal/config"
)

var cliOpts = config.CliOnlyOptions{}

func setCliOptions() {
	rootCmd.PersistentFlags().StringVarP(&cliOpts.ConfigPath, "config", "c", "", "application config file")
	rootCmd.PersistentFlags().CountVarP(&cliOpts.Verbosity, "verbose", "v", "increase verbosity (-v = info, -vv = debug)")

	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress all logging output")
	bindFlag(rootCmd.PersistentFlags(), "quiet")

	setRootFlags(rootCmd.Flags())
}

func setRootFlags(flags *pflag.FlagSet) {
	// document options
	flags.StringP("format", "f", "json", "output encoding to use, options=[xml json]")
	flags.String("spec-version", "1.5", "CycloneDX schema revision to write, options=[1.3 1.4 1.5]")
	flags.StringP("output-file", "o", "", "file to write the document to (default is stdout)")

	// dependency selection options
	flags.Bool("top-level", false, "only include direct dependencies")
	flags.Bool("all", false, "include indirect dependencies even when --top-level is set")
	flags.Bool("license-strict", false, "fail on malformed license expressions instead of keeping them as named licenses")

	for _, flag := range []string{"format", "spec-version", "output-file", "top-level", "all", "license-strict"} {
		bindFlag(flags, flag)
	}
}

func bindFlag(flags *pflag.FlagSet, flag string) {
	if err := viper.BindPFlag(flag, flags.Lookup(flag)); err != nil {
		fmt.Printf("unable to bind flag '%s': %+v", flag, err)
		os.Exit(1)
	}
}
