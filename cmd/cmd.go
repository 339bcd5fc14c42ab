package cmd

import (
	"fmt"
	"os"

	"github.com/gookit/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gobom/cyclonedx/cyclonedx"
	"github.com/gobom/cyclonedx/internal"
	"github.com/gobom/cyclonedx/internal/config"
	"github.com/gobom/cyclonedx/internal/log"
	"github.com/gobom/cyclonedx/internal/logger"
	"github.com/gobom/cyclonedx/internal/version"
)

var appConfig *config.Application

func init() {
	cobra.OnInitialize(
		initAppConfig,
		initLogging,
		logAppConfig,
		logAppVersion,
	)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func initAppConfig() {
	cfg, err := config.LoadApplicationConfig(viper.GetViper(), cliOpts)
	if err != nil {
		fmt.Printf("failed to load application config: \n\t%+v\n", err)
		os.Exit(1)
	}
	appConfig = cfg
}

func initLogging() {
	cfg := logger.LogrusConfig{
		EnableConsole: (appConfig.Log.FileLocation == "" || appConfig.CliOptions.Verbosity > 0) && !appConfig.Quiet,
		EnableFile:    appConfig.Log.FileLocation != "",
		Level:         appConfig.Log.LevelOpt,
		Structured:    appConfig.Log.Structured,
		FileLocation:  appConfig.Log.FileLocation,
	}

	cyclonedx.SetLogger(logger.NewLogrusLogger(cfg))
}

func logAppConfig() {
	log.Debugf("application config:\n%+v", color.Magenta.Sprint(appConfig.String()))
}

func logAppVersion() {
	log.Infof("%s version: %s", internal.ApplicationName, version.FromBuild().Version)
}
