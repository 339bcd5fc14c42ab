package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gobom/cyclonedx/cyclonedx/provider"
	"github.com/gobom/cyclonedx/cyclonedx/provider/gomod"
	"github.com/gobom/cyclonedx/internal"
	"github.com/gobom/cyclonedx/internal/log"
	"github.com/gobom/cyclonedx/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   fmt.Sprintf("%s [DIR]", internal.ApplicationName),
	Short: "Generate a CycloneDX SBOM for a Go module",
	Long: fmt.Sprintf(`Generate a CycloneDX software bill-of-materials from a Go module manifest:
    %s                  describe the module in the current directory
    %s path/to/module   describe the module at the given path
`, internal.ApplicationName, internal.ApplicationName),
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		os.Exit(runDefaultCmd(cmd, args))
	},
}

func init() {
	setCliOptions()
}

func runDefaultCmd(_ *cobra.Command, args []string) int {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}
	manifestPath := filepath.Join(dir, "go.mod")

	log.Infof("reading manifest %s", manifestPath)
	source, err := gomod.NewSource(manifestPath)
	if err != nil {
		log.Errorf("unable to read module manifest: %v", err)
		return 1
	}

	bom, err := provider.ToBom(source, provider.Config{
		TopLevelOnly:  appConfig.TopLevelOnly && !appConfig.All,
		LicenseStrict: appConfig.LicenseStrict,
		ToolName:      internal.ApplicationName,
		ToolVersion:   version.FromBuild().Version,
	})
	if err != nil {
		log.Errorf("unable to build document: %v", err)
		return 1
	}

	if err := writeBom(bom, appConfig.FormatOpt, appConfig.SpecVersionOpt, appConfig.OutputFile); err != nil {
		log.Errorf("unable to write document: %v", err)
		return 1
	}
	return 0
}
