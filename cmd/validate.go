package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gobom/cyclonedx/cyclonedx/spec"
	"github.com/gobom/cyclonedx/internal/format"
	"github.com/gobom/cyclonedx/internal/log"
)

var validateOpts = struct {
	inputFormat string
	specVersion string
}{}

var validateCmd = &cobra.Command{
	Use:   "validate [FILE]",
	Short: "check a CycloneDX document for field-level violations",
	Long: `Parse a CycloneDX document from a file (or stdin) and run field validation
against its spec version. Every violation is reported with the full path of
the offending field; the exit code is non-zero when any are found.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		os.Exit(runValidateCmd(cmd, args))
	},
}

func init() {
	validateCmd.Flags().StringVar(&validateOpts.inputFormat, "input-format", "", "encoding of the input document, options=[xml json] (default is guessed from the file name)")
	validateCmd.Flags().StringVar(&validateOpts.specVersion, "spec-version", "", "validate against this schema revision instead of the document's own")

	rootCmd.AddCommand(validateCmd)
}

func runValidateCmd(cmd *cobra.Command, args []string) int {
	inputFile := ""
	if len(args) > 0 {
		inputFile = args[0]
	}
	if !hasUsableInput(cmd, inputFile) {
		return 1
	}

	inputFormat := format.FromFilename(inputFile)
	if validateOpts.inputFormat != "" {
		inputFormat = format.Parse(validateOpts.inputFormat)
	}

	bom, err := readBom(inputFile, inputFormat)
	if err != nil {
		log.Errorf("unable to parse document: %v", err)
		return 1
	}

	version := bom.SpecVersion
	if validateOpts.specVersion != "" {
		version, err = spec.Parse(validateOpts.specVersion)
		if err != nil {
			log.Errorf("bad --spec-version value '%s'", validateOpts.specVersion)
			return 1
		}
	}
	result := bom.ValidateVersion(version)

	if result.Passed() {
		return 0
	}
	for _, reason := range result.Reasons() {
		fmt.Fprintf(os.Stderr, "%s: %s\n", reason.Context, reason.Message)
	}
	return 1
}
