package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/gobom/cyclonedx/cyclonedx/spec"
	"github.com/gobom/cyclonedx/internal"
	"github.com/gobom/cyclonedx/internal/format"
	"github.com/gobom/cyclonedx/internal/log"
)

var convertOpts = struct {
	inputFormat  string
	outputFormat string
	specVersion  string
	outputFile   string
}{}

var convertCmd = &cobra.Command{
	Use:   "convert [FILE]",
	Short: "re-encode a CycloneDX document in another format or spec version",
	Long: `Parse a CycloneDX document from a file (or stdin) and write it back out in
the requested format and spec version. Fields the target revision cannot
represent are dropped.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		os.Exit(runConvertCmd(cmd, args))
	},
}

func init() {
	convertCmd.Flags().StringVar(&convertOpts.inputFormat, "input-format", "", "encoding of the input document, options=[xml json] (default is guessed from the file name)")
	convertCmd.Flags().StringVar(&convertOpts.outputFormat, "output-format", "json", "encoding of the output document, options=[xml json]")
	convertCmd.Flags().StringVar(&convertOpts.specVersion, "spec-version", "1.5", "CycloneDX schema revision to write, options=[1.3 1.4 1.5]")
	convertCmd.Flags().StringVarP(&convertOpts.outputFile, "output-file", "o", "", "file to write the document to (default is stdout)")

	rootCmd.AddCommand(convertCmd)
}

func runConvertCmd(cmd *cobra.Command, args []string) int {
	inputFile := ""
	if len(args) > 0 {
		inputFile = args[0]
	}
	if !hasUsableInput(cmd, inputFile) {
		return 1
	}

	inputFormat := format.FromFilename(inputFile)
	if convertOpts.inputFormat != "" {
		inputFormat = format.Parse(convertOpts.inputFormat)
	}

	outputFormat := format.Parse(convertOpts.outputFormat)
	if outputFormat == format.UnknownFormat {
		log.Errorf("bad --output-format value '%s' (expected xml or json)", convertOpts.outputFormat)
		return 1
	}

	bom, err := readBom(inputFile, inputFormat)
	if err != nil {
		log.Errorf("unable to parse document: %v", err)
		return 1
	}

	version, err := spec.Parse(convertOpts.specVersion)
	if err != nil {
		log.Errorf("bad --spec-version value '%s'", convertOpts.specVersion)
		return 1
	}

	if err := writeBom(bom, outputFormat, version, convertOpts.outputFile); err != nil {
		log.Errorf("unable to write document: %v", err)
		return 1
	}
	return 0
}

// hasUsableInput checks that a document is actually available: either a file
// argument or piped stdin. Shows usage otherwise.
func hasUsableInput(cmd *cobra.Command, inputFile string) bool {
	if inputFile != "" {
		return true
	}
	piped, err := internal.IsPipedInput()
	if err != nil {
		log.Warnf("unable to determine if there is piped input: %v", err)
		return true
	}
	if !piped {
		if err := cmd.Help(); err != nil {
			log.Errorf("unable to display help: %v", err)
		}
		return false
	}
	return true
}
