package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/gobom/cyclonedx/cyclonedx"
	"github.com/gobom/cyclonedx/cyclonedx/model"
	"github.com/gobom/cyclonedx/cyclonedx/spec"
	"github.com/gobom/cyclonedx/internal/format"
	"github.com/gobom/cyclonedx/internal/log"
)

// writeBom serializes the document to the given file, or stdout when the
// file is empty.
func writeBom(bom model.Bom, f format.Format, version spec.Version, outputFile string) error {
	var out io.Writer = os.Stdout
	if outputFile != "" {
		file, err := os.Create(outputFile)
		if err != nil {
			return fmt.Errorf("unable to create output file: %w", err)
		}
		defer log.CloseAndLogError(file, outputFile)
		out = file
	}
	return writeBomTo(bom, f, version, out)
}

func writeBomTo(bom model.Bom, f format.Format, version spec.Version, out io.Writer) error {
	switch f {
	case format.XMLFormat:
		return cyclonedx.OutputAsXML(bom, out, version)
	case format.JSONFormat:
		if err := cyclonedx.OutputAsJSON(bom, out, version); err != nil {
			return err
		}
		_, err := io.WriteString(out, "\n")
		return err
	}
	return fmt.Errorf("unsupported output format: %s", f)
}

// readBom parses the document from the given file, or stdin when the file
// is empty. The spec version is discovered by attempting each supported
// revision in order.
func readBom(inputFile string, f format.Format) (model.Bom, error) {
	var in io.Reader = os.Stdin
	if inputFile != "" {
		file, err := os.Open(inputFile)
		if err != nil {
			return model.Bom{}, fmt.Errorf("unable to open input file: %w", err)
		}
		defer log.CloseAndLogError(file, inputFile)
		in = file
	}

	data, err := io.ReadAll(in)
	if err != nil {
		return model.Bom{}, fmt.Errorf("unable to read input: %w", err)
	}

	var lastErr error
	for _, version := range spec.All() {
		var bom model.Bom
		switch f {
		case format.XMLFormat:
			bom, lastErr = cyclonedx.ParseFromXML(bytes.NewReader(data), version)
		case format.JSONFormat:
			bom, lastErr = cyclonedx.ParseFromJSON(bytes.NewReader(data), version)
		default:
			return model.Bom{}, fmt.Errorf("unsupported input format: %s", f)
		}
		if lastErr == nil {
			return bom, nil
		}
		log.Debugf("document is not spec version %s: %v", version, lastErr)
	}
	return model.Bom{}, fmt.Errorf("unable to parse document at any supported spec version: %w", lastErr)
}
