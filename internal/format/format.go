package format

import "strings"

const (
	UnknownFormat Format = "unknown"
	XMLFormat     Format = "xml"
	JSONFormat    Format = "json"
)

// Format is a dedicated type to represent a specific document encoding.
type Format string

func (f Format) String() string {
	return string(f)
}

// Parse returns the format specified by the given user input.
func Parse(userInput string) Format {
	switch strings.ToLower(userInput) {
	case "xml":
		return XMLFormat
	case "json":
		return JSONFormat
	default:
		return UnknownFormat
	}
}

// FromFilename guesses the encoding from a file name. JSON is the default
// for stdin and unrecognized names.
func FromFilename(path string) Format {
	if strings.HasSuffix(strings.ToLower(path), ".xml") {
		return XMLFormat
	}
	return JSONFormat
}
