package xmlio

import "fmt"

// InvalidNamespaceError is returned when the document root does not declare
// the XML namespace expected for the requested spec version. It aborts the
// whole parse before any child element is processed.
type InvalidNamespaceError struct {
	ExpectedNamespace string
	ActualNamespace   string
}

func (e *InvalidNamespaceError) Error() string {
	actual := e.ActualNamespace
	if actual == "" {
		actual = "no CycloneDX namespace"
	}
	return fmt.Sprintf("expected document to be in the form %s, but received %s", e.ExpectedNamespace, actual)
}

// RequiredAttributeMissingError is returned when an element lacks an
// attribute the schema requires.
type RequiredAttributeMissingError struct {
	Attribute string
	Element   string
}

func (e *RequiredAttributeMissingError) Error() string {
	return fmt.Sprintf("element %s is missing required attribute %s", e.Element, e.Attribute)
}

// RequiredDataMissingError is returned when an element ends without text
// content or a child the schema requires.
type RequiredDataMissingError struct {
	RequiredField string
	Element       string
}

func (e *RequiredDataMissingError) Error() string {
	return fmt.Sprintf("ended element %s without data for required field %s", e.Element, e.RequiredField)
}

// UnexpectedElementError is returned when the reader encounters an element
// it cannot dispatch, such as a foreign document root.
type UnexpectedElementError struct {
	Expected string
	Element  string
}

func (e *UnexpectedElementError) Error() string {
	return fmt.Sprintf("got unexpected XML element %s when reading %s", e.Element, e.Expected)
}

// InvalidParseError is returned when element content cannot be parsed as
// the expected data type.
type InvalidParseError struct {
	Value    string
	DataType string
	Element  string
}

func (e *InvalidParseError) Error() string {
	return fmt.Sprintf("could not parse %q as %s on %s", e.Value, e.DataType, e.Element)
}

// ElementReadError wraps a low-level decoder failure with the element being
// read when it occurred.
type ElementReadError struct {
	Element string
	Err     error
}

func (e *ElementReadError) Error() string {
	return fmt.Sprintf("failed to deserialize XML while reading %s: %v", e.Element, e.Err)
}

func (e *ElementReadError) Unwrap() error {
	return e.Err
}

// WriteError wraps a stream-write failure with the element being written
// when it occurred.
type WriteError struct {
	Element string
	Err     error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to serialize XML while writing %s: %v", e.Element, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
