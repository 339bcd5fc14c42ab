/*
Package xmlio is the streaming front-end shared by the per-version schema
packages. It locates and namespace-checks the document root on read, and
guarantees on write that no partial element is ever flushed past the point
of failure.
*/
package xmlio

import (
	"bytes"
	"encoding/xml"
	"io"
	"strings"
)

// ReadDocument scans the token stream for the document root, verifies its
// namespace, and decodes the element tree into doc. Elements the schema
// does not know are skipped (lax validation); a root element other than
// rootName aborts with UnexpectedElementError; a namespace mismatch aborts
// with InvalidNamespaceError before any child element is processed.
func ReadDocument(r io.Reader, rootName string, expectedNamespace string, doc interface{}) error {
	decoder := xml.NewDecoder(r)
	for {
		token, err := decoder.Token()
		if err != nil {
			return &ElementReadError{Element: rootName, Err: err}
		}
		start, ok := token.(xml.StartElement)
		if !ok {
			// prolog, comments, and whitespace before the root
			continue
		}
		if start.Name.Local != rootName {
			return &UnexpectedElementError{Expected: rootName, Element: start.Name.Local}
		}
		if start.Name.Space != expectedNamespace {
			return &InvalidNamespaceError{ExpectedNamespace: expectedNamespace, ActualNamespace: start.Name.Space}
		}
		if err := decoder.DecodeElement(doc, &start); err != nil {
			return wrapDecodeError(rootName, err)
		}
		return nil
	}
}

func wrapDecodeError(element string, err error) error {
	// keep structured read errors raised by custom unmarshallers intact
	switch err.(type) {
	case *RequiredAttributeMissingError, *RequiredDataMissingError,
		*UnexpectedElementError, *InvalidParseError, *InvalidNamespaceError:
		return err
	}
	if strings.Contains(err.Error(), "strconv.") {
		return &InvalidParseError{Value: err.Error(), DataType: "number", Element: element}
	}
	return &ElementReadError{Element: element, Err: err}
}

// WriteDocument marshals doc depth-first into memory and only then copies
// the result to w, so the output stream never contains a dangling open tag
// when an inner write fails: every opened tag in the emitted bytes is
// matched by its closing tag.
func WriteDocument(w io.Writer, rootName string, doc interface{}) error {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	encoder := xml.NewEncoder(&buf)
	encoder.Indent("", "  ")
	if err := encoder.Encode(doc); err != nil {
		return &WriteError{Element: rootName, Err: err}
	}
	buf.WriteString("\n")
	if _, err := w.Write(buf.Bytes()); err != nil {
		return &WriteError{Element: rootName, Err: err}
	}
	return nil
}

// Skip consumes and discards the whole subtree of the element whose start
// tag was just read. Used by custom unmarshallers to tolerate foreign or
// unrecognized child elements.
func Skip(decoder *xml.Decoder) error {
	return decoder.Skip()
}
