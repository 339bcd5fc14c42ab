package cyclonedx

import (
	"io"

	"github.com/gobom/cyclonedx/cyclonedx/model"
	"github.com/gobom/cyclonedx/cyclonedx/schema/v13"
	"github.com/gobom/cyclonedx/cyclonedx/schema/v14"
	"github.com/gobom/cyclonedx/cyclonedx/schema/v15"
	"github.com/gobom/cyclonedx/cyclonedx/spec"
	"github.com/gobom/cyclonedx/internal/log"
)

// ParseFromXML reads a CycloneDX XML document written at the given spec
// version. The document root must declare the matching XML namespace.
func ParseFromXML(reader io.Reader, version spec.Version) (model.Bom, error) {
	log.Debugf("parsing XML document at spec version %s", version)
	switch version {
	case spec.V1_3:
		return v13.ReadXML(reader)
	case spec.V1_4:
		return v14.ReadXML(reader)
	case spec.V1_5:
		return v15.ReadXML(reader)
	}
	return model.Bom{}, unsupportedSpecVersion(version)
}

// ParseFromJSON reads a CycloneDX JSON document written at the given spec
// version. Unknown keys are ignored; a specVersion key that contradicts the
// requested version is an error.
func ParseFromJSON(reader io.Reader, version spec.Version) (model.Bom, error) {
	log.Debugf("parsing JSON document at spec version %s", version)
	var bom model.Bom
	var err error
	switch version {
	case spec.V1_3:
		bom, err = v13.ReadJSON(reader)
	case spec.V1_4:
		bom, err = v14.ReadJSON(reader)
	case spec.V1_5:
		bom, err = v15.ReadJSON(reader)
	default:
		return model.Bom{}, unsupportedSpecVersion(version)
	}
	if err != nil {
		return model.Bom{}, &JSONReadError{Err: err}
	}
	return bom, nil
}

// OutputAsXML writes the document as XML at the given spec version. Fields
// the version cannot represent are omitted. Nothing is written to the stream
// unless the whole document serializes successfully.
func OutputAsXML(bom model.Bom, writer io.Writer, version spec.Version) error {
	switch version {
	case spec.V1_3:
		return v13.WriteXML(bom, writer)
	case spec.V1_4:
		return v14.WriteXML(bom, writer)
	case spec.V1_5:
		return v15.WriteXML(bom, writer)
	}
	return unsupportedSpecVersion(version)
}

// OutputAsJSON writes the document as compact JSON at the given spec
// version. Fields the version cannot represent are omitted.
func OutputAsJSON(bom model.Bom, writer io.Writer, version spec.Version) error {
	var err error
	switch version {
	case spec.V1_3:
		err = v13.WriteJSON(bom, writer)
	case spec.V1_4:
		err = v14.WriteJSON(bom, writer)
	case spec.V1_5:
		err = v15.WriteJSON(bom, writer)
	default:
		return unsupportedSpecVersion(version)
	}
	if err != nil {
		return &JSONWriteError{Err: err}
	}
	return nil
}

// ParseFromXMLv1_3 reads a CycloneDX 1.3 XML document.
func ParseFromXMLv1_3(reader io.Reader) (model.Bom, error) {
	return ParseFromXML(reader, spec.V1_3)
}

// ParseFromXMLv1_4 reads a CycloneDX 1.4 XML document.
func ParseFromXMLv1_4(reader io.Reader) (model.Bom, error) {
	return ParseFromXML(reader, spec.V1_4)
}

// ParseFromXMLv1_5 reads a CycloneDX 1.5 XML document.
func ParseFromXMLv1_5(reader io.Reader) (model.Bom, error) {
	return ParseFromXML(reader, spec.V1_5)
}

// ParseFromJSONv1_3 reads a CycloneDX 1.3 JSON document.
func ParseFromJSONv1_3(reader io.Reader) (model.Bom, error) {
	return ParseFromJSON(reader, spec.V1_3)
}

// ParseFromJSONv1_4 reads a CycloneDX 1.4 JSON document.
func ParseFromJSONv1_4(reader io.Reader) (model.Bom, error) {
	return ParseFromJSON(reader, spec.V1_4)
}

// ParseFromJSONv1_5 reads a CycloneDX 1.5 JSON document.
func ParseFromJSONv1_5(reader io.Reader) (model.Bom, error) {
	return ParseFromJSON(reader, spec.V1_5)
}

// OutputAsXMLv1_3 writes the document as CycloneDX 1.3 XML.
func OutputAsXMLv1_3(bom model.Bom, writer io.Writer) error {
	return OutputAsXML(bom, writer, spec.V1_3)
}

// OutputAsXMLv1_4 writes the document as CycloneDX 1.4 XML.
func OutputAsXMLv1_4(bom model.Bom, writer io.Writer) error {
	return OutputAsXML(bom, writer, spec.V1_4)
}

// OutputAsXMLv1_5 writes the document as CycloneDX 1.5 XML.
func OutputAsXMLv1_5(bom model.Bom, writer io.Writer) error {
	return OutputAsXML(bom, writer, spec.V1_5)
}

// OutputAsJSONv1_3 writes the document as CycloneDX 1.3 JSON.
func OutputAsJSONv1_3(bom model.Bom, writer io.Writer) error {
	return OutputAsJSON(bom, writer, spec.V1_3)
}

// OutputAsJSONv1_4 writes the document as CycloneDX 1.4 JSON.
func OutputAsJSONv1_4(bom model.Bom, writer io.Writer) error {
	return OutputAsJSON(bom, writer, spec.V1_4)
}

// OutputAsJSONv1_5 writes the document as CycloneDX 1.5 JSON.
func OutputAsJSONv1_5(bom model.Bom, writer io.Writer) error {
	return OutputAsJSON(bom, writer, spec.V1_5)
}
