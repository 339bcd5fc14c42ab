/*
Package spec enumerates the CycloneDX schema revisions supported by this
library, along with the wire-level constants tied to each revision.
*/
package spec

import "fmt"

// Version is one of the supported CycloneDX schema revisions. Each revision
// has a distinct field set; the schema packages hold one struct family per
// revision.
type Version int

const (
	// V1_3 is CycloneDX 1.3
	V1_3 Version = iota + 3
	// V1_4 is CycloneDX 1.4
	V1_4
	// V1_5 is CycloneDX 1.5
	V1_5
)

// BomFormat is the constant value of the "bomFormat" JSON key.
const BomFormat = "CycloneDX"

func (v Version) String() string {
	switch v {
	case V1_3:
		return "1.3"
	case V1_4:
		return "1.4"
	case V1_5:
		return "1.5"
	}
	return fmt.Sprintf("unknown(%d)", int(v))
}

// XMLNamespace returns the xmlns URI the document root must declare for
// this revision.
func (v Version) XMLNamespace() string {
	return "http://cyclonedx.org/schema/bom/" + v.String()
}

// Parse maps a "specVersion" wire value (e.g. "1.4") to a Version.
func Parse(value string) (Version, error) {
	switch value {
	case "1.3":
		return V1_3, nil
	case "1.4":
		return V1_4, nil
	case "1.5":
		return V1_5, nil
	}
	return 0, fmt.Errorf("unsupported spec version %q", value)
}

// All lists the supported versions in ascending order.
func All() []Version {
	return []Version{V1_3, V1_4, V1_5}
}
