/*
Package cyclonedx reads, writes, and validates CycloneDX software
bill-of-materials documents across schema versions 1.3, 1.4, and 1.5, in
both XML and JSON.

Parsing is deliberately lenient: values outside a closed vocabulary are
preserved as written instead of rejected, and Bom.Validate reports them
afterwards with the exact path of each offending field.
*/
package cyclonedx

import (
	"github.com/gobom/cyclonedx/internal/log"
)

// SetLogger installs the given logger for use by the library. By default no
// log output is produced.
func SetLogger(logger log.Logger) {
	log.Log = logger
}
