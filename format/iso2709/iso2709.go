// Package iso2709 implements the binary MARC exchange format (.mrc files):
// a 24-byte leader, a directory of fixed 12-byte entries, and delimited
// field data. Unlike the MRK text format, corruption here is an error, not
// an absent field: a bad directory silently mis-addresses every field after
// it.
package iso2709

import (
	"github.com/marckit/marckit/format"
)

const (
	recordTerminator = 0x1d
	fieldTerminator  = 0x1e
	subfieldDelim    = 0x1f

	leaderLength  = 24
	dirEntryLen   = 12
	maxFieldLen   = 9999
	maxRecordSize = 99999
)

// Format implements the ISO 2709 binary format.
type Format struct{}

// Ensure Format implements the interfaces
var (
	_ format.Format     = (*Format)(nil)
	_ format.Parser     = (*Format)(nil)
	_ format.Serializer = (*Format)(nil)
)

// Name returns the format identifier.
func (f *Format) Name() string {
	return "mrc"
}

// Description returns a human-readable format description.
func (f *Format) Description() string {
	return "ISO 2709 binary MARC exchange format"
}

// Extensions returns file extensions associated with this format.
func (f *Format) Extensions() []string {
	return []string{"mrc", "marc"}
}

// CanParse returns true if the input starts with a plausible MARC leader.
func (f *Format) CanParse(peek []byte) bool {
	if len(peek) < leaderLength {
		return false
	}
	for _, b := range peek[:5] {
		if b < '0' || b > '9' {
			return false
		}
	}
	return true
}

func init() {
	format.Register(&Format{})
}
