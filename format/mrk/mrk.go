// Package mrk implements the MRK wire format: the line-oriented, human-
// readable transcription of a MARC record. One line per field, in the shape
// "=TAG  IND1IND2$aSubfield..." for data fields and "=TAG  DATA" for control
// fields, with blank indicators written as a backslash. A leader line
// "=LDR  ..." opens each record.
package mrk

import (
	"bytes"
	"regexp"

	"github.com/marckit/marckit/format"
)

// Format implements the MRK transcription format.
type Format struct{}

// Ensure Format implements the interfaces
var (
	_ format.Format     = (*Format)(nil)
	_ format.Parser     = (*Format)(nil)
	_ format.Serializer = (*Format)(nil)
)

var tagLinePrefix = regexp.MustCompile(`^=(LDR|\d{3})  `)

// Name returns the format identifier.
func (f *Format) Name() string {
	return "mrk"
}

// Description returns a human-readable format description.
func (f *Format) Description() string {
	return "MARC line-mode transcription (MRK)"
}

// Extensions returns file extensions associated with this format.
func (f *Format) Extensions() []string {
	return []string{"mrk"}
}

// CanParse returns true if the input looks like MRK text.
func (f *Format) CanParse(peek []byte) bool {
	peek = bytes.TrimSpace(peek)
	return tagLinePrefix.Match(peek)
}

func init() {
	format.Register(&Format{})
}
