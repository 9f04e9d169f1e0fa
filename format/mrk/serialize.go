package mrk

import (
	"io"
	"strings"

	"github.com/marckit/marckit/format"
	"github.com/marckit/marckit/marc"
)

// FieldLine renders one field as its MRK tag line. This is the exact inverse
// of ParseLine for every field ParseLine can produce: no normalization is
// applied in either direction beyond the blank/backslash indicator mapping.
func FieldLine(f marc.Field) string {
	return f.String()
}

// SerializeRecord renders a record as MRK text: the leader line first, then
// one line per field in append order.
func SerializeRecord(rec *marc.Record) string {
	lines := make([]string, 0, len(rec.Fields)+1)
	lines = append(lines, "=LDR  "+rec.Leader)
	for _, f := range rec.Fields {
		lines = append(lines, FieldLine(f))
	}
	return strings.Join(lines, "\n")
}

// Serialize writes records as MRK text, separated by blank lines.
func (f *Format) Serialize(w io.Writer, records []*marc.Record, opts *format.SerializeOptions) error {
	if opts == nil {
		opts = format.NewSerializeOptions()
	}

	for i, rec := range records {
		if i > 0 {
			if _, err := io.WriteString(w, opts.RecordSeparator); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, SerializeRecord(rec)+"\n"); err != nil {
			return err
		}
	}
	return nil
}
