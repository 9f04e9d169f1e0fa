package iso2709

import (
	"bytes"
	"fmt"
	"io"

	"github.com/marckit/marckit/format"
	"github.com/marckit/marckit/marc"
)

// Serialize writes records in binary MARC form.
func (f *Format) Serialize(w io.Writer, records []*marc.Record, opts *format.SerializeOptions) error {
	// opts carries nothing for a binary format
	_ = opts

	for i, rec := range records {
		raw, err := EncodeRecord(rec)
		if err != nil {
			return fmt.Errorf("encoding record %d: %w", i, err)
		}
		if _, err := w.Write(raw); err != nil {
			return err
		}
	}
	return nil
}

// EncodeRecord encodes one record, record terminator included. The leader's
// record-length and base-address slots are recomputed; the rest of the
// caller's leader is carried through unchanged.
func EncodeRecord(rec *marc.Record) ([]byte, error) {
	var dir bytes.Buffer
	var data bytes.Buffer

	for _, f := range rec.Fields {
		start := data.Len()
		encodeField(&data, f)
		length := data.Len() - start
		if length > maxFieldLen {
			return nil, fmt.Errorf("field %s: %d bytes exceeds the %d-byte directory limit", f.Tag, length, maxFieldLen)
		}
		if len(f.Tag) != 3 {
			return nil, fmt.Errorf("field tag %q is not three characters", f.Tag)
		}
		fmt.Fprintf(&dir, "%s%04d%05d", f.Tag, length, start)
	}

	base := leaderLength + dir.Len() + 1
	total := base + data.Len() + 1
	if total > maxRecordSize {
		return nil, fmt.Errorf("record is %d bytes, exceeds the %d-byte limit", total, maxRecordSize)
	}

	leader := []byte(rec.Leader)
	if len(leader) != leaderLength {
		leader = []byte(marc.DefaultLeader)
	}
	copy(leader[0:5], fmt.Sprintf("%05d", total))
	leader[10], leader[11] = '2', '2'
	copy(leader[12:17], fmt.Sprintf("%05d", base))
	copy(leader[20:24], "4500")

	out := make([]byte, 0, total)
	out = append(out, leader...)
	out = append(out, dir.Bytes()...)
	out = append(out, fieldTerminator)
	out = append(out, data.Bytes()...)
	out = append(out, recordTerminator)
	return out, nil
}

func encodeField(data *bytes.Buffer, f marc.Field) {
	if f.IsControl() {
		data.WriteString(f.Data)
		data.WriteByte(fieldTerminator)
		return
	}

	data.WriteByte(indicatorOrBlank(f.Ind1))
	data.WriteByte(indicatorOrBlank(f.Ind2))
	for _, sf := range f.Subfields {
		data.WriteByte(subfieldDelim)
		data.WriteByte(sf.Code)
		data.WriteString(sf.Value)
	}
	data.WriteByte(fieldTerminator)
}

func indicatorOrBlank(ind byte) byte {
	if ind == 0 {
		return marc.Blank
	}
	return ind
}
