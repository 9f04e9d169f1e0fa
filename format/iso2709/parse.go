package iso2709

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/marckit/marckit/format"
	"github.com/marckit/marckit/marc"
)

// Parse reads binary MARC records until EOF.
func (f *Format) Parse(r io.Reader, opts *format.ParseOptions) ([]*marc.Record, error) {
	if opts == nil {
		opts = format.NewParseOptions()
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 10*1024*1024)
	scanner.Split(splitRecords)

	var records []*marc.Record
	n := 0
	for scanner.Scan() {
		n++
		raw := scanner.Bytes()
		if len(bytes.TrimSpace(raw)) == 0 {
			continue
		}
		rec, err := DecodeRecord(raw)
		if err != nil {
			return nil, fmt.Errorf("%s: record %d: %w", opts.SourceName, n, err)
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", opts.SourceName, err)
	}
	return records, nil
}

// splitRecords tokenizes the stream on the record terminator.
func splitRecords(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexByte(data, recordTerminator); i >= 0 {
		return i + 1, data[:i], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

// DecodeRecord decodes one record (without its record terminator).
func DecodeRecord(raw []byte) (*marc.Record, error) {
	if len(raw) < leaderLength+1 {
		return nil, fmt.Errorf("record is %d bytes, shorter than a leader", len(raw))
	}
	leader := string(raw[:leaderLength])

	base, err := strconv.Atoi(leader[12:17])
	if err != nil || base <= leaderLength || base > len(raw) {
		return nil, fmt.Errorf("bad base address %q in leader", leader[12:17])
	}

	// The directory runs from the leader to the byte before the base
	// address; its own field terminator occupies that last byte.
	dir := raw[leaderLength : base-1]
	if len(dir)%dirEntryLen != 0 {
		return nil, fmt.Errorf("directory length %d is not a multiple of %d", len(dir), dirEntryLen)
	}
	data := raw[base:]

	rec := &marc.Record{Leader: leader}
	for len(dir) > 0 {
		entry := dir[:dirEntryLen]
		dir = dir[dirEntryLen:]

		tag := string(entry[:3])
		length, err := strconv.Atoi(string(entry[3:7]))
		if err != nil {
			return nil, fmt.Errorf("field %s: bad length %q", tag, entry[3:7])
		}
		start, err := strconv.Atoi(string(entry[7:12]))
		if err != nil {
			return nil, fmt.Errorf("field %s: bad start %q", tag, entry[7:12])
		}
		if start+length > len(data) || length < 1 {
			return nil, fmt.Errorf("field %s: directory entry (%d+%d) outside record data (%d bytes)",
				tag, start, length, len(data))
		}

		// Length includes the field terminator.
		payload := data[start : start+length-1]
		field, err := decodeField(tag, payload)
		if err != nil {
			return nil, err
		}
		rec.Append(field)
	}
	return rec, nil
}

func decodeField(tag string, payload []byte) (marc.Field, error) {
	if marc.IsControlTag(tag) {
		return marc.NewControlField(tag, string(payload)), nil
	}

	if len(payload) < 2 {
		return marc.Field{}, fmt.Errorf("field %s: data field payload is %d bytes, want indicators", tag, len(payload))
	}
	ind1, ind2 := payload[0], payload[1]

	var subfields []marc.Subfield
	for _, chunk := range bytes.Split(payload[2:], []byte{subfieldDelim}) {
		if len(chunk) < 2 {
			// Empty chunk before the first delimiter, or a bare code.
			continue
		}
		subfields = append(subfields, marc.Subfield{Code: chunk[0], Value: string(chunk[1:])})
	}
	return marc.NewDataField(tag, ind1, ind2, subfields...), nil
}
