package mrk

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/marckit/marckit/format"
	"github.com/marckit/marckit/marc"
)

// minLineLength is the shortest tag line carrying any information:
// "=" + 3-digit tag + 2 spaces + at least 2 characters of payload.
const minLineLength = 8

var (
	dataLineRegex    = regexp.MustCompile(`^=(\d{3})  (.)(.)(.*)$`)
	controlLineRegex = regexp.MustCompile(`^=(\d{3})  (.*)$`)
)

// ParseLine converts one MRK tag line into a field. The boolean reports
// whether the line carried a field at all: malformed or empty lines are not
// errors in this format, just nothing to add, and the caller decides whether
// a missing field matters.
//
// A literal "$" inside a subfield value has no escape; it deterministically
// starts a new (usually spurious) subfield, matching the transcription
// convention this format is lossless for.
func ParseLine(line string) (marc.Field, bool) {
	s := strings.TrimSpace(line)
	if !strings.HasPrefix(s, "=") || len(s) < minLineLength {
		return marc.Field{}, false
	}

	m := dataLineRegex.FindStringSubmatch(s)
	if m == nil {
		// Control-field shape: "=TAG  DATA" with fewer than two payload
		// characters after the spaces.
		mc := controlLineRegex.FindStringSubmatch(s)
		if mc == nil || !marc.IsControlTag(mc[1]) {
			return marc.Field{}, false
		}
		data := strings.TrimSpace(mc[2])
		if data == "" {
			return marc.Field{}, false
		}
		return marc.NewControlField(mc[1], data), true
	}

	tag, ind1Raw, ind2Raw, tail := m[1], m[2], m[3], m[4]

	// A control-field tag in data-field shape: the two indicator positions
	// are really the first two payload characters.
	if marc.IsControlTag(tag) {
		data := strings.TrimSpace(ind1Raw + ind2Raw + tail)
		if data == "" {
			return marc.Field{}, false
		}
		return marc.NewControlField(tag, data), true
	}

	ind1 := indicatorByte(ind1Raw)
	ind2 := indicatorByte(ind2Raw)

	// A data field with no subfield markers carries no information.
	if !strings.Contains(tail, "$") {
		return marc.Field{}, false
	}

	subfields := parseSubfields(tail)
	if len(subfields) == 0 {
		return marc.Field{}, false
	}
	return marc.NewDataField(tag, ind1, ind2, subfields...), true
}

// indicatorByte maps the display backslash back to a blank indicator.
func indicatorByte(raw string) byte {
	if raw == `\` {
		return marc.Blank
	}
	return raw[0]
}

// parseSubfields scans "$<code><value>" groups left to right. Values run to
// the next "$" or end of string and are trimmed; groups with an empty value
// after trimming are dropped silently.
func parseSubfields(tail string) []marc.Subfield {
	var subfields []marc.Subfield
	i, n := 0, len(tail)
	for i < n {
		if tail[i] != '$' {
			i++
			continue
		}
		if i+1 >= n {
			break
		}
		code := tail[i+1]
		j := i + 2
		for j < n && tail[j] != '$' {
			j++
		}
		value := strings.TrimSpace(tail[i+2 : j])
		if value != "" {
			subfields = append(subfields, marc.Subfield{Code: code, Value: value})
		}
		i = j
	}
	return subfields
}

// Line is one unit of MRK input: either raw tag-line text or a field that
// was already built elsewhere. Exactly one of the two is set.
type Line struct {
	Text  string
	Field *marc.Field
}

// ParseLines resolves a mixed list of raw lines and pre-built fields into
// the fields they carry, dropping the lines that carry none.
func ParseLines(lines []Line) []marc.Field {
	var fields []marc.Field
	for _, ln := range lines {
		if ln.Field != nil {
			fields = append(fields, *ln.Field)
			continue
		}
		if f, ok := ParseLine(ln.Text); ok {
			fields = append(fields, f)
		}
	}
	return fields
}

// Parse reads MRK text and returns the records it transcribes. A "=LDR"
// line or a blank line starts a new record. Lines that carry no field are
// skipped unless opts.Strict is set.
func (f *Format) Parse(r io.Reader, opts *format.ParseOptions) ([]*marc.Record, error) {
	if opts == nil {
		opts = format.NewParseOptions()
	}

	var records []*marc.Record
	var current *marc.Record

	flush := func() {
		if current != nil && (current.Leader != "" || len(current.Fields) > 0) {
			records = append(records, current)
		}
		current = nil
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		s := strings.TrimSpace(scanner.Text())
		if s == "" {
			flush()
			continue
		}

		if leader, ok := strings.CutPrefix(s, "=LDR  "); ok {
			flush()
			current = &marc.Record{Leader: leader}
			continue
		}

		field, ok := ParseLine(s)
		if !ok {
			if opts.Strict {
				return nil, fmt.Errorf("%s:%d: malformed tag line %q", opts.SourceName, lineNo, s)
			}
			continue
		}
		if current == nil {
			current = &marc.Record{}
		}
		current.Append(field)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", opts.SourceName, err)
	}
	flush()

	return records, nil
}
