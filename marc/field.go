// Package marc provides the structured in-memory model for KORMARC/MARC21
// bibliographic records: fields, subfields, the record leader, the fixed-width
// 008 codec, and record validation. Wire formats (MRK text, ISO 2709 binary)
// live in the format packages and convert to and from these types.
package marc

import (
	"strconv"
	"strings"
)

// Blank is the blank indicator value.
const Blank = ' '

// Subfield is a single (code, value) pair within a data field.
// Order within a field is significant and preserved.
type Subfield struct {
	Code  byte
	Value string
}

// Field is one MARC field occurrence. A field is exactly one of two variants,
// discriminated by tag: control fields (tags 001-009) carry an opaque Data
// payload; data fields (tags 010-999) carry two indicators and an ordered
// list of subfields. Constructors enforce the split.
type Field struct {
	Tag string

	// Data field variant.
	Ind1      byte
	Ind2      byte
	Subfields []Subfield

	// Control field variant.
	Data string
}

// NewControlField creates a control field. The tag should be numerically
// below 010; callers feeding data-field tags here produce a field that
// Validate will flag.
func NewControlField(tag, data string) Field {
	return Field{Tag: tag, Data: data}
}

// NewDataField creates a data field with the given indicators and subfields.
// A zero indicator byte is normalized to blank.
func NewDataField(tag string, ind1, ind2 byte, subfields ...Subfield) Field {
	if ind1 == 0 {
		ind1 = Blank
	}
	if ind2 == 0 {
		ind2 = Blank
	}
	return Field{Tag: tag, Ind1: ind1, Ind2: ind2, Subfields: subfields}
}

// IsControlTag reports whether tag names a control field, i.e. is a numeric
// tag below 010. This is the sole discriminator between the two field
// variants, matching the MARC convention that 001-009 are control fields.
func IsControlTag(tag string) bool {
	n, err := strconv.Atoi(tag)
	if err != nil {
		return false
	}
	return n < 10
}

// IsControl reports whether the field is a control field.
func (f Field) IsControl() bool {
	return IsControlTag(f.Tag)
}

// Subfield returns the value of the first subfield with the given code.
func (f Field) Subfield(code byte) (string, bool) {
	for _, sf := range f.Subfields {
		if sf.Code == code {
			return sf.Value, true
		}
	}
	return "", false
}

// SubfieldValues returns the values of all subfields matching any of the
// given codes, in stored order. With no codes it returns every value.
func (f Field) SubfieldValues(codes ...byte) []string {
	var values []string
	for _, sf := range f.Subfields {
		if len(codes) == 0 {
			values = append(values, sf.Value)
			continue
		}
		for _, c := range codes {
			if sf.Code == c {
				values = append(values, sf.Value)
				break
			}
		}
	}
	return values
}

// Equal reports structural equality: same tag, same variant payload, same
// subfield sequence.
func (f Field) Equal(o Field) bool {
	if f.Tag != o.Tag || f.Data != o.Data {
		return false
	}
	if f.Ind1 != o.Ind1 || f.Ind2 != o.Ind2 {
		return false
	}
	if len(f.Subfields) != len(o.Subfields) {
		return false
	}
	for i := range f.Subfields {
		if f.Subfields[i] != o.Subfields[i] {
			return false
		}
	}
	return true
}

// String renders the field in MRK-style notation for logs and error messages.
func (f Field) String() string {
	var b strings.Builder
	b.WriteByte('=')
	b.WriteString(f.Tag)
	b.WriteString("  ")
	if f.IsControl() {
		b.WriteString(f.Data)
		return b.String()
	}
	b.WriteByte(displayIndicator(f.Ind1))
	b.WriteByte(displayIndicator(f.Ind2))
	for _, sf := range f.Subfields {
		b.WriteByte('$')
		b.WriteByte(sf.Code)
		b.WriteString(sf.Value)
	}
	return b.String()
}

func displayIndicator(ind byte) byte {
	if ind == 0 || ind == Blank {
		return '\\'
	}
	return ind
}
