package marc

import (
	"strings"

	"github.com/segmentio/ksuid"
)

// LeaderLength is the fixed length of a MARC record leader.
const LeaderLength = 24

// DefaultLeader is the leader used for freshly minted book records when the
// caller supplies none. Length and base-address digits are recomputed by the
// binary serializer.
const DefaultLeader = "00000nam a2200000 a 4500"

// Record is an ordered sequence of fields plus a leader. Fields keep the
// order callers append them in; no tag-based deduplication or re-sorting is
// performed.
type Record struct {
	Leader string
	Fields []Field
}

// NewRecord creates an empty record with the default leader.
func NewRecord() *Record {
	return &Record{Leader: DefaultLeader}
}

// Append adds fields to the end of the record.
func (r *Record) Append(fields ...Field) {
	r.Fields = append(r.Fields, fields...)
}

// ControlFields returns all control fields matching any of the given tags,
// in stored order.
func (r *Record) ControlFields(tags ...string) []Field {
	return r.selectFields(true, tags)
}

// DataFields returns all data fields matching any of the given tags, in
// stored order.
func (r *Record) DataFields(tags ...string) []Field {
	return r.selectFields(false, tags)
}

func (r *Record) selectFields(control bool, tags []string) []Field {
	var out []Field
	for _, f := range r.Fields {
		if f.IsControl() != control {
			continue
		}
		for _, t := range tags {
			if f.Tag == t {
				out = append(out, f)
				break
			}
		}
	}
	return out
}

// ControlNum returns the record's control number (field 001), or the empty
// string when the record has none.
func (r *Record) ControlNum() string {
	for _, f := range r.Fields {
		if f.Tag == "001" {
			return strings.TrimSpace(f.Data)
		}
	}
	return ""
}

// Title returns the title proper (245 $a), or the empty string.
func (r *Record) Title() string {
	for _, f := range r.DataFields("245") {
		if v, ok := f.Subfield('a'); ok {
			return v
		}
	}
	return ""
}

// AssignControlNumber stamps a KSUID-based control number into field 001
// when the record lacks one, and returns the record's control number either
// way. The new field is inserted ahead of existing fields so control fields
// keep their conventional position.
func AssignControlNumber(r *Record) string {
	if cn := r.ControlNum(); cn != "" {
		return cn
	}
	cn := ksuid.New().String()
	r.Fields = append([]Field{NewControlField("001", cn)}, r.Fields...)
	return cn
}

// Equal reports structural equality of two records.
func (r *Record) Equal(o *Record) bool {
	if r.Leader != o.Leader || len(r.Fields) != len(o.Fields) {
		return false
	}
	for i := range r.Fields {
		if !r.Fields[i].Equal(o.Fields[i]) {
			return false
		}
	}
	return true
}
