package iso2709

import (
	"bytes"
	"fmt"
	"strconv"
	"testing"

	"github.com/marckit/marckit/format"
	"github.com/marckit/marckit/marc"
)

func testRecord() *marc.Record {
	rec := marc.NewRecord()
	rec.Append(
		marc.NewControlField("001", "KMO202400001"),
		marc.NewControlField("008", "241231s2024    ko a          001a  kor  "),
		marc.NewDataField("100", '1', ' ', marc.Subfield{Code: 'a', Value: "정약용"}),
		marc.NewDataField("245", '1', '0',
			marc.Subfield{Code: 'a', Value: "목민심서 :"},
			marc.Subfield{Code: 'b', Value: "목민관의 책무"},
			marc.Subfield{Code: 'c', Value: "정약용 지음"}),
	)
	return rec
}

func TestEncodeRecordLayout(t *testing.T) {
	raw, err := EncodeRecord(testRecord())
	if err != nil {
		t.Fatalf("EncodeRecord failed: %v", err)
	}

	if raw[len(raw)-1] != recordTerminator {
		t.Error("record does not end with the record terminator")
	}

	total, err := strconv.Atoi(string(raw[0:5]))
	if err != nil || total != len(raw) {
		t.Errorf("leader length %q, record is %d bytes", raw[0:5], len(raw))
	}

	base, err := strconv.Atoi(string(raw[12:17]))
	if err != nil {
		t.Fatalf("bad base address %q", raw[12:17])
	}
	// Leader + 4 directory entries + directory terminator.
	if want := leaderLength + 4*dirEntryLen + 1; base != want {
		t.Errorf("base address = %d, want %d", base, want)
	}
	if raw[base-1] != fieldTerminator {
		t.Error("directory does not end with a field terminator")
	}

	if string(raw[24:27]) != "001" {
		t.Errorf("first directory tag = %q, want 001", raw[24:27])
	}
	if string(raw[10:12]) != "22" || string(raw[20:24]) != "4500" {
		t.Errorf("leader constants wrong: %q %q", raw[10:12], raw[20:24])
	}
}

func TestRecordRoundTrip(t *testing.T) {
	original := testRecord()

	raw, err := EncodeRecord(original)
	if err != nil {
		t.Fatalf("EncodeRecord failed: %v", err)
	}
	decoded, err := DecodeRecord(raw[:len(raw)-1])
	if err != nil {
		t.Fatalf("DecodeRecord failed: %v", err)
	}

	if len(decoded.Fields) != len(original.Fields) {
		t.Fatalf("got %d fields, want %d", len(decoded.Fields), len(original.Fields))
	}
	for i, f := range decoded.Fields {
		if !f.Equal(original.Fields[i]) {
			t.Errorf("field %d changed: %v vs %v", i, f, original.Fields[i])
		}
	}
}

func TestSerializeParseStream(t *testing.T) {
	records := []*marc.Record{testRecord(), testRecord()}

	var buf bytes.Buffer
	f := &Format{}
	if err := f.Serialize(&buf, records, nil); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	parsed, err := f.Parse(&buf, format.NewParseOptions())
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(parsed) != 2 {
		t.Fatalf("got %d records, want 2", len(parsed))
	}
	for _, rec := range parsed {
		if cn := rec.ControlNum(); cn != "KMO202400001" {
			t.Errorf("control number = %q", cn)
		}
		if title := rec.Title(); title != "목민심서 :" {
			t.Errorf("title = %q", title)
		}
	}
}

func TestDecodeRecordErrors(t *testing.T) {
	good, err := EncodeRecord(testRecord())
	if err != nil {
		t.Fatalf("EncodeRecord failed: %v", err)
	}
	good = good[:len(good)-1]

	tests := []struct {
		name string
		raw  []byte
	}{
		{"shorter than a leader", []byte("00021")},
		{"bad base address", append([]byte("00100nam a22xxxxx a 4500"), good[24:]...)},
		{"truncated directory", good[:leaderLength+5]},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeRecord(tt.raw); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestEncodeRecordOversizedField(t *testing.T) {
	var big bytes.Buffer
	for i := 0; i < 1200; i++ {
		fmt.Fprintf(&big, "note %d; ", i)
	}
	rec := marc.NewRecord()
	rec.Append(
		marc.NewDataField("245", '1', '0', marc.Subfield{Code: 'a', Value: "Title"}),
		marc.NewDataField("500", ' ', ' ', marc.Subfield{Code: 'a', Value: big.String()}),
	)

	if _, err := EncodeRecord(rec); err == nil {
		t.Error("expected an error for a field over the directory limit")
	}
}

func TestCanParse(t *testing.T) {
	f := &Format{}
	raw, err := EncodeRecord(testRecord())
	if err != nil {
		t.Fatalf("EncodeRecord failed: %v", err)
	}
	if !f.CanParse(raw) {
		t.Error("should detect binary MARC")
	}
	if f.CanParse([]byte("=LDR  00000nam a2200000 a 4500")) {
		t.Error("should not detect MRK text")
	}
	if f.CanParse([]byte("0001")) {
		t.Error("should not detect a short prefix")
	}
}
