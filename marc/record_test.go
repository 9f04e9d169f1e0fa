package marc

import "testing"

func testRecord() *Record {
	rec := NewRecord()
	rec.Append(
		NewControlField("001", "KMO202400001"),
		NewControlField("008", "241231s2024    ko    a     001 a kor"),
		NewDataField("100", '1', ' ', Subfield{Code: 'a', Value: "정약용"}),
		NewDataField("245", '1', '0',
			Subfield{Code: 'a', Value: "목민심서"},
			Subfield{Code: 'c', Value: "정약용 지음"}),
		NewDataField("700", '1', ' ', Subfield{Code: 'a', Value: "박석무"}),
	)
	return rec
}

func TestRecordAccessors(t *testing.T) {
	rec := testRecord()

	if cn := rec.ControlNum(); cn != "KMO202400001" {
		t.Errorf("ControlNum() = %q", cn)
	}
	if title := rec.Title(); title != "목민심서" {
		t.Errorf("Title() = %q", title)
	}

	names := rec.DataFields("100", "700")
	if len(names) != 2 {
		t.Fatalf("DataFields(100, 700) returned %d fields", len(names))
	}
	if names[0].Tag != "100" || names[1].Tag != "700" {
		t.Errorf("DataFields order = %s, %s", names[0].Tag, names[1].Tag)
	}

	ctl := rec.ControlFields("008")
	if len(ctl) != 1 || len(ctl[0].Data) == 0 {
		t.Errorf("ControlFields(008) = %v", ctl)
	}

	// Tag selection respects the variant split.
	if got := rec.DataFields("001"); len(got) != 0 {
		t.Errorf("DataFields(001) = %v, want none", got)
	}
}

func TestAssignControlNumber(t *testing.T) {
	rec := NewRecord()
	rec.Append(NewDataField("245", '1', '0', Subfield{Code: 'a', Value: "Title"}))

	cn := AssignControlNumber(rec)
	if cn == "" {
		t.Fatal("expected a generated control number")
	}
	if rec.Fields[0].Tag != "001" || rec.Fields[0].Data != cn {
		t.Errorf("001 not inserted first: %v", rec.Fields[0])
	}

	// Idempotent: a second call keeps the existing number.
	if again := AssignControlNumber(rec); again != cn {
		t.Errorf("second call changed the control number: %q vs %q", again, cn)
	}
	if len(rec.Fields) != 2 {
		t.Errorf("record has %d fields, want 2", len(rec.Fields))
	}
}

func TestAssignControlNumberKeepsExisting(t *testing.T) {
	rec := testRecord()
	if cn := AssignControlNumber(rec); cn != "KMO202400001" {
		t.Errorf("AssignControlNumber() = %q, want the existing 001", cn)
	}
}

func TestRecordEqual(t *testing.T) {
	a, b := testRecord(), testRecord()
	if !a.Equal(b) {
		t.Error("identical records should be equal")
	}
	b.Append(NewDataField("653", ' ', ' ', Subfield{Code: 'a', Value: "조선시대"}))
	if a.Equal(b) {
		t.Error("records with different fields should not be equal")
	}
}
