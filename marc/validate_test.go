package marc

import (
	"strings"
	"testing"
)

func validTestRecord(t *testing.T) *Record {
	t.Helper()
	body, err := Field008{
		DateEntered: "241231",
		Date1:       "2024",
		Country:     "ko",
		Language:    "kor",
		HasIndex:    "1",
	}.Build()
	if err != nil {
		t.Fatalf("building 008: %v", err)
	}

	rec := NewRecord()
	rec.Append(
		NewControlField("001", "KMO202400001"),
		NewControlField("008", body),
		NewDataField("100", '1', ' ', Subfield{Code: 'a', Value: "정약용"}),
		NewDataField("245", '1', '0', Subfield{Code: 'a', Value: "목민심서"}),
	)
	return rec
}

func TestValidateCleanRecord(t *testing.T) {
	result := Validate(validTestRecord(t), DefaultValidationOptions())
	if !result.IsValid() {
		t.Errorf("expected a valid record, got errors: %v", result.Errors)
	}
	if result.HasWarnings() {
		t.Errorf("expected no warnings, got: %v", result.Warnings)
	}
	if result.Error() != nil {
		t.Errorf("Error() = %v, want nil", result.Error())
	}
}

func TestValidateStructuralErrors(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Record)
		wantCode string
	}{
		{
			"bad tag",
			func(r *Record) { r.Append(Field{Tag: "24x", Subfields: []Subfield{{Code: 'a', Value: "v"}}}) },
			"bad_tag",
		},
		{
			"control field with subfields",
			func(r *Record) {
				r.Append(Field{Tag: "007", Data: "ta", Subfields: []Subfield{{Code: 'a', Value: "v"}}})
			},
			"mixed_variant",
		},
		{
			"data field with bare data",
			func(r *Record) {
				r.Append(Field{Tag: "500", Ind1: ' ', Ind2: ' ', Data: "oops",
					Subfields: []Subfield{{Code: 'a', Value: "v"}}})
			},
			"mixed_variant",
		},
		{
			"empty control field",
			func(r *Record) { r.Append(NewControlField("003", "")) },
			"empty_field",
		},
		{
			"data field without subfields",
			func(r *Record) { r.Append(Field{Tag: "500", Ind1: ' ', Ind2: ' '}) },
			"empty_field",
		},
		{
			"empty subfield value",
			func(r *Record) { r.Append(NewDataField("500", ' ', ' ', Subfield{Code: 'a', Value: ""})) },
			"empty_subfield",
		},
		{
			"wrong 008 width",
			func(r *Record) { r.Fields[1] = NewControlField("008", "too short") },
			"bad_length",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := validTestRecord(t)
			tt.mutate(rec)
			result := Validate(rec, DefaultValidationOptions())
			if !hasCode(result.Errors, tt.wantCode) {
				t.Errorf("errors = %v, want code %q", result.Errors, tt.wantCode)
			}
		})
	}
}

func TestValidateMissingTitle(t *testing.T) {
	rec := NewRecord()
	rec.Append(NewControlField("001", "X"))
	result := Validate(rec, DefaultValidationOptions())
	if !hasCode(result.Errors, "missing_title") {
		t.Errorf("errors = %v, want missing_title", result.Errors)
	}

	opts := DefaultValidationOptions()
	opts.RequireTitle = false
	if result := Validate(rec, opts); !result.IsValid() {
		t.Errorf("without RequireTitle the record should pass, got %v", result.Errors)
	}
}

func TestValidateRequireControlNumber(t *testing.T) {
	rec := validTestRecord(t)
	rec.Fields = rec.Fields[1:] // drop the 001

	opts := DefaultValidationOptions()
	opts.RequireControlNumber = true
	result := Validate(rec, opts)
	if !hasCode(result.Errors, "missing_control_number") {
		t.Errorf("errors = %v, want missing_control_number", result.Errors)
	}
}

func TestValidateCodeWarnings(t *testing.T) {
	body, err := Field008{
		DateEntered: "241231",
		Date1:       "2024",
		Country:     "zz",
		Language:    "zzz",
	}.Build()
	if err != nil {
		t.Fatalf("building 008: %v", err)
	}

	rec := validTestRecord(t)
	rec.Fields[1] = NewControlField("008", body)
	rec.Append(NewDataField("700", '1', ' ',
		Subfield{Code: 'a', Value: "김철수"},
		Subfield{Code: '4', Value: "xyz"}))

	result := Validate(rec, DefaultValidationOptions())
	if !result.IsValid() {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	for _, code := range []string{"unknown_country", "unknown_language", "unknown_relator"} {
		if !hasCode(result.Warnings, code) {
			t.Errorf("warnings = %v, want code %q", result.Warnings, code)
		}
	}

	opts := DefaultValidationOptions()
	opts.ValidateCodes = false
	if result := Validate(rec, opts); result.HasWarnings() {
		t.Errorf("warnings with ValidateCodes off: %v", result.Warnings)
	}
}

func TestValidateLeaderWarning(t *testing.T) {
	rec := validTestRecord(t)
	rec.Leader = "short"
	result := Validate(rec, DefaultValidationOptions())
	if !hasCode(result.Warnings, "bad_length") {
		t.Errorf("warnings = %v, want leader bad_length", result.Warnings)
	}
}

func TestValidationResultError(t *testing.T) {
	result := &ValidationResult{}
	result.addError("fields[0](245)", "empty_field", "data field has no subfields")
	err := result.Error()
	if err == nil || !strings.Contains(err.Error(), "fields[0](245)") {
		t.Errorf("Error() = %v", err)
	}
}

func hasCode(issues []ValidationError, code string) bool {
	for _, issue := range issues {
		if issue.Code == code {
			return true
		}
	}
	return false
}
