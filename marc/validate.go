package marc

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/marckit/marckit/codes"
)

// ValidationError represents a validation failure with context.
type ValidationError struct {
	Field   string // Field path (e.g., "fields[3](245)")
	Code    string // Error code (e.g., "bad_tag", "empty_field")
	Message string // Human-readable message
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationResult contains all validation errors for a record.
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationError // Non-fatal issues (e.g., unknown codes)
}

// IsValid returns true if there are no errors.
func (r *ValidationResult) IsValid() bool {
	return len(r.Errors) == 0
}

// HasWarnings returns true if there are warnings.
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// Error returns a combined error message, or nil if valid.
func (r *ValidationResult) Error() error {
	if r.IsValid() {
		return nil
	}
	var msgs []string
	for _, e := range r.Errors {
		msgs = append(msgs, e.Error())
	}
	return fmt.Errorf("validation failed: %s", strings.Join(msgs, "; "))
}

func (r *ValidationResult) addError(field, code, message string) {
	r.Errors = append(r.Errors, ValidationError{Field: field, Code: code, Message: message})
}

func (r *ValidationResult) addWarning(field, code, message string) {
	r.Warnings = append(r.Warnings, ValidationError{Field: field, Code: code, Message: message})
}

// ValidationOptions configures validation behavior.
type ValidationOptions struct {
	// RequireTitle requires a 245 field with a $a subfield
	RequireTitle bool
	// RequireControlNumber requires a non-empty 001 field
	RequireControlNumber bool
	// ValidateCodes checks 008 country/language and contributor relator
	// codes against the embedded code tables (warnings only)
	ValidateCodes bool
}

// DefaultValidationOptions returns standard validation options.
func DefaultValidationOptions() ValidationOptions {
	return ValidationOptions{
		RequireTitle:  true,
		ValidateCodes: true,
	}
}

var (
	tagRegex       = regexp.MustCompile(`^\d{3}$`)
	indicatorRegex = regexp.MustCompile(`^[ 0-9a-z]$`)
)

// Validate checks a record's structural invariants: tag shape, the
// control/data variant split, non-empty data fields, leader and 008 widths,
// and optionally code-table membership.
func Validate(rec *Record, opts ValidationOptions) *ValidationResult {
	result := &ValidationResult{}

	if rec.Leader != "" && len(rec.Leader) != LeaderLength {
		result.addWarning("leader", "bad_length",
			fmt.Sprintf("leader is %d characters, want %d", len(rec.Leader), LeaderLength))
	}

	for i, f := range rec.Fields {
		path := fmt.Sprintf("fields[%d](%s)", i, f.Tag)

		if !tagRegex.MatchString(f.Tag) {
			result.addError(path, "bad_tag", fmt.Sprintf("tag %q is not three digits", f.Tag))
			continue
		}

		if f.IsControl() {
			validateControlField(result, path, f, opts)
			continue
		}
		validateDataField(result, path, f, opts)
	}

	if opts.RequireTitle && rec.Title() == "" {
		result.addError("fields", "missing_title", "no 245 field with a $a subfield")
	}
	if opts.RequireControlNumber && rec.ControlNum() == "" {
		result.addError("fields", "missing_control_number", "no 001 field")
	}

	return result
}

func validateControlField(result *ValidationResult, path string, f Field, opts ValidationOptions) {
	if len(f.Subfields) > 0 || f.Ind1 != 0 || f.Ind2 != 0 {
		result.addError(path, "mixed_variant", "control field carries indicators or subfields")
	}
	if f.Data == "" {
		result.addError(path, "empty_field", "control field has no data")
		return
	}
	if f.Tag != "008" {
		return
	}
	if len(f.Data) != Field008Length {
		result.addError(path, "bad_length",
			fmt.Sprintf("008 body is %d characters, want %d", len(f.Data), Field008Length))
		return
	}
	if !opts.ValidateCodes {
		return
	}
	parsed, err := ParseField008(f.Data)
	if err != nil {
		result.addWarning(path, "bad_008", err.Error())
		return
	}
	if parsed.Country != "" {
		if _, ok := codes.Country(parsed.Country); !ok {
			result.addWarning(path, "unknown_country",
				fmt.Sprintf("country code %q is not in the code table", parsed.Country))
		}
	}
	if parsed.Language != "" {
		if _, ok := codes.Language(parsed.Language); !ok {
			result.addWarning(path, "unknown_language",
				fmt.Sprintf("language code %q is not in the code table", parsed.Language))
		}
	}
}

func validateDataField(result *ValidationResult, path string, f Field, opts ValidationOptions) {
	if f.Data != "" {
		result.addError(path, "mixed_variant", "data field carries a bare data payload")
	}
	if len(f.Subfields) == 0 {
		result.addError(path, "empty_field", "data field has no subfields")
		return
	}
	if !indicatorRegex.MatchString(string(f.Ind1)) || !indicatorRegex.MatchString(string(f.Ind2)) {
		result.addWarning(path, "bad_indicator",
			fmt.Sprintf("indicators %q%q outside blank/digit/lowercase", f.Ind1, f.Ind2))
	}
	for j, sf := range f.Subfields {
		if sf.Value == "" {
			result.addError(fmt.Sprintf("%s$%c[%d]", path, sf.Code, j), "empty_subfield", "subfield has no value")
		}
	}

	if !opts.ValidateCodes {
		return
	}
	// Relator codes ride in $4 on name fields.
	switch f.Tag {
	case "100", "110", "700", "710":
		for _, v := range f.SubfieldValues('4') {
			if _, ok := codes.Relator(v); !ok {
				result.addWarning(path, "unknown_relator",
					fmt.Sprintf("relator code %q is not in the code table", v))
			}
		}
	}
}
