package marc

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Field008Length is the fixed width of an 008 control field body for books.
const Field008Length = 40

// ErrInvalidInput signals that a caller-supplied 008 component fails its
// positional constraint. Silently padding a bad required component would
// corrupt a positionally-addressed format, so these are hard failures.
var ErrInvalidInput = errors.New("invalid 008 input")

var dateEnteredRegex = regexp.MustCompile(`^\d{6}$`)

// Field008 holds the named components of an 008 fixed-length data elements
// field (books). Zero values take the documented defaults when built.
type Field008 struct {
	DateEntered      string // positions 00-05, YYMMDD, required
	TypeOfDate       string // position 06, defaults to "s"
	Date1            string // positions 07-10, exactly 4 characters, required ("u" placeholders allowed)
	Date2            string // positions 11-14
	Country          string // positions 15-17, place-of-publication code
	Illustrations    string // positions 18-21, up to 4 one-letter codes
	ModifiedRecord   string // position 28
	HasIndex         string // position 31, "0" or "1", anything else forced to "0"
	CatalogingSource string // position 32, defaults to "a"
	LiteraryForm     string // position 33
	Biography        string // position 34
	Language         string // positions 35-37
}

// Pad right-pads s with spaces to width n, truncating first when s is longer.
// This truncate-then-pad discipline is what keeps every fixed-width slot at
// its exact position.
func Pad(s string, n int) string {
	if len(s) > n {
		s = s[:n]
	}
	return s + strings.Repeat(" ", n-len(s))
}

// Build assembles the 40-character 008 body. It fails with ErrInvalidInput
// when DateEntered is not exactly six digits or Date1 is not exactly four
// characters.
func (f Field008) Build() (string, error) {
	if !dateEnteredRegex.MatchString(f.DateEntered) {
		return "", fmt.Errorf("%w: date entered %q must be six digits (YYMMDD)", ErrInvalidInput, f.DateEntered)
	}
	if len(f.Date1) != 4 {
		return "", fmt.Errorf("%w: date 1 %q must be four characters", ErrInvalidInput, f.Date1)
	}

	typeOfDate := f.TypeOfDate
	if typeOfDate == "" {
		typeOfDate = "s"
	}
	catSrc := f.CatalogingSource
	if catSrc == "" {
		catSrc = "a"
	}
	hasIndex := f.HasIndex
	if hasIndex != "0" && hasIndex != "1" {
		hasIndex = "0"
	}

	body := strings.Join([]string{
		f.DateEntered,            // 00-05
		Pad(typeOfDate, 1),       // 06
		f.Date1,                  // 07-10
		Pad(f.Date2, 4),          // 11-14
		Pad(f.Country, 3),        // 15-17
		Pad(f.Illustrations, 4),  // 18-21
		strings.Repeat(" ", 6),   // 22-27
		Pad(f.ModifiedRecord, 1), // 28
		"0",                      // 29 conference publication
		"0",                      // 30 festschrift
		hasIndex,                 // 31
		Pad(catSrc, 1),           // 32
		Pad(f.LiteraryForm, 1),   // 33
		Pad(f.Biography, 1),      // 34
		Pad(f.Language, 3),       // 35-37
		strings.Repeat(" ", 2),   // 38-39
	}, "")

	// Unreachable given the padding above; a failure here is a bug in this
	// function, not bad input.
	if len(body) != Field008Length {
		return "", fmt.Errorf("008 body is %d characters, want %d", len(body), Field008Length)
	}
	return body, nil
}

// ParseField008 decodes a 40-character 008 body back into its components.
// Multi-character slots are right-trimmed; single-character slots keep their
// exact byte so Build round-trips the body unchanged.
func ParseField008(body string) (Field008, error) {
	if len(body) != Field008Length {
		return Field008{}, fmt.Errorf("%w: body is %d characters, want %d", ErrInvalidInput, len(body), Field008Length)
	}
	if !dateEnteredRegex.MatchString(body[0:6]) {
		return Field008{}, fmt.Errorf("%w: positions 00-05 %q are not six digits", ErrInvalidInput, body[0:6])
	}
	return Field008{
		DateEntered:      body[0:6],
		TypeOfDate:       body[6:7],
		Date1:            body[7:11],
		Date2:            strings.TrimRight(body[11:15], " "),
		Country:          strings.TrimRight(body[15:18], " "),
		Illustrations:    strings.TrimRight(body[18:22], " "),
		ModifiedRecord:   body[28:29],
		HasIndex:         body[31:32],
		CatalogingSource: body[32:33],
		LiteraryForm:     body[33:34],
		Biography:        body[34:35],
		Language:         strings.TrimRight(body[35:38], " "),
	}, nil
}
