// Package format defines the interface for record wire-format plugins.
package format

import (
	"io"

	"github.com/marckit/marckit/marc"
)

// Format defines the interface that all wire-format plugins must implement.
type Format interface {
	// Name returns the format identifier (e.g., "mrk", "mrc")
	Name() string

	// Description returns a human-readable format description
	Description() string

	// Extensions returns file extensions associated with this format
	Extensions() []string

	// CanParse returns true if this format can parse the given input
	CanParse(peek []byte) bool
}

// Parser is a format that can parse input into records.
type Parser interface {
	Format

	// Parse reads input and returns records.
	// Options is format-specific configuration.
	Parse(r io.Reader, opts *ParseOptions) ([]*marc.Record, error)
}

// Serializer is a format that can write records to output.
type Serializer interface {
	Format

	// Serialize writes records to the output.
	// Options is format-specific configuration.
	Serialize(w io.Writer, records []*marc.Record, opts *SerializeOptions) error
}

// ParseOptions contains options for parsing.
type ParseOptions struct {
	// Strict fails on malformed lines or fields instead of skipping them
	Strict bool

	// SourceName is an identifier for the source (for error messages)
	SourceName string
}

// SerializeOptions contains options for serialization.
type SerializeOptions struct {
	// RecordSeparator is emitted between records for line-oriented formats
	RecordSeparator string
}

// NewParseOptions creates ParseOptions with defaults.
func NewParseOptions() *ParseOptions {
	return &ParseOptions{
		SourceName: "input",
	}
}

// NewSerializeOptions creates SerializeOptions with defaults.
func NewSerializeOptions() *SerializeOptions {
	return &SerializeOptions{
		RecordSeparator: "\n",
	}
}
