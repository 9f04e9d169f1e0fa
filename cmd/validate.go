package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/marckit/marckit/format"
	"github.com/marckit/marckit/marc"
)

var (
	validateInput     string
	validateStrict    bool
	validateVerbose   bool
	validateRequireCN bool
)

var validateCmd = &cobra.Command{
	Use:   "validate <format>",
	Short: "Validate records without converting",
	Long: `Validate MARC records by parsing them and checking structural invariants:
tag shape, the control/data field split, field contents, and 008 codes
against the embedded KORMARC code tables.

Arguments:
  format  Input format (mrk, mrc)

Input defaults to stdin.

Examples:
  marckit validate mrk -i record.mrk
  marckit validate mrc -i export.mrc --verbose
  cat record.mrk | marckit validate mrk --strict`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringVarP(&validateInput, "input", "i", "", "Input file (default: stdin)")
	validateCmd.Flags().BoolVar(&validateStrict, "strict", false, "Treat warnings as failures")
	validateCmd.Flags().BoolVarP(&validateVerbose, "verbose", "v", false, "Show detailed information")
	validateCmd.Flags().BoolVar(&validateRequireCN, "require-control-number", false, "Require a 001 field on every record")
}

func runValidate(cmd *cobra.Command, args []string) (err error) {
	fromFormat := args[0]

	// Determine input source
	var input io.Reader
	var inputName string

	if validateInput != "" {
		f, openErr := os.Open(validateInput)
		if openErr != nil {
			return fmt.Errorf("opening input file: %w", openErr)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("closing input file: %w", cerr)
			}
		}()
		input = f
		inputName = validateInput
	} else {
		input = os.Stdin
		inputName = "stdin"
	}

	parser, err := format.GetParser(fromFormat)
	if err != nil {
		return fmt.Errorf("unknown format %q: %w", fromFormat, err)
	}

	parseOpts := &format.ParseOptions{
		Strict:     true,
		SourceName: inputName,
	}
	records, err := parser.Parse(input, parseOpts)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	opts := marc.DefaultValidationOptions()
	opts.RequireControlNumber = validateRequireCN

	errorCount, warningCount := 0, 0
	for i, rec := range records {
		result := marc.Validate(rec, opts)
		errorCount += len(result.Errors)
		warningCount += len(result.Warnings)

		for _, e := range result.Errors {
			fmt.Printf("record %d: error: %s [%s]\n", i+1, e.Error(), e.Code)
		}
		for _, w := range result.Warnings {
			fmt.Printf("record %d: warning: %s [%s]\n", i+1, w.Error(), w.Code)
		}

		if validateVerbose {
			fmt.Printf("\n  Record %d:\n", i+1)
			fmt.Printf("    Control number: %s\n", rec.ControlNum())
			fmt.Printf("    Title: %s\n", truncate(rec.Title(), 60))
			fmt.Printf("    Fields: %d\n", len(rec.Fields))
		}
	}

	if errorCount > 0 {
		return fmt.Errorf("%d records: %d errors, %d warnings", len(records), errorCount, warningCount)
	}
	if validateStrict && warningCount > 0 {
		return fmt.Errorf("%d records: %d warnings (strict)", len(records), warningCount)
	}
	fmt.Printf("✓ Valid: %d records from %s (%d warnings)\n", len(records), inputName, warningCount)
	return nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
