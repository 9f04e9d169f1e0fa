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
	inputFile  string
	outputFile string
	strict     bool
	assignIDs  bool
)

var convertCmd = &cobra.Command{
	Use:   "convert <from> <to>",
	Short: "Convert records between wire formats",
	Long: `Convert MARC records from one wire format to another.

Arguments:
  from    Source format (mrk, mrc)
  to      Target format (mrk, mrc)

Input defaults to stdin, output defaults to stdout.

Examples:
  # MRK transcription to binary MARC (stdin to stdout)
  cat record.mrk | marckit convert mrk mrc > record.mrc

  # Explicit input and output files
  marckit convert mrc mrk --input export.mrc --output export.mrk

  # Stamp records missing a 001 control number
  marckit convert mrk mrc -i record.mrk --assign-ids`,
	Args: cobra.ExactArgs(2),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVarP(&inputFile, "input", "i", "", "Input file (default: stdin)")
	convertCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default: stdout)")
	convertCmd.Flags().BoolVar(&strict, "strict", false, "Fail on malformed lines instead of skipping them")
	convertCmd.Flags().BoolVar(&assignIDs, "assign-ids", false, "Assign a control number (001) to records that lack one")
}

func runConvert(cmd *cobra.Command, args []string) (err error) {
	fromFormat := args[0]
	toFormat := args[1]

	// Determine input source
	var input io.Reader
	var inputName string

	if inputFile != "" {
		f, openErr := os.Open(inputFile)
		if openErr != nil {
			return fmt.Errorf("opening input file: %w", openErr)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("closing input file: %w", cerr)
			}
		}()
		input = f
		inputName = inputFile
	} else {
		input = os.Stdin
		inputName = "stdin"
	}

	// Determine output destination
	var output io.Writer
	if outputFile != "" {
		f, createErr := os.Create(outputFile)
		if createErr != nil {
			return fmt.Errorf("creating output file: %w", createErr)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("closing output file: %w", cerr)
			}
		}()
		output = f
	} else {
		output = os.Stdout
	}

	parser, err := format.GetParser(fromFormat)
	if err != nil {
		return fmt.Errorf("unknown source format %q: %w", fromFormat, err)
	}
	serializer, err := format.GetSerializer(toFormat)
	if err != nil {
		return fmt.Errorf("unknown target format %q: %w", toFormat, err)
	}

	parseOpts := &format.ParseOptions{
		Strict:     strict,
		SourceName: inputName,
	}
	records, err := parser.Parse(input, parseOpts)
	if err != nil {
		return fmt.Errorf("parsing input: %w", err)
	}

	if assignIDs {
		for _, rec := range records {
			marc.AssignControlNumber(rec)
		}
	}

	fmt.Fprintf(os.Stderr, "Parsed %d records\n", len(records))

	if err := serializer.Serialize(output, records, format.NewSerializeOptions()); err != nil {
		return fmt.Errorf("serializing output: %w", err)
	}

	return nil
}
