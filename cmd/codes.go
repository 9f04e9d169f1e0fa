package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/marckit/marckit/codes"
)

var codesCmd = &cobra.Command{
	Use:   "codes [table] [code]",
	Short: "Inspect the embedded KORMARC code tables",
	Long: `List the embedded code tables (countries, languages, relators), dump one
table, or look up a single code.

Examples:
  marckit codes
  marckit codes languages
  marckit codes countries ko`,
	Args: cobra.MaximumNArgs(2),
	RunE: runCodes,
}

func runCodes(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		fmt.Println("Available code tables:")
		for _, name := range codes.Tables() {
			fmt.Printf("  %s\n", name)
		}
		return nil
	}

	table, err := codes.Get(args[0])
	if err != nil {
		return err
	}

	if len(args) == 2 {
		entry, ok := table.Lookup(args[1])
		if !ok {
			return fmt.Errorf("code %q not found in table %s", strings.TrimRight(args[1], " "), args[0])
		}
		fmt.Printf("%s  %s\n", entry.Code, entry.Label)
		return nil
	}

	fmt.Printf("%-5s %s\n", "Code", "Label")
	fmt.Printf("%-5s %s\n", "----", "-----")
	for _, entry := range table.Entries() {
		fmt.Printf("%-5s %s\n", entry.Code, entry.Label)
	}
	return nil
}
