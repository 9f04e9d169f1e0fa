package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/marckit/marckit/format"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List registered wire formats",
	RunE: func(cmd *cobra.Command, args []string) error {
		names := format.DefaultRegistry.List()
		if len(names) == 0 {
			fmt.Println("No formats registered")
			return nil
		}
		sort.Strings(names)

		fmt.Println("Registered formats:")
		for _, name := range names {
			f, _ := format.Get(name)
			caps := ""
			if _, ok := f.(format.Parser); ok {
				caps += "parse"
			}
			if _, ok := f.(format.Serializer); ok {
				if caps != "" {
					caps += ", "
				}
				caps += "serialize"
			}
			fmt.Printf("  %-5s %s (.%s) [%s]\n", name, f.Description(), strings.Join(f.Extensions(), ", ."), caps)
		}
		return nil
	},
}
