package main

import (
	"github.com/marckit/marckit/cmd"

	// Register format plugins
	_ "github.com/marckit/marckit/format/iso2709"
	_ "github.com/marckit/marckit/format/mrk"
)

func main() {
	cmd.Execute()
}
