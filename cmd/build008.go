package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/marckit/marckit/format/mrk"
	"github.com/marckit/marckit/marc"
)

var (
	f008DateEntered    string
	f008TypeOfDate     string
	f008Date1          string
	f008Date2          string
	f008Country        string
	f008Illustrations  string
	f008ModifiedRecord string
	f008HasIndex       string
	f008CatSrc         string
	f008LitForm        string
	f008Bio            string
	f008Language       string
	f008AsMRK          bool
)

var build008Cmd = &cobra.Command{
	Use:   "build-008",
	Short: "Build a fixed-width 008 control field body",
	Long: `Build the 40-character 008 (fixed-length data elements) body for a book
record from named components. Country, language, and cataloging source
default to the configured values (marckit.yaml or MARCKIT_* env vars);
the date entered defaults to today.

Examples:
  marckit build-008 --date1 2024
  marckit build-008 --date1 2024 --illustrations a --index 1 --mrk
  marckit build-008 --date1 19uu --country ja --language jpn`,
	Args: cobra.NoArgs,
	RunE: runBuild008,
}

func init() {
	flags := build008Cmd.Flags()
	flags.StringVar(&f008DateEntered, "date-entered", "", "Date entered on file, YYMMDD (default: today)")
	flags.StringVar(&f008TypeOfDate, "type-of-date", "s", "Type of date code (position 06)")
	flags.StringVar(&f008Date1, "date1", "", "Publication year, 4 characters (u placeholders allowed)")
	flags.StringVar(&f008Date2, "date2", "", "Second date (positions 11-14)")
	flags.StringVar(&f008Country, "country", "", "Place-of-publication code (default: configured country)")
	flags.StringVar(&f008Illustrations, "illustrations", "", "Illustration codes, up to 4 characters")
	flags.StringVar(&f008ModifiedRecord, "modified-record", "", "Modified record code (position 28)")
	flags.StringVar(&f008HasIndex, "index", "0", "Index flag, 0 or 1 (position 31)")
	flags.StringVar(&f008CatSrc, "cataloging-source", "", "Cataloging source code (default: configured)")
	flags.StringVar(&f008LitForm, "literary-form", "", "Literary form code (position 33)")
	flags.StringVar(&f008Bio, "biography", "", "Biography code (position 34)")
	flags.StringVar(&f008Language, "language", "", "Language code (default: configured language)")
	flags.BoolVar(&f008AsMRK, "mrk", false, "Print a full =008 MRK line instead of the bare body")

	if err := build008Cmd.MarkFlagRequired("date1"); err != nil {
		panic(err)
	}
}

func runBuild008(cmd *cobra.Command, args []string) error {
	dateEntered := f008DateEntered
	if dateEntered == "" {
		dateEntered = time.Now().Format("060102")
	}
	country := f008Country
	if country == "" {
		country = viper.GetString("country")
	}
	language := f008Language
	if language == "" {
		language = viper.GetString("language")
	}
	catSrc := f008CatSrc
	if catSrc == "" {
		catSrc = viper.GetString("cataloging_source")
	}

	body, err := marc.Field008{
		DateEntered:      dateEntered,
		TypeOfDate:       f008TypeOfDate,
		Date1:            f008Date1,
		Date2:            f008Date2,
		Country:          country,
		Illustrations:    f008Illustrations,
		ModifiedRecord:   f008ModifiedRecord,
		HasIndex:         f008HasIndex,
		CatalogingSource: catSrc,
		LiteraryForm:     f008LitForm,
		Biography:        f008Bio,
		Language:         language,
	}.Build()
	if err != nil {
		return err
	}

	if f008AsMRK {
		fmt.Println(mrk.FieldLine(marc.NewControlField("008", body)))
		return nil
	}
	fmt.Println(body)
	return nil
}
