// Package codes provides the KORMARC/MARC21 code tables the toolkit
// validates against: place-of-publication codes, language codes, and relator
// codes. Tables are embedded YAML so catalogers can read and extend them
// without touching Go code.
package codes

import (
	"embed"
	"fmt"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var embedded embed.FS

// Defaults mirror the fixed fallbacks used when a book gives no usable place
// or language information: published in Korea, in Korean.
const (
	DefaultCountry  = "ko "
	DefaultLanguage = "kor"
)

// Entry is one code-table row.
type Entry struct {
	Code  string `yaml:"code"`
	Label string `yaml:"label"`
}

// Table is a loaded code table.
type Table struct {
	Name    string
	entries map[string]Entry
}

var (
	loadOnce sync.Once
	loadErr  error
	tables   map[string]*Table
)

func load() {
	tables = make(map[string]*Table)
	names, err := embedded.ReadDir("data")
	if err != nil {
		loadErr = fmt.Errorf("reading embedded code tables: %w", err)
		return
	}
	for _, entry := range names {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}
		data, err := embedded.ReadFile("data/" + entry.Name())
		if err != nil {
			loadErr = fmt.Errorf("reading %s: %w", entry.Name(), err)
			return
		}
		var rows []Entry
		if err := yaml.Unmarshal(data, &rows); err != nil {
			loadErr = fmt.Errorf("parsing %s: %w", entry.Name(), err)
			return
		}
		t := &Table{
			Name:    strings.TrimSuffix(entry.Name(), ".yaml"),
			entries: make(map[string]Entry, len(rows)),
		}
		for _, row := range rows {
			t.entries[row.Code] = row
		}
		tables[t.Name] = t
	}
}

// Get returns a table by name ("countries", "languages", "relators").
func Get(name string) (*Table, error) {
	loadOnce.Do(load)
	if loadErr != nil {
		return nil, loadErr
	}
	t, ok := tables[name]
	if !ok {
		return nil, fmt.Errorf("unknown code table: %s", name)
	}
	return t, nil
}

// Tables returns the names of all embedded tables, sorted.
func Tables() []string {
	loadOnce.Do(load)
	names := make([]string, 0, len(tables))
	for name := range tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the entry for a code. Codes are matched with trailing
// blanks stripped, since fixed-width 008 slots pad short codes.
func (t *Table) Lookup(code string) (Entry, bool) {
	e, ok := t.entries[strings.TrimRight(code, " ")]
	return e, ok
}

// Entries returns all rows sorted by code.
func (t *Table) Entries() []Entry {
	out := make([]Entry, 0, len(t.entries))
	for _, e := range t.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// Country looks up a place-of-publication code.
func Country(code string) (Entry, bool) {
	t, err := Get("countries")
	if err != nil {
		return Entry{}, false
	}
	return t.Lookup(code)
}

// Language looks up a language code.
func Language(code string) (Entry, bool) {
	t, err := Get("languages")
	if err != nil {
		return Entry{}, false
	}
	return t.Lookup(code)
}

// Relator looks up a relator code (the $4 / $e role vocabulary).
func Relator(code string) (Entry, bool) {
	t, err := Get("relators")
	if err != nil {
		return Entry{}, false
	}
	return t.Lookup(code)
}
