// Package i18n holds the translated strings of the check dialog. Messages are
// looked up by stable keys, so a label can change without touching anything
// persisted under the same key.
package i18n

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Dialog string keys. Toggle labels use the toggle's persistence key.
const (
	Title         = "Title"
	FilesHeading  = "FilesHeading"
	OptionsHeader = "OptionsHeading"
	Jobs          = "Jobs"
	ChooseFolder  = "ChooseFolder"
	CopySelection = "CopySelection"
	CopyTree      = "CopyTree"
	Check         = "Check"
	Cancel        = "Cancel"
	NoSelection   = "NoSelection"
	Copied        = "Copied"
)

type entry struct {
	key, en, de string
}

var entries = []entry{
	{"ShowAll", "Show all errors", "Alle Fehler anzeigen"},
	{"CheckCodingStyle", "Check coding style", "Programmierstil prüfen"},
	{"ErrorsOnly", "Show only errors", "Nur Fehler anzeigen"},
	{"Verbose", "Verbose output", "Ausführliche Ausgabe"},
	{"Force", "Force checking on files that have \"too many\" configurations", "Dateien mit \"zu vielen\" Konfigurationen trotzdem prüfen"},
	{"XmlOutput", "Print the result in XML format", "Ergebnis im XML-Format ausgeben"},
	{"UnusedFunctions", "Check for unused functions", "Nach unbenutzten Funktionen suchen"},
	{"SecurityChecks", "Enable security checks", "Sicherheitsprüfungen aktivieren"},
	{"VclChecks", "Check VCL code", "VCL-Code prüfen"},

	{Title, "Select what to check", "Auswählen, was geprüft werden soll"},
	{FilesHeading, "Files and directories", "Dateien und Verzeichnisse"},
	{OptionsHeader, "Options", "Optionen"},
	{Jobs, "Number of threads", "Anzahl der Threads"},
	{ChooseFolder, "Choose folder", "Ordner wählen"},
	{CopySelection, "Copy selection", "Auswahl kopieren"},
	{CopyTree, "Copy tree", "Baum kopieren"},
	{Check, "Check", "Prüfen"},
	{Cancel, "Cancel", "Abbrechen"},
	{NoSelection, "Nothing selected", "Nichts ausgewählt"},
	{Copied, "Selection copied to clipboard", "Auswahl in die Zwischenablage kopiert"},
}

// supported lists the translated languages; the first one is the fallback.
var supported = []language.Tag{language.English, language.German}

var (
	cat     = newCatalog()
	matcher = language.NewMatcher(supported)
)

func newCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for _, e := range entries {
		for tag, msg := range map[language.Tag]string{language.English: e.en, language.German: e.de} {
			if err := b.SetString(tag, e.key, msg); err != nil {
				panic(fmt.Sprintf("i18n: register %q: %v", e.key, err))
			}
		}
	}
	return b
}

// Parse resolves a language name such as "de" or "en-GB". Unknown or
// malformed names give English.
func Parse(name string) language.Tag {
	tag, err := language.Parse(name)
	if err != nil {
		return language.English
	}
	return tag
}

// Translator returns translated strings for one language.
type Translator struct {
	tag     language.Tag
	printer *message.Printer
}

// New returns a Translator for the closest supported match of tag.
func New(tag language.Tag) *Translator {
	_, idx, _ := matcher.Match(tag)
	tag = supported[idx]
	return &Translator{tag: tag, printer: message.NewPrinter(tag, message.Catalog(cat))}
}

// Language returns the language the Translator resolved to.
func (t *Translator) Language() language.Tag {
	return t.tag
}

// T returns the message for key, or the key itself when none is registered.
func (t *Translator) T(key string) string {
	return t.printer.Sprintf(key)
}

// Labels returns the translation of every given key.
func (t *Translator) Labels(keys ...string) map[string]string {
	out := make(map[string]string, len(keys))
	for _, k := range keys {
		out[k] = t.T(k)
	}
	return out
}
