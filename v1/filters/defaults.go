package filters

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Names of the built-in filters.
const (
	Institution      = "institution"
	Polarity         = "polarity"
	IonisationSource = "ionisationSource"
	AnalyzerType     = "analyzerType"
	Organism         = "organism"
	OrganismPart     = "organismPart"
	Condition        = "condition"
	MaldiMatrix      = "maldiMatrix"
)

// DefaultDefinitions returns the built-in filters in registration order.
func DefaultDefinitions() []Definition {
	return []Definition{
		{Name: Institution, Path: []string{"Submitted_By", "Institution"}, Kind: Exact},
		{Name: Polarity, Path: []string{"MS_Analysis", "Polarity"}, Kind: Phrase, Preprocess: Capitalize},
		{Name: IonisationSource, Path: []string{"MS_Analysis", "Ionisation_Source"}, Kind: Phrase},
		{Name: AnalyzerType, Path: []string{"MS_Analysis", "Analyzer"}, Kind: Exact},
		{Name: Organism, Path: []string{"Sample_Information", "Organism"}, Kind: Exact},
		{Name: OrganismPart, Path: []string{"Sample_Information", "Organism_Part"}, Kind: Exact},
		{Name: Condition, Path: []string{"Sample_Information", "Condition"}, Kind: Exact},
		{Name: MaldiMatrix, Path: []string{"Sample_Preparation", "MALDI_Matrix"}, Kind: Exact},
	}
}

// Default returns a sealed registry holding DefaultDefinitions.
func Default() *Registry {
	r, err := NewRegistry(DefaultDefinitions()...)
	if err != nil {
		panic(err)
	}
	return r.Seal()
}

// Capitalize upper-cases the first letter and lower-cases the rest,
// e.g. "POSITIVE" -> "Positive".
func Capitalize(s string) string {
	first, size := utf8.DecodeRuneInString(s)
	if first == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(first)) + strings.ToLower(s[size:])
}
