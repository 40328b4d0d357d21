// Package bib builds structured bibliographic records from mapped
// repository metadata. A record is assembled fresh per request and
// never persisted; every name and date field is either empty or fully
// structured, raw strings never survive into them.
package bib

import "strings"

// Person is a structured personal name.
//
// It is derived from a raw name string by a fixed heuristic: if the
// string contains a comma, the text before the first comma is the
// family name and the remainder is the given name; otherwise the final
// whitespace-delimited token is the family name and the rest is the
// given name. A single token is a family name with no given name.
// This split is lossy and only really works for some western European
// names; it is deliberately kept as a documented approximation rather
// than a general name parser.
type Person struct {
	Family string
	Given  string
}

// ParsePerson applies the name splitting heuristic. Blank input yields
// no Person.
func ParsePerson(raw string) (Person, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Person{}, false
	}

	if idx := strings.Index(raw, ","); idx >= 0 {
		return Person{
			Family: strings.TrimSpace(raw[:idx]),
			Given:  strings.TrimSpace(raw[idx+1:]),
		}, true
	}

	parts := strings.Fields(raw)
	if len(parts) == 1 {
		return Person{Family: parts[0]}, true
	}
	return Person{
		Family: parts[len(parts)-1],
		Given:  strings.Join(parts[:len(parts)-1], " "),
	}, true
}

// String renders the person in inverted "Family, Given" form.
func (p Person) String() string {
	if p.Given == "" {
		return p.Family
	}
	return p.Family + ", " + p.Given
}

// Record is an in-memory bibliographic aggregate using the CSL field
// vocabulary. Multi-valued name fields accumulate in encounter order.
type Record struct {
	Type string

	// Name fields
	Author            []Person
	Editor            []Person
	Translator        []Person
	Recipient         []Person
	Interviewer       []Person
	ContainerAuthor   []Person
	CollectionEditor  []Person
	Composer          []Person
	OriginalAuthor    []Person
	ReviewedAuthor    []Person
	Director          []Person
	EditorialDirector []Person
	Illustrator       []Person

	// Date fields
	Accessed     Date
	EventDate    Date
	Issued       Date
	OriginalDate Date
	Submitted    Date

	// Scalar fields
	Title                  string
	TitleShort             string
	Abstract               string
	Annote                 string
	Archive                string
	ArchiveLocation        string
	ArchivePlace           string
	Authority              string
	CallNumber             string
	ChapterNumber          string
	CitationNumber         string
	CitationLabel          string
	CollectionNumber       string
	CollectionTitle        string
	ContainerTitle         string
	ContainerTitleShort    string
	Dimensions             string
	DOI                    string
	Edition                string
	Event                  string
	EventPlace             string
	Genre                  string
	ISBN                   string
	ISSN                   string
	Issue                  string
	Jurisdiction           string
	Keyword                string
	Language               string
	Locator                string
	Medium                 string
	Number                 string
	NumberOfPages          string
	NumberOfVolumes        string
	OriginalPublisher      string
	OriginalPublisherPlace string
	OriginalTitle          string
	Page                   string
	PageFirst              string
	PageLast               string
	PMCID                  string
	PMID                   string
	Publisher              string
	PublisherPlace         string
	References             string
	Rights                 string
	Scale                  string
	Section                string
	Source                 string
	Status                 string
	URL                    string
	Version                string
	Volume                 string
	YearSuffix             string

	// Notes collects explicit note values and, in lenient mode,
	// values whose target field is not part of the vocabulary.
	Notes []string
}

// HasAuthors reports whether any author names were mapped.
func (r *Record) HasAuthors() bool {
	return len(r.Author) > 0
}

// PrimaryDate returns the most appropriate date for display.
func (r *Record) PrimaryDate() Date {
	for _, d := range []Date{r.Issued, r.Submitted, r.EventDate, r.OriginalDate, r.Accessed} {
		if !d.IsZero() {
			return d
		}
	}
	return Date{}
}

// Pages renders the page range, preferring the explicit range over the
// first/last pair.
func (r *Record) Pages() string {
	if r.Page != "" {
		return r.Page
	}
	if r.PageFirst != "" && r.PageLast != "" {
		return r.PageFirst + "-" + r.PageLast
	}
	return r.PageFirst
}
