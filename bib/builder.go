package bib

import (
	"log/slog"

	"github.com/meridian-libraries/disseminate/bibmap"
	"github.com/meridian-libraries/disseminate/metadata"
)

// fieldKind tags a citation target with the parsing it needs.
type fieldKind int

const (
	kindScalar fieldKind = iota
	kindName
	kindDate
	kindType
)

// target binds a citation field name to its kind and setter. The table
// is declarative and built once; request processing only does map
// lookups, never a field-name conditional chain.
type target struct {
	kind    fieldKind
	setText func(*Record, string)
	addName func(*Record, Person)
	setDate func(*Record, Date)
}

var targets = map[string]target{
	"type": {kind: kindType},

	// Name fields accumulate in encounter order.
	"author":             {kind: kindName, addName: func(r *Record, p Person) { r.Author = append(r.Author, p) }},
	"editor":             {kind: kindName, addName: func(r *Record, p Person) { r.Editor = append(r.Editor, p) }},
	"translator":         {kind: kindName, addName: func(r *Record, p Person) { r.Translator = append(r.Translator, p) }},
	"recipient":          {kind: kindName, addName: func(r *Record, p Person) { r.Recipient = append(r.Recipient, p) }},
	"interviewer":        {kind: kindName, addName: func(r *Record, p Person) { r.Interviewer = append(r.Interviewer, p) }},
	"container-author":   {kind: kindName, addName: func(r *Record, p Person) { r.ContainerAuthor = append(r.ContainerAuthor, p) }},
	"collection-editor":  {kind: kindName, addName: func(r *Record, p Person) { r.CollectionEditor = append(r.CollectionEditor, p) }},
	"composer":           {kind: kindName, addName: func(r *Record, p Person) { r.Composer = append(r.Composer, p) }},
	"original-author":    {kind: kindName, addName: func(r *Record, p Person) { r.OriginalAuthor = append(r.OriginalAuthor, p) }},
	"reviewed-author":    {kind: kindName, addName: func(r *Record, p Person) { r.ReviewedAuthor = append(r.ReviewedAuthor, p) }},
	"director":           {kind: kindName, addName: func(r *Record, p Person) { r.Director = append(r.Director, p) }},
	"editorial-director": {kind: kindName, addName: func(r *Record, p Person) { r.EditorialDirector = append(r.EditorialDirector, p) }},
	"illustrator":        {kind: kindName, addName: func(r *Record, p Person) { r.Illustrator = append(r.Illustrator, p) }},

	// Date fields keep the latest parseable occurrence.
	"accessed":      {kind: kindDate, setDate: func(r *Record, d Date) { r.Accessed = d }},
	"event-date":    {kind: kindDate, setDate: func(r *Record, d Date) { r.EventDate = d }},
	"issued":        {kind: kindDate, setDate: func(r *Record, d Date) { r.Issued = d }},
	"original-date": {kind: kindDate, setDate: func(r *Record, d Date) { r.OriginalDate = d }},
	"submitted":     {kind: kindDate, setDate: func(r *Record, d Date) { r.Submitted = d }},

	// Scalar fields; single-valued, the latest tuple wins.
	"title":                    {setText: func(r *Record, v string) { r.Title = v }},
	"title-short":              {setText: func(r *Record, v string) { r.TitleShort = v }},
	"abstract":                 {setText: func(r *Record, v string) { r.Abstract = v }},
	"annote":                   {setText: func(r *Record, v string) { r.Annote = v }},
	"archive":                  {setText: func(r *Record, v string) { r.Archive = v }},
	"archive-location":         {setText: func(r *Record, v string) { r.ArchiveLocation = v }},
	"archive-place":            {setText: func(r *Record, v string) { r.ArchivePlace = v }},
	"authority":                {setText: func(r *Record, v string) { r.Authority = v }},
	"call-number":              {setText: func(r *Record, v string) { r.CallNumber = v }},
	"chapter-number":           {setText: func(r *Record, v string) { r.ChapterNumber = v }},
	"citation-number":          {setText: func(r *Record, v string) { r.CitationNumber = v }},
	"citation-label":           {setText: func(r *Record, v string) { r.CitationLabel = v }},
	"collection-number":        {setText: func(r *Record, v string) { r.CollectionNumber = v }},
	"collection-title":         {setText: func(r *Record, v string) { r.CollectionTitle = v }},
	"container-title":          {setText: func(r *Record, v string) { r.ContainerTitle = v }},
	"container-title-short":    {setText: func(r *Record, v string) { r.ContainerTitleShort = v }},
	"dimensions":               {setText: func(r *Record, v string) { r.Dimensions = v }},
	"doi":                      {setText: func(r *Record, v string) { r.DOI = v }},
	"edition":                  {setText: func(r *Record, v string) { r.Edition = v }},
	"event":                    {setText: func(r *Record, v string) { r.Event = v }},
	"event-place":              {setText: func(r *Record, v string) { r.EventPlace = v }},
	"genre":                    {setText: func(r *Record, v string) { r.Genre = v }},
	"isbn":                     {setText: func(r *Record, v string) { r.ISBN = v }},
	"issn":                     {setText: func(r *Record, v string) { r.ISSN = v }},
	"issue":                    {setText: func(r *Record, v string) { r.Issue = v }},
	"jurisdiction":             {setText: func(r *Record, v string) { r.Jurisdiction = v }},
	"keyword":                  {setText: func(r *Record, v string) { r.Keyword = v }},
	"language":                 {setText: func(r *Record, v string) { r.Language = v }},
	"locator":                  {setText: func(r *Record, v string) { r.Locator = v }},
	"medium":                   {setText: func(r *Record, v string) { r.Medium = v }},
	"number":                   {setText: func(r *Record, v string) { r.Number = v }},
	"number-of-pages":          {setText: func(r *Record, v string) { r.NumberOfPages = v }},
	"number-of-volumes":        {setText: func(r *Record, v string) { r.NumberOfVolumes = v }},
	"original-publisher":       {setText: func(r *Record, v string) { r.OriginalPublisher = v }},
	"original-publisher-place": {setText: func(r *Record, v string) { r.OriginalPublisherPlace = v }},
	"original-title":           {setText: func(r *Record, v string) { r.OriginalTitle = v }},
	"page":                     {setText: func(r *Record, v string) { r.Page = v }},
	"page-first":               {setText: func(r *Record, v string) { r.PageFirst = v }},
	"page-last":                {setText: func(r *Record, v string) { r.PageLast = v }},
	"pmcid":                    {setText: func(r *Record, v string) { r.PMCID = v }},
	"pmid":                     {setText: func(r *Record, v string) { r.PMID = v }},
	"publisher":                {setText: func(r *Record, v string) { r.Publisher = v }},
	"publisher-place":          {setText: func(r *Record, v string) { r.PublisherPlace = v }},
	"references":               {setText: func(r *Record, v string) { r.References = v }},
	"rights":                   {setText: func(r *Record, v string) { r.Rights = v }},
	"scale":                    {setText: func(r *Record, v string) { r.Scale = v }},
	"section":                  {setText: func(r *Record, v string) { r.Section = v }},
	"source":                   {setText: func(r *Record, v string) { r.Source = v }},
	"status":                   {setText: func(r *Record, v string) { r.Status = v }},
	"url":                      {setText: func(r *Record, v string) { r.URL = v }},
	"version":                  {setText: func(r *Record, v string) { r.Version = v }},
	"volume":                   {setText: func(r *Record, v string) { r.Volume = v }},
	"year-suffix":              {setText: func(r *Record, v string) { r.YearSuffix = v }},

	"note": {setText: func(r *Record, v string) { r.Notes = append(r.Notes, v) }},
}

// Builder assembles a Record from metadata tuples as they are mapped.
// It is request-scoped and not safe for concurrent use.
type Builder struct {
	profile *bibmap.Profile
	rec     *Record
}

// NewBuilder creates a builder using the given citation profile.
func NewBuilder(profile *bibmap.Profile) *Builder {
	return &Builder{
		profile: profile,
		rec:     &Record{},
	}
}

// Add maps one tuple into the record. Mapping gaps degrade, they never
// fail: an unmapped field or unknown target folds into the note field,
// an unmapped document type substitutes the configured default, a
// blank name or unparseable date skips that occurrence.
func (b *Builder) Add(t metadata.Tuple) {
	targetName, ok := b.profile.Target(t.FieldName())
	if !ok {
		// Lenient mode: unmapped metadata survives as a note rather
		// than disappearing from the bibliography.
		if t.Value != "" {
			b.rec.Notes = append(b.rec.Notes, t.Value)
		}
		return
	}

	tgt, known := targets[targetName]
	if !known {
		slog.Warn("unknown citation target, folding into note",
			"field", t.FieldName(), "target", targetName)
		if t.Value != "" {
			b.rec.Notes = append(b.rec.Notes, t.Value)
		}
		return
	}

	switch tgt.kind {
	case kindType:
		workType, mapped := b.profile.WorkType(t.Value)
		if !mapped {
			workType = b.profile.FallbackType()
			slog.Warn("no work type mapping, using default",
				"type", t.Value, "default", workType)
		}
		b.rec.Type = workType
	case kindName:
		if p, ok := ParsePerson(t.Value); ok {
			tgt.addName(b.rec, p)
		}
	case kindDate:
		if d, ok := ParseDate(t.Value); ok {
			tgt.setDate(b.rec, d)
		}
	default:
		tgt.setText(b.rec, t.Value)
	}
}

// Record returns the assembled record. The record defaults to the
// profile's fallback work type when no type field was mapped.
func (b *Builder) Record() *Record {
	if b.rec.Type == "" {
		b.rec.Type = b.profile.FallbackType()
	}
	return b.rec
}

// BuildRecord maps every tuple of an item into a fresh record.
func BuildRecord(item *metadata.Item, profile *bibmap.Profile) *Record {
	b := NewBuilder(profile)
	for _, t := range item.Values {
		b.Add(t)
	}
	return b.Record()
}
