package semanticscholar

// The response types below mirror the remote JSON schema. Every field is a
// pointer or slice because the API returns only the fields a request asked
// for; a nil value means the field was absent from the response. Values are
// passed through as received, with no normalization or validation.

// Paper is a single paper record.
type Paper struct {
	// PaperID is the Semantic Scholar unique identifier for the paper.
	PaperID *string `json:"paperId"`

	// CorpusID is the numeric corpus identifier.
	CorpusID *int64 `json:"corpusId"`

	// URL is the paper's page on semanticscholar.org.
	URL *string `json:"url"`

	// Title is the title of the paper.
	Title *string `json:"title"`

	// Abstract is the paper's abstract text.
	Abstract *string `json:"abstract"`

	// Venue is the publication venue name.
	Venue *string `json:"venue"`

	// PublicationVenue is the structured venue record.
	PublicationVenue *PublicationVenue `json:"publicationVenue"`

	// Year is the publication year.
	Year *int `json:"year"`

	// ReferenceCount is the number of references in this paper.
	ReferenceCount *int `json:"referenceCount"`

	// CitationCount is the number of citations this paper has received.
	CitationCount *int `json:"citationCount"`

	// InfluentialCitationCount is the number of influential citations.
	InfluentialCitationCount *int `json:"influentialCitationCount"`

	// IsOpenAccess indicates whether the paper is open access.
	IsOpenAccess *bool `json:"isOpenAccess"`

	// OpenAccessPDF describes the open-access PDF if one exists.
	OpenAccessPDF *OpenAccessPDF `json:"openAccessPdf"`

	// FieldsOfStudy is the plain list of discipline names.
	FieldsOfStudy []string `json:"fieldsOfStudy"`

	// S2FieldsOfStudy is the categorized discipline list.
	S2FieldsOfStudy []S2FieldOfStudy `json:"s2FieldsOfStudy"`

	// PublicationTypes lists the publication kinds (JournalArticle, Review, ...).
	PublicationTypes []string `json:"publicationTypes"`

	// PublicationDate is the full publication date in YYYY-MM-DD format.
	PublicationDate *string `json:"publicationDate"`

	// Journal contains journal-specific information.
	Journal *Journal `json:"journal"`

	// CitationStyles carries preformatted citation strings.
	CitationStyles *CitationStyles `json:"citationStyles"`

	// ExternalIDs contains external identifiers (DOI, ArXiv, PubMed, ...).
	ExternalIDs *ExternalIDs `json:"externalIds"`

	// Authors is the list of paper authors.
	Authors []Author `json:"authors"`

	// Citations lists papers citing this one, when requested as a nested field.
	Citations []Paper `json:"citations"`

	// References lists papers cited by this one, when requested as a nested field.
	References []Paper `json:"references"`

	// Embedding is the document embedding vector, when requested.
	Embedding *Embedding `json:"embedding"`

	// MatchScore is the relevance confidence returned by title search only.
	MatchScore *float64 `json:"matchScore"`
}

// Author is a single author record.
type Author struct {
	// AuthorID is the Semantic Scholar unique identifier for the author.
	AuthorID *string `json:"authorId"`

	// URL is the author's page on semanticscholar.org.
	URL *string `json:"url"`

	// Name is the author's name.
	Name *string `json:"name"`

	// Affiliations lists the author's affiliations.
	Affiliations []string `json:"affiliations"`

	// Homepage is the author's homepage URL.
	Homepage *string `json:"homepage"`

	// PaperCount is the author's total number of papers.
	PaperCount *int `json:"paperCount"`

	// CitationCount is the author's total citation count.
	CitationCount *int `json:"citationCount"`

	// HIndex is the author's h-index.
	HIndex *int `json:"hIndex"`
}

// PublicationVenue is the structured venue sub-record of a paper.
type PublicationVenue struct {
	ID             *string  `json:"id"`
	Name           *string  `json:"name"`
	Type           *string  `json:"type"`
	URL            *string  `json:"url"`
	AlternateNames []string `json:"alternate_names"`
}

// OpenAccessPDF describes a paper's open-access PDF.
type OpenAccessPDF struct {
	URL    *string `json:"url"`
	Status *string `json:"status"`
}

// S2FieldOfStudy is one entry of the categorized discipline list.
type S2FieldOfStudy struct {
	Category *string `json:"category"`
	Source   *string `json:"source"`
}

// Journal carries journal-specific publication details.
type Journal struct {
	Name   *string `json:"name"`
	Volume *string `json:"volume"`
	Pages  *string `json:"pages"`
}

// CitationStyles carries preformatted citation strings.
type CitationStyles struct {
	BibTeX *string `json:"bibtex"`
}

// ExternalIDs maps a paper to identifiers in external systems.
type ExternalIDs struct {
	DOI           *string `json:"DOI"`
	ArXiv         *string `json:"ArXiv"`
	DBLP          *string `json:"DBLP"`
	PubMed        *string `json:"PubMed"`
	PubMedCentral *string `json:"PubMedCentral"`
	MAG           *string `json:"MAG"`
	ACL           *string `json:"ACL"`
	CorpusID      *int64  `json:"CorpusId"`
}

// Embedding is a document embedding vector with its model name.
type Embedding struct {
	Model  *string   `json:"model"`
	Vector []float64 `json:"vector"`
}

// PaperSearchResponse is the envelope of the paper search endpoints.
type PaperSearchResponse struct {
	// Total is the total number of matches, when reported.
	Total *int `json:"total"`

	// Offset is the current offset in the result set.
	Offset *int `json:"offset"`

	// Next is the offset of the next page; absent on the last page.
	Next *int `json:"next"`

	// Token is the bulk-search continuation token, when present.
	Token *string `json:"token"`

	// Data is the list of matching papers.
	Data []Paper `json:"data"`
}

// CitationEntry wraps a citing paper together with citation-relationship
// metadata. Citation listings return these, not bare papers.
type CitationEntry struct {
	// Contexts are text snippets around the citation.
	Contexts []string `json:"contexts"`

	// Intents are the classified citation intents (background, methodology, ...).
	Intents []string `json:"intents"`

	// ContextsWithIntent pairs each snippet with its intents.
	ContextsWithIntent []CitationContext `json:"contextsWithIntent"`

	// IsInfluential flags citations judged influential.
	IsInfluential *bool `json:"isInfluential"`

	// CitingPaper is the paper doing the citing.
	CitingPaper *Paper `json:"citingPaper"`
}

// ReferenceEntry wraps a cited paper together with citation-relationship
// metadata.
type ReferenceEntry struct {
	Contexts           []string          `json:"contexts"`
	Intents            []string          `json:"intents"`
	ContextsWithIntent []CitationContext `json:"contextsWithIntent"`
	IsInfluential      *bool             `json:"isInfluential"`

	// CitedPaper is the paper being cited.
	CitedPaper *Paper `json:"citedPaper"`
}

// CitationContext is one context snippet with its classified intents.
type CitationContext struct {
	Context *string  `json:"context"`
	Intents []string `json:"intents"`
}

// CitationsResponse is the paginated envelope of the citations endpoint.
type CitationsResponse struct {
	Offset *int            `json:"offset"`
	Next   *int            `json:"next"`
	Data   []CitationEntry `json:"data"`
}

// ReferencesResponse is the paginated envelope of the references endpoint.
type ReferencesResponse struct {
	Offset *int             `json:"offset"`
	Next   *int             `json:"next"`
	Data   []ReferenceEntry `json:"data"`
}

// AuthorSearchResponse is the paginated envelope of the author search
// endpoint.
type AuthorSearchResponse struct {
	Offset *int     `json:"offset"`
	Next   *int     `json:"next"`
	Total  *int     `json:"total"`
	Data   []Author `json:"data"`
}

// AuthorPapersResponse is the paginated envelope of an author's paper list.
type AuthorPapersResponse struct {
	Offset *int    `json:"offset"`
	Next   *int    `json:"next"`
	Data   []Paper `json:"data"`
}

// PaperAuthorsResponse is the paginated envelope of a paper's author list.
type PaperAuthorsResponse struct {
	Offset *int     `json:"offset"`
	Next   *int     `json:"next"`
	Data   []Author `json:"data"`
}

// apiErrorResponse is the error envelope the API returns on failures.
type apiErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
