package semanticscholar

import (
	"strconv"
	"strings"
)

// upperhex is the alphabet used for percent-escaping.
const upperhex = "0123456789ABCDEF"

// encode percent-escapes every byte that is not an ASCII letter or digit.
// This mirrors the API's expectation for free-text parameter values: spaces
// become %20 rather than "+", and punctuation is never passed through.
func encode(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9') {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&0x0f])
	}
	return b.String()
}

// QueryParams accumulates the optional filters of a Graph API request and
// serializes them into a URL query string. Setters return the receiver so
// calls can be chained; Build is pure and may be called repeatedly.
//
// The identifier set with ID is carried out-of-band: it is embedded in the
// request path by the endpoint resolver and never appears in the query
// string. A QueryParams must not be shared across goroutines while being
// mutated.
type QueryParams struct {
	id               string
	query            *string
	fields           []PaperField
	authorFields     []AuthorField
	publicationTypes []PublicationType
	openAccessPDF    bool
	minCitationCount *int
	pubDateOrYear    *string
	year             *string
	venues           []string
	fieldsOfStudy    []FieldOfStudy
	offset           *int
	limit            *int
	token            *string
	sort             *string
}

// NewQueryParams returns an empty parameter set.
func NewQueryParams() *QueryParams { return &QueryParams{} }

// ID sets the paper or author identifier for endpoints that embed one in the
// request path. The identifier is not percent-encoded and never contributes
// to the query string.
func (p *QueryParams) ID(id string) *QueryParams {
	p.id = id
	return p
}

// Query sets the free-text search query.
func (p *QueryParams) Query(text string) *QueryParams {
	p.query = &text
	return p
}

// Fields sets the paper attributes to request.
func (p *QueryParams) Fields(fields ...PaperField) *QueryParams {
	p.fields = fields
	return p
}

// AuthorFields sets the author attributes to request on author endpoints.
func (p *QueryParams) AuthorFields(fields ...AuthorField) *QueryParams {
	p.authorFields = fields
	return p
}

// PublicationTypes filters results to the given publication kinds.
func (p *QueryParams) PublicationTypes(types ...PublicationType) *QueryParams {
	p.publicationTypes = types
	return p
}

// OpenAccessPDF filters results to papers with a public PDF. The remote
// parameter is presence-only: once this setter has been called the bare
// "openAccessPdf" key is emitted regardless of the argument's value.
func (p *QueryParams) OpenAccessPDF(bool) *QueryParams {
	p.openAccessPDF = true
	return p
}

// MinCitationCount filters results to papers with at least n citations.
func (p *QueryParams) MinCitationCount(n int) *QueryParams {
	p.minCitationCount = &n
	return p
}

// PublicationDateOrYear filters by a date range such as
// "2020-01-01:2023-12-31". The value is passed through unencoded.
func (p *QueryParams) PublicationDateOrYear(r string) *QueryParams {
	p.pubDateOrYear = &r
	return p
}

// Year filters by a year or year range such as "2020" or "2020-2024".
func (p *QueryParams) Year(y string) *QueryParams {
	p.year = &y
	return p
}

// Venues filters results to the given publication venues.
func (p *QueryParams) Venues(venues ...string) *QueryParams {
	p.venues = venues
	return p
}

// FieldsOfStudy filters results to the given disciplines.
func (p *QueryParams) FieldsOfStudy(fields ...FieldOfStudy) *QueryParams {
	p.fieldsOfStudy = fields
	return p
}

// Offset sets the pagination offset.
func (p *QueryParams) Offset(n int) *QueryParams {
	p.offset = &n
	return p
}

// Limit sets the maximum number of results to return.
func (p *QueryParams) Limit(n int) *QueryParams {
	p.limit = &n
	return p
}

// Token sets the continuation token returned by a previous bulk response.
func (p *QueryParams) Token(t string) *QueryParams {
	p.token = &t
	return p
}

// Sort sets the sort specification, e.g. "citationCount:desc".
func (p *QueryParams) Sort(s string) *QueryParams {
	p.sort = &s
	return p
}

// fieldList returns the serialized value of the "fields" parameter. Paper
// fields take precedence; author fields apply when only they are set.
func (p *QueryParams) fieldList() string {
	if s := joinPaperFields(p.fields); s != "" {
		return s
	}
	return joinAuthorFields(p.authorFields)
}

// Build serializes the accumulated parameters. It returns the empty string
// when nothing is set, otherwise "?" followed by "&"-joined key=value pairs
// in fixed declaration order. Free-text values are percent-encoded; numeric
// values, enum names joined by commas, and range strings are not.
func (p *QueryParams) Build() string {
	var pairs []string

	if p.query != nil {
		pairs = append(pairs, "query="+encode(*p.query))
	}
	if fl := p.fieldList(); fl != "" {
		pairs = append(pairs, "fields="+fl)
	}
	if len(p.publicationTypes) > 0 {
		names := make([]string, len(p.publicationTypes))
		for i, t := range p.publicationTypes {
			names[i] = encode(t.String())
		}
		pairs = append(pairs, "publicationTypes="+strings.Join(names, ","))
	}
	if p.openAccessPDF {
		pairs = append(pairs, "openAccessPdf")
	}
	if p.minCitationCount != nil {
		pairs = append(pairs, "minCitationCount="+strconv.Itoa(*p.minCitationCount))
	}
	if p.pubDateOrYear != nil {
		pairs = append(pairs, "publicationDateOrYear="+*p.pubDateOrYear)
	}
	if p.year != nil {
		pairs = append(pairs, "year="+*p.year)
	}
	if len(p.venues) > 0 {
		names := make([]string, len(p.venues))
		for i, v := range p.venues {
			names[i] = encode(v)
		}
		pairs = append(pairs, "venue="+strings.Join(names, ","))
	}
	if len(p.fieldsOfStudy) > 0 {
		names := make([]string, len(p.fieldsOfStudy))
		for i, f := range p.fieldsOfStudy {
			names[i] = encode(f.String())
		}
		pairs = append(pairs, "fieldsOfStudy="+strings.Join(names, ","))
	}
	if p.offset != nil {
		pairs = append(pairs, "offset="+strconv.Itoa(*p.offset))
	}
	if p.limit != nil {
		pairs = append(pairs, "limit="+strconv.Itoa(*p.limit))
	}
	if p.token != nil {
		pairs = append(pairs, "token="+*p.token)
	}
	if p.sort != nil {
		pairs = append(pairs, "sort="+*p.sort)
	}

	if len(pairs) == 0 {
		return ""
	}
	return "?" + strings.Join(pairs, "&")
}
