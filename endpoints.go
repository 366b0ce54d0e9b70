package semanticscholar

// endpoint is a logical Graph API operation.
type endpoint int

const (
	endpointPaperSearch endpoint = iota
	endpointPaperSearchMatch
	endpointPaperBatch
	endpointPaperDetails
	endpointPaperCitations
	endpointPaperReferences
	endpointPaperAuthors
	endpointAuthorDetails
	endpointAuthorSearch
	endpointAuthorPapers
)

// name returns the operation label used in errors, logs, and metrics.
func (e endpoint) name() string {
	switch e {
	case endpointPaperSearch:
		return "paper.search"
	case endpointPaperSearchMatch:
		return "paper.search.match"
	case endpointPaperBatch:
		return "paper.batch"
	case endpointPaperDetails:
		return "paper.details"
	case endpointPaperCitations:
		return "paper.citations"
	case endpointPaperReferences:
		return "paper.references"
	case endpointPaperAuthors:
		return "paper.authors"
	case endpointAuthorDetails:
		return "author.details"
	case endpointAuthorSearch:
		return "author.search"
	case endpointAuthorPapers:
		return "author.papers"
	}
	return "unknown"
}

// path returns the endpoint's URL path relative to the API base. The
// identifier is embedded verbatim; malformed identifiers surface as remote
// 4xx responses, not client-side errors.
func (e endpoint) path(id string) string {
	switch e {
	case endpointPaperSearch:
		return "paper/search"
	case endpointPaperSearchMatch:
		return "paper/search/match"
	case endpointPaperBatch:
		return "paper/batch"
	case endpointPaperDetails:
		return "paper/" + id
	case endpointPaperCitations:
		return "paper/" + id + "/citations"
	case endpointPaperReferences:
		return "paper/" + id + "/references"
	case endpointPaperAuthors:
		return "paper/" + id + "/authors"
	case endpointAuthorDetails:
		return "author/" + id
	case endpointAuthorSearch:
		return "author/search"
	case endpointAuthorPapers:
		return "author/" + id + "/papers"
	}
	return ""
}

// resolveURL maps an operation, an optional identifier, and a built query
// string onto an absolute request URL.
func resolveURL(base string, e endpoint, id, query string) string {
	return base + "/" + e.path(id) + query
}
