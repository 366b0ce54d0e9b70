// Package semanticscholar provides a typed client for the Semantic Scholar
// Graph API.
//
// Semantic Scholar is a free, AI-powered research tool for scientific
// literature. This package covers the paper and author endpoints of the
// Graph API: relevance and title-match search, detail lookups, citation and
// reference listings, author search, and batch paper retrieval.
//
// Every response field is optional because the API echoes back only the
// fields requested through the field-selection model; see PaperField and
// AuthorField. Requests are retried with a fixed delay up to a configured
// attempt budget.
//
// API Documentation: https://api.semanticscholar.org/api-docs/
package semanticscholar
