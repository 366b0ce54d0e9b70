package semanticscholar

import "strings"

// AuthorField identifies one author attribute to request from the API.
// The value of each constant is the exact wire name the API expects.
type AuthorField string

// Author attributes available for selection.
const (
	AuthorFieldAuthorID      AuthorField = "authorId"
	AuthorFieldName          AuthorField = "name"
	AuthorFieldURL           AuthorField = "url"
	AuthorFieldAffiliations  AuthorField = "affiliations"
	AuthorFieldHomepage      AuthorField = "homepage"
	AuthorFieldPaperCount    AuthorField = "paperCount"
	AuthorFieldCitationCount AuthorField = "citationCount"
	AuthorFieldHIndex        AuthorField = "hIndex"
)

// AllAuthorFields lists every author attribute, in wire order.
var AllAuthorFields = []AuthorField{
	AuthorFieldAuthorID,
	AuthorFieldName,
	AuthorFieldURL,
	AuthorFieldAffiliations,
	AuthorFieldHomepage,
	AuthorFieldPaperCount,
	AuthorFieldCitationCount,
	AuthorFieldHIndex,
}

// String returns the wire name of the field.
func (f AuthorField) String() string { return string(f) }

// PaperField identifies one paper attribute, or a named group of nested
// attributes, to request from the API. Leaf fields carry a fixed wire name;
// composite fields (Authors, Citations, References) expand to a
// comma-separated list of dot-qualified child names.
type PaperField struct {
	name string

	// Exactly one of the following is set for a composite field.
	prefix       string
	paperFields  []PaperField
	authorFields []AuthorField
}

// Leaf paper fields. FieldEmbedding requests the SPECTER v2 document
// embedding, which the API exposes under a model-qualified name.
var (
	FieldPaperID                  = PaperField{name: "paperId"}
	FieldCorpusID                 = PaperField{name: "corpusId"}
	FieldURL                      = PaperField{name: "url"}
	FieldTitle                    = PaperField{name: "title"}
	FieldAbstract                 = PaperField{name: "abstract"}
	FieldVenue                    = PaperField{name: "venue"}
	FieldPublicationVenue         = PaperField{name: "publicationVenue"}
	FieldYear                     = PaperField{name: "year"}
	FieldReferenceCount           = PaperField{name: "referenceCount"}
	FieldCitationCount            = PaperField{name: "citationCount"}
	FieldInfluentialCitationCount = PaperField{name: "influentialCitationCount"}
	FieldIsOpenAccess             = PaperField{name: "isOpenAccess"}
	FieldOpenAccessPDF            = PaperField{name: "openAccessPdf"}
	FieldFieldsOfStudy            = PaperField{name: "fieldsOfStudy"}
	FieldS2FieldsOfStudy          = PaperField{name: "s2FieldsOfStudy"}
	FieldPublicationTypes         = PaperField{name: "publicationTypes"}
	FieldPublicationDate          = PaperField{name: "publicationDate"}
	FieldJournal                  = PaperField{name: "journal"}
	FieldCitationStyles           = PaperField{name: "citationStyles"}
	FieldExternalIDs              = PaperField{name: "externalIds"}
	FieldEmbedding                = PaperField{name: "embedding.specter_v2"}
	FieldContexts                 = PaperField{name: "contexts"}
	FieldIntents                  = PaperField{name: "intents"}
	FieldIsInfluential            = PaperField{name: "isInfluential"}
	FieldContextsWithIntent       = PaperField{name: "contextsWithIntent"}
)

// AllLeafPaperFields lists every leaf paper field, in wire order.
var AllLeafPaperFields = []PaperField{
	FieldPaperID,
	FieldCorpusID,
	FieldURL,
	FieldTitle,
	FieldAbstract,
	FieldVenue,
	FieldPublicationVenue,
	FieldYear,
	FieldReferenceCount,
	FieldCitationCount,
	FieldInfluentialCitationCount,
	FieldIsOpenAccess,
	FieldOpenAccessPDF,
	FieldFieldsOfStudy,
	FieldS2FieldsOfStudy,
	FieldPublicationTypes,
	FieldPublicationDate,
	FieldJournal,
	FieldCitationStyles,
	FieldExternalIDs,
	FieldEmbedding,
	FieldContexts,
	FieldIntents,
	FieldIsInfluential,
	FieldContextsWithIntent,
}

// Authors selects nested author attributes on a paper, e.g.
// Authors(AuthorFieldName, AuthorFieldHIndex) serializes to
// "authors.name,authors.hIndex".
func Authors(fields ...AuthorField) PaperField {
	return PaperField{prefix: "authors", authorFields: fields}
}

// Citations selects nested paper attributes on each citing paper.
func Citations(fields ...PaperField) PaperField {
	return PaperField{prefix: "citations", paperFields: fields}
}

// References selects nested paper attributes on each cited paper.
func References(fields ...PaperField) PaperField {
	return PaperField{prefix: "references", paperFields: fields}
}

// String returns the canonical query-string fragment for the field. For a
// leaf this is its wire name; for a composite it is the comma-join of
// "<prefix>.<child>" over each child, applied recursively. A composite with
// no children contributes the empty string.
func (f PaperField) String() string {
	if f.prefix == "" {
		return f.name
	}
	var parts []string
	for _, af := range f.authorFields {
		parts = append(parts, f.prefix+"."+af.String())
	}
	for _, pf := range f.paperFields {
		parts = append(parts, f.prefix+"."+pf.String())
	}
	return strings.Join(parts, ",")
}

// joinPaperFields serializes a field list into the comma-separated value of
// the "fields" query parameter. Empty contributions are dropped.
func joinPaperFields(fields []PaperField) string {
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		if s := f.String(); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, ",")
}

// joinAuthorFields serializes an author-field list for the "fields"
// query parameter of author endpoints.
func joinAuthorFields(fields []AuthorField) string {
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f.String())
	}
	return strings.Join(parts, ",")
}

// hasPaperID reports whether the list already requests the paperId leaf.
func hasPaperID(fields []PaperField) bool {
	for _, f := range fields {
		if f.prefix == "" && f.name == FieldPaperID.name {
			return true
		}
	}
	return false
}

// PublicationType filters search results by publication kind. Values are the
// exact wire names; several contain spaces or punctuation.
type PublicationType string

// Publication types accepted by the publicationTypes filter.
const (
	PublicationTypeReview             PublicationType = "Review"
	PublicationTypeJournalArticle     PublicationType = "JournalArticle"
	PublicationTypeCaseReport         PublicationType = "CaseReport"
	PublicationTypeClinicalTrial      PublicationType = "Clinical Trial"
	PublicationTypeConference         PublicationType = "Conference"
	PublicationTypeDataset            PublicationType = "Dataset"
	PublicationTypeEditorial          PublicationType = "Editorial"
	PublicationTypeLettersAndComments PublicationType = "LettersAndComments"
	PublicationTypeMetaAnalysis       PublicationType = "Meta-Analysis"
	PublicationTypeNews               PublicationType = "News"
	PublicationTypeStudy              PublicationType = "Study"
	PublicationTypeBook               PublicationType = "Book"
	PublicationTypeBookSection        PublicationType = "Book Section"
)

// AllPublicationTypes lists every publication type.
var AllPublicationTypes = []PublicationType{
	PublicationTypeReview,
	PublicationTypeJournalArticle,
	PublicationTypeCaseReport,
	PublicationTypeClinicalTrial,
	PublicationTypeConference,
	PublicationTypeDataset,
	PublicationTypeEditorial,
	PublicationTypeLettersAndComments,
	PublicationTypeMetaAnalysis,
	PublicationTypeNews,
	PublicationTypeStudy,
	PublicationTypeBook,
	PublicationTypeBookSection,
}

// String returns the wire name of the publication type.
func (t PublicationType) String() string { return string(t) }

// FieldOfStudy filters search results by research discipline. Values are the
// display names the API matches against.
type FieldOfStudy string

// Fields of study accepted by the fieldsOfStudy filter.
const (
	FieldOfStudyComputerScience            FieldOfStudy = "Computer Science"
	FieldOfStudyMedicine                   FieldOfStudy = "Medicine"
	FieldOfStudyChemistry                  FieldOfStudy = "Chemistry"
	FieldOfStudyBiology                    FieldOfStudy = "Biology"
	FieldOfStudyMaterialsScience           FieldOfStudy = "Materials Science"
	FieldOfStudyPhysics                    FieldOfStudy = "Physics"
	FieldOfStudyGeology                    FieldOfStudy = "Geology"
	FieldOfStudyPsychology                 FieldOfStudy = "Psychology"
	FieldOfStudyArt                        FieldOfStudy = "Art"
	FieldOfStudyHistory                    FieldOfStudy = "History"
	FieldOfStudyGeography                  FieldOfStudy = "Geography"
	FieldOfStudySociology                  FieldOfStudy = "Sociology"
	FieldOfStudyBusiness                   FieldOfStudy = "Business"
	FieldOfStudyPoliticalScience           FieldOfStudy = "Political Science"
	FieldOfStudyEconomics                  FieldOfStudy = "Economics"
	FieldOfStudyPhilosophy                 FieldOfStudy = "Philosophy"
	FieldOfStudyMathematics                FieldOfStudy = "Mathematics"
	FieldOfStudyEngineering                FieldOfStudy = "Engineering"
	FieldOfStudyEnvironmentalScience       FieldOfStudy = "Environmental Science"
	FieldOfStudyAgriculturalAndFoodScience FieldOfStudy = "Agricultural and Food Science"
	FieldOfStudyEducation                  FieldOfStudy = "Education"
	FieldOfStudyLaw                        FieldOfStudy = "Law"
	FieldOfStudyLinguistics                FieldOfStudy = "Linguistics"
)

// AllFieldsOfStudy lists every field of study.
var AllFieldsOfStudy = []FieldOfStudy{
	FieldOfStudyComputerScience,
	FieldOfStudyMedicine,
	FieldOfStudyChemistry,
	FieldOfStudyBiology,
	FieldOfStudyMaterialsScience,
	FieldOfStudyPhysics,
	FieldOfStudyGeology,
	FieldOfStudyPsychology,
	FieldOfStudyArt,
	FieldOfStudyHistory,
	FieldOfStudyGeography,
	FieldOfStudySociology,
	FieldOfStudyBusiness,
	FieldOfStudyPoliticalScience,
	FieldOfStudyEconomics,
	FieldOfStudyPhilosophy,
	FieldOfStudyMathematics,
	FieldOfStudyEngineering,
	FieldOfStudyEnvironmentalScience,
	FieldOfStudyAgriculturalAndFoodScience,
	FieldOfStudyEducation,
	FieldOfStudyLaw,
	FieldOfStudyLinguistics,
}

// String returns the wire name of the field of study.
func (f FieldOfStudy) String() string { return string(f) }
