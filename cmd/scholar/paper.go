package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	semanticscholar "github.com/helixir/semanticscholar-go"
)

var paperCmd = &cobra.Command{
	Use:   "paper",
	Short: "Search and fetch papers",
}

var (
	paperFieldsFlag   string
	paperLimitFlag    int
	paperOffsetFlag   int
	paperYearFlag     string
	paperVenueFlag    []string
	paperOpenAccess   bool
	paperMinCite      int
	paperPubTypesFlag []string
	paperFOSFlag      []string
	paperSortFlag     string
)

func init() {
	rootCmd.AddCommand(paperCmd)

	for _, cmd := range []*cobra.Command{paperSearchCmd, paperMatchCmd, paperGetCmd,
		paperCitationsCmd, paperReferencesCmd, paperAuthorsCmd, paperBatchCmd} {
		cmd.Flags().StringVarP(&paperFieldsFlag, "fields", "f", "", "Comma-separated paper fields to return")
		paperCmd.AddCommand(cmd)
	}
	for _, cmd := range []*cobra.Command{paperSearchCmd, paperCitationsCmd, paperReferencesCmd, paperAuthorsCmd} {
		cmd.Flags().IntVar(&paperLimitFlag, "limit", 0, "Maximum number of results")
		cmd.Flags().IntVar(&paperOffsetFlag, "offset", 0, "Pagination offset")
	}
	paperSearchCmd.Flags().StringVar(&paperYearFlag, "year", "", "Year or year range, e.g. 2020 or 2020-2024")
	paperSearchCmd.Flags().StringSliceVar(&paperVenueFlag, "venue", nil, "Restrict to publication venues")
	paperSearchCmd.Flags().BoolVar(&paperOpenAccess, "open-access", false, "Only papers with a public PDF")
	paperSearchCmd.Flags().IntVar(&paperMinCite, "min-citations", 0, "Minimum citation count")
	paperSearchCmd.Flags().StringSliceVar(&paperPubTypesFlag, "publication-types", nil, "Restrict to publication types, e.g. JournalArticle,Review")
	paperSearchCmd.Flags().StringSliceVar(&paperFOSFlag, "fields-of-study", nil, "Restrict to fields of study, e.g. \"Computer Science\"")
	paperSearchCmd.Flags().StringVar(&paperSortFlag, "sort", "", "Sort specification, e.g. citationCount:desc")
}

// paperParams assembles the shared filter flags into query parameters.
func paperParams() (*semanticscholar.QueryParams, error) {
	params := semanticscholar.NewQueryParams()
	if paperFieldsFlag != "" {
		fields, err := parsePaperFields(paperFieldsFlag)
		if err != nil {
			return nil, err
		}
		params.Fields(fields...)
	}
	if paperLimitFlag > 0 {
		params.Limit(paperLimitFlag)
	}
	if paperOffsetFlag > 0 {
		params.Offset(paperOffsetFlag)
	}
	if paperYearFlag != "" {
		params.Year(paperYearFlag)
	}
	if len(paperVenueFlag) > 0 {
		params.Venues(paperVenueFlag...)
	}
	if paperOpenAccess {
		params.OpenAccessPDF(true)
	}
	if paperMinCite > 0 {
		params.MinCitationCount(paperMinCite)
	}
	if len(paperPubTypesFlag) > 0 {
		types := make([]semanticscholar.PublicationType, len(paperPubTypesFlag))
		for i, s := range paperPubTypesFlag {
			types[i] = semanticscholar.PublicationType(s)
		}
		params.PublicationTypes(types...)
	}
	if len(paperFOSFlag) > 0 {
		fos := make([]semanticscholar.FieldOfStudy, len(paperFOSFlag))
		for i, s := range paperFOSFlag {
			fos[i] = semanticscholar.FieldOfStudy(s)
		}
		params.FieldsOfStudy(fos...)
	}
	if paperSortFlag != "" {
		params.Sort(paperSortFlag)
	}
	return params, nil
}

// parsePaperFields resolves comma-separated wire names against the known
// leaf fields.
func parsePaperFields(s string) ([]semanticscholar.PaperField, error) {
	byName := make(map[string]semanticscholar.PaperField, len(semanticscholar.AllLeafPaperFields))
	for _, f := range semanticscholar.AllLeafPaperFields {
		byName[f.String()] = f
	}
	// The embedding field's wire name is model-qualified; accept the short
	// name too.
	byName["embedding"] = semanticscholar.FieldEmbedding

	var fields []semanticscholar.PaperField
	for _, name := range strings.Split(s, ",") {
		name = strings.TrimSpace(name)
		f, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("unknown field %q", name)
		}
		fields = append(fields, f)
	}
	return fields, nil
}

var paperSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Relevance search over papers",
	Example: `  scholar paper search "attention is all you need" --limit 5
  scholar paper search "graph neural networks" --fields title,year,citationCount --year 2020-2024`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAPIClient()
		if err != nil {
			return err
		}
		params, err := paperParams()
		if err != nil {
			return err
		}
		resp, err := client.SearchPapers(context.Background(), params.Query(args[0]))
		if err != nil {
			return err
		}
		return printJSON(resp)
	},
}

var paperMatchCmd = &cobra.Command{
	Use:   "match <title>",
	Short: "Resolve a paper from its title",
	Long: `Resolve a paper from its title using the title match endpoint.

Candidates are re-ranked by the remote match score combined with the
string similarity between the given title and each candidate's title, and
the single best match is printed.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAPIClient()
		if err != nil {
			return err
		}
		params, err := paperParams()
		if err != nil {
			return err
		}
		paper, err := client.MatchPaper(context.Background(), params.Query(args[0]))
		if err != nil {
			return err
		}
		return printJSON(paper)
	},
}

var paperGetCmd = &cobra.Command{
	Use:   "get <paper-id>",
	Short: "Fetch details for one paper",
	Long: `Fetch details for one paper.

Supported identifier formats:
  649def34f8be52c8b66281af98ae884c09aef38b   Semantic Scholar ID
  CorpusId:215416146                         corpus ID
  DOI:10.18653/v1/N18-3011                   DOI
  ARXIV:2106.15928                           arXiv ID
  PMID:19872477                              PubMed ID
  ACL:W12-3903                               ACL anthology ID`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAPIClient()
		if err != nil {
			return err
		}
		params, err := paperParams()
		if err != nil {
			return err
		}
		paper, err := client.GetPaper(context.Background(), params.ID(args[0]))
		if err != nil {
			return err
		}
		return printJSON(paper)
	},
}

var paperCitationsCmd = &cobra.Command{
	Use:   "citations <paper-id>",
	Short: "List papers citing a paper",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAPIClient()
		if err != nil {
			return err
		}
		params, err := paperParams()
		if err != nil {
			return err
		}
		resp, err := client.GetPaperCitations(context.Background(), params.ID(args[0]))
		if err != nil {
			return err
		}
		return printJSON(resp)
	},
}

var paperReferencesCmd = &cobra.Command{
	Use:   "references <paper-id>",
	Short: "List papers cited by a paper",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAPIClient()
		if err != nil {
			return err
		}
		params, err := paperParams()
		if err != nil {
			return err
		}
		resp, err := client.GetPaperReferences(context.Background(), params.ID(args[0]))
		if err != nil {
			return err
		}
		return printJSON(resp)
	},
}

var paperAuthorsCmd = &cobra.Command{
	Use:   "authors <paper-id>",
	Short: "List the authors of a paper",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAPIClient()
		if err != nil {
			return err
		}
		params, err := paperParams()
		if err != nil {
			return err
		}
		resp, err := client.GetPaperAuthors(context.Background(), params.ID(args[0]))
		if err != nil {
			return err
		}
		return printJSON(resp)
	},
}

var paperBatchCmd = &cobra.Command{
	Use:   "batch <paper-id>...",
	Short: "Fetch details for up to 500 papers at once",
	Example: `  scholar paper batch DOI:10.18653/v1/N18-3011 ARXIV:2106.15928 --fields title,year`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAPIClient()
		if err != nil {
			return err
		}
		params, err := paperParams()
		if err != nil {
			return err
		}
		papers, err := client.GetPapersBatch(context.Background(), args, params)
		if err != nil {
			return err
		}
		return printJSON(papers)
	},
}
