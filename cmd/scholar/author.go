package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	semanticscholar "github.com/helixir/semanticscholar-go"
)

var authorCmd = &cobra.Command{
	Use:   "author",
	Short: "Search and fetch authors",
}

var (
	authorFieldsFlag string
	authorLimitFlag  int
	authorOffsetFlag int
)

func init() {
	rootCmd.AddCommand(authorCmd)

	for _, cmd := range []*cobra.Command{authorGetCmd, authorSearchCmd, authorPapersCmd} {
		cmd.Flags().StringVarP(&authorFieldsFlag, "fields", "f", "", "Comma-separated author fields to return")
		authorCmd.AddCommand(cmd)
	}
	for _, cmd := range []*cobra.Command{authorSearchCmd, authorPapersCmd} {
		cmd.Flags().IntVar(&authorLimitFlag, "limit", 0, "Maximum number of results")
		cmd.Flags().IntVar(&authorOffsetFlag, "offset", 0, "Pagination offset")
	}
}

// authorParams assembles the shared author flags into query parameters.
func authorParams() (*semanticscholar.QueryParams, error) {
	params := semanticscholar.NewQueryParams()
	if authorFieldsFlag != "" {
		fields, err := parseAuthorFields(authorFieldsFlag)
		if err != nil {
			return nil, err
		}
		params.AuthorFields(fields...)
	}
	if authorLimitFlag > 0 {
		params.Limit(authorLimitFlag)
	}
	if authorOffsetFlag > 0 {
		params.Offset(authorOffsetFlag)
	}
	return params, nil
}

// parseAuthorFields resolves comma-separated wire names against the known
// author fields.
func parseAuthorFields(s string) ([]semanticscholar.AuthorField, error) {
	byName := make(map[string]semanticscholar.AuthorField, len(semanticscholar.AllAuthorFields))
	for _, f := range semanticscholar.AllAuthorFields {
		byName[f.String()] = f
	}

	var fields []semanticscholar.AuthorField
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

var authorGetCmd = &cobra.Command{
	Use:   "get <author-id>",
	Short: "Fetch details for one author",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAPIClient()
		if err != nil {
			return err
		}
		params, err := authorParams()
		if err != nil {
			return err
		}
		author, err := client.GetAuthor(context.Background(), params.ID(args[0]))
		if err != nil {
			return err
		}
		return printJSON(author)
	},
}

var authorSearchCmd = &cobra.Command{
	Use:     "search <name>",
	Short:   "Search authors by name",
	Example: `  scholar author search "Oren Etzioni" --fields name,hIndex,paperCount`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAPIClient()
		if err != nil {
			return err
		}
		params, err := authorParams()
		if err != nil {
			return err
		}
		resp, err := client.SearchAuthors(context.Background(), params.Query(args[0]))
		if err != nil {
			return err
		}
		return printJSON(resp)
	},
}

var authorPapersCmd = &cobra.Command{
	Use:   "papers <author-id>",
	Short: "List an author's papers",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAPIClient()
		if err != nil {
			return err
		}
		params, err := authorParams()
		if err != nil {
			return err
		}
		resp, err := client.GetAuthorPapers(context.Background(), params.ID(args[0]))
		if err != nil {
			return err
		}
		return printJSON(resp)
	},
}
