package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/metaspace/smquery/v1/filters"
	"github.com/metaspace/smquery/v1/query"
	"github.com/metaspace/smquery/v1/relational"
	"github.com/metaspace/smquery/v1/search"
)

// relationalOutput is printed for dataset and suggestion queries.
type relationalOutput struct {
	SQL  string `json:"sql"`
	Args []any  `json:"args"`
}

// searchOutput is printed for annotation queries.
type searchOutput struct {
	From *int            `json:"from,omitempty"`
	Size *int            `json:"size,omitempty"`
	Body json.RawMessage `json:"body"`
}

func newTranslateCommand(stdin io.Reader) *cobra.Command {
	tc := &cobra.Command{
		Use:   "translate",
		Short: "Print the backend query for a criteria document.",
		Long: `Print the backend query for a criteria document without executing it.

The criteria are read as JSON from --criteria, or from stdin when the flag is
absent. Dataset queries are printed as SQL with positional arguments,
annotation queries as the search request body.`,
	}
	tc.PersistentFlags().String("criteria", "", "criteria JSON document; read from stdin when empty")
	tc.PersistentFlags().Bool("count", false, "render the count query instead of the list query")

	tc.AddCommand(&cobra.Command{
		Use:   "datasets",
		Short: "Translate dataset criteria into SQL.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var c query.DatasetCriteria
			if err := readCriteria(cmd, stdin, &c); err != nil {
				return err
			}
			count, _ := cmd.Flags().GetBool("count")

			tr := query.NewDatasetTranslator(filters.Default())
			translate := tr.Translate
			if count {
				translate = tr.TranslateCount
			}
			q, err := translate(c)
			if err != nil {
				return err
			}
			return printRelational(cmd.OutOrStdout(), q)
		},
	})

	annotations := &cobra.Command{
		Use:   "annotations",
		Short: "Translate annotation criteria into a search request body.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var c query.AnnotationCriteria
			if err := readCriteria(cmd, stdin, &c); err != nil {
				return err
			}
			count, _ := cmd.Flags().GetBool("count")
			rawDialect, _ := cmd.Flags().GetString("dialect")

			dialect, err := search.ParseDialect(rawDialect)
			if err != nil {
				return err
			}

			tr := query.NewAnnotationTranslator(filters.Default())
			if count {
				q, err := tr.TranslateCount(c)
				if err != nil {
					return err
				}
				body, err := q.CountBodyFor(dialect)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), searchOutput{Body: body})
			}

			q, err := tr.Translate(c)
			if err != nil {
				return err
			}
			body, err := q.BodyFor(dialect)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), searchOutput{From: &q.From, Size: &q.Size, Body: body})
		},
	}
	annotations.Flags().String("dialect", string(search.DialectLegacy), "search clause dialect: legacy or modern")
	tc.AddCommand(annotations)

	suggestions := &cobra.Command{
		Use:   "suggestions",
		Short: "Translate a metadata suggestion lookup into SQL.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			field, _ := cmd.Flags().GetString("field")
			substr, _ := cmd.Flags().GetString("query")

			q, err := query.NewDatasetTranslator(filters.Default()).TranslateSuggestions(field, substr)
			if err != nil {
				return err
			}
			return printRelational(cmd.OutOrStdout(), q)
		},
	}
	suggestions.Flags().String("field", "", "filter name or dotted metadata path")
	suggestions.Flags().String("query", "", "substring the values must contain")
	_ = suggestions.MarkFlagRequired("field")
	tc.AddCommand(suggestions)

	return tc
}

func readCriteria(cmd *cobra.Command, stdin io.Reader, dst any) error {
	var r io.Reader = stdin
	if raw, _ := cmd.Flags().GetString("criteria"); raw != "" {
		r = strings.NewReader(raw)
	}

	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("invalid criteria: %w", err)
	}
	return nil
}

func printRelational(w io.Writer, q *relational.Query) error {
	sql, args := q.SQL()
	if args == nil {
		args = []any{}
	}
	return printJSON(w, relationalOutput{SQL: sql, Args: args})
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
