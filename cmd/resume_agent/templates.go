package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-agent/internal/schemas"
	"github.com/jonathan/resume-agent/internal/types"
)

func newTemplatesCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "templates",
		Short: "List the built-in templates",
		RunE: func(cmd *cobra.Command, _ []string) error {
			specs := make([]types.TemplateSpec, 0, len(types.AllTemplates()))
			for _, id := range types.AllTemplates() {
				specs = append(specs, id.Spec())
			}
			if asJSON {
				return writeJSON(cmd, "", specs)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			_, _ = fmt.Fprintln(w, "ID\tNAME\tHEADER\tDESCRIPTION")
			for _, s := range specs {
				_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", s.ID, s.Name, s.BasicLayout, s.Description)
			}
			return w.Flush()
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the template catalogue as JSON")
	return cmd
}

func newSchemaCmd() *cobra.Command {
	var outPath string
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema of resume.json",
		Long:  "Prints the schema that resume.json and \"render --document\" inputs are validated against.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return writeOutput(cmd, outPath, []byte(schemas.ResumeDocumentSchema()))
		},
	}
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Write the schema to a file instead of stdout")
	return cmd
}
