package cli

import (
	"fmt"

	"github.com/getmockd/schemafaker/pkg/cli/internal/output"
	"github.com/getmockd/schemafaker/pkg/schema"
	"github.com/spf13/cobra"
)

// ModelOutput describes one model in `models --json` output.
type ModelOutput struct {
	Name       string `json:"name"`
	Title      string `json:"title,omitempty"`
	Kind       string `json:"kind"`
	Properties int    `json:"properties"`
	AllOf      int    `json:"allOf,omitempty"`
}

var modelsFile string

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List the models declared in a schema document",
	RunE: func(cmd *cobra.Command, _ []string) error {
		doc, err := loadDocument(modelsFile)
		if err != nil {
			return err
		}

		models := make([]ModelOutput, 0, len(doc.Definitions))
		for _, name := range doc.Models() {
			n, _ := doc.Model(name)
			shape := schema.ShapeOf(n)
			models = append(models, ModelOutput{
				Name:       name,
				Title:      shape.Title,
				Kind:       kindOf(n),
				Properties: len(shape.Properties),
				AllOf:      len(shape.AllOf),
			})
		}

		w := cmd.OutOrStdout()
		if jsonOutput {
			return output.JSON(w, models)
		}
		if !doc.Named() {
			fmt.Fprintln(cmd.ErrOrStderr(), "Document has no definitions; generate uses its root schema.")
			return nil
		}

		tw := output.Table(w)
		fmt.Fprintln(tw, "NAME\tKIND\tPROPERTIES\tTITLE")
		for _, m := range models {
			fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", m.Name, m.Kind, m.Properties, m.Title)
		}
		return tw.Flush()
	},
}

func kindOf(n schema.Node) string {
	if n == nil {
		return "null"
	}
	return n.Kind().String()
}

func init() {
	modelsCmd.Flags().StringVarP(&modelsFile, "file", "f", "", "Schema document (JSON or YAML)")
	_ = modelsCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(modelsCmd)
}
