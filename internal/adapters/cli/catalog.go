package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Halasue/endfield-aic-calculator/internal/application/production/commands"
)

// newCatalogCommand creates the catalog command with subcommands
func newCatalogCommand(state *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Manage the stored recipe catalog",
	}

	cmd.AddCommand(newCatalogImportCommand(state))

	return cmd
}

func newCatalogImportCommand(state *session) *cobra.Command {
	return &cobra.Command{
		Use:   "import <dataset-file>",
		Short: "Replace the database catalog with a dataset file",
		Long: `Replace the catalog stored in the configured database with the contents of a
dataset file (data.json format, or the same records in YAML).

Set catalog.source to "database" to calculate from the imported catalog.

Examples:
  aic-calculator catalog import data/data.json
  AIC_DATABASE_TYPE=postgres aic-calculator catalog import catalog.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := state.runtime.Mediator.Send(cmd.Context(), &commands.ImportCatalogCommand{Path: args[0]})
			if err != nil {
				return err
			}
			response := result.(*commands.ImportCatalogResponse)

			out := cmd.OutOrStdout()
			if outputFormat == "json" {
				dangling := make([]string, 0, len(response.Dangling))
				for _, ref := range response.Dangling {
					dangling = append(dangling, ref.String())
				}
				return writeJSON(out, map[string]interface{}{
					"items":      response.Items,
					"facilities": response.Facilities,
					"recipes":    response.Recipes,
					"materials":  response.Materials,
					"dangling":   dangling,
				})
			}

			fmt.Fprintf(out, "Imported %d items, %d facilities, %d recipes, %d materials\n",
				response.Items, response.Facilities, response.Recipes, response.Materials)
			if len(response.Dangling) > 0 {
				fmt.Fprintf(out, "%d dangling references (these degrade to warnings at build time):\n", len(response.Dangling))
				for _, ref := range response.Dangling {
					fmt.Fprintf(out, "  - %s\n", ref)
				}
			}
			return nil
		},
	}
}
