package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Halasue/endfield-aic-calculator/internal/application/production/queries"
	"github.com/Halasue/endfield-aic-calculator/internal/domain/production"
)

// newItemsCommand creates the items command with subcommands
func newItemsCommand(state *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "items",
		Short: "Browse catalog items",
	}

	cmd.AddCommand(newItemsListCommand(state))
	cmd.AddCommand(newItemsShowCommand(state))

	return cmd
}

func newItemsListCommand(state *session) *cobra.Command {
	var producibleOnly bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List items in catalog order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := state.runtime.Mediator.Send(cmd.Context(), &queries.ListItemsQuery{
				Locale:         state.locale(),
				ProducibleOnly: producibleOnly,
			})
			if err != nil {
				return err
			}
			response := result.(*queries.ListItemsResponse)

			out := cmd.OutOrStdout()
			if outputFormat == "json" {
				rows := make([]map[string]interface{}, 0, len(response.Items))
				for _, item := range response.Items {
					rows = append(rows, map[string]interface{}{
						"item_id": item.ID,
						"name":    item.Name,
						"label":   item.Label,
						"is_seed": item.IsSeed,
					})
				}
				return writeJSON(out, rows)
			}

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			for _, item := range response.Items {
				seed := ""
				if item.IsSeed {
					seed = label(state.locale(), labelSeed)
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", item.ID, item.Label, seed)
			}
			return w.Flush()
		},
	}

	cmd.Flags().BoolVar(&producibleOnly, "producible", false, "Only items some recipe produces")

	return cmd
}

func newItemsShowCommand(state *session) *cobra.Command {
	return &cobra.Command{
		Use:   "show <item-id>",
		Short: "Show an item and the recipes producing it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := state.runtime.Mediator.Send(cmd.Context(), &queries.GetItemQuery{
				ItemID: args[0],
				Locale: state.locale(),
			})
			if err != nil {
				return err
			}
			response := result.(*queries.GetItemResponse)

			out := cmd.OutOrStdout()
			if outputFormat == "json" {
				recipes := make([]map[string]interface{}, 0, len(response.Recipes))
				for _, recipe := range response.Recipes {
					recipes = append(recipes, map[string]interface{}{
						"recipe_id":       recipe.ID,
						"facility_id":     recipe.FacilityID,
						"output_quantity": recipe.OutputQuantity,
					})
				}
				return writeJSON(out, map[string]interface{}{
					"item_id": response.Item.ID,
					"name":    response.Name,
					"is_seed": response.Item.IsSeed,
					"recipes": recipes,
				})
			}

			fmt.Fprintf(out, "%s  %s\n", response.Item.ID, response.Item.PickerLabel())
			if response.Item.IsSeed {
				fmt.Fprintf(out, "  (%s)\n", label(state.locale(), labelSeed))
			}
			fmt.Fprintf(out, "%s:\n", label(state.locale(), labelRecipes))
			for _, recipe := range response.Recipes {
				fmt.Fprintf(out, "  %s  [%s] x%s\n", recipe.ID, recipe.FacilityID, formatQuantity(recipe.OutputQuantity))
			}
			return nil
		},
	}
}

// listCatalogItems fetches the item records used for display names
func listCatalogItems(cmd *cobra.Command, state *session) ([]production.Item, error) {
	result, err := state.runtime.Mediator.Send(cmd.Context(), &queries.ListItemsQuery{Locale: state.locale()})
	if err != nil {
		return nil, err
	}

	listings := result.(*queries.ListItemsResponse).Items
	items := make([]production.Item, 0, len(listings))
	for _, listing := range listings {
		item := production.Item{ID: listing.ID, IsSeed: listing.IsSeed}
		if state.locale() == production.LocaleJA {
			item.NameJP = listing.Name
		} else {
			item.NameEN = listing.Name
		}
		items = append(items, item)
	}
	return items, nil
}
