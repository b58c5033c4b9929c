package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Halasue/endfield-aic-calculator/internal/application/production/queries"
	"github.com/Halasue/endfield-aic-calculator/internal/domain/production"
)

type rateFlags struct {
	quantity float64
	minutes  float64
}

func (f *rateFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64VarP(&f.quantity, "quantity", "q", 0, "Target quantity to produce (required)")
	cmd.Flags().Float64VarP(&f.minutes, "minutes", "m", 1, "Time period in minutes")
	_ = cmd.MarkFlagRequired("quantity")
}

// newTreeCommand creates the tree command
func newTreeCommand(state *session) *cobra.Command {
	var rate rateFlags
	var showSummary bool

	cmd := &cobra.Command{
		Use:   "tree <item-id>",
		Short: "Show the requirement tree for producing an item",
		Long: `Show the requirement tree for producing <quantity> of an item within <minutes>.

Item nodes show the required rate per minute; equipment nodes show how many
machines of that facility are needed. Every recipe producing an item is
expanded with the full demand.

Examples:
  aic-calculator tree iron_plate --quantity 600 --minutes 60
  aic-calculator tree iron_plate -q 30 --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			response, err := calculateTree(cmd, state, args[0], rate)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if outputFormat == "json" {
				return writeJSON(out, newTreeOutput(response))
			}

			items, err := listCatalogItems(cmd, state)
			if err != nil {
				return err
			}
			locale := state.locale()
			formatter := state.formatter().WithCatalogNames(items, locale)

			fmt.Fprint(out, formatter.FormatTree(response.Tree))
			fmt.Fprintln(out)
			fmt.Fprintln(out, FormatTotalEquipment(locale, response.TotalEquipment))
			if showSummary {
				fmt.Fprintln(out, formatter.FormatTreeSummary(response.Tree))
				fmt.Fprint(out, formatter.FormatEquipmentBreakdown(response.Tree))
			}
			writeWarnings(out, locale, response.Warnings)
			return nil
		},
	}

	rate.register(cmd)
	cmd.Flags().BoolVar(&showSummary, "summary", false, "Also print node count, depth and equipment per facility")

	return cmd
}

// newTotalCommand creates the total command
func newTotalCommand(state *session) *cobra.Command {
	var rate rateFlags

	cmd := &cobra.Command{
		Use:   "total <item-id>",
		Short: "Show only the total equipment count",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			response, err := calculateTree(cmd, state, args[0], rate)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if outputFormat == "json" {
				return writeJSON(out, map[string]interface{}{
					"item_id":             response.ItemID,
					"required_per_minute": response.RequiredPerMinute,
					"total_equipment":     response.TotalEquipment,
				})
			}

			fmt.Fprintln(out, FormatTotalEquipment(state.locale(), response.TotalEquipment))
			return nil
		},
	}

	rate.register(cmd)

	return cmd
}

func calculateTree(cmd *cobra.Command, state *session, itemID string, rate rateFlags) (*queries.CalculateProductionTreeResponse, error) {
	result, err := state.runtime.Mediator.Send(cmd.Context(), &queries.CalculateProductionTreeQuery{
		ItemID:            itemID,
		TargetQuantity:    rate.quantity,
		TimePeriodMinutes: rate.minutes,
	})
	if err != nil {
		return nil, err
	}

	response, ok := result.(*queries.CalculateProductionTreeResponse)
	if !ok {
		return nil, fmt.Errorf("unexpected response type %T", result)
	}
	return response, nil
}

// treeOutput is the JSON document of the tree command
type treeOutput struct {
	BuildID           string               `json:"build_id"`
	ItemID            string               `json:"item_id"`
	RequiredPerMinute float64              `json:"required_per_minute"`
	TotalEquipment    int                  `json:"total_equipment"`
	Warnings          []warningOutput      `json:"warnings"`
	Tree              *production.ItemNode `json:"tree"`
}

type warningOutput struct {
	Kind       string   `json:"kind"`
	ItemID     string   `json:"item_id,omitempty"`
	RecipeID   string   `json:"recipe_id,omitempty"`
	FacilityID string   `json:"facility_id,omitempty"`
	Path       []string `json:"path,omitempty"`
	Message    string   `json:"message"`
}

func newTreeOutput(response *queries.CalculateProductionTreeResponse) treeOutput {
	warnings := make([]warningOutput, 0, len(response.Warnings))
	for _, w := range response.Warnings {
		warnings = append(warnings, warningOutput{
			Kind:       string(w.Kind),
			ItemID:     w.ItemID,
			RecipeID:   w.RecipeID,
			FacilityID: w.FacilityID,
			Path:       w.Path,
			Message:    w.Message(),
		})
	}

	return treeOutput{
		BuildID:           response.BuildID,
		ItemID:            response.ItemID,
		RequiredPerMinute: response.RequiredPerMinute,
		TotalEquipment:    response.TotalEquipment,
		Warnings:          warnings,
		Tree:              response.Tree,
	}
}

func writeWarnings(out io.Writer, locale production.Locale, warnings []production.BuildWarning) {
	if len(warnings) == 0 {
		return
	}
	fmt.Fprintf(out, "\n%s (%d):\n", label(locale, labelWarnings), len(warnings))
	for _, w := range warnings {
		fmt.Fprintf(out, "  - %s\n", w.Message())
	}
}

func writeJSON(out io.Writer, v interface{}) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
