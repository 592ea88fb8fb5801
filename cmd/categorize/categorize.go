// Package categorize handles the one-off transaction classification command.
package categorize

import (
	"github.com/spf13/cobra"

	"jlowell/ledgersum/cmd/root"
	"jlowell/ledgersum/internal/categorizer"
	"jlowell/ledgersum/internal/hierarchy"
	"jlowell/ledgersum/internal/logging"
	"jlowell/ledgersum/internal/models"
	"jlowell/ledgersum/internal/normalize"
)

var (
	description string
	amount      string
)

// Cmd represents the categorize command.
var Cmd = &cobra.Command{
	Use:   "categorize",
	Short: "Classify a single transaction description",
	Long: `Runs one description and amount through the keyword engine and prints the
category and hierarchy labels that a real transaction would receive.`,
	RunE: categorizeFunc,
}

func init() {
	Cmd.Flags().StringVarP(&description, "desc", "d", "", "Transaction description")
	Cmd.Flags().StringVarP(&amount, "amount", "a", "", "Transaction amount (bank sign)")
	_ = Cmd.MarkFlagRequired("desc")
}

func categorizeFunc(cmd *cobra.Command, args []string) error {
	root.Log.Info("Categorize command called")

	cfg, _ := root.ResolveConfig()

	desc := normalize.Clean(description)
	amt := models.ParseAmount(amount)

	engine := categorizer.NewEngine(root.Log)
	result := engine.Categorize(desc, amt, cfg)
	assigned := hierarchy.Assign(result.Category, desc, cfg, result.Subcategory, "")

	root.Log.Info("Transaction classified",
		logging.Field{Key: logging.FieldCategory, Value: result.Category},
		logging.Field{Key: logging.FieldSubcategory, Value: assigned.Subcategory},
		logging.Field{Key: "sub_subcategory", Value: assigned.SubSubcategory},
		logging.Field{Key: "sub_sub_subcategory", Value: assigned.SubSubSubcategory})
	return nil
}
