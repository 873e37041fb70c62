package cli

import (
	"encoding/json"
	"fmt"

	"github.com/abdidvp/storefront/internal/adapters/outbound/tui"
	"github.com/spf13/cobra"
)

func newListCmd(opts *rootOptions) *cobra.Command {
	var (
		jsonOutput bool
		all        bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List products available for sale",
		Long:  "Print the numbered list of active products. The numbers are the ones accepted by the order command.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := openRuntime(opts)
			if err != nil {
				return err
			}
			defer rt.close()

			products := rt.svc.Products()
			if all {
				products = rt.svc.Catalog()
			}

			if jsonOutput {
				return renderJSON(cmd, products)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderProducts(products))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	cmd.Flags().BoolVar(&all, "all", false, "Include inactive products (numbers are catalog positions)")

	return cmd
}

func newTotalCmd(opts *rootOptions) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "total",
		Short: "Show the total quantity of active products",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := openRuntime(opts)
			if err != nil {
				return err
			}
			defer rt.close()

			total := rt.svc.TotalQuantity()
			if jsonOutput {
				return renderJSON(cmd, map[string]int{"total_quantity": total})
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderTotal(total))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}

func renderJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
