package cli

import (
	"fmt"

	"github.com/abdidvp/storefront/internal/adapters/outbound/tui"
	"github.com/abdidvp/storefront/internal/application"
	"github.com/spf13/cobra"
)

func newOrderCmd(opts *rootOptions) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "order INDEX:QUANTITY...",
		Short: "Place an order against the product list",
		Long:  "Buy products by their number in the list output, e.g. `storefront order 1:2 3:1`. Lines are bought in order; a failing line stops the order.",
		Example: `  storefront order 1:2 3:1
  storefront order 1:2,2:5 --json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lines, err := application.ParseOrderLines(args)
			if err != nil {
				return err
			}

			rt, err := openRuntime(opts)
			if err != nil {
				return err
			}
			defer rt.close()

			receipt, err := rt.svc.PlaceOrder(lines)
			if err != nil {
				return fmt.Errorf("order failed: %w", err)
			}

			if jsonOutput {
				return renderJSON(cmd, receipt)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderReceipt(receipt))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the receipt as JSON")

	return cmd
}
