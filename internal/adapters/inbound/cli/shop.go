package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/abdidvp/storefront/internal/adapters/outbound/tui"
	"github.com/abdidvp/storefront/internal/application"
	"github.com/abdidvp/storefront/internal/domain"
	"github.com/spf13/cobra"
)

func newShopCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "shop",
		Short: "Start the interactive store menu",
		Long:  "List products, show the total stock and place orders from an interactive menu. Reads choices from stdin until Quit or end of input.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShop(cmd, opts)
		},
	}
}

func runShop(cmd *cobra.Command, opts *rootOptions) error {
	rt, err := openRuntime(opts)
	if err != nil {
		return err
	}
	defer rt.close()

	s := &session{
		svc: rt.svc,
		in:  bufio.NewScanner(cmd.InOrStdin()),
		out: cmd.OutOrStdout(),
	}
	s.run()
	return nil
}

// session is one interactive menu loop. Order failures are reported and
// the loop continues; end of input ends the session like Quit.
type session struct {
	svc *application.ShopService
	in  *bufio.Scanner
	out io.Writer
}

func (s *session) run() {
	for {
		fmt.Fprint(s.out, tui.RenderMenu(s.svc.Name()))
		choice, ok := s.prompt("Please choose a number: ")
		if !ok {
			fmt.Fprintln(s.out)
			return
		}

		switch choice {
		case "1":
			fmt.Fprint(s.out, tui.RenderProducts(s.svc.Products()))
		case "2":
			fmt.Fprint(s.out, tui.RenderTotal(s.svc.TotalQuantity()))
		case "3":
			s.makeOrder()
		case "4":
			fmt.Fprintln(s.out, "Goodbye!")
			return
		default:
			fmt.Fprint(s.out, tui.RenderWarning(fmt.Sprintf("Invalid choice. Please enter a number from 1 to %d.", len(tui.MenuOptions))))
		}
	}
}

func (s *session) prompt(label string) (string, bool) {
	fmt.Fprint(s.out, label)
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

func (s *session) makeOrder() {
	products := s.svc.Products()
	fmt.Fprint(s.out, tui.RenderProducts(products))
	fmt.Fprint(s.out, tui.RenderNotice("When you want to finish order, enter empty text."))

	var lines []domain.OrderLine
	for {
		choice, ok := s.prompt("Which product # do you want? ")
		if !ok || choice == "" {
			break
		}
		index, err := strconv.Atoi(choice)
		if err != nil || index < 1 || index > len(products) {
			fmt.Fprint(s.out, tui.RenderWarning("Invalid product number. Try again."))
			continue
		}

		amount, ok := s.prompt("What amount do you want? ")
		if !ok || amount == "" {
			break
		}
		quantity, err := strconv.Atoi(amount)
		if err != nil || quantity <= 0 {
			fmt.Fprint(s.out, tui.RenderWarning("Invalid quantity. Try again."))
			continue
		}

		lines = append(lines, domain.OrderLine{Index: index, Quantity: quantity})
		fmt.Fprint(s.out, tui.RenderNotice("Product added to list!"))
	}

	if len(lines) == 0 {
		fmt.Fprint(s.out, tui.RenderNotice("No products ordered."))
		return
	}

	receipt, err := s.svc.PlaceOrder(lines)
	if err != nil {
		fmt.Fprint(s.out, tui.RenderOrderFailed(err))
		return
	}
	fmt.Fprint(s.out, tui.RenderReceipt(receipt))
}
