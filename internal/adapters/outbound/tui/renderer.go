package tui

import (
	"fmt"
	"strings"

	"github.com/abdidvp/storefront/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// ── Warm palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
	info    = lipgloss.Color("#8B949E") // soft blue-gray
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 4).
			Width(40)

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	warnStyle     = lipgloss.NewStyle().Foreground(warning)
	promoStyle    = lipgloss.NewStyle().Foreground(accent)
	infoStyle     = lipgloss.NewStyle().Foreground(info)
	errorTagStyle = lipgloss.NewStyle().Foreground(danger).Bold(true)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	nameStyle     = lipgloss.NewStyle().Bold(true).Foreground(fg)
	separatorLine = faintStyle.Render(strings.Repeat("─", 48))
)

// MenuOptions are the interactive menu entries, in display order.
var MenuOptions = []string{
	"List all products in store",
	"Show total amount in store",
	"Make an order",
	"Quit",
}

// RenderMenu formats the interactive store menu.
func RenderMenu(storeName string) string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(storeName))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Store Menu"))
	b.WriteString("\n")
	for i, opt := range MenuOptions {
		fmt.Fprintf(&b, "\n%s %s", promoStyle.Render(fmt.Sprintf("%d.", i+1)), opt)
	}

	return "\n" + boxStyle.Render(b.String()) + "\n"
}

// RenderProducts formats a numbered product listing.
func RenderProducts(products []domain.ProductView) string {
	var b strings.Builder

	b.WriteString("  " + separatorLine + "\n")
	if len(products) == 0 {
		b.WriteString("  " + dimStyle.Render("No products available.") + "\n")
	}
	for _, p := range products {
		b.WriteString("  " + renderProductLine(p) + "\n")
	}
	b.WriteString("  " + separatorLine + "\n")

	return b.String()
}

func renderProductLine(p domain.ProductView) string {
	parts := []string{
		nameStyle.Render(p.Name),
		"Price: $" + domain.FormatAmount(p.Price),
	}

	if p.Unlimited() {
		parts = append(parts, "Quantity: "+infoStyle.Render("Unlimited"))
	} else {
		parts = append(parts, "Quantity: "+stockStyle(p.Quantity).Render(fmt.Sprintf("%d", p.Quantity)))
	}

	if p.MaxPerOrder > 0 {
		parts = append(parts, warnStyle.Render(fmt.Sprintf("Maximum: %d per order", p.MaxPerOrder)))
	}

	if p.Promotion != "" {
		parts = append(parts, "Promotion: "+promoStyle.Render(p.Promotion))
	} else {
		parts = append(parts, "Promotion: "+dimStyle.Render("None"))
	}

	line := fmt.Sprintf("%s %s", dimStyle.Render(fmt.Sprintf("%d.", p.Index)), strings.Join(parts, ", "))
	if !p.Active {
		line += " " + faintStyle.Render("(inactive)")
	}
	return line
}

func stockStyle(quantity int) lipgloss.Style {
	switch {
	case quantity == 0:
		return failStyle
	case quantity < 10:
		return warnStyle
	default:
		return passStyle
	}
}

// RenderTotal formats the total stock summary.
func RenderTotal(total int) string {
	return fmt.Sprintf("\n  Total of %s items in store\n", titleStyle.Render(fmt.Sprintf("%d", total)))
}

// RenderReceipt formats a successful order.
func RenderReceipt(r *domain.Receipt) string {
	var b strings.Builder

	b.WriteString("  " + separatorLine + "\n")
	for _, line := range r.Lines {
		fmt.Fprintf(&b, "  %s x %d  %s\n",
			nameStyle.Render(line.Name),
			line.Quantity,
			dimStyle.Render("$"+domain.FormatAmount(line.Charge)),
		)
	}
	b.WriteString("  " + separatorLine + "\n")
	fmt.Fprintf(&b, "  %s Total payment: %s\n",
		passStyle.Render("Order made!"),
		titleStyle.Render("$"+domain.FormatAmount(r.Total)),
	)
	fmt.Fprintf(&b, "  %s\n", faintStyle.Render("order "+r.ID))

	return b.String()
}

// RenderOrderFailed formats an order error for the user.
func RenderOrderFailed(err error) string {
	return fmt.Sprintf("  %s %s\n", errorTagStyle.Render("Order failed:"), failStyle.Render(err.Error()))
}

// RenderNotice formats a short informational message such as an input hint.
func RenderNotice(msg string) string {
	return "  " + dimStyle.Render(msg) + "\n"
}

// RenderWarning formats a recoverable input problem.
func RenderWarning(msg string) string {
	return "  " + warnStyle.Render(msg) + "\n"
}
