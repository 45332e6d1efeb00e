package storefront

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mallcloud/mallctl/internal/domain"
	"github.com/shopspring/decimal"
)

// RenderCart renders the cart lines plus the derived aggregates.
func RenderCart(snapshot domain.CartSnapshot, items []domain.CartItem) (string, error) {
	return run(func(s styles) string {
		return renderCartView(snapshot, items, s)
	})
}

func renderCartView(snapshot domain.CartSnapshot, items []domain.CartItem, s styles) string {
	lines := []string{
		s.title.Render("Shopping Cart"),
		s.header.Render(fmt.Sprintf("lines: %d  items: %d", len(items), snapshot.TotalCount)),
	}

	if len(items) == 0 {
		lines = append(lines, s.empty.Render("Your cart is empty."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, item := range items {
		lines = append(lines, renderCartLine(item, s))
	}

	summary := fmt.Sprintf("selected: %d items  total: ¥%s",
		snapshot.SelectedCount, snapshot.SelectedTotal.StringFixed(2))
	if snapshot.AllSelected {
		summary += "  (all selected)"
	}
	lines = append(lines, s.summary.Render(summary))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderCartLine(item domain.CartItem, s styles) string {
	marker := s.unselected.Render("[ ]")
	if item.Selected {
		marker = s.selected.Render("[x]")
	}

	parts := []string{
		marker,
		" ",
		s.detail.Render(fmt.Sprintf("#%d", item.ID)),
		" ",
		s.name.Render(item.Name),
	}

	if spec := specLabel(item.Specs); spec != "" {
		parts = append(parts, " ", s.spec.Render(spec))
	}

	subtotal := item.Price.Mul(decimalFromInt(item.Quantity))
	parts = append(parts, " ",
		s.price.Render(fmt.Sprintf("¥%s × %d = ¥%s",
			item.Price.StringFixed(2), item.Quantity, subtotal.StringFixed(2))))

	if item.Quantity >= item.Stock {
		parts = append(parts, " ", s.badge.Render(fmt.Sprintf("(only %d in stock)", item.Stock)))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func decimalFromInt(n int) decimal.Decimal {
	return decimal.NewFromInt(int64(n))
}

func specLabel(specs []domain.Spec) string {
	if len(specs) == 0 {
		return ""
	}

	parts := make([]string, 0, len(specs))
	for _, spec := range specs {
		parts = append(parts, spec.Name+": "+spec.Value)
	}

	return "[" + strings.Join(parts, ", ") + "]"
}
