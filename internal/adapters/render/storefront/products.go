package storefront

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/mallcloud/mallctl/internal/domain"
)

// RenderProducts renders one page of catalog results.
func RenderProducts(products []domain.Product, total int64) (string, error) {
	return run(func(s styles) string {
		return renderProductsView(products, total, s)
	})
}

func renderProductsView(products []domain.Product, total int64, s styles) string {
	lines := []string{
		s.title.Render("Products"),
		s.header.Render(fmt.Sprintf("showing %d of %d", len(products), total)),
	}

	if len(products) == 0 {
		lines = append(lines, s.empty.Render("No products found."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, product := range products {
		lines = append(lines, renderProductLine(product, s))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderProductLine(product domain.Product, s styles) string {
	parts := []string{
		s.detail.Render(fmt.Sprintf("#%d", product.ID)),
		" ",
		s.name.Render(product.Name),
		" ",
		s.price.Render("¥" + product.Price.StringFixed(2)),
	}

	if product.OriginalPrice.GreaterThan(product.Price) {
		parts = append(parts, " ", s.spec.Render("was ¥"+product.OriginalPrice.StringFixed(2)))
	}

	parts = append(parts, " ", s.spec.Render(fmt.Sprintf("stock %d, sold %d", product.Stock, product.Sales)))

	if product.IsNew {
		parts = append(parts, " ", s.badge.Render("NEW"))
	}
	if product.IsFeatured {
		parts = append(parts, " ", s.selected.Render("FEATURED"))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// RenderProduct renders a single catalog entry in detail.
func RenderProduct(product domain.Product) (string, error) {
	return run(func(s styles) string {
		return renderProductView(product, s)
	})
}

func renderProductView(product domain.Product, s styles) string {
	lines := []string{
		s.name.Render(product.Name),
		s.header.Render(fmt.Sprintf("#%d  sku %s", product.ID, product.SKU)),
		s.price.Render("¥" + product.Price.StringFixed(2)),
		s.detail.Render(fmt.Sprintf("stock %d, sold %d", product.Stock, product.Sales)),
	}

	if spec := specLabel(product.Specs); spec != "" {
		lines = append(lines, s.spec.Render(spec))
	}
	if product.Description != "" {
		lines = append(lines, s.detail.Render(product.Description))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
