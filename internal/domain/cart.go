package domain

import (
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Spec is one name/value pair of a purchasable configuration, e.g. color=red.
type Spec struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// CartItem is one line of the shopping cart.
type CartItem struct {
	ID        int64           `json:"id"`
	ProductID int64           `json:"product_id"`
	Name      string          `json:"name"`
	Image     string          `json:"image"`
	Price     decimal.Decimal `json:"price"`
	SKU       string          `json:"sku"`
	Quantity  int             `json:"quantity"`
	Selected  bool            `json:"selected"`
	Stock     int             `json:"stock"`
	Specs     []Spec          `json:"specs,omitempty"`
}

// DedupeKey identifies the logical cart line: the same product with an
// equivalent spec set maps to one key no matter what order the specs were
// picked in.
func (i CartItem) DedupeKey() string {
	sorted := make([]Spec, len(i.Specs))
	copy(sorted, i.Specs)
	sort.Slice(sorted, func(a, b int) bool {
		if sorted[a].Name != sorted[b].Name {
			return sorted[a].Name < sorted[b].Name
		}
		return sorted[a].Value < sorted[b].Value
	})

	var b strings.Builder
	b.WriteString(strconv.FormatInt(i.ProductID, 10))
	for _, s := range sorted {
		b.WriteByte('|')
		b.WriteString(strconv.Quote(s.Name))
		b.WriteByte('=')
		b.WriteString(strconv.Quote(s.Value))
	}

	return b.String()
}

// ClampQuantity constrains a requested quantity to [1, stock].
func ClampQuantity(quantity, stock int) int {
	if quantity > stock {
		quantity = stock
	}
	if quantity < 1 {
		return 1
	}
	return quantity
}

// CartSnapshot is the derived read-only view of a cart, recomputed on every
// read and never persisted on its own.
type CartSnapshot struct {
	TotalCount    int
	SelectedCount int
	SelectedTotal decimal.Decimal
	AllSelected   bool
	SelectedItems []CartItem
}

// SnapshotOf computes the aggregates for a list of cart lines. An empty cart
// is never reported as all-selected.
func SnapshotOf(items []CartItem) CartSnapshot {
	snapshot := CartSnapshot{
		SelectedTotal: decimal.Zero,
		AllSelected:   len(items) > 0,
		SelectedItems: make([]CartItem, 0, len(items)),
	}

	for _, item := range items {
		snapshot.TotalCount += item.Quantity
		if !item.Selected {
			snapshot.AllSelected = false
			continue
		}

		snapshot.SelectedCount += item.Quantity
		snapshot.SelectedTotal = snapshot.SelectedTotal.Add(
			item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
		snapshot.SelectedItems = append(snapshot.SelectedItems, item)
	}

	return snapshot
}
