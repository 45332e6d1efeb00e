package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDedupeKeyIgnoresSpecOrder(t *testing.T) {
	a := CartItem{ProductID: 7, Specs: []Spec{
		{Name: "color", Value: "red"},
		{Name: "size", Value: "L"},
	}}
	b := CartItem{ProductID: 7, Specs: []Spec{
		{Name: "size", Value: "L"},
		{Name: "color", Value: "red"},
	}}

	assert.Equal(t, a.DedupeKey(), b.DedupeKey())
}

func TestDedupeKeySeparatesProductsAndSpecs(t *testing.T) {
	tests := []struct {
		name string
		a    CartItem
		b    CartItem
	}{
		{
			name: "different products",
			a:    CartItem{ProductID: 1},
			b:    CartItem{ProductID: 2},
		},
		{
			name: "different spec values",
			a:    CartItem{ProductID: 1, Specs: []Spec{{Name: "color", Value: "red"}}},
			b:    CartItem{ProductID: 1, Specs: []Spec{{Name: "color", Value: "blue"}}},
		},
		{
			name: "specs versus no specs",
			a:    CartItem{ProductID: 1, Specs: []Spec{{Name: "color", Value: "red"}}},
			b:    CartItem{ProductID: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotEqual(t, tt.a.DedupeKey(), tt.b.DedupeKey())
		})
	}
}

func TestDedupeKeyDoesNotMutateSpecs(t *testing.T) {
	item := CartItem{ProductID: 3, Specs: []Spec{
		{Name: "size", Value: "L"},
		{Name: "color", Value: "red"},
	}}

	_ = item.DedupeKey()

	assert.Equal(t, "size", item.Specs[0].Name)
}

func TestClampQuantity(t *testing.T) {
	tests := []struct {
		name     string
		quantity int
		stock    int
		want     int
	}{
		{name: "within range", quantity: 3, stock: 5, want: 3},
		{name: "above stock", quantity: 10, stock: 5, want: 5},
		{name: "below one", quantity: 0, stock: 5, want: 1},
		{name: "negative", quantity: -4, stock: 5, want: 1},
		{name: "zero stock still floors at one", quantity: 3, stock: 0, want: 1},
		{name: "exactly stock", quantity: 5, stock: 5, want: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClampQuantity(tt.quantity, tt.stock))
		})
	}
}

func TestSnapshotOfEmptyCart(t *testing.T) {
	snapshot := SnapshotOf(nil)

	assert.Zero(t, snapshot.TotalCount)
	assert.Zero(t, snapshot.SelectedCount)
	assert.True(t, snapshot.SelectedTotal.IsZero())
	assert.False(t, snapshot.AllSelected, "an empty cart is never all-selected")
	assert.Empty(t, snapshot.SelectedItems)
}

func TestSnapshotOfAggregates(t *testing.T) {
	items := []CartItem{
		{ID: 1, Price: decimal.RequireFromString("19.90"), Quantity: 2, Selected: true},
		{ID: 2, Price: decimal.RequireFromString("5.00"), Quantity: 3, Selected: false},
		{ID: 3, Price: decimal.RequireFromString("100.00"), Quantity: 1, Selected: true},
	}

	snapshot := SnapshotOf(items)

	require.Equal(t, 6, snapshot.TotalCount)
	assert.Equal(t, 3, snapshot.SelectedCount)
	assert.True(t, snapshot.SelectedTotal.Equal(decimal.RequireFromString("139.80")),
		"got %s", snapshot.SelectedTotal)
	assert.False(t, snapshot.AllSelected)
	require.Len(t, snapshot.SelectedItems, 2)
	assert.Equal(t, int64(1), snapshot.SelectedItems[0].ID)
	assert.Equal(t, int64(3), snapshot.SelectedItems[1].ID)
}

func TestSnapshotOfAllSelected(t *testing.T) {
	items := []CartItem{
		{ID: 1, Price: decimal.New(1, 0), Quantity: 1, Selected: true},
		{ID: 2, Price: decimal.New(2, 0), Quantity: 1, Selected: true},
	}

	assert.True(t, SnapshotOf(items).AllSelected)
}
