package application

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mallcloud/mallctl/internal/domain"
)

func newTestCart(t *testing.T) (*CartStore, *memStore) {
	t.Helper()

	storage := newMemStore()
	store, err := NewCartStore(context.Background(), storage)
	require.NoError(t, err)

	return store, storage
}

func shirt(qty int) domain.CartItem {
	return domain.CartItem{
		ProductID: 42,
		Name:      "Linen Shirt",
		Price:     decimal.RequireFromString("59.90"),
		SKU:       "SHIRT-42",
		Quantity:  qty,
		Stock:     5,
		Specs: []domain.Spec{
			{Name: "color", Value: "white"},
			{Name: "size", Value: "M"},
		},
	}
}

func TestAddMergesEqualLinesRegardlessOfSpecOrder(t *testing.T) {
	store, _ := newTestCart(t)
	ctx := context.Background()

	require.NoError(t, store.Add(ctx, shirt(2)))

	reordered := shirt(3)
	reordered.Specs = []domain.Spec{
		{Name: "size", Value: "M"},
		{Name: "color", Value: "white"},
	}
	require.NoError(t, store.Add(ctx, reordered))

	items := store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
}

func TestAddDoesNotClampMergedQuantity(t *testing.T) {
	store, _ := newTestCart(t)
	ctx := context.Background()

	require.NoError(t, store.Add(ctx, shirt(4)))
	require.NoError(t, store.Add(ctx, shirt(4)))

	items := store.Items()
	require.Len(t, items, 1)
	// The clamp applies on explicit quantity edits, not on merge.
	assert.Equal(t, 8, items[0].Quantity)
}

func TestAddAppendsNewLineSelected(t *testing.T) {
	store, _ := newTestCart(t)
	ctx := context.Background()

	candidate := shirt(1)
	candidate.Selected = false
	require.NoError(t, store.Add(ctx, candidate))

	other := shirt(1)
	other.ProductID = 43
	require.NoError(t, store.Add(ctx, other))

	items := store.Items()
	require.Len(t, items, 2)
	assert.True(t, items[0].Selected)
	assert.True(t, items[1].Selected)
	assert.NotEqual(t, items[0].ID, items[1].ID)
}

func TestUpdateQuantityClampsToStock(t *testing.T) {
	store, _ := newTestCart(t)
	ctx := context.Background()

	require.NoError(t, store.Add(ctx, shirt(2)))
	id := store.Items()[0].ID

	tests := []struct {
		name      string
		requested int
		want      int
	}{
		{name: "above stock", requested: 10, want: 5},
		{name: "below one", requested: 0, want: 1},
		{name: "within range", requested: 3, want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, store.UpdateQuantity(ctx, id, tt.requested))
			assert.Equal(t, tt.want, store.Items()[0].Quantity)
		})
	}
}

func TestMutationsOnMissingLineAreNoOps(t *testing.T) {
	store, _ := newTestCart(t)
	ctx := context.Background()

	require.NoError(t, store.Add(ctx, shirt(2)))
	before := store.Items()

	// Missing targets are tolerated by contract: UI races such as
	// remove-then-edit must not surface errors.
	require.NoError(t, store.UpdateQuantity(ctx, 999, 3))
	require.NoError(t, store.Remove(ctx, 999))
	require.NoError(t, store.ToggleSelect(ctx, 999))

	assert.Equal(t, before, store.Items())
}

func TestRemoveDeletesLine(t *testing.T) {
	store, _ := newTestCart(t)
	ctx := context.Background()

	require.NoError(t, store.Add(ctx, shirt(2)))
	id := store.Items()[0].ID

	require.NoError(t, store.Remove(ctx, id))

	assert.Empty(t, store.Items())
}

func TestToggleSelectFlipsLine(t *testing.T) {
	store, _ := newTestCart(t)
	ctx := context.Background()

	require.NoError(t, store.Add(ctx, shirt(2)))
	id := store.Items()[0].ID

	require.NoError(t, store.ToggleSelect(ctx, id))
	assert.False(t, store.Items()[0].Selected)

	require.NoError(t, store.ToggleSelect(ctx, id))
	assert.True(t, store.Items()[0].Selected)
}

func TestToggleSelectAllOnEmptyCart(t *testing.T) {
	store, _ := newTestCart(t)

	require.NoError(t, store.ToggleSelectAll(context.Background()))

	assert.Empty(t, store.Items())
	assert.False(t, store.Snapshot().AllSelected)
}

func TestToggleSelectAllFromPartialSelection(t *testing.T) {
	store, _ := newTestCart(t)
	ctx := context.Background()

	require.NoError(t, store.Add(ctx, shirt(1)))
	other := shirt(1)
	other.ProductID = 43
	require.NoError(t, store.Add(ctx, other))

	// Partial selection: deselect the first line.
	first := store.Items()[0].ID
	require.NoError(t, store.ToggleSelect(ctx, first))

	// Any partial selection selects all; only a full-select state deselects.
	require.NoError(t, store.ToggleSelectAll(ctx))
	assert.True(t, store.Snapshot().AllSelected)

	require.NoError(t, store.ToggleSelectAll(ctx))
	for _, item := range store.Items() {
		assert.False(t, item.Selected)
	}
}

func TestToggleSelectAllRoundTripFromFullSelection(t *testing.T) {
	store, _ := newTestCart(t)
	ctx := context.Background()

	require.NoError(t, store.Add(ctx, shirt(1)))
	other := shirt(1)
	other.ProductID = 43
	require.NoError(t, store.Add(ctx, other))
	before := store.Items()

	require.NoError(t, store.ToggleSelectAll(ctx))
	require.NoError(t, store.ToggleSelectAll(ctx))

	assert.Equal(t, before, store.Items())
}

func TestClearEmptiesCart(t *testing.T) {
	store, storage := newTestCart(t)
	ctx := context.Background()

	require.NoError(t, store.Add(ctx, shirt(2)))
	require.NoError(t, store.Clear(ctx))

	assert.Empty(t, store.Items())

	restored, err := NewCartStore(ctx, storage)
	require.NoError(t, err)
	assert.Empty(t, restored.Items())
}

func TestRemoveSelectedKeepsUnselectedLines(t *testing.T) {
	store, _ := newTestCart(t)
	ctx := context.Background()

	require.NoError(t, store.Add(ctx, shirt(2)))
	other := shirt(1)
	other.ProductID = 43
	require.NoError(t, store.Add(ctx, other))

	keep := store.Items()[1].ID
	require.NoError(t, store.ToggleSelect(ctx, keep))

	require.NoError(t, store.RemoveSelected(ctx))

	items := store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, keep, items[0].ID)
}

func TestCartRoundTripThroughStorage(t *testing.T) {
	store, storage := newTestCart(t)
	ctx := context.Background()

	require.NoError(t, store.Add(ctx, shirt(2)))
	other := shirt(3)
	other.ProductID = 43
	other.Specs = nil
	require.NoError(t, store.Add(ctx, other))
	id := store.Items()[0].ID
	require.NoError(t, store.ToggleSelect(ctx, id))

	restored, err := NewCartStore(ctx, storage)
	require.NoError(t, err)

	assert.Equal(t, store.Items(), restored.Items())

	original := store.Snapshot()
	snapshot := restored.Snapshot()
	assert.Equal(t, original.TotalCount, snapshot.TotalCount)
	assert.True(t, original.SelectedTotal.Equal(snapshot.SelectedTotal))
}

func TestRestoreFromEmptyStorageYieldsEmptyCart(t *testing.T) {
	store, err := NewCartStore(context.Background(), newMemStore())
	require.NoError(t, err)

	assert.Empty(t, store.Items())
}

func TestAddEditRemoveSelectedScenario(t *testing.T) {
	store, _ := newTestCart(t)
	ctx := context.Background()

	item := domain.CartItem{ProductID: 1, Price: decimal.New(10, 0), Quantity: 2, Stock: 5}
	require.NoError(t, store.Add(ctx, item))
	require.NoError(t, store.Add(ctx, domain.CartItem{ProductID: 1, Price: decimal.New(10, 0), Quantity: 2, Stock: 5}))

	items := store.Items()
	require.Len(t, items, 1)
	require.Equal(t, 4, items[0].Quantity)

	require.NoError(t, store.UpdateQuantity(ctx, items[0].ID, 10))
	assert.Equal(t, 5, store.Items()[0].Quantity)

	require.NoError(t, store.RemoveSelected(ctx))
	assert.Empty(t, store.Items())
}
