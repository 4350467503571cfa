package cart

import (
	"testing"

	"golden-fork/storefront/internal/domain"

	"github.com/stretchr/testify/assert"
)

type stubSource struct {
	items map[string]domain.MenuItem
}

func (s *stubSource) Item(id string) (domain.MenuItem, bool) {
	item, ok := s.items[id]
	return item, ok
}

func newTestSource() *stubSource {
	return &stubSource{items: map[string]domain.MenuItem{
		"F1": {ID: "F1", Name: "Classic Burger", Price: 9.99, Category: "BURGERS"},
		"F2": {ID: "F2", Name: "Margherita Pizza", Price: 12.50, Category: "PIZZAS"},
	}}
}

func TestStore_Add(t *testing.T) {
	tests := []struct {
		name      string
		adds      []string
		wantLines int
		wantCount int
	}{
		{
			name:      "single add creates one line",
			adds:      []string{"F1"},
			wantLines: 1,
			wantCount: 1,
		},
		{
			name:      "same item twice merges into one line",
			adds:      []string{"F1", "F1"},
			wantLines: 1,
			wantCount: 2,
		},
		{
			name:      "distinct items keep insertion order",
			adds:      []string{"F2", "F1", "F2"},
			wantLines: 2,
			wantCount: 3,
		},
		{
			name:      "unknown id is ignored",
			adds:      []string{"F1", "missing"},
			wantLines: 1,
			wantCount: 1,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			store := New(newTestSource(), nil)
			for _, id := range testCase.adds {
				store.Add(id)
			}

			lines := store.Lines()
			assert.Len(t, lines, testCase.wantLines)
			assert.Equal(t, testCase.wantCount, store.ItemCount())
		})
	}
}

func TestStore_AddPreservesInsertionOrder(t *testing.T) {
	store := New(newTestSource(), nil)
	store.Add("F2")
	store.Add("F1")

	lines := store.Lines()
	assert.Equal(t, "F2", lines[0].Item.ID)
	assert.Equal(t, "F1", lines[1].Item.ID)
}

func TestStore_AdjustQuantity(t *testing.T) {
	tests := []struct {
		name      string
		itemID    string
		delta     int
		wantLines int
		wantCount int
	}{
		{
			name:      "increment",
			itemID:    "F1",
			delta:     1,
			wantLines: 1,
			wantCount: 3,
		},
		{
			name:      "decrement keeps positive line",
			itemID:    "F1",
			delta:     -1,
			wantLines: 1,
			wantCount: 1,
		},
		{
			name:      "decrement to zero removes line",
			itemID:    "F1",
			delta:     -2,
			wantLines: 0,
			wantCount: 0,
		},
		{
			name:      "decrement below zero removes line",
			itemID:    "F1",
			delta:     -5,
			wantLines: 0,
			wantCount: 0,
		},
		{
			name:      "absent id is a no-op",
			itemID:    "missing",
			delta:     1,
			wantLines: 1,
			wantCount: 2,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			store := New(newTestSource(), nil)
			store.Add("F1")
			store.Add("F1")

			store.AdjustQuantity(testCase.itemID, testCase.delta)

			assert.Len(t, store.Lines(), testCase.wantLines)
			assert.Equal(t, testCase.wantCount, store.ItemCount())

			for _, line := range store.Lines() {
				assert.GreaterOrEqual(t, line.Quantity, 1)
			}
		})
	}
}

func TestStore_DerivedTotalsNeverDrift(t *testing.T) {
	store := New(newTestSource(), nil)

	ops := []func(){
		func() { store.Add("F1") },
		func() { store.Add("F2") },
		func() { store.Add("F1") },
		func() { store.AdjustQuantity("F2", 3) },
		func() { store.AdjustQuantity("F1", -1) },
		func() { store.AdjustQuantity("F2", -4) },
		func() { store.Add("F2") },
	}

	for _, op := range ops {
		op()

		var wantSubtotal float64
		wantCount := 0
		for _, line := range store.Lines() {
			wantSubtotal += line.Item.Price * float64(line.Quantity)
			wantCount += line.Quantity
		}
		assert.InDelta(t, wantSubtotal, store.Subtotal(), 1e-9)
		assert.Equal(t, wantCount, store.ItemCount())
	}
}

func TestStore_ScenarioSingleItemWalk(t *testing.T) {
	store := New(newTestSource(), nil)

	store.Add("F1")
	assert.InDelta(t, 9.99, store.Subtotal(), 1e-9)
	assert.Equal(t, 1, store.ItemCount())

	store.Add("F1")
	assert.Equal(t, 2, store.Lines()[0].Quantity)
	assert.InDelta(t, 19.98, store.Subtotal(), 1e-9)

	store.AdjustQuantity("F1", -2)
	assert.Empty(t, store.Lines())
	assert.InDelta(t, 0.0, store.Subtotal(), 1e-9)
}

func TestStore_SnapshotIgnoresLaterCatalogChanges(t *testing.T) {
	source := newTestSource()
	store := New(source, nil)
	store.Add("F1")

	// A catalog refresh reprices the item after it entered the cart.
	source.items["F1"] = domain.MenuItem{ID: "F1", Name: "Classic Burger", Price: 99.99}
	store.Add("F2")

	assert.InDelta(t, 9.99+12.50, store.Subtotal(), 1e-9)
}

func TestStore_OnChangeFiresAfterEveryMutation(t *testing.T) {
	renders := 0
	store := New(newTestSource(), func() { renders++ })

	store.Add("F1")
	store.Add("F1")
	store.AdjustQuantity("F1", -1)
	store.Clear()

	assert.Equal(t, 4, renders)
}

func TestStore_OnChangeNotFiredForUnknownAdd(t *testing.T) {
	renders := 0
	store := New(newTestSource(), func() { renders++ })

	store.Add("missing")
	store.AdjustQuantity("missing", 1)

	assert.Equal(t, 0, renders)
}

func TestStore_Clear(t *testing.T) {
	store := New(newTestSource(), nil)
	store.Add("F1")
	store.Add("F2")

	store.Clear()

	assert.Empty(t, store.Lines())
	assert.Equal(t, 0, store.ItemCount())
	assert.InDelta(t, 0.0, store.Subtotal(), 1e-9)
}
