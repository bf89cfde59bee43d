package cart

import (
	"errors"
	"testing"
	"time"

	"sartor/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingStorage rejects every save, standing in for an exhausted
// device store.
type failingStorage struct{}

func (failingStorage) Load(string) ([]models.CartItem, error) { return nil, nil }
func (failingStorage) Save(string, []models.CartItem) error   { return errors.New("quota exceeded") }

func polo(size string) models.CartItem {
	return models.CartItem{ProductID: "p1", Name: "Navy Polo Shirt", Price: "Rs. 1,500", Size: size}
}

func TestAddSameLineIncrements(t *testing.T) {
	c := NewManager(NewMemoryStorage()).Cart("dev1")

	c.Add(polo("M"))
	c.Add(polo("M"))

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, 2, c.TotalItems())
}

func TestAddDifferentSizesAreSeparateLines(t *testing.T) {
	c := NewManager(NewMemoryStorage()).Cart("dev1")

	c.Add(polo("M"))
	c.Add(polo("L"))

	assert.Len(t, c.Lines(), 2)
	assert.Equal(t, 2, c.TotalItems())
}

func TestUpdateQuantityZeroRemovesLine(t *testing.T) {
	c := NewManager(NewMemoryStorage()).Cart("dev1")

	c.Add(polo("M"))
	c.Add(polo("L"))
	require.True(t, c.UpdateQuantity("p1", "M", 0))

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "L", lines[0].Size)
	assert.Equal(t, 1, c.TotalItems())
}

func TestTotalItemsTracksQuantities(t *testing.T) {
	c := NewManager(NewMemoryStorage()).Cart("dev1")

	c.Add(polo("M"))
	c.UpdateQuantity("p1", "M", 5)
	c.Add(polo("L"))
	c.UpdateQuantity("p1", "L", 3)
	assert.Equal(t, 8, c.TotalItems())

	c.Remove("p1", "M")
	assert.Equal(t, 3, c.TotalItems())

	c.Clear()
	assert.Zero(t, c.TotalItems())
	assert.Empty(t, c.Lines())
}

func TestTotalPriceTreatsUnparsableAsZero(t *testing.T) {
	c := NewManager(NewMemoryStorage()).Cart("dev1")

	c.Add(models.CartItem{ProductID: "p1", Name: "Polo", Price: "Rs. 1,500"})
	c.UpdateQuantity("p1", "", 2)
	c.Add(models.CartItem{ProductID: "p2", Name: "Belt", Price: "price on request"})

	assert.Equal(t, 3000, c.TotalPrice())
}

func TestUpdateUnknownLineReturnsFalse(t *testing.T) {
	c := NewManager(NewMemoryStorage()).Cart("dev1")
	assert.False(t, c.UpdateQuantity("nope", "M", 2))
	assert.False(t, c.Remove("nope", "M"))
}

func TestSnapshotFailureIsNonFatal(t *testing.T) {
	c := NewManager(failingStorage{}).Cart("dev1")

	c.Add(polo("M"))
	c.Add(polo("M"))

	// the mutation must still be visible in memory
	assert.Equal(t, 2, c.TotalItems())
	assert.Equal(t, 3000, c.TotalPrice())
}

func TestSnapshotRoundTrip(t *testing.T) {
	storage := NewMemoryStorage()

	c := NewManager(storage).Cart("dev1")
	c.Add(polo("M"))
	c.Add(polo("L"))

	// a fresh manager (new process) sees the persisted snapshot
	again := NewManager(storage).Cart("dev1")
	assert.Equal(t, c.Lines(), again.Lines())
}

func TestIdleCartsAreEvicted(t *testing.T) {
	storage := NewMemoryStorage()
	m := NewManager(storage)

	first := m.Cart("dev1")
	first.Add(polo("M"))

	m.mu.Lock()
	m.seen["dev1"] = time.Now().Add(-2 * idleTTL)
	m.mu.Unlock()
	m.evictIdle(idleTTL)

	// the in-memory cart is gone, but the snapshot restores the lines
	again := m.Cart("dev1")
	require.NotSame(t, first, again)
	assert.Equal(t, first.Lines(), again.Lines())
}

func TestRecentCartsSurviveEviction(t *testing.T) {
	m := NewManager(NewMemoryStorage())

	c := m.Cart("dev1")
	m.evictIdle(idleTTL)

	assert.Same(t, c, m.Cart("dev1"))
}

func TestCartsAreScopedPerDevice(t *testing.T) {
	m := NewManager(NewMemoryStorage())

	m.Cart("dev1").Add(polo("M"))
	assert.Zero(t, m.Cart("dev2").TotalItems())
	assert.Equal(t, 1, m.Cart("dev1").TotalItems())
}
