// Package cart holds the device-scoped shopping cart. Each device
// (identified by the X-Device-ID header the storefront issues) owns one
// cart; mutations are applied in memory as a single locked unit and
// mirrored to a Storage snapshot afterwards. A failed snapshot write is
// a logged no-op, so the in-memory cart always reflects the mutation.
package cart

import (
	"log"
	"sync"
	"time"

	"sartor/models"
	"sartor/pricing"
)

type Cart struct {
	mu       sync.Mutex
	deviceID string
	lines    []models.CartItem
	storage  Storage
}

type Manager struct {
	mu      sync.Mutex
	carts   map[string]*Cart
	seen    map[string]time.Time
	storage Storage
}

// Carts idle longer than this are dropped from memory; the storage
// snapshot restores a returning device.
const idleTTL = time.Hour

func NewManager(storage Storage) *Manager {
	m := &Manager{
		carts:   make(map[string]*Cart),
		seen:    make(map[string]time.Time),
		storage: storage,
	}
	// Sweep idle carts so arbitrary device ids cannot grow the map
	// forever.
	go func() {
		for {
			time.Sleep(10 * time.Minute)
			m.evictIdle(idleTTL)
		}
	}()
	return m
}

// Cart returns the cart for a device, loading the stored snapshot on
// first access. A snapshot that fails to load or decode starts the
// device with an empty cart.
func (m *Manager) Cart(deviceID string) *Cart {
	m.mu.Lock()
	if c, ok := m.carts[deviceID]; ok {
		m.seen[deviceID] = time.Now()
		m.mu.Unlock()
		return c
	}
	m.mu.Unlock()

	// Load outside the lock so one slow snapshot read does not stall
	// every other device's cart.
	lines, err := m.storage.Load(deviceID)
	if err != nil {
		log.Printf("cart: snapshot load failed for %s, starting empty: %v", deviceID, err)
		lines = nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if c, ok := m.carts[deviceID]; ok {
		// another request finished the load first; use its cart
		m.seen[deviceID] = time.Now()
		return c
	}
	c := &Cart{deviceID: deviceID, lines: lines, storage: m.storage}
	m.carts[deviceID] = c
	m.seen[deviceID] = time.Now()
	return c
}

// evictIdle forgets carts not touched within maxIdle. Their snapshots
// stay in storage.
func (m *Manager) evictIdle(maxIdle time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, last := range m.seen {
		if time.Since(last) > maxIdle {
			delete(m.carts, id)
			delete(m.seen, id)
		}
	}
}

// Add appends a new line, or increments the quantity by 1 when a line
// with the same (product, size) already exists.
func (c *Cart) Add(item models.CartItem) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].ProductID == item.ProductID && c.lines[i].Size == item.Size {
			c.lines[i].Quantity++
			c.persist()
			return
		}
	}
	item.Quantity = 1
	c.lines = append(c.lines, item)
	c.persist()
}

// UpdateQuantity sets a line's quantity; n <= 0 removes the line.
// Returns false when no such line exists.
func (c *Cart) UpdateQuantity(productID, size string, n int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].ProductID == productID && c.lines[i].Size == size {
			if n <= 0 {
				c.lines = append(c.lines[:i], c.lines[i+1:]...)
			} else {
				c.lines[i].Quantity = n
			}
			c.persist()
			return true
		}
	}
	return false
}

func (c *Cart) Remove(productID, size string) bool {
	return c.UpdateQuantity(productID, size, 0)
}

func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = nil
	c.persist()
}

// Lines returns a copy of the current cart lines.
func (c *Cart) Lines() []models.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.CartItem, len(c.lines))
	copy(out, c.lines)
	return out
}

// TotalItems is the sum of all line quantities.
func (c *Cart) TotalItems() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := 0
	for _, l := range c.lines {
		total += l.Quantity
	}
	return total
}

// TotalPrice sums amount x quantity over all lines. A display price
// that does not parse counts as zero; the miss is logged so a genuinely
// free item stays distinguishable.
func (c *Cart) TotalPrice() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := 0
	for _, l := range c.lines {
		amount, ok := pricing.ParseAmount(l.Price)
		if !ok && l.Price != "" {
			log.Printf("cart: price %q on %s did not parse, counting 0", l.Price, l.ProductID)
		}
		total += amount * l.Quantity
	}
	return total
}

// persist mirrors the lines to storage. Callers hold c.mu.
func (c *Cart) persist() {
	if err := c.storage.Save(c.deviceID, c.lines); err != nil {
		log.Printf("cart: snapshot save failed for %s (kept in memory): %v", c.deviceID, err)
	}
}
