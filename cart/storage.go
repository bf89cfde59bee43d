package cart

import (
	"encoding/json"
	"log"
	"time"

	"sartor/globals"
	"sartor/models"

	"github.com/redis/go-redis/v9"
)

// Storage persists cart snapshots per device. Injected so tests can
// substitute an in-memory fake.
type Storage interface {
	Load(deviceID string) ([]models.CartItem, error)
	Save(deviceID string, lines []models.CartItem) error
}

// Snapshots idle longer than this are allowed to expire; an abandoned
// cart is not worth keeping forever.
const snapshotTTL = 30 * 24 * time.Hour

// RedisStorage keeps one JSON snapshot per device under cart:<id>.
type RedisStorage struct {
	Conn *redis.Client
}

func (s *RedisStorage) Load(deviceID string) ([]models.CartItem, error) {
	raw, err := s.Conn.Get(globals.Ctx, "cart:"+deviceID).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var lines []models.CartItem
	if err := json.Unmarshal([]byte(raw), &lines); err != nil {
		// A corrupt snapshot degrades to an empty cart, same as the
		// storefront's local-storage decode fallback.
		log.Printf("cart: corrupt snapshot for %s, resetting: %v", deviceID, err)
		return nil, nil
	}
	return lines, nil
}

func (s *RedisStorage) Save(deviceID string, lines []models.CartItem) error {
	data, err := json.Marshal(lines)
	if err != nil {
		return err
	}
	return s.Conn.Set(globals.Ctx, "cart:"+deviceID, data, snapshotTTL).Err()
}

// MemoryStorage is the in-process fallback used when Redis is absent,
// and the fake used by tests.
type MemoryStorage struct {
	snapshots map[string][]models.CartItem
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{snapshots: make(map[string][]models.CartItem)}
}

func (s *MemoryStorage) Load(deviceID string) ([]models.CartItem, error) {
	lines := s.snapshots[deviceID]
	out := make([]models.CartItem, len(lines))
	copy(out, lines)
	return out, nil
}

func (s *MemoryStorage) Save(deviceID string, lines []models.CartItem) error {
	out := make([]models.CartItem, len(lines))
	copy(out, lines)
	s.snapshots[deviceID] = out
	return nil
}
