// Package tokenmeta resolves token metadata for mints the static
// registry doesn't know, through a cached remote fetch with a bounded
// failure cooldown (§4.J).
package tokenmeta

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/ledgerlens/ledgerlens/internal/config"
	"github.com/ledgerlens/ledgerlens/internal/logging"
	"github.com/ledgerlens/ledgerlens/internal/money"
)

const cacheKeyPrefix = "tokenmeta_"

// Cache persists remotely-resolved token metadata with a TTL, so a
// mint fetched once doesn't hit the network again until it expires.
type Cache struct {
	db *badger.DB
}

// NewCache opens the on-disk metadata cache for one network.
func NewCache(network string) (*Cache, error) {
	cfg := config.GetConfig()
	dbPath := filepath.Join(cfg.Storage.Directory, "tokenmeta", network)

	opts := badger.DefaultOptions(dbPath).
		WithLoggingLevel(badger.WARNING)

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open token metadata cache: %w", err)
	}
	return &Cache{db: db}, nil
}

// Close closes the cache.
func (c *Cache) Close() error {
	return c.db.Close()
}

// Get returns a cached TokenInfo for mint, ok=false on a miss or an
// expired entry (badger drops expired keys transparently).
func (c *Cache) Get(mint string) (money.TokenInfo, bool) {
	var info money.TokenInfo
	found := false

	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(cacheKey(mint)))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			if err := json.Unmarshal(val, &info); err != nil {
				return err
			}
			found = true
			return nil
		})
	})
	if err != nil {
		logging.GetLogger().Warnw("token metadata cache read failed", "mint", mint, "error", err)
		return money.TokenInfo{}, false
	}
	return info, found
}

// Set stores info for mint, expiring after ttl.
func (c *Cache) Set(mint string, info money.TokenInfo, ttl time.Duration) error {
	data, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("failed to marshal token metadata: %w", err)
	}
	return c.db.Update(func(txn *badger.Txn) error {
		entry := badger.NewEntry([]byte(cacheKey(mint)), data).WithTTL(ttl)
		return txn.SetEntry(entry)
	})
}

func cacheKey(mint string) string {
	return cacheKeyPrefix + mint
}
