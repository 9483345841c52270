package cache

import (
	"sync"
	"time"

	"github.com/mdrafiulislam3103/axcrypto/internal/storages"
)

// PricesCache кеш табло цен криптовалют
type PricesCache struct {
	prices []storages.CryptoPrice
	mu     sync.RWMutex
	ttl    time.Duration
	lastUp time.Time
}

// NewPricesCache создает новый кеш
func NewPricesCache(ttl time.Duration) *PricesCache {
	return &PricesCache{
		ttl: ttl,
	}
}

// Set сохраняет цены в кеш
func (c *PricesCache) Set(prices []storages.CryptoPrice) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.prices = prices
	c.lastUp = time.Now()
}

// Get возвращает цены из кеша, если они актуальны
func (c *PricesCache) Get() ([]storages.CryptoPrice, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	// Проверяем, не истек ли TTL
	if time.Since(c.lastUp) > c.ttl || len(c.prices) == 0 {
		return nil, false
	}

	// Возвращаем копию, чтобы избежать race condition
	pricesCopy := make([]storages.CryptoPrice, len(c.prices))
	copy(pricesCopy, c.prices)

	return pricesCopy, true
}

// GetPrice возвращает цену конкретного символа из кеша
func (c *PricesCache) GetPrice(symbol string) (*storages.CryptoPrice, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if time.Since(c.lastUp) > c.ttl {
		return nil, false
	}

	for _, p := range c.prices {
		if p.Symbol == symbol {
			copied := p
			return &copied, true
		}
	}
	return nil, false
}

// Clear очищает кеш
func (c *PricesCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.prices = nil
	c.lastUp = time.Time{}
}

// IsValid проверяет, актуален ли кеш
func (c *PricesCache) IsValid() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return time.Since(c.lastUp) <= c.ttl && len(c.prices) > 0
}
