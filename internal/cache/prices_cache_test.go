package cache

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mdrafiulislam3103/axcrypto/internal/storages"
)

func testPrices() []storages.CryptoPrice {
	return []storages.CryptoPrice{
		{Symbol: "BTC", Name: "Bitcoin", Price: decimal.RequireFromString("117926.99"), Change24h: 2.45},
		{Symbol: "USDT", Name: "Tether", Price: decimal.RequireFromString("1.00"), Change24h: 0.01},
	}
}

func TestCacheSetGet(t *testing.T) {
	c := NewPricesCache(time.Minute)

	if _, ok := c.Get(); ok {
		t.Fatal("Expected empty cache miss")
	}

	c.Set(testPrices())

	prices, ok := c.Get()
	if !ok {
		t.Fatal("Expected cache hit")
	}
	if len(prices) != 2 {
		t.Fatalf("Expected 2 prices, got %d", len(prices))
	}

	if !c.IsValid() {
		t.Fatal("Expected cache to be valid")
	}
}

func TestCacheGetPrice(t *testing.T) {
	c := NewPricesCache(time.Minute)
	c.Set(testPrices())

	price, ok := c.GetPrice("BTC")
	if !ok {
		t.Fatal("Expected BTC price hit")
	}
	if !price.Price.Equal(decimal.RequireFromString("117926.99")) {
		t.Fatalf("Expected BTC price, got %s", price.Price)
	}

	if _, ok := c.GetPrice("DOGE"); ok {
		t.Fatal("Expected miss for unknown symbol")
	}
}

func TestCacheTTL(t *testing.T) {
	c := NewPricesCache(10 * time.Millisecond)
	c.Set(testPrices())

	time.Sleep(20 * time.Millisecond)

	if _, ok := c.Get(); ok {
		t.Fatal("Expected cache miss after TTL")
	}
	if c.IsValid() {
		t.Fatal("Expected cache to be invalid after TTL")
	}
}

func TestCacheClear(t *testing.T) {
	c := NewPricesCache(time.Minute)
	c.Set(testPrices())
	c.Clear()

	if _, ok := c.Get(); ok {
		t.Fatal("Expected cache miss after clear")
	}
}

func TestCacheReturnsCopy(t *testing.T) {
	c := NewPricesCache(time.Minute)
	c.Set(testPrices())

	prices, _ := c.Get()
	prices[0].Symbol = "MUTATED"

	fresh, _ := c.Get()
	if fresh[0].Symbol != "BTC" {
		t.Fatalf("Expected cached prices untouched, got %s", fresh[0].Symbol)
	}
}
