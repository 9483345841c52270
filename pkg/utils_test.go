package pkg

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/mdrafiulislam3103/axcrypto/internal/storages"
)

func TestValidateCryptoSymbol(t *testing.T) {
	for _, symbol := range []string{"BTC", "ETH", "BNB", "USDT", "btc"} {
		if err := ValidateCryptoSymbol(symbol); err != nil {
			t.Fatalf("Expected %s to be supported, got %v", symbol, err)
		}
	}

	if err := ValidateCryptoSymbol("DOGE"); err == nil {
		t.Fatal("Expected error for unsupported symbol")
	}
	if err := ValidateCryptoSymbol(""); err == nil {
		t.Fatal("Expected error for empty symbol")
	}
}

func TestNormalizeCryptoSymbol(t *testing.T) {
	if got := NormalizeCryptoSymbol("  usdt "); got != "USDT" {
		t.Fatalf("Expected USDT, got %q", got)
	}
}

func TestValidateAmount(t *testing.T) {
	if err := ValidateAmount(decimal.NewFromInt(10)); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if err := ValidateAmount(decimal.Zero); err == nil {
		t.Fatal("Expected error for zero amount")
	}
	if err := ValidateAmount(decimal.NewFromInt(-1)); err == nil {
		t.Fatal("Expected error for negative amount")
	}
}

func TestValidateRequestType(t *testing.T) {
	allowed := []storages.TransactionType{
		storages.TransactionTypeBuy,
		storages.TransactionTypeSell,
		storages.TransactionTypeWithdraw,
		storages.TransactionTypeDeposit,
	}
	for _, txType := range allowed {
		if err := ValidateRequestType(txType); err != nil {
			t.Fatalf("Expected %s to be allowed, got %v", txType, err)
		}
	}

	if err := ValidateRequestType(storages.TransactionTypeBonus); err == nil {
		t.Fatal("Expected error for Bonus request type")
	}
	if err := ValidateRequestType(storages.TransactionType("Trade")); err == nil {
		t.Fatal("Expected error for unknown request type")
	}
}
