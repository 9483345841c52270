package pkg

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mdrafiulislam3103/axcrypto/internal/storages"
)

// ValidateCryptoSymbol проверяет, что символ является одной из торгуемых криптовалют
func ValidateCryptoSymbol(symbol string) error {
	supportedSymbols := map[string]bool{
		"BTC":  true,
		"ETH":  true,
		"BNB":  true,
		"USDT": true,
	}

	symbol = strings.ToUpper(symbol)
	if !supportedSymbols[symbol] {
		return fmt.Errorf("unsupported crypto symbol: %s. Supported symbols: BTC, ETH, BNB, USDT", symbol)
	}

	return nil
}

// NormalizeCryptoSymbol приводит символ криптовалюты к верхнему регистру
func NormalizeCryptoSymbol(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}

// ValidateAmount проверяет, что сумма положительная
func ValidateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("amount must be positive")
	}
	return nil
}

// ValidateRequestType проверяет, что тип заявки доступен пользователю.
// Bonus и Refund создаются только на стороне администратора.
func ValidateRequestType(txType storages.TransactionType) error {
	switch txType {
	case storages.TransactionTypeBuy, storages.TransactionTypeSell,
		storages.TransactionTypeWithdraw, storages.TransactionTypeDeposit:
		return nil
	}
	return fmt.Errorf("unsupported request type: %s", txType)
}
