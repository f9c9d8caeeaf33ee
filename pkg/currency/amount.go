// Package currency parses and renders amounts in the smallest currency unit.
package currency

import (
	"errors"
	"math/big"
	"strings"
)

var ErrInvalidAmount = errors.New("invalid amount")

// ParseAmount reads a non-negative base-10 integer amount.
func ParseAmount(value string) (*big.Int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, ErrInvalidAmount
	}

	amount, ok := new(big.Int).SetString(value, 10)
	if !ok || amount.Sign() < 0 {
		return nil, ErrInvalidAmount
	}

	return amount, nil
}

func FormatAmount(amount *big.Int) string {
	if amount == nil {
		return "0"
	}

	return amount.String()
}
