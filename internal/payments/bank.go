package payments

import (
	"math/big"
	"sync"

	"go.uber.org/zap"
)

// Bank is the settlement side of the payment channel. Every amount the market
// routes out of an operation ends up as a credit here, against exactly one
// address.
type Bank interface {
	Credit(addr string, amount *big.Int)
	BalanceOf(addr string) *big.Int
}

type memoryBank struct {
	mu       sync.Mutex
	balances map[string]*big.Int
}

func NewMemoryBank() Bank {
	return &memoryBank{balances: make(map[string]*big.Int)}
}

func (b *memoryBank) Credit(addr string, amount *big.Int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	balance, ok := b.balances[addr]
	if !ok {
		balance = big.NewInt(0)
		b.balances[addr] = balance
	}

	balance.Add(balance, amount)

	zap.L().With(
		zap.String("addr", addr),
		zap.String("amount", amount.String()),
		zap.String("balance", balance.String()),
	).Debug("Bank: Credit")
}

func (b *memoryBank) BalanceOf(addr string) *big.Int {
	b.mu.Lock()
	defer b.mu.Unlock()

	balance, ok := b.balances[addr]
	if !ok {
		return big.NewInt(0)
	}

	return new(big.Int).Set(balance)
}
