package treasury

import (
	"errors"
	"math/big"
	"sync"

	"go.uber.org/zap"
	"github.com/tokenmart/market-ledger/internal/payments"
)

var (
	ErrIncorrectFeePayment = errors.New("listing payment must equal the listing fee")
	ErrNothingCollected    = errors.New("no collected listing fee to settle")
)

// Treasury holds the fixed listing fee configuration and the fees collected
// for the operator. A fee is collected into escrow when an item is listed or
// relisted, and settled to the operator balance when the sale completes.
type Treasury struct {
	mu         sync.Mutex
	listingFee *big.Int
	operator   string
	escrow     *big.Int
	bank       payments.Bank
}

func New(listingFee *big.Int, operator string, bank payments.Bank) *Treasury {
	return &Treasury{
		listingFee: new(big.Int).Set(listingFee),
		operator:   operator,
		escrow:     big.NewInt(0),
		bank:       bank,
	}
}

func (t *Treasury) CurrentFee() *big.Int {
	return new(big.Int).Set(t.listingFee)
}

func (t *Treasury) Operator() string {
	return t.operator
}

// Collect validates and takes a listing fee payment into escrow. The payment
// must equal the configured fee exactly.
func (t *Treasury) Collect(payment *big.Int) error {
	if payment == nil || payment.Cmp(t.listingFee) != 0 {
		return ErrIncorrectFeePayment
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.escrow.Add(t.escrow, payment)

	zap.L().With(
		zap.String("payment", payment.String()),
		zap.String("escrow", t.escrow.String()),
	).Debug("Treasury: Collect listing fee")

	return nil
}

// SettleListing moves one listing fee from escrow to the operator balance.
func (t *Treasury) SettleListing() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.escrow.Cmp(t.listingFee) < 0 {
		return ErrNothingCollected
	}

	t.escrow.Sub(t.escrow, t.listingFee)
	t.bank.Credit(t.operator, t.listingFee)

	zap.L().With(
		zap.String("operator", t.operator),
		zap.String("fee", t.listingFee.String()),
		zap.String("escrow", t.escrow.String()),
	).Debug("Treasury: Settle listing fee")

	return nil
}

func (t *Treasury) Escrow() *big.Int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return new(big.Int).Set(t.escrow)
}

// Balance is the operator's withdrawable balance.
func (t *Treasury) Balance() *big.Int {
	return t.bank.BalanceOf(t.operator)
}
