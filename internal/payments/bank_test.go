package payments_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tokenmart/market-ledger/internal/payments"
)

func TestCreditAccumulates(t *testing.T) {
	bank := payments.NewMemoryBank()

	bank.Credit("0xalice", big.NewInt(100))
	bank.Credit("0xalice", big.NewInt(50))

	assert.Equal(t, big.NewInt(150), bank.BalanceOf("0xalice"))
}

func TestBalanceOfUnknownAddressIsZero(t *testing.T) {
	bank := payments.NewMemoryBank()

	assert.Equal(t, big.NewInt(0), bank.BalanceOf("0xnobody"))
}

func TestBalanceOfReturnsCopy(t *testing.T) {
	bank := payments.NewMemoryBank()
	bank.Credit("0xalice", big.NewInt(100))

	balance := bank.BalanceOf("0xalice")
	balance.Add(balance, big.NewInt(1000))

	assert.Equal(t, big.NewInt(100), bank.BalanceOf("0xalice"))
}
