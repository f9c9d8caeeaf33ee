package market

import (
	"errors"

	"github.com/tokenmart/market-ledger/internal/treasury"
)

var (
	ErrItemNotFound         = errors.New("market item not found")
	ErrInvalidPrice         = errors.New("price must be greater than 0")
	ErrIncorrectSalePayment = errors.New("please submit the asking price in order to complete the purchase")
	ErrAlreadySold          = errors.New("item has already been sold")
	ErrNotOwner             = errors.New("only the owner can resell the token")

	// ErrIncorrectFeePayment surfaces from the treasury on every listing and
	// relisting with a fee payment that does not match the configured fee.
	ErrIncorrectFeePayment = treasury.ErrIncorrectFeePayment
)
