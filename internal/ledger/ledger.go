package ledger

import "errors"

var (
	ErrTokenNotFound = errors.New("token not found")
	ErrNotHolder     = errors.New("transfer from address that does not hold the token")
)

// Ledger tracks the current holder of every minted token. The market registry
// must call Transfer for every custody change and never diverge from OwnerOf.
type Ledger interface {
	MintTo(addr string) uint64
	Transfer(tokenId uint64, from, to string) error
	OwnerOf(tokenId uint64) (string, error)
	SetTokenUri(tokenId uint64, uri string) error
	TokenUri(tokenId uint64) (string, error)
}
