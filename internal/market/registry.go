package market

import (
	"fmt"
	"math/big"
	"sync"

	"go.uber.org/zap"
	"github.com/tokenmart/market-ledger/internal/entity"
	"github.com/tokenmart/market-ledger/internal/event"
	"github.com/tokenmart/market-ledger/internal/ledger"
	"github.com/tokenmart/market-ledger/internal/payments"
	"github.com/tokenmart/market-ledger/internal/treasury"
)

// Registry is the market item ledger. Operations are applied one at a time;
// every mutating call either commits in full or leaves no trace.
type Registry interface {
	CreateItem(caller, tokenUri string, price, feePayment *big.Int) (uint64, error)
	ExecuteSale(caller string, itemId uint64, payment *big.Int) error
	Resell(caller string, itemId uint64, newPrice, feePayment *big.Int) error

	GetItem(itemId uint64) (entity.MarketItem, error)
	ActiveItems() []entity.MarketItem
	ItemsOwnedBy(addr string) []entity.MarketItem
	ItemsListedBy(addr string) []entity.MarketItem

	Custodian() string
}

type registry struct {
	mu         sync.Mutex
	custodian  string
	nextItemId uint64
	items      map[uint64]*entity.MarketItem
	itemIds    []uint64

	ledger   ledger.Ledger
	treasury *treasury.Treasury
	bank     payments.Bank
	events   *event.Manager
}

func NewRegistry(
	custodian string,
	tokenLedger ledger.Ledger,
	feeTreasury *treasury.Treasury,
	bank payments.Bank,
	events *event.Manager,
) Registry {
	return &registry{
		custodian: custodian,
		items:     make(map[uint64]*entity.MarketItem),
		itemIds:   make([]uint64, 0),
		ledger:    tokenLedger,
		treasury:  feeTreasury,
		bank:      bank,
		events:    events,
	}
}

func (r *registry) Custodian() string {
	return r.custodian
}

// CreateItem mints a fresh token to the caller, takes it into market custody
// and lists it at the given price. The fee payment goes to treasury escrow.
func (r *registry) CreateItem(caller, tokenUri string, price, feePayment *big.Int) (uint64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if price == nil || price.Sign() <= 0 {
		return 0, ErrInvalidPrice
	}
	if feePayment == nil || feePayment.Cmp(r.treasury.CurrentFee()) != 0 {
		return 0, ErrIncorrectFeePayment
	}

	tokenId := r.ledger.MintTo(caller)
	if err := r.ledger.SetTokenUri(tokenId, tokenUri); err != nil {
		r.fatal("failed to set token uri on freshly minted token", err)
	}
	if err := r.ledger.Transfer(tokenId, caller, r.custodian); err != nil {
		r.fatal("failed to take custody of freshly minted token", err)
	}

	if err := r.treasury.Collect(feePayment); err != nil {
		return 0, err
	}

	r.nextItemId++
	item := &entity.MarketItem{
		ItemId:   r.nextItemId,
		TokenId:  tokenId,
		Seller:   caller,
		Owner:    r.custodian,
		Price:    new(big.Int).Set(price),
		Sold:     false,
		TokenUri: tokenUri,
	}
	r.items[item.ItemId] = item
	r.itemIds = append(r.itemIds, item.ItemId)

	r.verifyCustody(item)

	zap.L().With(
		zap.Uint64("itemId", item.ItemId),
		zap.Uint64("tokenId", item.TokenId),
		zap.String("seller", item.Seller),
		zap.String("price", item.Price.String()),
	).Info("Market: Item created")

	r.events.EmitEvent(event.ItemCreatedEvent, copyItem(*item))

	return item.ItemId, nil
}

// ExecuteSale settles a listed item for the exact asking price: the payment
// goes to the seller, the listing fee held in escrow goes to the operator and
// custody moves to the buyer.
func (r *registry) ExecuteSale(caller string, itemId uint64, payment *big.Int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[itemId]
	if !ok {
		return ErrItemNotFound
	}
	if item.Sold {
		return ErrAlreadySold
	}
	if payment == nil || payment.Cmp(item.Price) != 0 {
		return ErrIncorrectSalePayment
	}

	if err := r.ledger.Transfer(item.TokenId, r.custodian, caller); err != nil {
		r.fatal("failed to transfer custody of a listed token to the buyer", err)
	}

	r.bank.Credit(item.Seller, payment)
	if err := r.treasury.SettleListing(); err != nil {
		r.fatal("failed to settle the listing fee for a sold item", err)
	}

	item.Sold = true
	item.Owner = caller

	r.verifyCustody(item)

	zap.L().With(
		zap.Uint64("itemId", item.ItemId),
		zap.Uint64("tokenId", item.TokenId),
		zap.String("seller", item.Seller),
		zap.String("buyer", caller),
		zap.String("price", item.Price.String()),
	).Info("Market: Item sold")

	r.events.EmitEvent(event.ItemSoldEvent, copyItem(*item))

	return nil
}

// Resell lists a previously sold item again. Only the current owner may
// relist, and a fresh listing fee is collected.
func (r *registry) Resell(caller string, itemId uint64, newPrice, feePayment *big.Int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[itemId]
	if !ok {
		return ErrItemNotFound
	}
	if item.Owner != caller {
		return ErrNotOwner
	}
	if newPrice == nil || newPrice.Sign() <= 0 {
		return ErrInvalidPrice
	}
	if feePayment == nil || feePayment.Cmp(r.treasury.CurrentFee()) != 0 {
		return ErrIncorrectFeePayment
	}

	if err := r.ledger.Transfer(item.TokenId, caller, r.custodian); err != nil {
		r.fatal("failed to take custody of a relisted token", err)
	}

	if err := r.treasury.Collect(feePayment); err != nil {
		return err
	}

	item.Sold = false
	item.Seller = caller
	item.Owner = r.custodian
	item.Price = new(big.Int).Set(newPrice)

	r.verifyCustody(item)

	zap.L().With(
		zap.Uint64("itemId", item.ItemId),
		zap.Uint64("tokenId", item.TokenId),
		zap.String("seller", item.Seller),
		zap.String("price", item.Price.String()),
	).Info("Market: Item relisted")

	r.events.EmitEvent(event.ItemRelistedEvent, copyItem(*item))

	return nil
}

func (r *registry) GetItem(itemId uint64) (entity.MarketItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[itemId]
	if !ok {
		return entity.MarketItem{}, ErrItemNotFound
	}

	return copyItem(*item), nil
}

// ActiveItems returns every unsold item in market custody, ascending by item id.
func (r *registry) ActiveItems() []entity.MarketItem {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := make([]entity.MarketItem, 0)
	for _, itemId := range r.itemIds {
		item := r.items[itemId]
		if !item.Sold && item.Owner == r.custodian {
			items = append(items, copyItem(*item))
		}
	}

	return items
}

// ItemsOwnedBy returns every item whose token the ledger currently assigns to
// the given address, ascending by item id.
func (r *registry) ItemsOwnedBy(addr string) []entity.MarketItem {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := make([]entity.MarketItem, 0)
	for _, itemId := range r.itemIds {
		item := r.items[itemId]
		holder, err := r.ledger.OwnerOf(item.TokenId)
		if err != nil {
			r.fatal("ledger does not know a token the market has listed", err)
		}
		if holder == addr {
			items = append(items, copyItem(*item))
		}
	}

	return items
}

// ItemsListedBy returns every item the given address currently has listed and
// pending sale, ascending by item id.
func (r *registry) ItemsListedBy(addr string) []entity.MarketItem {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := make([]entity.MarketItem, 0)
	for _, itemId := range r.itemIds {
		item := r.items[itemId]
		if !item.Sold && item.Seller == addr {
			items = append(items, copyItem(*item))
		}
	}

	return items
}

// verifyCustody asserts the record and the ownership ledger agree on who
// holds the token. Divergence is a broken invariant, never recoverable.
func (r *registry) verifyCustody(item *entity.MarketItem) {
	holder, err := r.ledger.OwnerOf(item.TokenId)
	if err != nil {
		r.fatal("ledger does not know a token the market has listed", err)
	}
	if holder != item.Owner {
		r.fatal(fmt.Sprintf("custody diverged for item %d: record owner %s, ledger holder %s",
			item.ItemId, item.Owner, holder), nil)
	}
}

func (r *registry) fatal(msg string, err error) {
	zap.L().With(zap.Error(err)).Error("Market: " + msg)
	panic("market: " + msg)
}

func copyItem(item entity.MarketItem) entity.MarketItem {
	item.Price = new(big.Int).Set(item.Price)
	return item
}
