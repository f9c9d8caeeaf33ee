package ledger

import (
	"sync"

	"go.uber.org/zap"
)

type memoryLedger struct {
	mu          sync.Mutex
	nextTokenId uint64
	holders     map[uint64]string
	uris        map[uint64]string
}

func NewMemoryLedger() Ledger {
	return &memoryLedger{
		holders: make(map[uint64]string),
		uris:    make(map[uint64]string),
	}
}

func (l *memoryLedger) MintTo(addr string) uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.nextTokenId++
	l.holders[l.nextTokenId] = addr

	zap.L().With(
		zap.Uint64("tokenId", l.nextTokenId),
		zap.String("to", addr),
	).Debug("Ledger: Mint")

	return l.nextTokenId
}

func (l *memoryLedger) Transfer(tokenId uint64, from, to string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	holder, ok := l.holders[tokenId]
	if !ok {
		return ErrTokenNotFound
	}
	if holder != from {
		return ErrNotHolder
	}

	l.holders[tokenId] = to

	zap.L().With(
		zap.Uint64("tokenId", tokenId),
		zap.String("from", from),
		zap.String("to", to),
	).Debug("Ledger: Transfer")

	return nil
}

func (l *memoryLedger) OwnerOf(tokenId uint64) (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	holder, ok := l.holders[tokenId]
	if !ok {
		return "", ErrTokenNotFound
	}

	return holder, nil
}

func (l *memoryLedger) SetTokenUri(tokenId uint64, uri string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.holders[tokenId]; !ok {
		return ErrTokenNotFound
	}

	l.uris[tokenId] = uri

	return nil
}

func (l *memoryLedger) TokenUri(tokenId uint64) (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.holders[tokenId]; !ok {
		return "", ErrTokenNotFound
	}

	return l.uris[tokenId], nil
}
