// Package recording provides a Publisher that simply appends every
// event it receives to in-memory slices, for assertions in tests of
// collaborators built against orderbook.Publisher.
package recording

import (
	"sync"

	"github.com/lobcore/engine/orderbook"
)

// Publisher records every Trade, BookUpdate, and BestPrices it
// receives, in arrival order. It is safe for concurrent use, though
// the book itself is single-threaded and will only ever call it from
// one goroutine at a time.
type Publisher struct {
	mu          sync.Mutex
	trades      []orderbook.Trade
	bookUpdates []orderbook.BookUpdate
	bestPrices  []orderbook.BestPrices
}

// New creates an empty recording Publisher.
func New() *Publisher {
	return &Publisher{}
}

// PublishTrade implements orderbook.Publisher.
func (p *Publisher) PublishTrade(t orderbook.Trade) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.trades = append(p.trades, t)
}

// PublishBookUpdate implements orderbook.Publisher.
func (p *Publisher) PublishBookUpdate(u orderbook.BookUpdate) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.bookUpdates = append(p.bookUpdates, u)
}

// PublishBestPrices implements orderbook.Publisher.
func (p *Publisher) PublishBestPrices(b orderbook.BestPrices) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.bestPrices = append(p.bestPrices, b)
}

// Trades returns a copy of every Trade recorded so far.
func (p *Publisher) Trades() []orderbook.Trade {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]orderbook.Trade, len(p.trades))
	copy(out, p.trades)
	return out
}

// BookUpdates returns a copy of every BookUpdate recorded so far.
func (p *Publisher) BookUpdates() []orderbook.BookUpdate {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]orderbook.BookUpdate, len(p.bookUpdates))
	copy(out, p.bookUpdates)
	return out
}

// BestPrices returns a copy of every BestPrices recorded so far.
func (p *Publisher) BestPrices() []orderbook.BestPrices {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]orderbook.BestPrices, len(p.bestPrices))
	copy(out, p.bestPrices)
	return out
}

// Reset discards every recorded event.
func (p *Publisher) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.trades = nil
	p.bookUpdates = nil
	p.bestPrices = nil
}

var _ orderbook.Publisher = (*Publisher)(nil)
