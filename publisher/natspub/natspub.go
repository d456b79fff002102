// Package natspub implements orderbook.Publisher by fanning Trade,
// BookUpdate, and BestPrices events out to NATS subjects, one per
// symbol per event kind. It is a reference market-data collaborator:
// spec.md places fan-out to subscribers out of scope for the core and
// specifies only the Publisher interface at the boundary (§1, §6.2).
package natspub

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/lobcore/engine/internal/eventring"
	"github.com/lobcore/engine/orderbook"
	"github.com/nats-io/nats.go"
	"go.uber.org/zap"
)

// defaultRingCapacity bounds how far the publisher may fall behind the
// book before PublishX panics, per spec.md §5's "bounded queue with
// overflow = fatal" choice.
const defaultRingCapacity = 65536

// Publisher fans events out over a NATS connection. PublishTrade /
// PublishBookUpdate / PublishBestPrices never block on the network:
// they push onto an internal ring buffer that a background goroutine
// drains, so a slow or disconnected NATS server cannot stall matching.
type Publisher struct {
	conn   *nats.Conn
	symbol string
	logger *zap.Logger

	trades      *eventring.Ring[orderbook.Trade]
	bookUpdates *eventring.Ring[orderbook.BookUpdate]
	bestPrices  *eventring.Ring[orderbook.BestPrices]

	stop chan struct{}
}

// New creates a Publisher bound to symbol over conn. Call Close when
// the book is being torn down to stop the background drain loops.
func New(conn *nats.Conn, symbol string, logger *zap.Logger) *Publisher {
	if logger == nil {
		logger = zap.NewNop()
	}
	p := &Publisher{
		conn:        conn,
		symbol:      symbol,
		logger:      logger,
		trades:      eventring.New[orderbook.Trade](defaultRingCapacity),
		bookUpdates: eventring.New[orderbook.BookUpdate](defaultRingCapacity),
		bestPrices:  eventring.New[orderbook.BestPrices](defaultRingCapacity),
		stop:        make(chan struct{}),
	}
	p.trades.SetLogger(logger)
	p.bookUpdates.SetLogger(logger)
	p.bestPrices.SetLogger(logger)
	go p.drainLoop()
	return p
}

// PublishTrade implements orderbook.Publisher.
func (p *Publisher) PublishTrade(t orderbook.Trade) { p.trades.Push(t) }

// PublishBookUpdate implements orderbook.Publisher.
func (p *Publisher) PublishBookUpdate(u orderbook.BookUpdate) { p.bookUpdates.Push(u) }

// PublishBestPrices implements orderbook.Publisher.
func (p *Publisher) PublishBestPrices(b orderbook.BestPrices) { p.bestPrices.Push(b) }

// Close stops the background drain loop. Buffered-but-undelivered
// events are discarded.
func (p *Publisher) Close() { close(p.stop) }

func (p *Publisher) drainLoop() {
	for {
		select {
		case <-p.stop:
			return
		default:
		}
		before := p.trades.Len() + p.bookUpdates.Len() + p.bestPrices.Len()
		p.trades.Drain(func(t orderbook.Trade) bool { p.publish("trade", t); return true })
		p.bookUpdates.Drain(func(u orderbook.BookUpdate) bool { p.publish("book_update", u); return true })
		p.bestPrices.Drain(func(b orderbook.BestPrices) bool { p.publish("best_prices", b); return true })
		if before == 0 {
			time.Sleep(time.Millisecond)
		}
	}
}

func (p *Publisher) publish(kind string, v any) {
	payload, err := json.Marshal(v)
	if err != nil {
		p.logger.Error("natspub: marshal failed", zap.String("kind", kind), zap.Error(err))
		return
	}
	subject := fmt.Sprintf("book.%s.%s", p.symbol, kind)
	if err := p.conn.Publish(subject, payload); err != nil {
		p.logger.Warn("natspub: publish failed", zap.String("subject", subject), zap.Error(err))
	}
}

var _ orderbook.Publisher = (*Publisher)(nil)
