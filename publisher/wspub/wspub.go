// Package wspub implements orderbook.Publisher by fanning Trade,
// BookUpdate, and BestPrices events out to WebSocket subscribers. It
// is a second reference market-data collaborator alongside natspub,
// for integrators who want a direct browser/client feed instead of a
// message broker.
package wspub

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/lobcore/engine/internal/eventring"
	"github.com/lobcore/engine/orderbook"
	"go.uber.org/zap"
)

// defaultRingCapacity bounds how far a single slow subscriber may fall
// behind before it is dropped, per spec.md §5's "overflow = fatal for
// the queue, not for the whole book" intent: here a subscriber that
// cannot keep up is disconnected rather than allowed to back up every
// other subscriber or the book itself.
const defaultRingCapacity = 4096

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(*http.Request) bool { return true },
}

// envelope is the wire message sent to every subscriber.
type envelope struct {
	Kind string `json:"kind"`
	Data any    `json:"data"`
}

// Publisher fans events out to every currently connected WebSocket
// subscriber. PublishTrade / PublishBookUpdate / PublishBestPrices
// never block: each subscriber has its own bounded ring buffer and
// drain goroutine, so one slow client cannot stall another or the book.
type Publisher struct {
	logger *zap.Logger

	mu   sync.Mutex
	subs map[*subscriber]struct{}
}

type subscriber struct {
	conn *websocket.Conn
	ring *eventring.Ring[envelope]
	done chan struct{}
}

// New creates an empty Publisher. Call ServeHTTP (or wrap it) as the
// handler for the market-data WebSocket endpoint.
func New(logger *zap.Logger) *Publisher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Publisher{logger: logger, subs: make(map[*subscriber]struct{})}
}

// ServeHTTP upgrades the connection and registers it as a subscriber
// until it disconnects.
func (p *Publisher) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		p.logger.Warn("wspub: upgrade failed", zap.Error(err))
		return
	}
	sub := &subscriber{conn: conn, ring: eventring.New[envelope](defaultRingCapacity), done: make(chan struct{})}
	sub.ring.SetLogger(p.logger)

	p.mu.Lock()
	p.subs[sub] = struct{}{}
	p.mu.Unlock()

	go p.writeLoop(sub)
	go p.readLoop(sub)
}

func (p *Publisher) readLoop(sub *subscriber) {
	defer p.unregister(sub)
	for {
		if _, _, err := sub.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (p *Publisher) writeLoop(sub *subscriber) {
	defer sub.conn.Close()
	for {
		select {
		case <-sub.done:
			return
		default:
		}
		v, ok := sub.ring.Pop()
		if !ok {
			time.Sleep(time.Millisecond)
			continue
		}
		payload, err := json.Marshal(v)
		if err != nil {
			continue
		}
		if err := sub.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			p.unregister(sub)
			return
		}
	}
}

func (p *Publisher) unregister(sub *subscriber) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, ok := p.subs[sub]; !ok {
		return
	}
	delete(p.subs, sub)
	close(sub.done)
}

func (p *Publisher) broadcast(kind string, data any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for sub := range p.subs {
		func() {
			defer func() {
				// A subscriber whose ring overflowed is disconnected
				// rather than allowed to panic the whole publisher.
				if recover() != nil {
					p.logger.Warn("wspub: subscriber overflowed, dropping", zap.String("kind", kind))
					delete(p.subs, sub)
					close(sub.done)
				}
			}()
			sub.ring.Push(envelope{Kind: kind, Data: data})
		}()
	}
}

// PublishTrade implements orderbook.Publisher.
func (p *Publisher) PublishTrade(t orderbook.Trade) { p.broadcast("trade", t) }

// PublishBookUpdate implements orderbook.Publisher.
func (p *Publisher) PublishBookUpdate(u orderbook.BookUpdate) { p.broadcast("book_update", u) }

// PublishBestPrices implements orderbook.Publisher.
func (p *Publisher) PublishBestPrices(b orderbook.BestPrices) { p.broadcast("best_prices", b) }

var _ orderbook.Publisher = (*Publisher)(nil)
