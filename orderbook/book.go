// Package orderbook implements a single-symbol, price-time-priority
// limit order book: a continuous matching engine that admits orders,
// matches them against resting liquidity, and maintains the dual price
// ladders that make up the visible book.
package orderbook

import "go.uber.org/zap"

// Book is a single-symbol order book. It is not safe for concurrent use:
// callers own serialization (typically one goroutine per symbol reading
// off a channel), matching the teacher architecture this package was
// adapted from.
type Book struct {
	symbol string
	bids   *Ladder
	asks   *Ladder
	index  *orderIndex

	logger    *zap.Logger
	publisher Publisher
	riskGate  RiskGate
	metrics   Metrics

	admitCounter uint64
	seq          uint64
	tradeCounter uint64
	logicalClock uint64
}

// NewBook creates an empty book for symbol.
func NewBook(symbol string, opts ...Option) *Book {
	b := &Book{
		symbol:    symbol,
		bids:      NewLadder(Buy),
		asks:      NewLadder(Sell),
		index:     newOrderIndex(),
		logger:    zap.NewNop(),
		publisher: NopPublisher{},
		riskGate:  NopRiskGate{},
		metrics:   noopMetrics{},
	}
	for _, opt := range opts {
		opt(b)
	}
	b.bids.SetLogger(b.logger)
	b.asks.SetLogger(b.logger)
	return b
}

// Symbol returns the book's symbol, satisfying BookView.
func (b *Book) Symbol() string { return b.symbol }

// BestBid returns the highest resting buy price, satisfying BookView.
func (b *Book) BestBid() (Uint, bool) {
	node := b.bids.Best()
	if node == nil {
		return Uint{}, false
	}
	return node.Key(), true
}

// BestAsk returns the lowest resting sell price, satisfying BookView.
func (b *Book) BestAsk() (Uint, bool) {
	node := b.asks.Best()
	if node == nil {
		return Uint{}, false
	}
	return node.Key(), true
}

// Spread returns BestAsk - BestBid. Ok is false unless both sides carry
// resting liquidity.
func (b *Book) Spread() (Uint, bool) {
	bid, okBid := b.BestBid()
	ask, okAsk := b.BestAsk()
	if !okBid || !okAsk {
		return Uint{}, false
	}
	return ask.Sub(bid), true
}

// CountOrders returns the number of resting orders across both sides.
func (b *Book) CountOrders() int {
	return b.index.len()
}

// CountLevels returns the number of occupied price levels on side.
func (b *Book) CountLevels(side Side) int {
	return b.ladderFor(side).Len()
}

// Depth returns up to k price levels from each side, best first.
func (b *Book) Depth(k int) DepthSnapshot {
	snap := DepthSnapshot{Symbol: b.symbol}
	collect := func(ladder *Ladder) []DepthLevel {
		var levels []DepthLevel
		if k <= 0 {
			return levels
		}
		ladder.IterateFromBest(func(level *PriceLevel) bool {
			levels = append(levels, DepthLevel{
				Price:    level.Price(),
				Quantity: level.AggregateQuantity(),
				Orders:   level.OrderCount(),
			})
			return len(levels) >= k
		})
		return levels
	}
	snap.Bids = collect(b.bids)
	snap.Asks = collect(b.asks)
	return snap
}

// SubmitResult reports the outcome of a successfully admitted order.
type SubmitResult struct {
	OrderID        uint64
	FilledQuantity Uint
	Residual       Uint
}

// Submit admits order to the book: validates it, runs it against
// resting liquidity as a taker, and either rests, discards, or fully
// consumes its residual depending on TimeInForce. On error the book is
// left entirely unmutated.
func (b *Book) Submit(o *Order) (SubmitResult, error) {
	// Preconditions are checked in spec order: quantity, price, risk
	// gate, then duplicate id. Each failure leaves the book untouched.
	if o.originalQty.IsZero() {
		b.metrics.ObserveSubmit(false)
		return SubmitResult{}, ErrZeroQuantity
	}
	if o.kind == Limit && o.limitPrice.IsZero() {
		b.metrics.ObserveSubmit(false)
		return SubmitResult{}, ErrInvalidPrice
	}
	if err := b.riskGate.Validate(o, b); err != nil {
		b.metrics.ObserveSubmit(false)
		b.logger.Debug("order rejected by risk gate", zap.Uint64("order_id", o.id), zap.Error(err))
		return SubmitResult{}, RiskRejected(err.Error())
	}
	if existing := b.index.lookup(o.id); existing != nil {
		b.metrics.ObserveSubmit(false)
		return SubmitResult{}, ErrDuplicateOrderID
	}
	if o.tif == FOK && !b.canFillCompletely(o) {
		b.metrics.ObserveSubmit(false)
		return SubmitResult{}, ErrInsufficientLiquidity
	}

	ts := b.tick()
	o.admitTime = b.nextAdmitTime()
	b.matchTaker(o, ts)

	switch {
	case o.IsFilled():
		// nothing left to do.
	case o.tif == GTC && o.kind == Limit:
		b.rest(o)
	default:
		// IOC, FOK-already-satisfied-by-loop, and every Market order
		// discard any residual rather than resting it.
		if o.kind == Market && !o.Remaining().IsZero() {
			b.logger.Warn("market order residual discarded",
				zap.Uint64("order_id", o.id), zap.String("residual", o.Remaining().String()))
		}
	}

	b.publisher.PublishBestPrices(b.bestPrices(ts))
	b.metrics.ObserveSubmit(true)
	return SubmitResult{OrderID: o.id, FilledQuantity: o.filledQty, Residual: o.Remaining()}, nil
}

// Cancel removes a resting order from the book entirely. Returns the
// quantity that was still resting at the time of cancellation.
func (b *Book) Cancel(id uint64) (Uint, error) {
	o := b.index.lookup(id)
	if o == nil {
		return Uint{}, ErrOrderNotFound
	}
	residual := o.Remaining()

	var level *PriceLevel
	if o.levelNode != nil {
		level = o.levelNode.Value()
	}
	if level == nil {
		invariantViolation(b.logger, "cancel: indexed order has no backing price level")
	}
	level.Dequeue(o)
	emptied := level.Empty()
	b.ladderFor(o.side).RemoveIfEmpty(o.limitPrice)
	b.index.remove(id)

	ts := b.tick()
	b.metrics.ObserveCancel()
	if emptied {
		b.emitBookUpdate(o, Removed, nil)
	} else {
		b.emitBookUpdate(o, Removed, level)
	}
	b.publisher.PublishBestPrices(b.bestPrices(ts))
	return residual, nil
}

// ModifyResult reports the outcome of a successful modify.
type ModifyResult struct {
	OrderID        uint64
	FilledQuantity Uint
	Residual       Uint
}

// Modify changes a resting order's price and/or quantity in place.
// Reducing quantity at an unchanged price preserves the order's queue
// position; any price change, or any quantity increase, forfeits
// priority and re-queues the order at the back of its (possibly new)
// level, exactly as if it had been cancelled and resubmitted.
func (b *Book) Modify(id uint64, newPrice, newQuantity Uint) (ModifyResult, error) {
	o := b.index.lookup(id)
	if o == nil {
		return ModifyResult{}, ErrOrderNotFound
	}
	if newQuantity.IsZero() {
		return ModifyResult{}, ErrZeroQuantity
	}
	// An amended quantity that would not even cover what has already
	// executed can never produce a positive residual.
	if newQuantity.LessThanOrEqual(o.filledQty) {
		return ModifyResult{}, ErrQuantityBelowFilled
	}

	oldPrice := o.limitPrice
	ladder := b.ladderFor(o.side)
	var level *PriceLevel
	if o.levelNode != nil {
		level = o.levelNode.Value()
	}
	if level == nil {
		invariantViolation(b.logger, "modify: indexed order has no backing price level")
	}

	ts := b.tick()
	// Queue-position preservation rule (spec §4.4.7): the threshold is
	// the order's current RESTING quantity, not its original size — a
	// reduction never erodes priority, an increase always does.
	samePrice := newPrice.Equals(oldPrice)
	sizeIncreased := newQuantity.GreaterThan(o.Remaining())

	if samePrice && !sizeIncreased {
		// Queue position preserved: mutate the residual in place.
		reduction := o.originalQty.Sub(newQuantity)
		level.aggQty = level.aggQty.Sub(reduction)
		o.originalQty = newQuantity
		b.emitBookUpdate(o, Modified, level)
	} else {
		// Price change, or a size increase: priority is forfeit. Pull
		// the order off its current level and resubmit it as a taker
		// at the new price/quantity — this may cross the book and
		// partially (or fully) fill the modification.
		level.Dequeue(o)
		ladder.RemoveIfEmpty(oldPrice)
		o.limitPrice = newPrice
		o.originalQty = newQuantity
		b.matchTaker(o, ts)
		if o.IsFilled() {
			b.index.remove(id)
			b.emitBookUpdate(o, Removed, nil)
		} else {
			newLevel := b.enqueueAtOwnSide(o)
			b.emitBookUpdate(o, Added, newLevel)
		}
	}

	b.metrics.ObserveModify()
	b.publisher.PublishBestPrices(b.bestPrices(ts))
	return ModifyResult{OrderID: id, FilledQuantity: o.filledQty, Residual: o.Remaining()}, nil
}

func (b *Book) ladderFor(side Side) *Ladder {
	if side == Buy {
		return b.bids
	}
	return b.asks
}

func (b *Book) nextSeq() uint64 {
	b.seq++
	return b.seq
}

func (b *Book) nextAdmitTime() uint64 {
	b.admitCounter++
	return b.admitCounter
}

func (b *Book) nextTradeID() uint64 {
	b.tradeCounter++
	return b.tradeCounter
}

// tick advances the book's logical clock once per public call and
// returns the new value; every event emitted during that call carries
// it as TimestampLogical, so a subscriber can correlate a burst of
// Trade/BookUpdate events with the single call that produced them.
func (b *Book) tick() uint64 {
	b.logicalClock++
	return b.logicalClock
}

func (b *Book) bestPrices(ts uint64) BestPrices {
	bid, okBid := b.BestBid()
	ask, okAsk := b.BestAsk()
	var bidSize, askSize Uint
	if okBid {
		bidSize = b.bids.Get(bid).AggregateQuantity()
	}
	if okAsk {
		askSize = b.asks.Get(ask).AggregateQuantity()
	}
	return BestPrices{
		Seq:              b.nextSeq(),
		Symbol:           b.symbol,
		BestBid:          bid,
		BestBidSize:      bidSize,
		HasBid:           okBid,
		BestAsk:          ask,
		BestAskSize:      askSize,
		HasAsk:           okAsk,
		TimestampLogical: ts,
	}
}

// emitBookUpdate publishes a BookUpdate for o. level is the price level
// o currently sits (or sat) at; pass nil when the level was removed
// entirely (order fully filled/cancelled and the level emptied), in
// which case the reported level totals are zero.
func (b *Book) emitBookUpdate(o *Order, kind BookUpdateKind, level *PriceLevel) {
	var aggQty Uint
	var orderCount int
	if level != nil {
		aggQty = level.AggregateQuantity()
		orderCount = level.OrderCount()
	}
	b.publisher.PublishBookUpdate(BookUpdate{
		Seq:                          b.nextSeq(),
		Symbol:                       b.symbol,
		Kind:                         kind,
		Side:                         o.side,
		Price:                        o.limitPrice,
		NewAggregateQuantityAtLevel: aggQty,
		NewOrderCountAtLevel:        orderCount,
		OrderID:                      o.id,
		Residual:                     o.Remaining(),
	})
}

// enqueueAtOwnSide places o on its own side's ladder without touching
// the order index; callers are responsible for index bookkeeping.
func (b *Book) enqueueAtOwnSide(o *Order) *PriceLevel {
	level, node := b.ladderFor(o.side).GetOrCreate(o.limitPrice)
	o.levelNode = node
	level.Enqueue(o)
	return level
}

// rest enqueues a brand-new resting order and indexes it.
func (b *Book) rest(o *Order) {
	level := b.enqueueAtOwnSide(o)
	if err := b.index.insert(o); err != nil {
		invariantViolation(b.logger, "rest: duplicate id "+err.Error())
	}
	b.emitBookUpdate(o, Added, level)
}
