package orderbook

import "github.com/lobcore/engine/internal/dlist"

// PriceLevel is the FIFO queue of resting orders at a single price. The
// book keeps one per occupied price on each side's ladder.
type PriceLevel struct {
	price  Uint
	queue  *dlist.List[*Order]
	aggQty Uint
}

// NewPriceLevel creates an empty level at the given price.
func NewPriceLevel(price Uint) *PriceLevel {
	return &PriceLevel{
		price: price,
		queue: dlist.New[*Order](),
	}
}

// Price returns the level's price.
func (p *PriceLevel) Price() Uint {
	return p.price
}

// AggregateQuantity returns the sum of remaining quantity across every
// order resting at this level, maintained incrementally so depth queries
// never need to walk the queue.
func (p *PriceLevel) AggregateQuantity() Uint {
	return p.aggQty
}

// OrderCount returns the number of orders resting at this level.
func (p *PriceLevel) OrderCount() int {
	return p.queue.Len()
}

// Empty reports whether the level holds no orders.
func (p *PriceLevel) Empty() bool {
	return p.queue.Len() == 0
}

// PeekHead returns the order at the front of the queue (the one that
// matches first), or nil if the level is empty.
func (p *PriceLevel) PeekHead() *Order {
	front := p.queue.Front()
	if front == nil {
		return nil
	}
	return front.Value
}

// Enqueue appends order to the back of the queue and records the
// resulting queue element on the order itself, so cancel/fill can
// remove it in O(1) later.
func (p *PriceLevel) Enqueue(o *Order) {
	o.queueElem = p.queue.PushBack(o)
	p.aggQty = p.aggQty.Add(o.Remaining())
}

// Fill reduces the head order's remaining quantity by qty, keeping the
// level's aggregate in sync. It does not dequeue the order even if it
// becomes fully filled; call Dequeue for that once the caller has
// finished emitting events for the fill.
func (p *PriceLevel) Fill(o *Order, qty Uint) {
	o.filledQty = o.filledQty.Add(qty)
	p.aggQty = p.aggQty.Sub(qty)
}

// Dequeue removes o from the level's queue. o must currently be resting
// at this level.
func (p *PriceLevel) Dequeue(o *Order) {
	if o.queueElem == nil {
		return
	}
	p.aggQty = p.aggQty.Sub(o.Remaining())
	p.queue.Remove(o.queueElem)
	o.queueElem = nil
	o.levelNode = nil
}

// Iterate visits every resting order head-to-tail until f returns true.
func (p *PriceLevel) Iterate(f func(*Order) bool) {
	p.queue.Range(f)
}
