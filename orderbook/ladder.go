package orderbook

import (
	"github.com/lobcore/engine/internal/rbtree"
	"go.uber.org/zap"
)

// Ladder is one side of the book: every occupied price on that side,
// ordered so that the best price for that side is always the tree's
// left-most node. Buy ladders compare descending (highest price best);
// sell ladders compare ascending (lowest price best).
type Ladder struct {
	side   Side
	tree   *rbtree.Tree[Uint, *PriceLevel]
	logger *zap.Logger
}

// NewLadder creates an empty ladder for the given side.
func NewLadder(side Side) *Ladder {
	compare := func(a, b Uint) int { return a.Cmp(b) }
	if side == Buy {
		compare = func(a, b Uint) int { return b.Cmp(a) }
	}
	return &Ladder{side: side, tree: rbtree.New[Uint, *PriceLevel](compare), logger: zap.NewNop()}
}

// SetLogger attaches a logger used to record an inconsistent-ladder
// invariant violation before it panics. Called by the owning Book once
// its own logger option has been resolved.
func (l *Ladder) SetLogger(logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	l.logger = logger
}

// Side returns the side this ladder represents.
func (l *Ladder) Side() Side {
	return l.side
}

// Len returns the number of occupied price levels.
func (l *Ladder) Len() int {
	return l.tree.Size()
}

// Best returns the node holding the best (highest-priority) price level,
// or nil if the ladder is empty.
func (l *Ladder) Best() *rbtree.Node[Uint, *PriceLevel] {
	return l.tree.MostLeft()
}

// Get returns the level at price, or nil if none is occupied.
func (l *Ladder) Get(price Uint) *PriceLevel {
	node := l.tree.Find(price)
	if node == nil {
		return nil
	}
	return node.Value()
}

// GetOrCreate returns the level at price, creating and inserting an
// empty one if none exists yet, along with its tree node handle.
func (l *Ladder) GetOrCreate(price Uint) (*PriceLevel, *rbtree.Node[Uint, *PriceLevel]) {
	if node := l.tree.Find(price); node != nil {
		return node.Value(), node
	}
	level := NewPriceLevel(price)
	node, err := l.tree.Add(price, level)
	if err != nil {
		// Find failed to see a level that Add then reports duplicate
		// for; the ladder is corrupt.
		l.logger.Error("orderbook: ladder inconsistent between Find and Add", zap.Error(err))
		panic("orderbook: ladder inconsistent between Find and Add: " + err.Error())
	}
	return level, node
}

// RemoveIfEmpty deletes the level at price from the ladder if, and only
// if, it currently holds no orders. Called after a fill or cancel drains
// a level, so the ladder never carries dead price nodes.
func (l *Ladder) RemoveIfEmpty(price Uint) {
	level := l.Get(price)
	if level == nil || !level.Empty() {
		return
	}
	if _, err := l.tree.Remove(price); err != nil {
		l.logger.Error("orderbook: ladder inconsistent removing empty level", zap.Error(err))
		panic("orderbook: ladder inconsistent removing empty level: " + err.Error())
	}
}

// IterateFromBest walks price levels in priority order (best first),
// calling f for each until it returns true or the ladder is exhausted.
func (l *Ladder) IterateFromBest(f func(*PriceLevel) bool) {
	node := l.tree.MostLeft()
	for node != nil {
		if f(node.Value()) {
			return
		}
		node = l.tree.Successor(node)
	}
}
