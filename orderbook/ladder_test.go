package orderbook

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLadderBestIsHighestForBuyLowestForSell(t *testing.T) {
	bids := NewLadder(Buy)
	asks := NewLadder(Sell)

	for _, p := range []uint64{100, 105, 95} {
		bids.GetOrCreate(NewUint(p))
		asks.GetOrCreate(NewUint(p))
	}

	require.True(t, bids.Best().Key().Equals(NewUint(105)))
	require.True(t, asks.Best().Key().Equals(NewUint(95)))
}

func TestLadderRemoveIfEmptyOnlyRemovesWhenDrained(t *testing.T) {
	ladder := NewLadder(Buy)
	level, _ := ladder.GetOrCreate(NewUint(100))
	o := NewOrder(1, Buy, Limit, GTC, NewUint(100), NewUint(1), "X", "a")
	level.Enqueue(o)

	ladder.RemoveIfEmpty(NewUint(100))
	require.Equal(t, 1, ladder.Len())

	level.Dequeue(o)
	ladder.RemoveIfEmpty(NewUint(100))
	require.Equal(t, 0, ladder.Len())
}

func TestLadderIterateFromBestWalksInPriorityOrder(t *testing.T) {
	bids := NewLadder(Buy)
	for _, p := range []uint64{100, 105, 95, 110} {
		bids.GetOrCreate(NewUint(p))
	}

	var order []string
	bids.IterateFromBest(func(level *PriceLevel) bool {
		order = append(order, level.Price().String())
		return false
	})
	require.Equal(t, []string{"110", "105", "100", "95"}, order)
}
