package recording_test

import (
	"testing"

	"github.com/lobcore/engine/orderbook"
	"github.com/lobcore/engine/publisher/recording"
	"github.com/stretchr/testify/require"
)

func TestRecordingPublisherCapturesEventsInOrder(t *testing.T) {
	rec := recording.New()
	b := orderbook.NewBook("XYZ", orderbook.WithPublisher(rec))

	_, err := b.Submit(orderbook.NewOrder(1, orderbook.Sell, orderbook.Limit, orderbook.GTC,
		orderbook.NewUint(100), orderbook.NewUint(5), "XYZ", "a"))
	require.NoError(t, err)

	_, err = b.Submit(orderbook.NewOrder(2, orderbook.Buy, orderbook.Limit, orderbook.GTC,
		orderbook.NewUint(100), orderbook.NewUint(5), "XYZ", "b"))
	require.NoError(t, err)

	require.Len(t, rec.Trades(), 1)
	require.Equal(t, uint64(1), rec.Trades()[0].TradeID)
	require.Len(t, rec.BestPrices(), 2)
}
