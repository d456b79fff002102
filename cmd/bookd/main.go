// Command bookd is a minimal runnable demonstration of the order book
// core: it wires a Book to a zap logger, the simple RiskGate, and (if
// reachable) a NATS-backed Publisher, then runs a small fixed order
// sequence and prints the resulting top of book and statistics — the same
// shape as the teacher's cmd/engine/main.go (build collaborators, run
// the engine, print statistics).
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/lobcore/engine/internal/bookstat"
	"github.com/lobcore/engine/orderbook"
	"github.com/lobcore/engine/publisher/natspub"
	"github.com/lobcore/engine/riskgate/simple"
	"github.com/nats-io/nats.go"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

func envOr(key, fallback string) string {
	if v := os.Getenv("BOOKD_" + key); v != "" {
		return v
	}
	return fallback
}

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	symbol := envOr("SYMBOL", "DEMO-USD")
	natsURL := envOr("NATS_URL", nats.DefaultURL)

	opts := []orderbook.Option{
		orderbook.WithLogger(logger),
		orderbook.WithRiskGate(simple.New(orderbook.NewUint(1_000_000), orderbook.NewUint(10_000_000), orderbook.NewZeroUint())),
		orderbook.WithMetrics(bookstat.NewCollector(prometheus.NewRegistry(), symbol)),
	}

	if conn, err := nats.Connect(natsURL); err != nil {
		logger.Warn("nats unreachable, running without market-data fan-out", zap.Error(err))
	} else {
		defer conn.Close()
		pub := natspub.New(conn, symbol, logger)
		defer pub.Close()
		opts = append(opts, orderbook.WithPublisher(pub))
	}

	book := orderbook.NewBook(symbol, opts...)

	timeStart := time.Now()
	runDemoSequence(book)
	elapsed := time.Since(timeStart)

	fmt.Println()
	printStatistics(book, elapsed)
}

// runDemoSequence feeds a handful of orders through the book so a
// fresh checkout has something to look at; a real deployment would
// instead wire submit/cancel/modify to a FIX front-end or similar
// (out of scope for this module, per spec.md §1).
func runDemoSequence(book *orderbook.Book) {
	symbol := book.Symbol()
	orders := []*orderbook.Order{
		orderbook.NewOrder(1, orderbook.Buy, orderbook.Limit, orderbook.GTC, orderbook.NewUint(100), orderbook.NewUint(10), symbol, "acct-a"),
		orderbook.NewOrder(2, orderbook.Sell, orderbook.Limit, orderbook.GTC, orderbook.NewUint(101), orderbook.NewUint(5), symbol, "acct-b"),
		orderbook.NewOrder(3, orderbook.Sell, orderbook.Limit, orderbook.IOC, orderbook.NewUint(100), orderbook.NewUint(7), symbol, "acct-c"),
		orderbook.NewOrder(4, orderbook.Buy, orderbook.Market, orderbook.IOC, orderbook.NewZeroUint(), orderbook.NewUint(100), symbol, "acct-d"),
	}
	for _, o := range orders {
		if _, err := book.Submit(o); err != nil {
			fmt.Printf("order %d rejected: %v\n", o.ID(), err)
		}
	}
}

func printStatistics(book *orderbook.Book, elapsed time.Duration) {
	fmt.Printf("symbol: %s\n", book.Symbol())
	fmt.Printf("resting orders: %d\n", book.CountOrders())
	fmt.Printf("bid levels: %d, ask levels: %d\n", book.CountLevels(orderbook.Buy), book.CountLevels(orderbook.Sell))
	if bid, ok := book.BestBid(); ok {
		fmt.Printf("best bid: %s\n", bid.ToFloatString())
	}
	if ask, ok := book.BestAsk(); ok {
		fmt.Printf("best ask: %s\n", ask.ToFloatString())
	}
	fmt.Printf("time elapsed: %s\n", elapsed)
}
