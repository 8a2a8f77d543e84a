package orderbook

import "testing"

func BenchmarkAddNonCrossing(b *testing.B) {
	book := New(WithPruneThread(false))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		book.Add(NewOrder(OrderId(i), GoodTillCancel, Buy, Price(i%1000), 100))
	}
}

func BenchmarkAddAndCancel(b *testing.B) {
	book := New(WithPruneThread(false))
	orders := make([]OrderId, b.N)
	for i := 0; i < b.N; i++ {
		orders[i] = OrderId(i)
		book.Add(NewOrder(orders[i], GoodTillCancel, Buy, Price(i%1000), 100))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		book.Cancel(orders[i])
	}
}

func BenchmarkCrossingMatch(b *testing.B) {
	book := New(WithPruneThread(false))
	for i := 0; i < b.N; i++ {
		book.Add(NewOrder(OrderId(2*i), GoodTillCancel, Sell, 100, 1))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		book.Add(NewOrder(OrderId(2*i+1), GoodTillCancel, Buy, 100, 1))
	}
}
