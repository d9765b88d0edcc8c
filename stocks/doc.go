// SPDX-License-Identifier: MIT

// Package stocks turns closing prices into binned daily changes and runs
// Markov-chain prediction experiments over many symbols.
//
// Pipeline
//
//	prices ─DailyChange→ % changes ─BinDailyChanges→ bins 0..3
//
//	Bin 0: change < -1%     Bin 2: 0% ≤ change < 1%
//	Bin 1: -1% ≤ change < 0  Bin 3: change ≥ 1%
//
// Data sources
//
//   - LoadPrices reads a "date,close" CSV; LoadDir pairs SYMBOL.csv
//     (training) with SYMBOL_test.csv (test) in one directory.
//   - Synthetic generates GBM closes per symbol via builder.PriceSeries.
//
// Experiments
//
//	Harness.Run trains one chain per (symbol, order) on the training bins,
//	seeds it with test[-order-days:-days] and scores predictions against
//	test[-days:]. Symbols fan out over an errgroup with bounded parallelism;
//	each symbol draws from its own RNG stream derived from the harness seed
//	and the symbol name, so results do not depend on scheduling.
package stocks
