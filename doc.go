// Package lvkit is a small algorithms kit with three independent tools
// and the commands that drive them.
//
// 🔐 QR error correction
//
//	gf256/       GF(2^8) arithmetic with the QR modulus 0x11D
//	polynomial/  immutable polynomials over GF(256), remainder by long division
//	reedsolomon/ message and generator polynomials, correction codewords, byte-mode data
//
// 🎬 Kevin Bacon game
//
//	core/    thread-safe undirected graph whose edges carry attribute sets
//	bfs/     breadth-first search, FindPath with edge attributes, distance histograms
//	bacon/   cast file loader (plain or snappy), the game driver
//	builder/ deterministic fixtures: paths, stars, random casts, GBM price series
//
// 📈 Markov price prediction
//
//	markov/ fixed-order chains, stochastic prediction, MSE and Monte Carlo experiments
//	stocks/ daily change binning, CSV loading, the concurrent experiment harness
//
// Around them: config/ (YAML + LVKIT_* env, validated), logging/ (zap),
// metrics/ (prometheus), plot/ (lipgloss terminal charts), and the
// commands cmd/bacon, cmd/qrcode and cmd/stocks.
//
// Quick start:
//
//	go run ./cmd/qrcode -message "HELLO" -k 10
//	go run ./cmd/bacon -file cast.tsv.sz
//	go run ./cmd/stocks -data ./prices -plot
package lvkit
