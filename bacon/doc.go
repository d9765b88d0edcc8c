// SPDX-License-Identifier: MIT

// Package bacon plays the Kevin Bacon game on a movie co-star graph:
// actors are vertices, and an edge between two actors carries the set of
// movies they appeared in together.
//
// Cast files are tab-separated, one movie per line:
//
//	Movie Title<TAB>Actor One<TAB>Actor Two<TAB>...
//
// Blank lines and lines starting with '#' are skipped. Files ending in
// ".sz" are read and written through a snappy stream.
//
// Play runs one BFS from the start actor and reconstructs a shortest path
// to every target with bfs.FindPath.
package bacon
