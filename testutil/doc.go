// Package testutil provides test fixtures for the index: random vector
// generation, a brute-force nearest-neighbor oracle and a reference graph
// construction policy used to build realistic multi-layer graphs in tests.
package testutil
