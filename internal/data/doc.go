// Package data provides index samplers for iterating over datasets.
//
// A Sampler produces a stream of indices into a sized data source; the
// data source itself is never touched, so samplers compose with any
// dataset representation. Sequential visits indices in order, Random
// visits a seeded permutation, and Batch groups another sampler's
// stream into fixed-size index batches.
//
// Example:
//
//	s := data.NewRandom(len(dataset), 42)
//	batches, err := data.NewBatch(s, 32, true)
//	for _, batch := range batches.Batches() {
//	    // batch is a []int of dataset indices
//	}
package data
