// Package testutil provides testing utilities for safemem.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, thread-safe RNG for randomized property tests.
//
// # Random Data
//
//	rng := testutil.NewRNG(seed)
//	buf := rng.Bytes(64)   // random contents
//	n := rng.Intn(1024)    // random length
//	b := rng.Byte()        // random fill byte
package testutil
