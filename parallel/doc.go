// SPDX-License-Identifier: MIT

// Package parallel runs an independent function over a slice of inputs on a
// bounded pool of goroutines and returns the outputs in input order.
//
// Typical use is a batch of independent EigenGame solves, one per dataset:
//
//	results, err := parallel.Map(ctx, datasets, func(ctx context.Context, D *matrix.Dense) (*eigengame.Result, error) {
//		return eigengame.Solve(D, k, epochs, lr, eigengame.WithContext(ctx))
//	}, 0)
//
// Shared read-only inputs travel through the closure, never through package
// state. The first error cancels the context handed to the remaining calls.
package parallel
