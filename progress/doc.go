// Package progress tracks normalized completion (0.0 to 1.0) of operations
// that decompose into a dynamically sized tree of concurrent units.
//
// A root Node is created by the caller before starting a composite
// operation. The operation attaches children as it discovers how much work
// there is (page count, season count) and completes them as each unit
// finishes. An internal node's value is the arithmetic mean of its
// children; a completed node is pinned at 1.
//
//	root := progress.New()
//	root.Observe(func(v float64) {
//		fmt.Printf("\r%3.0f%%", v*100)
//	})
//	results, err := client.SearchMovies(ctx, "star", tmdb.MovieSearchOptions{}, root)
//
// All nodes of one tree share a single lock, so concurrent units may update
// sibling leaves safely. Operations that accept a Tracker treat nil as Nop.
package progress
