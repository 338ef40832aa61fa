// Package fetch turns one logical catalog request into a bounded set of
// concurrent requests and aggregates their results.
//
// All handles paginated resources: page 1 is fetched first to learn the
// page count, then pages 2..N are fetched concurrently. Seasons handles
// per-season fan-out where a not-found season is a valid absence.
//
// Both follow the same failure policy: the first error cancels the group
// through its context, no further units are started, and that error is
// the only one the caller sees. Late failures from units that were
// already in flight are discarded.
package fetch
