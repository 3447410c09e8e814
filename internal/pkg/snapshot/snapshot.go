package snapshot

import "time"

// Value is an explicit cache value object: data plus the moment it was
// fetched. Callers perform the TTL check themselves with Fresh before using
// Data, which keeps invalidation decisions visible and testable instead of
// hidden inside a mutable package-level store.
type Value[T any] struct {
	Data      T
	FetchedAt time.Time
}

// Capture wraps freshly fetched data with the current fetch time.
func Capture[T any](data T, now time.Time) Value[T] {
	return Value[T]{Data: data, FetchedAt: now}
}

// Fresh reports whether the value is still usable at the given time under
// the given TTL. The zero Value is never fresh.
func (v Value[T]) Fresh(now time.Time, ttl time.Duration) bool {
	if v.FetchedAt.IsZero() {
		return false
	}
	return now.Sub(v.FetchedAt) < ttl
}
