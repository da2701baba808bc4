package square

import (
	"context"
	"errors"
	"fmt"
)

// ErrCursorLoop is returned when Square hands back a cursor it already
// returned earlier in the same iteration.
var ErrCursorLoop = errors.New("square: pagination cursor repeated")

// PageFunc fetches the page at cursor ("" for the first page) and returns
// its items and the cursor of the next page ("" when done).
type PageFunc[T any] func(ctx context.Context, cursor string) ([]T, string, error)

// Iterator walks a cursor-paginated listing one item at a time.
//
//	it := client.Payments().Iterate(square.ListPaymentsParams{})
//	for it.Next(ctx) {
//		p := it.Value()
//	}
//	if err := it.Err(); err != nil { ... }
type Iterator[T any] struct {
	fetch PageFunc[T]

	page   []T
	idx    int
	cur    T
	cursor string
	seen   map[string]struct{}

	last    bool
	tailErr error
	err     error
}

// Paginate returns an Iterator over the pages produced by fetch.
func Paginate[T any](fetch PageFunc[T]) *Iterator[T] {
	return PaginateFrom("", fetch)
}

// PaginateFrom is Paginate resuming at cursor, as returned by an earlier
// listing. An empty cursor starts at the first page.
func PaginateFrom[T any](cursor string, fetch PageFunc[T]) *Iterator[T] {
	it := &Iterator[T]{fetch: fetch, cursor: cursor, seen: make(map[string]struct{})}
	if cursor != "" {
		it.seen[cursor] = struct{}{}
	}
	return it
}

// Next advances to the next item, fetching pages as needed. It returns
// false when the listing is exhausted or an error occurred.
func (it *Iterator[T]) Next(ctx context.Context) bool {
	for it.idx >= len(it.page) {
		if it.err != nil {
			return false
		}
		if it.last {
			it.err = it.tailErr
			return false
		}
		if err := ctx.Err(); err != nil {
			it.err = err
			return false
		}

		items, next, err := it.fetch(ctx, it.cursor)
		if err != nil {
			it.err = err
			return false
		}
		it.page, it.idx = items, 0

		switch _, dup := it.seen[next]; {
		case next == "":
			it.last = true
		case dup:
			it.last = true
			it.tailErr = fmt.Errorf("%w: %q", ErrCursorLoop, next)
		default:
			it.seen[next] = struct{}{}
			it.cursor = next
		}
	}

	it.cur = it.page[it.idx]
	it.idx++
	return true
}

// Value returns the current item.
func (it *Iterator[T]) Value() T {
	return it.cur
}

// Err returns the error that stopped the iteration, if any.
func (it *Iterator[T]) Err() error {
	return it.err
}

// CollectAll drains every page of fetch into one slice.
func CollectAll[T any](ctx context.Context, fetch PageFunc[T]) ([]T, error) {
	var all []T
	it := Paginate(fetch)
	for it.Next(ctx) {
		all = append(all, it.Value())
	}
	return all, it.Err()
}
