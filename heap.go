package huffc

// minHeapInitialSize is the starting (and floor) capacity of a heap's
// backing array, matching MIN_HEAP_SIZE in the reference binary_heap.c.
const minHeapInitialSize = 10

// heap is a generic, array-backed, 1-indexed binary min-heap. The root
// always holds the element with the smallest key, where key is extracted
// from each element via the caller-supplied keyFn. This mirrors
// binary_heap.h's GET_VALUE/PRINT_VALUE/DESTROY callback triple: keyFn is
// mandatory, destroyFn and printFn are optional capabilities supplied per
// element type.
type heap[T any] struct {
	items   []T
	keyFn   func(T) int
	destroy func(T)
	print   func(T) string
}

// newHeap creates an empty heap keyed by keyFn. destroy and print may be
// nil; when destroy is non-nil, the heap takes ownership of destroying any
// elements still present when it is discarded via heap.drain.
func newHeap[T any](keyFn func(T) int, destroy func(T), print func(T) string) *heap[T] {
	return &heap[T]{
		items:   make([]T, 0, minHeapInitialSize),
		keyFn:   keyFn,
		destroy: destroy,
		print:   print,
	}
}

func (h *heap[T]) Len() int { return len(h.items) }

// at returns the 1-indexed element i (i.e. h.items[i-1]).
func (h *heap[T]) at(i int) T { return h.items[i-1] }

func (h *heap[T]) swap(i, j int) {
	h.items[i-1], h.items[j-1] = h.items[j-1], h.items[i-1]
}

func (h *heap[T]) key(i int) int { return h.keyFn(h.at(i)) }

// insert appends e as the next leaf and sifts it up until the heap
// property (parent key <= child key) is restored. The backing slice grows
// geometrically; Go's append already doubles on overflow, so no manual
// capacity bookkeeping is needed here, unlike the reference's explicit
// realloc — the effect (amortized O(1) growth) is the same.
func (h *heap[T]) insert(e T) {
	h.items = append(h.items, e)
	current := h.Len()

	for current > 1 {
		parent := current / 2
		if h.key(current) >= h.key(parent) {
			break
		}
		h.swap(current, parent)
		current = parent
	}
}

// extractMin removes and returns the minimum-keyed element. ok is false
// if the heap was empty. After removal, the backing array is shrunk to
// half its capacity once occupancy falls to half or below, with a floor
// of minHeapInitialSize, matching the reference's shrink policy.
func (h *heap[T]) extractMin() (min T, ok bool) {
	n := h.Len()
	if n == 0 {
		return min, false
	}

	min = h.at(1)
	h.swap(1, n)
	h.items = h.items[:n-1]
	n--

	h.siftDown(1, n)
	h.shrinkIfNeeded()
	return min, true
}

// siftDown restores the heap property starting at index i, assuming the
// heap currently has n elements. At each step it swaps with the unique
// smaller child that exists and whose key violates the heap property;
// it stops once neither child exists or both satisfy the property. This
// is the corrected version of the reference's sift-down (see §9 open
// question 2): the reference dereferences a potentially out-of-range
// right child's key before checking whether the right child is in range.
func (h *heap[T]) siftDown(i, n int) {
	for {
		left, right := 2*i, 2*i+1
		smallest := i

		if left <= n && h.key(left) < h.key(smallest) {
			smallest = left
		}
		if right <= n && h.key(right) < h.key(smallest) {
			smallest = right
		}
		if smallest == i {
			return
		}
		h.swap(i, smallest)
		i = smallest
	}
}

func (h *heap[T]) shrinkIfNeeded() {
	curCap := cap(h.items)
	if curCap > minHeapInitialSize && h.Len() <= curCap/2 {
		newCap := curCap / 2
		if newCap < minHeapInitialSize {
			newCap = minHeapInitialSize
		}
		shrunk := make([]T, h.Len(), newCap)
		copy(shrunk, h.items)
		h.items = shrunk
	}
}

// drain destroys every remaining element via the heap's destroy callback,
// if one was supplied, and empties the heap. Safe to call on an already
// empty heap.
func (h *heap[T]) drain() {
	if h.destroy != nil {
		for _, e := range h.items {
			h.destroy(e)
		}
	}
	h.items = h.items[:0]
}
