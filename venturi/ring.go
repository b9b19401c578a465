package venturi

// historyCapacity bounds cross-call history accumulation so long-running
// sessions do not grow without limit.
const historyCapacity = 1000

// intRing is a fixed-capacity append-only ring buffer of ints.
type intRing struct {
	buf  []int
	next int
	full bool
}

func newIntRing(capacity int) *intRing {
	return &intRing{buf: make([]int, capacity)}
}

func (r *intRing) push(v int) {
	r.buf[r.next] = v
	r.next++
	if r.next == len(r.buf) {
		r.next = 0
		r.full = true
	}
}

// values returns the stored entries, oldest first.
func (r *intRing) values() []int {
	if !r.full {
		return append([]int(nil), r.buf[:r.next]...)
	}
	out := make([]int, 0, len(r.buf))
	out = append(out, r.buf[r.next:]...)
	out = append(out, r.buf[:r.next]...)
	return out
}
