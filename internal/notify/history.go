package notify

// history is a fixed-capacity ring of notifications; pushing onto a full ring
// discards the oldest entry. The sink's mutex guards all access.
type history struct {
	buf  []Notification
	head int
	size int
}

func newHistory(capacity uint) *history {
	return &history{
		buf: make([]Notification, max(1, capacity)),
	}
}

func (h *history) push(n Notification) {
	if h.size == cap(h.buf) {
		// full: overwrite the oldest slot
		h.buf[h.head] = n
		h.head = (h.head + 1) % cap(h.buf)
		return
	}

	h.buf[(h.head+h.size)%cap(h.buf)] = n
	h.size++
}

func (h *history) items() []Notification {
	out := make([]Notification, 0, h.size)
	for i := 0; i < h.size; i++ {
		out = append(out, h.buf[(h.head+i)%cap(h.buf)])
	}
	return out
}
