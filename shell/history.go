package shell

// History keeps the most recent command lines, newest first. Pushing a line
// that is already present moves it to the front; pushing into a full
// history drops the least recently used entry.
type History struct {
	entries []string
	depth   int
}

// NewHistory creates a history holding at most depth lines
func NewHistory(depth int) *History {
	return &History{
		entries: make([]string, 0, depth),
		depth:   depth,
	}
}

// Push records line as the most recent entry
func (h *History) Push(line string) {
	if h.depth == 0 || line == "" {
		return
	}

	idx := -1
	for i, e := range h.entries {
		if e == line {
			idx = i
			break
		}
	}

	switch {
	case idx >= 0:
		// Move to front
		copy(h.entries[1:idx+1], h.entries[:idx])
	case len(h.entries) < h.depth:
		h.entries = append(h.entries, "")
		copy(h.entries[1:], h.entries[:len(h.entries)-1])
	default:
		// Evict oldest
		copy(h.entries[1:], h.entries[:len(h.entries)-1])
	}
	h.entries[0] = line
}

// Len returns the number of stored lines
func (h *History) Len() int {
	return len(h.entries)
}

// At returns the entry i steps back, 0 being the most recent
func (h *History) At(i int) (string, bool) {
	if i < 0 || i >= len(h.entries) {
		return "", false
	}
	return h.entries[i], true
}
