package vqonsole

// History is the bounded circular scrollback buffer: a ring of
// `maxLines` slots of which at most `maxLines-1` hold a logical line
// at any time (one slot is a normalization reserve).
type History struct {
	buffer   [][]Cell
	wrapped  []bool
	maxLines int
	// arrayIndex is the next slot add_cells will write to.
	arrayIndex int
	filled     bool
	lines      int
}

// NewHistory creates a history ring with the given capacity. maxLines
// must be at least 2 (one usable line plus the normalization reserve);
// smaller values are clamped up.
func NewHistory(maxLines int) *History {
	if maxLines < 2 {
		maxLines = 2
	}
	return &History{
		buffer:   make([][]Cell, maxLines),
		wrapped:  make([]bool, maxLines),
		maxLines: maxLines,
	}
}

// Lines returns the number of logical lines currently stored.
func (h *History) Lines() int {
	return h.lines
}

// Full reports whether the ring holds the maximum usable line count,
// i.e. whether the next AddCells will evict the oldest line.
func (h *History) Full() bool {
	return h.lines >= h.maxLines-1
}

// MaxLines returns the ring's total slot capacity.
func (h *History) MaxLines() int {
	return h.maxLines
}

// adjust maps a logical line index to its physical ring slot:
// identity while the ring has never wrapped, else
// `(line + arrayIndex + 2) mod maxLines`. The `+2` keeps the
// two-slot reserve; resize round-trips depend on it, so change it
// only with the history tests green.
func (h *History) adjust(line int) int {
	if !h.filled {
		return line
	}
	idx := (line + h.arrayIndex + 2) % h.maxLines
	if idx < 0 {
		idx += h.maxLines
	}
	return idx
}

// AddCells stores a snapshot (a copy) of cells as the newest line,
// marking it wrapped or not.
func (h *History) AddCells(cells []Cell, wrapped bool) {
	stored := make([]Cell, len(cells))
	copy(stored, cells)

	h.buffer[h.arrayIndex] = stored
	h.wrapped[h.arrayIndex] = wrapped
	h.arrayIndex++

	if h.arrayIndex >= h.maxLines {
		h.arrayIndex = 0
		h.filled = true
	}
	if h.lines < h.maxLines-1 {
		h.lines++
	}
}

// GetCells returns cells[col:col+count] from the given logical line.
// count < 0 returns the full line from col onward. Out-of-range
// requests return nil rather than panicking.
func (h *History) GetCells(line, col, count int) []Cell {
	if line < 0 || line >= h.lines {
		return nil
	}
	row := h.buffer[h.adjust(line)]
	if col < 0 || col > len(row) {
		return nil
	}
	end := len(row)
	if count >= 0 && col+count < end {
		end = col + count
	}
	out := make([]Cell, end-col)
	copy(out, row[col:end])
	return out
}

// LineLen returns the number of stored cells in the line, or 0 if the
// line index is out of range.
func (h *History) LineLen(line int) int {
	if line < 0 || line >= h.lines {
		return 0
	}
	return len(h.buffer[h.adjust(line)])
}

// IsWrapped reports whether the line was a wrap continuation rather
// than ending in an explicit newline. Out-of-range lines report false.
func (h *History) IsWrapped(line int) bool {
	if line < 0 || line >= h.lines {
		return false
	}
	return h.wrapped[h.adjust(line)]
}

// normalize rewrites a wrapped ring so its lines sit oldest-first at
// physical slots 0..maxLines-3, clearing `filled` and leaving the two
// reserve slots empty; adjust() then becomes the identity for every
// surviving line. An unwrapped ring is already in that form, so this
// is a no-op until the ring has filled. After normalization
// lines <= maxLines-2.
func (h *History) normalize() {
	if !h.filled {
		return
	}
	keep := h.maxLines - 2
	newBuffer := make([][]Cell, h.maxLines)
	newWrapped := make([]bool, h.maxLines)
	for k := 0; k < keep; k++ {
		src := (h.arrayIndex - 1 - k + h.maxLines) % h.maxLines
		newBuffer[keep-1-k] = h.buffer[src]
		newWrapped[keep-1-k] = h.wrapped[src]
	}
	h.buffer = newBuffer
	h.wrapped = newWrapped
	h.arrayIndex = keep
	h.filled = false
	h.lines = keep
}

// SetMaxLines resizes the ring to a new capacity: normalize first,
// then truncate oldest-first or extend. A shrink retains at most
// `newMax-2` lines (the shrunken ring keeps both reserve slots).
func (h *History) SetMaxLines(newMax int) {
	if newMax < 2 {
		newMax = 2
	}

	h.normalize()

	if h.maxLines > newMax {
		start := h.arrayIndex + 2 - newMax
		if start < 0 {
			start = 0
		}
		newBuffer := make([][]Cell, newMax)
		newWrapped := make([]bool, newMax)
		for i := 0; i < newMax && start+i < h.maxLines; i++ {
			newBuffer[i] = h.buffer[start+i]
			newWrapped[i] = h.wrapped[start+i]
		}
		h.buffer = newBuffer
		h.wrapped = newWrapped
		h.arrayIndex -= start
	} else {
		newBuffer := make([][]Cell, newMax)
		newWrapped := make([]bool, newMax)
		copy(newBuffer, h.buffer)
		copy(newWrapped, h.wrapped)
		h.buffer = newBuffer
		h.wrapped = newWrapped
	}

	h.maxLines = newMax
	if h.lines > newMax-2 {
		h.lines = newMax - 2
	}
}
