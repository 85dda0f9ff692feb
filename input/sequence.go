package input

// SequenceDetector matches a fixed key run over a sliding window of the last K keys
//
// The buffer is never reset: after a match the next key breaks the run, so a second
// match requires the full sequence again
type SequenceDetector struct {
	target []KeyCode
	buf    []KeyCode
}

// NewSequenceDetector creates a detector for target, copied
func NewSequenceDetector(target []KeyCode) *SequenceDetector {
	owned := make([]KeyCode, len(target))
	copy(owned, target)
	return &SequenceDetector{
		target: owned,
		buf:    make([]KeyCode, 0, len(owned)),
	}
}

// Feed appends code, truncates to the last K codes and reports a full, ordered match
func (d *SequenceDetector) Feed(code KeyCode) bool {
	k := len(d.target)
	if k == 0 {
		return false
	}

	if len(d.buf) == k {
		copy(d.buf, d.buf[1:])
		d.buf = d.buf[:k-1]
	}
	d.buf = append(d.buf, code)

	if len(d.buf) != k {
		return false
	}
	for i := range d.target {
		if d.buf[i] != d.target[i] {
			return false
		}
	}
	return true
}

// Buffered returns a copy of the trailing window
func (d *SequenceDetector) Buffered() []KeyCode {
	out := make([]KeyCode, len(d.buf))
	copy(out, d.buf)
	return out
}
