package vg

import "math"

// Dash is a stroke dash pattern: alternating on/off lengths plus a
// starting offset into the cycle. An odd-length array is logically
// duplicated so the pattern always alternates evenly; [5] dashes and
// gaps 5 units each.
type Dash struct {
	Array  []float64
	Offset float64
}

// NewDash creates a dash pattern from alternating on/off lengths.
// Negative lengths are taken absolute. Returns nil when no length is
// positive, which callers treat as a solid stroke.
func NewDash(lengths ...float64) *Dash {
	any := false
	for _, l := range lengths {
		if l > 0 {
			any = true
			break
		}
	}
	if !any {
		return nil
	}

	arr := make([]float64, len(lengths))
	for i, l := range lengths {
		arr[i] = math.Abs(l)
	}
	return &Dash{Array: arr}
}

// WithOffset returns a copy of the pattern starting at offset.
func (d *Dash) WithOffset(offset float64) *Dash {
	if d == nil {
		return nil
	}
	return &Dash{Array: d.Array, Offset: offset}
}

// PatternLength returns the length of one full cycle, accounting for
// the duplication of odd-length arrays.
func (d *Dash) PatternLength() float64 {
	if d == nil {
		return 0
	}
	var total float64
	for _, l := range d.Array {
		total += l
	}
	if len(d.Array)%2 != 0 {
		total *= 2
	}
	return total
}

// IsDashed reports whether the pattern produces gaps at all.
func (d *Dash) IsDashed() bool {
	if d == nil {
		return false
	}
	for _, l := range d.Array {
		if l > 0 {
			return true
		}
	}
	return false
}

// Clone deep-copies the pattern.
func (d *Dash) Clone() *Dash {
	if d == nil {
		return nil
	}
	arr := make([]float64, len(d.Array))
	copy(arr, d.Array)
	return &Dash{Array: arr, Offset: d.Offset}
}

// NormalizedOffset returns the offset wrapped into one pattern cycle.
func (d *Dash) NormalizedOffset() float64 {
	length := d.PatternLength()
	if length <= 0 {
		return 0
	}
	off := math.Mod(d.Offset, length)
	if off < 0 {
		off += length
	}
	return off
}

// Scale returns the pattern with every length and the offset multiplied
// by factor. Dash lengths live in user space, so they scale with the
// coordinate transform.
func (d *Dash) Scale(factor float64) *Dash {
	if d == nil || factor <= 0 {
		return d
	}
	arr := make([]float64, len(d.Array))
	for i, l := range d.Array {
		arr[i] = l * factor
	}
	return &Dash{Array: arr, Offset: d.Offset * factor}
}

// effectiveArray returns the array with odd-length arrays duplicated.
func (d *Dash) effectiveArray() []float64 {
	if d == nil || len(d.Array) == 0 {
		return nil
	}
	if len(d.Array)%2 == 0 {
		return d.Array
	}
	arr := make([]float64, len(d.Array)*2)
	copy(arr, d.Array)
	copy(arr[len(d.Array):], d.Array)
	return arr
}

// ApplyTo walks a flattened path and returns a new path containing
// only the on-runs of the pattern. A nil or gap-free pattern returns a
// clone of the input. Each subpath restarts the pattern at the offset.
func (d *Dash) ApplyTo(p *Path) *Path {
	if !d.IsDashed() {
		return p.Clone()
	}

	arr := d.effectiveArray()
	out := NewPath(WithSubdivision(p.Subdivision()))

	for _, sub := range p.Subpaths() {
		idx, remaining := d.seek(arr)
		penDown := idx%2 == 0
		open := false

		for _, seg := range sub.Segments() {
			length := seg.Length()
			if length == 0 {
				continue
			}
			dir := seg.Area.Div(length)

			cur := 0.0
			for cur < length {
				step := math.Min(remaining, length-cur)
				if penDown {
					from := seg.P1.Add(dir.Mul(cur))
					to := seg.P1.Add(dir.Mul(cur + step))
					if !open {
						// Runs append raw subpaths; MoveTo would
						// implicitly close the previous one.
						out.subpaths = append(out.subpaths, Subpath{})
						open = true
					}
					out.push(&out.subpaths[len(out.subpaths)-1], from, to)
					out.cursor = to
				}
				cur += step
				remaining -= step
				for remaining <= 0 {
					idx = (idx + 1) % len(arr)
					remaining += arr[idx]
					penDown = !penDown
					if !penDown {
						open = false
					}
				}
			}
		}
	}
	return out
}

// seek locates the pattern position for the normalized offset,
// returning the entry index and the length remaining in it. Zero
// entries are skipped; at least one entry is positive by construction.
func (d *Dash) seek(arr []float64) (int, float64) {
	off := d.NormalizedOffset()
	idx := 0
	for off >= arr[idx] {
		off -= arr[idx]
		idx = (idx + 1) % len(arr)
	}
	return idx, arr[idx] - off
}
