package lists

// relative normalizes a copy bound: negative values count from the end,
// and the result is clamped into [0, l.len].
func (l *List[T]) relative(i int) int {
	if i < 0 {
		return max(i+l.len, 0)
	}
	return min(i, l.len)
}

// CopyWithin copies the values at positions [start, end) to the positions
// starting at target, stopping at the end of the list. Negative positions
// count from the end and all positions are clamped to the list. Only values
// are overwritten: the length and element identities of l do not change.
// Overlapping ranges are copied as if through an intermediate buffer.
//
// Pass 0 and l.Len() as start and end to copy the whole list.
func (l *List[T]) CopyWithin(target, start, end int) *List[T] {
	target = l.relative(target)
	start = l.relative(start)
	end = l.relative(end)

	count := min(end-start, l.len-target)
	if count <= 0 || target == start {
		return l
	}

	buf := make([]T, 0, count)
	for e := l.at(start); len(buf) < count; e = e.next {
		buf = append(buf, e.Value)
	}
	e := l.at(target)
	for _, v := range buf {
		e.Value = v
		e = e.next
	}
	return l
}
