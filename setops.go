package ordered

// Union returns a set holding every element of s and of the others.
// Elements comparing equal collapse to the most recently inserted one.
//
// All operands must agree on the element order; the result derives from s
// and keeps its comparator.
func Union[E any](s Set[E], others ...Set[E]) Set[E] {
	out := s
	for _, other := range others {
		for v := range other.All() {
			out = out.Insert(v)
		}
	}
	return out
}

// Intersect returns a set holding the elements of s that appear in every
// one of the others.
//
// All operands must agree on the element order; the result derives from s
// and keeps its comparator.
func Intersect[E any](s Set[E], others ...Set[E]) Set[E] {
	out := s
	for _, other := range others {
		if out.IsEmpty() {
			break
		}
		// out.All() walks the snapshot taken here, undisturbed by the
		// deletions building the pruned set.
		pruned := out
		for v := range out.All() {
			if !other.Contains(v) {
				pruned = pruned.Delete(v)
			}
		}
		out = pruned
	}
	return out
}

// Diff returns a set holding the elements of s that appear in none of the
// others.
//
// All operands must agree on the element order; the result derives from s
// and keeps its comparator.
func Diff[E any](s Set[E], others ...Set[E]) Set[E] {
	out := s
	for _, other := range others {
		if out.IsEmpty() {
			break
		}
		for v := range other.All() {
			out = out.Delete(v)
		}
	}
	return out
}
