package input

// Small ordered sets over slices. Per-frame key sets hold a handful of
// entries, so linear scans beat map allocation

// Union returns the elements of a followed by those of b not already present, without duplicates
func Union[T comparable](a, b []T) []T {
	out := make([]T, 0, len(a)+len(b))
	for _, v := range a {
		if !contains(out, v) {
			out = append(out, v)
		}
	}
	for _, v := range b {
		if !contains(out, v) {
			out = append(out, v)
		}
	}
	return out
}

// Intersect returns the elements of a that are also in b, in a's order
func Intersect[T comparable](a, b []T) []T {
	out := make([]T, 0, min(len(a), len(b)))
	for _, v := range a {
		if contains(b, v) && !contains(out, v) {
			out = append(out, v)
		}
	}
	return out
}

// Difference returns the elements of a that are not in b, in a's order
func Difference[T comparable](a, b []T) []T {
	out := make([]T, 0, len(a))
	for _, v := range a {
		if !contains(b, v) && !contains(out, v) {
			out = append(out, v)
		}
	}
	return out
}

func contains[T comparable](s []T, v T) bool {
	for _, e := range s {
		if e == v {
			return true
		}
	}
	return false
}
