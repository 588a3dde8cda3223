package recursive

import "cmp"

// Search finds target in s, which must be sorted in ascending order. The
// result is the index of target, or -1 if it is not in s. If target occurs
// more than once, any of its indices may be returned.
func Search[T cmp.Ordered](s []T, target T) int {
	return search(s, target, 0, len(s)-1)
}

func search[T cmp.Ordered](s []T, target T, left, right int) int {
	if left > right {
		return -1
	}
	mid := left + (right-left)/2
	switch c := cmp.Compare(target, s[mid]); {
	case c == 0:
		return mid
	case c > 0:
		return search(s, target, mid+1, right)
	default:
		return search(s, target, left, mid-1)
	}
}

// SearchAll finds every index of target in s, which must be sorted in
// ascending order. The indices are returned in ascending order. The result is
// nil if target is not in s.
func SearchAll[T cmp.Ordered](s []T, target T) []int {
	return searchAll(s, target, 0, len(s)-1, nil)
}

// searchAll appends the indices of target in s[left:right+1] to r.
func searchAll[T cmp.Ordered](s []T, target T, left, right int, r []int) []int {
	if left > right {
		return r
	}
	mid := left + (right-left)/2
	switch c := cmp.Compare(target, s[mid]); {
	case c == 0:
		// Equal elements can be on both sides.
		r = searchAll(s, target, left, mid-1, r)
		r = append(r, mid)
		return searchAll(s, target, mid+1, right, r)
	case c > 0:
		return searchAll(s, target, mid+1, right, r)
	default:
		return searchAll(s, target, left, mid-1, r)
	}
}
