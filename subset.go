package bcl

// List-level subset / equality tests, grounded on
// original_source/bc/bclsubset.c (bcp_IsBCLSubsetWithCofactor,
// bcp_IsBCLSubsetWithSubstract).

// IsSubset reports whether b is a subset of a ("b ⊆ a", i.e. every cube of b
// is covered by a), via the preferred cofactor-based method: for each cube
// of b, verify IsCubeCovered(a, cube), failing fast on the first uncovered
// cube.
func IsSubset(a, b *List) (bool, error) {
	ok := true
	var err error
	b.Live(func(_ int, c *Cube) {
		if err != nil || !ok {
			return
		}
		covered, e := IsCubeCovered(a, c)
		if e != nil {
			err = e
			return
		}
		if !covered {
			ok = false
		}
	})
	if err != nil {
		return false, err
	}
	return ok, nil
}

// IsSubsetSubtract is the slow cross-check: b is a subset of a iff b\a is
// empty.
func IsSubsetSubtract(a, b *List) (bool, error) {
	diff := NewListFromList(b)
	if err := Subtract(diff, a, true); err != nil {
		return false, err
	}
	return diff.IsEmpty(), nil
}

// IsEqual reports whether a and b denote the same Boolean function: a ⊆ b
// and b ⊆ a.
func IsEqual(a, b *List) (bool, error) {
	aSubB, err := IsSubset(b, a)
	if err != nil {
		return false, err
	}
	if !aSubB {
		return false, nil
	}
	return IsSubset(a, b)
}
