package bcl

// Simple and offset-guided expand, grounded on
// original_source/bc/bc.c's simple-expand loop and the ExpandWithOffSet call
// site in bclcomplement.c.

// SimpleExpand pairwise merges cubes differing in exactly one variable: for
// each pair (i,j) with Delta==1, the conflicting variable is tentatively
// flipped in cube i; if that makes cube j a subset of (now-expanded) cube i,
// the variable is promoted to don't-care in cube i. Otherwise the symmetric
// move is tried on cube j. Newly-dominated cubes are marked and purged.
func (l *List) SimpleExpand() {
	idx := l.LiveIndices()
	for _, i := range idx {
		if l.flags[i] {
			continue
		}
		for _, j := range idx {
			if i == j || l.flags[j] {
				continue
			}
			ci, cj := l.cubes[i], l.cubes[j]
			if Delta(ci, cj) != 1 {
				continue
			}
			v, ok := conflictingVariable(ci, cj)
			if !ok {
				continue
			}
			if tryExpand(l, i, j, v) {
				continue
			}
			tryExpand(l, j, i, v)
		}
	}
	l.Purge()
}

// conflictingVariable returns the single variable where a and b's fields
// AND to 00, assuming Delta(a,b)==1.
func conflictingVariable(a, b *Cube) (uint, bool) {
	n := a.VarCnt()
	for i := uint(0); i < n; i++ {
		av, bv := a.GetVar(i), b.GetVar(i)
		if av != FieldDC && bv != FieldDC && av&bv == FieldIllegal {
			return i, true
		}
	}
	return 0, false
}

// tryExpand tentatively promotes variable v of l's cube at raw index i to
// don't-care; if that makes the cube at raw index other a subset of i (i.e.
// i now covers other), the promotion is kept and other, together with every
// other live cube the expanded cube now covers, is marked deleted (the
// caller's Purge removes them); otherwise it is reverted.
func tryExpand(l *List, i, other int, v uint) bool {
	ci := l.cubes[i]
	saved := ci.GetVar(v)
	ci.SetVar(v, FieldDC)
	if CubeIsSubset(ci, l.cubes[other]) {
		for k, deleted := range l.flags {
			if k != i && !deleted && CubeIsSubset(ci, l.cubes[k]) {
				l.Mark(k)
			}
		}
		return true
	}
	ci.SetVar(v, saved)
	return false
}

// ExpandWithOffset relaxes each fixed literal of every live cube to
// don't-care as long as the relaxed cube stays disjoint from off (typically
// the complement of l). off is never modified.
func (l *List) ExpandWithOffset(off *List) {
	n := l.ctx.VarCnt()
	l.Live(func(_ int, c *Cube) {
		for i := uint(0); i < n; i++ {
			v := c.GetVar(i)
			if v == FieldDC {
				continue
			}
			c.SetVar(i, FieldDC)
			if intersectsAny(c, off) {
				c.SetVar(i, v)
			}
		}
	})
}

func intersectsAny(c *Cube, off *List) bool {
	hit := false
	off.Live(func(_ int, o *Cube) {
		if !hit && IsIntersect(c, o) {
			hit = true
		}
	})
	return hit
}
