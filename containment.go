package bcl

// Single- and multi-cube containment, grounded on
// original_source/bc/bclcontainment.c (bcp_DoBCLSingleCubeContainment) and
// the MCC pass described alongside it in bc.c.

import "sort"

// DoSCC removes every live cube that is a subset of another live cube
// (single-cube containment). VarCntList pruning skips pairs that cannot
// possibly be in a subset relation (a shorter-literal cube cannot be a
// proper subset of a longer-literal one).
func (l *List) DoSCC() {
	vc := l.VarCntList()
	idx := l.LiveIndices()
	for _, i := range idx {
		if l.flags[i] {
			continue
		}
		for _, j := range idx {
			if i == j || l.flags[j] {
				continue
			}
			if vc[j] >= vc[i] && CubeIsSubset(l.cubes[i], l.cubes[j]) {
				l.Mark(j)
			}
		}
	}
	l.Purge()
}

// IsCubeCovered reports whether c is covered by l (c external to l):
// Cofactor(l, c, exclude=-1) is a tautology.
func IsCubeCovered(l *List, c *Cube) (bool, error) {
	cf, err := cubeCofactor(l, c, -1)
	if err != nil {
		return false, err
	}
	return cf.IsTautology()
}

// IsCubeRedundant reports whether l's live cube at raw index pos is covered
// by the rest of l (used by DoMCC).
func IsCubeRedundant(l *List, pos int) (bool, error) {
	cf, err := cubeCofactor(l, l.cubes[pos], pos)
	if err != nil {
		return false, err
	}
	return cf.IsTautology()
}

// DoMCC removes every live cube covered by the union of the others
// (irredundancy / multi-cube containment). Candidates are
// processed in descending literal-count order, which converges faster in
// practice.
func (l *List) DoMCC() error {
	idx := l.LiveIndices()
	sort.Slice(idx, func(a, b int) bool {
		return l.cubes[idx[a]].VariableCount() > l.cubes[idx[b]].VariableCount()
	})
	for _, i := range idx {
		if l.flags[i] {
			continue
		}
		redundant, err := IsCubeRedundant(l, i)
		if err != nil {
			return err
		}
		if redundant {
			l.Mark(i)
		}
	}
	l.Purge()
	return nil
}
