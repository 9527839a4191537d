package bcl

// Tautology check, grounded on
// original_source/bc/bcltautology.c (bcp_IsBCLTautologySub/bcp_IsBCLTautology):
// recursive Shannon decomposition over the best binate variable until the
// list is unate, then checked cube-by-cube for the all-don't-care cube.

// IsTautology reports whether l represents the constant-true function. The
// recursion depth is capped at Context.maxTaut; exceeding it returns ErrRecursionLimit rather than a
// silent wrong answer or a C-style assert abort.
func (l *List) IsTautology() (bool, error) {
	return l.isTautologyAt(0)
}

func (l *List) isTautologyAt(depth int) (bool, error) {
	if depth > l.ctx.maxTaut {
		return false, ErrRecursionLimit
	}
	if l.IsEmpty() {
		return false, nil
	}
	l.CalcSplitVariableCounts()
	v, ok := l.ctx.BestBinateSplit()
	if !ok {
		// unate: tautology iff some live cube is the universal cube.
		found := false
		l.Live(func(_ int, c *Cube) {
			if c.IsTautology() {
				found = true
			}
		})
		return found, nil
	}
	zero, err := l.NewCofactorByVariable(v, FieldZero)
	if err != nil {
		return false, err
	}
	one, err := l.NewCofactorByVariable(v, FieldOne)
	if err != nil {
		return false, err
	}
	zt, err := zero.isTautologyAt(depth + 1)
	if err != nil {
		return false, err
	}
	if !zt {
		return false, nil
	}
	return one.isTautologyAt(depth + 1)
}
