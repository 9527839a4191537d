package bcl

// Complement computation, grounded on
// original_source/bc/bclcomplement.c (bcp_NewBCLComplementWithSubtract,
// bcp_NewBCLComplementWithCofactorSub).

// ComplementBySubtract returns the complement of l via subtraction from the
// universal cube (the recommended, faster path): result starts as the
// universal cube, Subtract(result, l, doMCC=!l.IsUnate()) leaves result
// holding the negation, and a light expand+MCC pass cleans it up.
func ComplementBySubtract(l *List) (*List, error) {
	result := NewList(l.ctx)
	if err := result.AddCubeByCube(l.ctx.Universal()); err != nil {
		return nil, err
	}
	doMCC := !l.IsUnate()
	if err := Subtract(result, l, doMCC); err != nil {
		return nil, err
	}
	result.ExpandWithOffset(l)
	if err := result.DoMCC(); err != nil {
		return nil, err
	}
	return result, nil
}

// ComplementByCofactor returns the complement of l via recursive cofactor
// split (the slower, alternative path): picks the best binate split
// variable, recursively complements the two cofactors, re-inserts the split
// literal into each branch, merges via a full SCC pass rather than a
// best-effort adjacent-pair scan (a design decision), then expands
// against the original. Falls back to ComplementBySubtract once the list is
// unate.
func ComplementByCofactor(l *List) (*List, error) {
	if l.IsUnate() {
		return ComplementBySubtract(l)
	}
	v, ok := l.ctx.BestBinateSplit()
	if !ok {
		return ComplementBySubtract(l)
	}

	zero, err := l.NewCofactorByVariable(v, FieldZero)
	if err != nil {
		return nil, err
	}
	one, err := l.NewCofactorByVariable(v, FieldOne)
	if err != nil {
		return nil, err
	}
	zero.SimpleExpand()
	one.SimpleExpand()

	cz, err := ComplementByCofactor(zero)
	if err != nil {
		return nil, err
	}
	co, err := ComplementByCofactor(one)
	if err != nil {
		return nil, err
	}

	// The complement of f|x=0 holds where x=0 in the result; the complement
	// of f|x=1 holds where x=1. Re-insert the split literal accordingly.
	cz.Live(func(_ int, c *Cube) { c.SetVar(v, FieldZero) })
	co.Live(func(_ int, c *Cube) { c.SetVar(v, FieldOne) })

	merged := NewListFromList(cz)
	if err := merged.AddCubesByList(co); err != nil {
		return nil, err
	}
	merged.DoSCC()
	merged.ExpandWithOffset(l)
	return merged, nil
}
