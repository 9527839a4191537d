package bcl

// Cofactor computation and split-variable selection, grounded
// on original_source/bc/bc.c (bcp_DoBCLOneVariableCofactor,
// bcp_CalcBCLBinateSplitVariableTable, bcp_GetBCLMaxBinateSplitVariable8,
// bcp_IsBCLUnate).

// DoOneVarCofactor computes l|_{i=v} in place, where v is FieldZero or
// FieldOne. For every live cube whose field i agrees with the assertion
// (u==v), the literal is now redundant and is relaxed to don't-care; a cube
// whose field i is the opposite literal is incompatible with the assertion
// and is deleted outright; a don't-care field is left untouched. Newly
// dominated cubes are cleaned up with DoSCC.
//
// An earlier draft of this description said "if u is the opposite value,
// replace field[i] with 11", which does not match worked scenario S4 (where
// the opposite-literal cube is eliminated and the matching-literal cubes
// have the field dropped to don't-care). This implementation follows S4 and
// the standard definition of a one-variable cofactor.
func (l *List) DoOneVarCofactor(i uint, v int) error {
	if v != FieldZero && v != FieldOne {
		return ErrBadVarIndex
	}
	idx := l.LiveIndices()
	for _, pos := range idx {
		c := l.cubes[pos]
		u := c.GetVar(i)
		switch u {
		case FieldDC:
			// no change
		case v:
			c.SetVar(i, FieldDC)
		default:
			l.Mark(pos)
		}
	}
	l.DoSCC()
	return nil
}

// NewCofactorByVariable returns a fresh list containing l|_{i=v}, leaving l
// untouched (cf. bcp_NewBCLCofacterByVariable).
func (l *List) NewCofactorByVariable(i uint, v int) (*List, error) {
	out := NewListFromList(l)
	if err := out.DoOneVarCofactor(i, v); err != nil {
		return nil, err
	}
	return out, nil
}

// cubeCofactor implements DoCubeCofactor: for each live cube
// d of l other than the one at raw index `exclude` (-1 excludes none),
// replace d with d ∨ ¬c field-wise -- every field of d equal to c's literal
// is forced to don't-care, while a field complementary to c's literal is
// kept -- then apply SCC. Returns a fresh list; l is not modified.
func cubeCofactor(l *List, c *Cube, exclude int) (*List, error) {
	if c.VarCnt() != l.ctx.VarCnt() {
		return nil, ErrVarCountMismatch
	}
	out := NewList(l.ctx)
	var err error
	l.Live(func(i int, d *Cube) {
		if err != nil || i == exclude {
			return
		}
		nd := d.Clone()
		n := nd.VarCnt()
		for vi := uint(0); vi < n; vi++ {
			// d ∨ ¬c: ¬c is 00 where c is don't-care, so those fields of d
			// are unchanged.
			nd.SetVar(vi, nd.GetVar(vi)|(FieldDC^c.GetVar(vi)))
		}
		if e := out.AddCubeByCube(nd); e != nil {
			err = e
		}
	})
	if err != nil {
		return nil, err
	}
	out.DoSCC()
	return out, nil
}

// CalcSplitVariableCounts resets and recomputes, for every variable, the
// number of live cubes of l with field i = zero and with field i = one.
// These drive BestBinateSplit and IsUnate.
func (l *List) CalcSplitVariableCounts() {
	ctx := l.ctx
	ctx.ResetCounters()
	n := ctx.VarCnt()
	l.Live(func(_ int, c *Cube) {
		for i := uint(0); i < n; i++ {
			switch c.GetVar(i) {
			case FieldZero:
				ctx.zeroCnt[i]++
			case FieldOne:
				ctx.oneCnt[i]++
			}
		}
	})
}

// IsUnate recomputes the split-variable counts for l and reports whether no
// variable is binate (appears in both polarities).
func (l *List) IsUnate() bool {
	l.CalcSplitVariableCounts()
	return l.ctx.IsUnate()
}

// IsUnate reports whether, per the last CalcSplitVariableCounts, no variable
// is binate (appears in both polarities).
func (ctx *Context) IsUnate() bool {
	for i := range ctx.zeroCnt {
		if ctx.zeroCnt[i] > 0 && ctx.oneCnt[i] > 0 {
			return false
		}
	}
	return true
}

// BestBinateSplit returns the variable with the largest zeroCnt+oneCnt among
// binate variables (per the last CalcSplitVariableCounts), and ok=false if
// the list is unate in every variable.
func (ctx *Context) BestBinateSplit() (v uint, ok bool) {
	best := -1
	bestScore := -1
	for i := range ctx.zeroCnt {
		if ctx.zeroCnt[i] > 0 && ctx.oneCnt[i] > 0 {
			score := ctx.zeroCnt[i] + ctx.oneCnt[i]
			if score > bestScore {
				bestScore = score
				best = i
			}
		}
	}
	if best < 0 {
		return 0, false
	}
	return uint(best), true
}
