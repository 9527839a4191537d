package bcl

// List-list intersection, grounded on
// original_source/bc/bclintersection.c (bcp_IntersectionBCLs).

// ListIntersect returns a fresh list containing, for every pair (aj, bi), their
// cube intersection when legal, finished with SCC.
func ListIntersect(a, b *List) (*List, error) {
	if a.ctx.VarCnt() != b.ctx.VarCnt() {
		return nil, ErrVarCountMismatch
	}
	out := NewList(a.ctx)
	var err error
	a.Live(func(_ int, ac *Cube) {
		if err != nil {
			return
		}
		b.Live(func(_ int, bc *Cube) {
			if err != nil {
				return
			}
			r := a.ctx.NewCube()
			ok, e := Intersect(r, ac, bc)
			if e != nil {
				err = e
				return
			}
			if ok {
				err = out.AddCubeByCube(r)
			}
		})
	})
	if err != nil {
		return nil, err
	}
	out.DoSCC()
	return out, nil
}

// IntersectInPlace overwrites a with ListIntersect(a, b).
func IntersectInPlace(a, b *List) error {
	out, err := ListIntersect(a, b)
	if err != nil {
		return err
	}
	*a = *out
	return nil
}
