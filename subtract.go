package bcl

// Sharp (cube difference) and list subtraction, grounded on
// original_source/bc/bclsubstract.c (bcp_DoBCLSharpOperation, bcp_SubtractBCL).

// Sharp appends a#b to l: for each variable i where b's field is not
// don't-care, let new := a's field AND (NOT b's field); if new is legal
// (non-00), append a copy of a with field i replaced by new. Together the
// appended cubes cover exactly a\b.
func (l *List) Sharp(a, b *Cube) error {
	n := a.VarCnt()
	for i := uint(0); i < n; i++ {
		bi := b.GetVar(i)
		if bi == FieldDC {
			continue
		}
		ai := a.GetVar(i)
		notBi := FieldDC ^ bi // complement within the 2-bit field (11 XOR bi)
		newv := ai & notBi
		if newv == FieldIllegal {
			continue
		}
		c := a.Clone()
		c.SetVar(i, newv)
		if err := l.AddCubeByCube(c); err != nil {
			return err
		}
	}
	return nil
}

// Subtract computes a := a \ b in place (Subtract(a,b,do_mcc)): for
// each cube of b, every cube currently in a is expanded via Sharp into a
// fresh result list, which then replaces a; finally SCC (and, if doMCC,
// MCC). Sharp always appends first; no
// covered-by-list pre-check is performed.
func Subtract(a, b *List, doMCC bool) error {
	bIdx := b.LiveIndices()
	for _, bi := range bIdx {
		bcube := b.cubes[bi]
		next := NewList(a.ctx)
		var err error
		a.Live(func(_ int, acube *Cube) {
			if err == nil {
				err = next.Sharp(acube, bcube)
			}
		})
		if err != nil {
			return err
		}
		*a = *next
	}
	a.DoSCC()
	if doMCC {
		if err := a.DoMCC(); err != nil {
			return err
		}
	}
	return nil
}
