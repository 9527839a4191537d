package bcl

import "github.com/bits-and-blooms/bitset"

// This file defines Cube, the fixed-width bit-packed vector of 2-bit fields.
// Each field is split across two parallel bit-planes (lo, hi) held in a
// bitset.BitSet (github.com/bits-and-blooms/bitset; see extras/cfg/df.go for
// the usage idiom this is grounded on). Field value 2i|2i+1 maps onto (lo
// bit i, hi bit i) as:
//
//	00 illegal     lo=0 hi=0
//	01 zero  (!x)  lo=1 hi=0
//	10 one   ( x)  lo=0 hi=1
//	11 dc          lo=1 hi=1
//
// so a field-wise AND is exactly (lo AND lo, hi AND hi) on the whole planes,
// and "b subset of a" (a∧b==b) is exactly a.lo ⊇ b.lo && a.hi ⊇ b.hi — the
// bitset library's own IsSuperSet predicate.
const (
	FieldIllegal = 0
	FieldZero    = 1
	FieldOne     = 2
	FieldDC      = 3
)

type Cube struct {
	lo *bitset.BitSet
	hi *bitset.BitSet
}

// NewCube returns a cube of n variables, all fields don't-care.
func NewCube(n uint) *Cube {
	c := &Cube{lo: bitset.New(n), hi: bitset.New(n)}
	c.Clr()
	return c
}

// VarCnt returns the number of variables (fields) in the cube.
func (c *Cube) VarCnt() uint {
	return c.lo.Len()
}

// Clr sets every field to don't-care (11), per ClrCube.
func (c *Cube) Clr() {
	n := c.lo.Len()
	c.lo = allOnes(n)
	c.hi = allOnes(n)
}

func allOnes(n uint) *bitset.BitSet {
	b := bitset.New(n)
	for i := uint(0); i < n; i++ {
		b.Set(i)
	}
	return b
}

// SetVar overwrites field i with v (one of FieldIllegal/Zero/One/DC).
func (c *Cube) SetVar(i uint, v int) error {
	if i >= c.lo.Len() {
		return ErrBadVarIndex
	}
	if v&1 != 0 {
		c.lo.Set(i)
	} else {
		c.lo.Clear(i)
	}
	if v&2 != 0 {
		c.hi.Set(i)
	} else {
		c.hi.Clear(i)
	}
	return nil
}

// GetVar reads field i.
func (c *Cube) GetVar(i uint) int {
	v := 0
	if c.lo.Test(i) {
		v |= 1
	}
	if c.hi.Test(i) {
		v |= 2
	}
	return v
}

// Copy overwrites dst's fields with src's. Both must have the same VarCnt.
func (dst *Cube) Copy(src *Cube) error {
	if dst.VarCnt() != src.VarCnt() {
		return ErrVarCountMismatch
	}
	dst.lo = src.lo.Clone()
	dst.hi = src.hi.Clone()
	return nil
}

// Clone returns a fresh independent copy of c.
func (c *Cube) Clone() *Cube {
	return &Cube{lo: c.lo.Clone(), hi: c.hi.Clone()}
}

// Compare performs a lexicographic, field-by-field comparison, returning
// <0, 0, >0 as a<b, a==b, a>b.
func (a *Cube) Compare(b *Cube) int {
	n := a.VarCnt()
	for i := uint(0); i < n; i++ {
		av, bv := a.GetVar(i), b.GetVar(i)
		if av != bv {
			return av - bv
		}
	}
	return 0
}

// Equal reports whether a and b have identical fields.
func (a *Cube) Equal(b *Cube) bool {
	return a.lo.Equal(b.lo) && a.hi.Equal(b.hi)
}

// SetByString parses the cube textual form : characters '0','1','-'
// map to zero/one/dc; any other non-space, non-terminator character maps to
// illegal; whitespace is skipped; a terminator ('\0','\r','\n') or end of
// string ends the scan. Exactly VarCnt() fields are expected; SetByString
// returns ErrParse if the scan ends before that many fields are read.
func (c *Cube) SetByString(s string) error {
	n := c.VarCnt()
	i := uint(0)
	for _, r := range s {
		if i >= n {
			break
		}
		switch r {
		case 0, '\r', '\n':
			goto done // the shortfall check below still applies
		case ' ', '\t':
			continue
		case '0':
			c.SetVar(i, FieldZero)
			i++
		case '1':
			c.SetVar(i, FieldOne)
			i++
		case '-':
			c.SetVar(i, FieldDC)
			i++
		default:
			c.SetVar(i, FieldIllegal)
			i++
		}
	}
done:
	if i < n {
		return ErrParse
	}
	return nil
}

// GetString renders the cube in the textual form accepted by SetByString.
func (c *Cube) GetString() string {
	n := c.VarCnt()
	buf := make([]byte, n)
	for i := uint(0); i < n; i++ {
		switch c.GetVar(i) {
		case FieldZero:
			buf[i] = '0'
		case FieldOne:
			buf[i] = '1'
		case FieldDC:
			buf[i] = '-'
		default:
			buf[i] = '?'
		}
	}
	return string(buf)
}

// IsTautology reports whether every field of c is don't-care.
func (c *Cube) IsTautology() bool {
	n := c.lo.Len()
	return c.lo.Count() == n && c.hi.Count() == n
}

// IsIllegal reports whether any field of c is 00.
func (c *Cube) IsIllegal() bool {
	union := c.lo.Union(c.hi)
	return union.Count() < c.lo.Len()
}

// VariableCount returns the number of fixed-literal fields (01 or 10).
func (c *Cube) VariableCount() uint {
	return c.lo.SymmetricDifference(c.hi).Count()
}

// Intersect sets r := a AND b (field-wise) and reports whether the result is
// legal (no 00 field, i.e. non-empty product).
func Intersect(r, a, b *Cube) (bool, error) {
	if a.VarCnt() != b.VarCnt() || a.VarCnt() != r.VarCnt() {
		return false, ErrVarCountMismatch
	}
	r.lo = a.lo.Intersection(b.lo)
	r.hi = a.hi.Intersection(b.hi)
	return !r.IsIllegal(), nil
}

// IsIntersect reports whether a AND b would be a legal (non-empty) cube,
// without writing the result anywhere.
func IsIntersect(a, b *Cube) bool {
	lo := a.lo.Intersection(b.lo)
	hi := a.hi.Intersection(b.hi)
	return lo.Union(hi).Count() == a.lo.Len()
}

// Delta returns the number of fields where a∧b=00, i.e. the number of
// variables in conflict between a and b.
func Delta(a, b *Cube) uint {
	lo := a.lo.Intersection(b.lo)
	hi := a.hi.Intersection(b.hi)
	union := lo.Union(hi)
	return a.lo.Len() - union.Count()
}

// CubeIsSubset reports whether b is a subset of a: every literal of a is
// dominated by b (b⊆a, i.e. a∧b==b field-wise). This is exactly
// a.lo ⊇ b.lo && a.hi ⊇ b.hi, since x&y==y bitwise iff every bit set in y is
// set in x.
func CubeIsSubset(a, b *Cube) bool {
	return a.lo.IsSuperSet(b.lo) && a.hi.IsSuperSet(b.hi)
}

// fieldComplement returns field i of c with a non-dc literal flipped
// (01<->10); dc and illegal fields pass through unchanged. It works on one
// field at a time; Sharp (subtract.go) computes its complement inline as
// FieldDC^field and does not call it.
func (c *Cube) fieldComplement(i uint) int {
	v := c.GetVar(i)
	switch v {
	case FieldZero:
		return FieldOne
	case FieldOne:
		return FieldZero
	default:
		return v
	}
}
