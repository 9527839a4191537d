package bcl

import "strings"

// List is a BCL: a growable ordered sequence of cubes with a parallel
// tombstone-flag array. Order is not semantically significant -- a List
// denotes the OR of its live cubes -- but algorithms rely on stable indices
// between Purge calls.
//
// Storage is two parallel Go slices; append already grows geometrically, so
// unlike the original's bcp_ExtendBCL there is no separate "extend by chunk"
// step, though both slices always grow together.
type List struct {
	cubes []*Cube
	flags []bool // true = deleted (tombstone)
	ctx   *Context
}

// NewList returns an empty list bound to ctx.
func NewList(ctx *Context) *List {
	return &List{ctx: ctx}
}

// NewListFromList returns a deep copy of src (cf. NewBCLByBCL).
func NewListFromList(src *List) *List {
	l := NewList(src.ctx)
	l.AddCubesByList(src)
	return l
}

// Context returns the list's owning context.
func (l *List) Context() *Context { return l.ctx }

// Len returns the number of live cubes.
func (l *List) Len() int {
	n := 0
	for _, d := range l.flags {
		if !d {
			n++
		}
	}
	return n
}

// Cap returns the total number of slots, live and deleted, before a Purge.
func (l *List) Cap() int { return len(l.cubes) }

// At returns the cube at raw index i (which may be deleted; check IsDeleted).
func (l *List) At(i int) *Cube { return l.cubes[i] }

// IsDeleted reports whether raw index i is tombstoned.
func (l *List) IsDeleted(i int) bool { return l.flags[i] }

// Mark tombstones raw index i. Mark is idempotent.
func (l *List) Mark(i int) { l.flags[i] = true }

// Live calls fn for each raw index that is not deleted, in order.
func (l *List) Live(fn func(i int, c *Cube)) {
	for i, d := range l.flags {
		if !d {
			fn(i, l.cubes[i])
		}
	}
}

// LiveIndices returns the raw indices of all live cubes, in order.
func (l *List) LiveIndices() []int {
	idx := make([]int, 0, l.Len())
	for i, d := range l.flags {
		if !d {
			idx = append(idx, i)
		}
	}
	return idx
}

// AddCube appends a fresh all-don't-care cube and returns it for the caller
// to fill in (cf. AddBCLCube).
func (l *List) AddCube() *Cube {
	c := l.ctx.NewCube()
	l.cubes = append(l.cubes, c)
	l.flags = append(l.flags, false)
	return c
}

// AddCubeByCube appends a copy of c (cf. AddBCLCubeByCube).
func (l *List) AddCubeByCube(c *Cube) error {
	if c.VarCnt() != l.ctx.VarCnt() {
		return ErrVarCountMismatch
	}
	l.cubes = append(l.cubes, c.Clone())
	l.flags = append(l.flags, false)
	return nil
}

// AddCubesByString appends one cube per newline-separated line of s
// (cf. AddBCLCubesByString).
func (l *List) AddCubesByString(s string) error {
	for _, line := range strings.Split(s, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		c := l.ctx.NewCube()
		if err := c.SetByString(line); err != nil {
			return err
		}
		l.cubes = append(l.cubes, c)
		l.flags = append(l.flags, false)
	}
	return nil
}

// AddCubesByList appends copies of every live cube of src
// (cf. AddBCLCubesByBCL).
func (l *List) AddCubesByList(src *List) error {
	var err error
	src.Live(func(_ int, c *Cube) {
		if err == nil {
			err = l.AddCubeByCube(c)
		}
	})
	return err
}

// Copy reallocates l to hold exactly src's live cubes (Copy(a,b)).
func (l *List) Copy(src *List) error {
	l.cubes = nil
	l.flags = nil
	l.ctx = src.ctx
	return l.AddCubesByList(src)
}

// Clear truncates the list to zero cubes without shrinking capacity.
func (l *List) Clear() {
	l.cubes = l.cubes[:0]
	l.flags = l.flags[:0]
}

// Purge compacts live cubes forward in place, preserving relative order, and
// resets all flags to false. Indices are only stable between Purge calls.
func (l *List) Purge() {
	w := 0
	for r := range l.cubes {
		if l.flags[r] {
			continue
		}
		l.cubes[w] = l.cubes[r]
		w++
	}
	l.cubes = l.cubes[:w]
	l.flags = make([]bool, w)
}

// VarCntList returns VariableCount() of each raw slot, or -1 for deleted
// slots, used by containment to prune subset tests.
func (l *List) VarCntList() []int {
	out := make([]int, len(l.cubes))
	for i := range l.cubes {
		if l.flags[i] {
			out[i] = -1
		} else {
			out[i] = int(l.cubes[i].VariableCount())
		}
	}
	return out
}

// GetString renders every live cube, one per line, in textual form.
func (l *List) GetString() string {
	var b strings.Builder
	l.Live(func(i int, c *Cube) {
		b.WriteString(c.GetString())
		b.WriteString("\n")
	})
	return b.String()
}

// IsEmpty reports whether the list has no live cubes.
func (l *List) IsEmpty() bool { return l.Len() == 0 }
