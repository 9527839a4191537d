package expr

import (
	"fmt"
	"strings"

	"github.com/boolcube/bcl"
)

// Render renders l as an OR-of-ANDs expression string: each live cube becomes the AND of its fixed
// literals, a leading '!' for a zero field and the bare name for a one
// field, skipping don't-care fields; a cube with no fixed literals renders
// as the constant 1. An empty list renders as the constant 0.
func Render(l *bcl.List, ctx *bcl.Context) string {
	if l.IsEmpty() {
		return "0"
	}
	var terms []string
	l.Live(func(_ int, c *bcl.Cube) {
		terms = append(terms, renderCube(c, ctx))
	})
	return strings.Join(terms, " | ")
}

func renderCube(c *bcl.Cube, ctx *bcl.Context) string {
	var lits []string
	n := c.VarCnt()
	for i := uint(0); i < n; i++ {
		switch c.GetVar(i) {
		case bcl.FieldZero:
			lits = append(lits, "!"+varName(ctx, i))
		case bcl.FieldOne:
			lits = append(lits, varName(ctx, i))
		}
	}
	if len(lits) == 0 {
		return "1"
	}
	return strings.Join(lits, " & ")
}

func varName(ctx *bcl.Context, i uint) string {
	if name := ctx.NameOf(i); name != "" {
		return name
	}
	return fmt.Sprintf("v%d", i)
}
