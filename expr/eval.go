package expr

import (
	"fmt"

	"github.com/boolcube/bcl"
)

// propagateNot pushes a NOT on an And/Or node down to its operands via De
// Morgan's law and clears the node's own flag. Leaves keep their IsNot flag
// -- Evaluate applies it directly when building the single-literal or
// constant list.
func propagateNot(n *Node) {
	if n == nil {
		return
	}
	if (n.Type == NodeAnd || n.Type == NodeOr) && n.IsNot {
		if n.Type == NodeAnd {
			n.Type = NodeOr
		} else {
			n.Type = NodeAnd
		}
		n.IsNot = false
		for c := n.Down; c != nil; c = c.Next {
			c.IsNot = !c.IsNot
		}
	}
	for c := n.Down; c != nil; c = c.Next {
		propagateNot(c)
	}
}

// CollectIdents walks n, interning every identifier into ctx's name map. It
// must run, over every parsed expression, before ctx.FinalizeVarCnt and
// before Evaluate.
func CollectIdents(n *Node, ctx *bcl.Context) {
	if n == nil {
		return
	}
	if n.Type == NodeID {
		ctx.InternName(n.Ident)
	}
	for c := n.Down; c != nil; c = c.Next {
		CollectIdents(c, ctx)
	}
}

// ParseExpressions parses every line of exprs, interns all identifiers
// across them into a single shared Context, and finalizes that context's
// variable count . Call EvaluateAll with the returned
// nodes and context to obtain the corresponding BCLs (pass 2).
func ParseExpressions(exprs []string) ([]*Node, *bcl.Context, error) {
	ctx := bcl.NewContext(0)
	nodes := make([]*Node, 0, len(exprs))
	for _, e := range exprs {
		n, err := Parse(e)
		if err != nil {
			return nil, nil, err
		}
		CollectIdents(n, ctx)
		nodes = append(nodes, n)
	}
	ctx.FinalizeVarCnt()
	return nodes, ctx, nil
}

// Evaluate turns a parsed expression into a bcl.List over ctx, propagating
// NOT to the leaves first.
func Evaluate(n *Node, ctx *bcl.Context) (*bcl.List, error) {
	propagateNot(n)
	return evalNode(n, ctx)
}

// EvaluateAll evaluates every node against the same context, as pass 2 of
// the two-pass use: ParseExpressions interns every identifier and finalizes
// the variable count first, then EvaluateAll builds each expression's list.
func EvaluateAll(nodes []*Node, ctx *bcl.Context) ([]*bcl.List, error) {
	lists := make([]*bcl.List, 0, len(nodes))
	for _, n := range nodes {
		l, err := Evaluate(n, ctx)
		if err != nil {
			return nil, err
		}
		lists = append(lists, l)
	}
	return lists, nil
}

func evalNode(n *Node, ctx *bcl.Context) (*bcl.List, error) {
	switch n.Type {
	case NodeID:
		idx := ctx.InternName(n.Ident)
		lit := bcl.FieldOne
		if n.IsNot {
			lit = bcl.FieldZero
		}
		c := ctx.NewCube()
		if err := c.SetVar(idx, lit); err != nil {
			return nil, err
		}
		l := bcl.NewList(ctx)
		if err := l.AddCubeByCube(c); err != nil {
			return nil, err
		}
		return l, nil

	case NodeNum:
		truth := n.Value != 0
		if n.IsNot {
			truth = !truth
		}
		l := bcl.NewList(ctx)
		if truth {
			if err := l.AddCubeByCube(ctx.Universal()); err != nil {
				return nil, err
			}
		}
		return l, nil

	case NodeAnd:
		var result *bcl.List
		for c := n.Down; c != nil; c = c.Next {
			cl, err := evalNode(c, ctx)
			if err != nil {
				return nil, err
			}
			if result == nil {
				result = cl
				continue
			}
			if err := bcl.IntersectInPlace(result, cl); err != nil {
				return nil, err
			}
		}
		if result == nil {
			result = bcl.NewList(ctx)
		}
		return result, nil

	case NodeOr:
		result := bcl.NewList(ctx)
		for c := n.Down; c != nil; c = c.Next {
			cl, err := evalNode(c, ctx)
			if err != nil {
				return nil, err
			}
			if err := result.AddCubesByList(cl); err != nil {
				return nil, err
			}
		}
		result.DoSCC()
		return result, nil
	}
	return nil, fmt.Errorf("expr: unknown node type %d", n.Type)
}
