package bcl

import "testing"

// TestComplementBySubtractRoundTrip walks through worked scenario S3: complementing
// a list and then complementing the complement returns an equal function.
func TestComplementBySubtractRoundTrip(t *testing.T) {
	ctx := NewContext(3)
	l := NewList(ctx)
	l.AddCubesByString("1--\n-01\n")
	comp, err := ComplementBySubtract(l)
	if err != nil {
		t.Fatal(err)
	}
	// comp must be disjoint from l.
	for _, c := range []struct{ s string }{{"1--"}, {"-01"}} {
		cube := NewCube(3)
		cube.SetByString(c.s)
		covered, err := IsCubeCovered(comp, cube)
		if err != nil {
			t.Fatal(err)
		}
		if covered {
			t.Errorf("complement should not cover %s", c.s)
		}
	}
	back, err := ComplementBySubtract(comp)
	if err != nil {
		t.Fatal(err)
	}
	eq, err := IsEqual(l, back)
	if err != nil {
		t.Fatal(err)
	}
	if !eq {
		t.Errorf("double complement should reproduce the original function: %q vs %q", l.GetString(), back.GetString())
	}
}

func TestComplementOfUniversalIsEmpty(t *testing.T) {
	ctx := NewContext(2)
	l := NewList(ctx)
	l.AddCubeByCube(ctx.Universal())
	comp, err := ComplementBySubtract(l)
	if err != nil {
		t.Fatal(err)
	}
	if !comp.IsEmpty() {
		t.Errorf("complement of the universal cube should be empty, got %q", comp.GetString())
	}
}

func TestComplementByCofactorMatchesSubtract(t *testing.T) {
	ctx := NewContext(3)
	l := NewList(ctx)
	l.AddCubesByString("110\n1-0\n0-1\n")
	bySub, err := ComplementBySubtract(l)
	if err != nil {
		t.Fatal(err)
	}
	byCof, err := ComplementByCofactor(NewListFromList(l))
	if err != nil {
		t.Fatal(err)
	}
	eq, err := IsEqual(bySub, byCof)
	if err != nil {
		t.Fatal(err)
	}
	if !eq {
		t.Errorf("ComplementBySubtract and ComplementByCofactor disagree: %q vs %q", bySub.GetString(), byCof.GetString())
	}
}
