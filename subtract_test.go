package bcl

import "testing"

func TestSharp(t *testing.T) {
	ctx := NewContext(2)
	a := NewCube(2)
	a.SetByString("--")
	b := NewCube(2)
	b.SetByString("10")
	l := NewList(ctx)
	if err := l.Sharp(a, b); err != nil {
		t.Fatal(err)
	}
	// a \ b should cover everything except 10: {0-, -1}.
	if l.Len() != 2 {
		t.Fatalf("Sharp(--,10) produced %d cubes, want 2 (got %q)", l.Len(), l.GetString())
	}
	zero := NewCube(2)
	zero.SetByString("00")
	covered, err := IsCubeCovered(l, zero)
	if err != nil {
		t.Fatal(err)
	}
	if !covered {
		t.Errorf("00 should be covered by --\\10")
	}
	covered, err = IsCubeCovered(l, b)
	if err != nil {
		t.Fatal(err)
	}
	if covered {
		t.Errorf("10 should not be covered by --\\10")
	}
}

func TestSubtract(t *testing.T) {
	ctx := NewContext(2)
	a := NewList(ctx)
	a.AddCubesByString("--\n")
	b := NewList(ctx)
	b.AddCubesByString("10\n")
	if err := Subtract(a, b, true); err != nil {
		t.Fatal(err)
	}
	want := NewList(ctx)
	want.AddCubesByString("0-\n-1\n")
	eq, err := IsEqual(a, want)
	if err != nil {
		t.Fatal(err)
	}
	if !eq {
		t.Errorf("--\\10 should equal {0-,-1}, got %q", a.GetString())
	}
}

func TestSubtractToEmpty(t *testing.T) {
	ctx := NewContext(2)
	a := NewList(ctx)
	a.AddCubesByString("10\n")
	b := NewList(ctx)
	b.AddCubesByString("--\n")
	if err := Subtract(a, b, true); err != nil {
		t.Fatal(err)
	}
	if !a.IsEmpty() {
		t.Errorf("10\\-- should be empty, got %q", a.GetString())
	}
}
