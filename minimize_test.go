package bcl

import "testing"

// TestMinimize walks through worked scenario S5: minimizing {000, 001, 010, 011}
// (every cube with var0=0) should converge to the single cube {0--}.
func TestMinimize(t *testing.T) {
	ctx := NewContext(3)
	l := NewList(ctx)
	l.AddCubesByString("000\n001\n010\n011\n")
	if err := Minimize(l); err != nil {
		t.Fatal(err)
	}
	if l.Len() != 1 {
		t.Fatalf("Len() after Minimize = %d, want 1 (got %q)", l.Len(), l.GetString())
	}
	if got := l.GetString(); got != "0--\n" {
		t.Errorf("GetString() = %q, want %q", got, "0--\n")
	}
}

func TestMinimizePreservesFunction(t *testing.T) {
	ctx := NewContext(3)
	original := NewList(ctx)
	original.AddCubesByString("110\n1-0\n0-1\n")
	l := NewListFromList(original)
	if err := Minimize(l); err != nil {
		t.Fatal(err)
	}
	eq, err := IsEqual(original, l)
	if err != nil {
		t.Fatal(err)
	}
	if !eq {
		t.Errorf("Minimize changed the represented function: %q -> %q", original.GetString(), l.GetString())
	}
}

func TestMinimizeRemovesRedundantCube(t *testing.T) {
	ctx := NewContext(2)
	l := NewList(ctx)
	l.AddCubesByString("0-\n1-\n10\n")
	if err := Minimize(l); err != nil {
		t.Fatal(err)
	}
	if l.Len() != 1 {
		t.Errorf("Minimize should collapse {0-,1-,10} to {--}, got %q", l.GetString())
	}
}
