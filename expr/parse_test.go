package expr

import "testing"

func TestParseIdentifier(t *testing.T) {
	n, err := Parse("foo")
	if err != nil {
		t.Fatal(err)
	}
	if n.Type != NodeID || n.Ident != "foo" {
		t.Errorf("Parse(foo) = %+v, want NodeID foo", n)
	}
}

func TestParseAndOrPrecedence(t *testing.T) {
	// a | b & c must parse as a | (b & c): OR is the outermost node.
	n, err := Parse("a | b & c")
	if err != nil {
		t.Fatal(err)
	}
	if n.Type != NodeOr {
		t.Fatalf("root type = %v, want NodeOr", n.Type)
	}
	first := n.Down
	if first.Type != NodeID || first.Ident != "a" {
		t.Errorf("first OR operand = %+v, want identifier a", first)
	}
	second := first.Next
	if second == nil || second.Type != NodeAnd {
		t.Fatalf("second OR operand = %+v, want NodeAnd", second)
	}
}

func TestParseBareAndWithNoTrailingOr(t *testing.T) {
	// Regression for a documented source-language parser bug: a bare
	// "a&b" with no trailing '|' must still parse.
	n, err := Parse("a & b")
	if err != nil {
		t.Fatal(err)
	}
	if n.Type != NodeAnd {
		t.Fatalf("Parse(a & b) root type = %v, want NodeAnd", n.Type)
	}
}

func TestParseNotAndParens(t *testing.T) {
	n, err := Parse("!(a & b)")
	if err != nil {
		t.Fatal(err)
	}
	if n.Type != NodeAnd || !n.IsNot {
		t.Fatalf("Parse(!(a & b)) = %+v, want NodeAnd with IsNot", n)
	}
}

func TestParseDoubleNotCancels(t *testing.T) {
	n, err := Parse("!!a")
	if err != nil {
		t.Fatal(err)
	}
	if n.IsNot {
		t.Errorf("!! should cancel out, got IsNot=true")
	}
}

func TestParseNumberLiteral(t *testing.T) {
	n, err := Parse("1")
	if err != nil {
		t.Fatal(err)
	}
	if n.Type != NodeNum || n.Value != 1 {
		t.Errorf("Parse(1) = %+v, want NodeNum{Value:1}", n)
	}
}

func TestParseRejectsTrailingGarbage(t *testing.T) {
	if _, err := Parse("a b"); err == nil {
		t.Errorf("Parse(a b) should fail: two atoms with no operator between them")
	}
}

func TestParseRejectsUnbalancedParen(t *testing.T) {
	if _, err := Parse("(a & b"); err == nil {
		t.Errorf("Parse should reject an unterminated parenthesis")
	}
}
