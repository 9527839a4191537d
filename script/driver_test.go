package script

import (
	"bytes"
	"encoding/json"
	"testing"
)

// TestRunS6Scripting walks through worked scenario S6.
func TestRunS6Scripting(t *testing.T) {
	input := `[
		{"cmd":"bcl2slot","bcl":["1-","-1"],"slot":0},
		{"cmd":"bcl2slot","bcl":["11"],"slot":1},
		{"cmd":"equal0","slot":1,"label":"eq"}
	]`
	var stdout bytes.Buffer
	d, out, err := Run(2, []byte(input), &stdout)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if d.ctx.Log.ContainsErrors() {
		t.Fatalf("unexpected errors logged: %s", d.ctx.Log.String())
	}

	var doc struct {
		Results []Result `json:"results"`
	}
	if err := json.Unmarshal(out, &doc); err != nil {
		t.Fatalf("output is not valid JSON: %v (%s)", err, out)
	}
	if len(doc.Results) != 1 {
		t.Fatalf("got %d results, want 1: %s", len(doc.Results), out)
	}
	eq := doc.Results[0]
	if eq.Label != "eq" {
		t.Errorf("label = %q, want %q", eq.Label, "eq")
	}
	if eq.Superset == nil || !*eq.Superset {
		t.Errorf("superset = %v, want true", eq.Superset)
	}
	if eq.Subset == nil || *eq.Subset {
		t.Errorf("subset = %v, want false", eq.Subset)
	}
}

func TestRunBcl2SlotMissingOperand(t *testing.T) {
	input := `[{"cmd":"bcl2slot","slot":0,"label":"x"}]`
	var stdout bytes.Buffer
	d, out, err := Run(1, []byte(input), &stdout)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !d.ctx.Log.ContainsErrors() {
		t.Errorf("expected an ERROR log entry for a missing bcl2slot operand")
	}
	var doc struct {
		Results []Result `json:"results"`
	}
	if err := json.Unmarshal(out, &doc); err != nil {
		t.Fatal(err)
	}
	if len(doc.Results) != 0 {
		t.Errorf("a failed step should not produce a result, got %d", len(doc.Results))
	}
}

func TestRunIntersection0AndSubtract0(t *testing.T) {
	input := `[
		{"cmd":"bcl2slot","bcl":["--"],"slot":0},
		{"cmd":"intersection0","bcl":["1-"],"label0":"after_and"},
		{"cmd":"subtract0","bcl":["10"],"label0":"after_sub"}
	]`
	var stdout bytes.Buffer
	_, out, err := Run(2, []byte(input), &stdout)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	var doc struct {
		Results []Result `json:"results"`
	}
	if err := json.Unmarshal(out, &doc); err != nil {
		t.Fatal(err)
	}
	if len(doc.Results) != 2 {
		t.Fatalf("got %d results, want 2: %s", len(doc.Results), out)
	}
	and := doc.Results[0]
	if and.Empty == nil || *and.Empty {
		t.Errorf("-- & 1- should be non-empty")
	}
	if and.BCL != "1-\n" {
		t.Errorf("after_and bcl = %q, want %q", and.BCL, "1-\n")
	}
	sub := doc.Results[1]
	if sub.Empty != nil && *sub.Empty {
		t.Errorf("1-\\10 should leave 11 behind, not be empty")
	}
	if sub.BCL != "11\n" {
		t.Errorf("after_sub bcl = %q, want %q", sub.BCL, "11\n")
	}
}

func TestRunExchangeAndCopy(t *testing.T) {
	input := `[
		{"cmd":"bcl2slot","bcl":["10"],"slot":0},
		{"cmd":"bcl2slot","bcl":["01"],"slot":2},
		{"cmd":"copy0","slot":3},
		{"cmd":"exchange0","slot":2},
		{"cmd":"show","slot":0,"label":"after_exchange"}
	]`
	var stdout bytes.Buffer
	d, _, err := Run(2, []byte(input), &stdout)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if d.Slot(0).GetString() != "01\n" {
		t.Errorf("slot 0 after exchange = %q, want %q", d.Slot(0).GetString(), "01\n")
	}
	if d.Slot(2).GetString() != "10\n" {
		t.Errorf("slot 2 after exchange = %q, want %q", d.Slot(2).GetString(), "10\n")
	}
	if d.Slot(3).GetString() != "10\n" {
		t.Errorf("slot 3 (copy0 target) = %q, want %q", d.Slot(3).GetString(), "10\n")
	}
}

func TestRunUnknownCommandIsSkipped(t *testing.T) {
	input := `[{"cmd":"frobnicate","label":"x"}]`
	var stdout bytes.Buffer
	d, out, err := Run(1, []byte(input), &stdout)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !d.ctx.Log.ContainsErrors() && len(d.ctx.Log.Entries) == 0 {
		t.Errorf("unknown command should log a diagnostic")
	}
	var doc struct {
		Results []Result `json:"results"`
	}
	if err := json.Unmarshal(out, &doc); err != nil {
		t.Fatal(err)
	}
	if len(doc.Results) != 0 {
		t.Errorf("unknown command should produce no result")
	}
}

func TestRunMalformedJSON(t *testing.T) {
	var stdout bytes.Buffer
	if _, _, err := Run(1, []byte("not json"), &stdout); err == nil {
		t.Errorf("Run should fail on malformed JSON")
	}
}
