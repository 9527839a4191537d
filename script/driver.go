package script

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/boolcube/bcl"
	"github.com/boolcube/bcl/expr"
)

// Driver holds the nine cube-list slots and the shared Context a batch of
// steps runs against. Slot 0 is the primary accumulator.
type Driver struct {
	ctx    *bcl.Context
	slots  [numSlots]*bcl.List
	stdout io.Writer
}

// NewDriver allocates a Driver over a problem with the given fixed variable
// count, with every slot starting out as an empty list. Output from the show
// command is written to stdout.
func NewDriver(varCnt uint, stdout io.Writer) *Driver {
	ctx := bcl.NewContext(varCnt)
	d := &Driver{ctx: ctx, stdout: stdout}
	for i := range d.slots {
		d.slots[i] = bcl.NewList(ctx)
	}
	return d
}

// Context returns the driver's shared cube-algebra context.
func (d *Driver) Context() *bcl.Context { return d.ctx }

// Slot returns the current contents of slot i (0 if i is out of range).
func (d *Driver) Slot(i int) *bcl.List { return d.slots[d.clampSlot(i)] }

// clampSlot coerces an out-of-range slot index to 0, logging a WARNING
// rather than failing the step.
func (d *Driver) clampSlot(i int) int {
	if i < 0 || i >= numSlots {
		d.ctx.Log.Log(bcl.WARNING, fmt.Sprintf("slot %d out of range, coerced to 0", i))
		return 0
	}
	return i
}

// bclFromStrings builds a fresh list from the cube textual form, one cube per
// string.
func (d *Driver) bclFromStrings(lines []string) (*bcl.List, error) {
	l := bcl.NewList(d.ctx)
	for _, line := range lines {
		if err := l.AddCubesByString(line); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// evalExpr parses and evaluates a textual expression against the driver's
// context.
func (d *Driver) evalExpr(s string) (*bcl.List, error) {
	n, err := expr.Parse(s)
	if err != nil {
		return nil, err
	}
	expr.CollectIdents(n, d.ctx)
	return expr.Evaluate(n, d.ctx)
}

// operand resolves a step's argument as "bcl/expr or slot": an explicit bcl
// or expr field takes priority; otherwise the step's slot (default 0) is
// used.
func (d *Driver) operand(step Step) (*bcl.List, error) {
	switch {
	case step.Expr != "":
		return d.evalExpr(step.Expr)
	case len(step.BCL) > 0:
		return d.bclFromStrings(step.BCL)
	default:
		return d.Slot(step.Slot), nil
	}
}

// stepResult builds the base Result for a step carrying a label or label0;
// label0 additionally renders slot 0 as both a cube list and, when variable
// names are available, an expression string.
func (d *Driver) stepResult(step Step, index int) Result {
	r := Result{Step: index}
	switch {
	case step.Label0 != "":
		r.Label = step.Label0
		r.BCL = d.slots[0].GetString()
		r.Expr = expr.Render(d.slots[0], d.ctx)
	case step.Label != "":
		r.Label = step.Label
	}
	return r
}

func boolPtr(b bool) *bool { return &b }

// Run parses data as a JSON step array, executes every step in order against
// a freshly allocated Driver over varCnt variables, and returns one marshaled
// JSON result document. A step whose command is unknown or whose operand is
// missing is skipped with a diagnostic appended to the returned Driver's Log
// rather than aborting the run; a step whose slot is out of range runs
// against slot 0, with a WARNING logged. Only a malformed top-level JSON
// document aborts with an error.
func Run(varCnt uint, data []byte, stdout io.Writer) (*Driver, []byte, error) {
	var steps []Step
	if err := json.Unmarshal(data, &steps); err != nil {
		return nil, nil, fmt.Errorf("script: %w", err)
	}
	d := NewDriver(varCnt, stdout)
	cmds := registry()
	var results []Result
	for i, step := range steps {
		cmd, ok := cmds[step.Cmd]
		if !ok {
			d.ctx.Log.Log(bcl.WARNING, fmt.Sprintf("step %d: %v: %q", i, bcl.ErrUnknownCommand, step.Cmd))
			continue
		}
		res, err := cmd.Run(d, step, i)
		if err != nil {
			d.ctx.Log.Log(bcl.ERROR, fmt.Sprintf("step %d (%s): %v", i, step.Cmd, err))
			continue
		}
		if step.Label != "" || step.Label0 != "" {
			results = append(results, res)
		}
	}
	out, err := json.Marshal(map[string]interface{}{"results": results})
	if err != nil {
		return d, nil, err
	}
	return d, out, nil
}
