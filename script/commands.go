package script

import (
	"fmt"

	"github.com/boolcube/bcl"
)

// -=-= bcl2slot =-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=

type bcl2SlotCommand struct{}

func (bcl2SlotCommand) Run(d *Driver, step Step, index int) (Result, error) {
	var l *bcl.List
	var err error
	switch {
	case step.Expr != "":
		l, err = d.evalExpr(step.Expr)
	case len(step.BCL) > 0:
		l, err = d.bclFromStrings(step.BCL)
	default:
		return Result{}, bcl.ErrEmptyOperand
	}
	if err != nil {
		return Result{}, err
	}
	d.slots[d.clampSlot(step.Slot)] = l
	return d.stepResult(step, index), nil
}

// -=-= show =-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=

type showCommand struct{}

func (showCommand) Run(d *Driver, step Step, index int) (Result, error) {
	l, err := d.operand(step)
	if err != nil {
		return Result{}, err
	}
	fmt.Fprintln(d.stdout, l.GetString())
	return d.stepResult(step, index), nil
}

// -=-= intersection0 =-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=

type intersection0Command struct{}

func (intersection0Command) Run(d *Driver, step Step, index int) (Result, error) {
	arg, err := d.operand(step)
	if err != nil {
		return Result{}, err
	}
	if err := bcl.IntersectInPlace(d.slots[0], arg); err != nil {
		return Result{}, err
	}
	r := d.stepResult(step, index)
	r.Empty = boolPtr(d.slots[0].IsEmpty())
	return r, nil
}

// -=-= subtract0 =-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=

type subtract0Command struct{}

func (subtract0Command) Run(d *Driver, step Step, index int) (Result, error) {
	arg, err := d.operand(step)
	if err != nil {
		return Result{}, err
	}
	if err := bcl.Subtract(d.slots[0], arg, true); err != nil {
		return Result{}, err
	}
	r := d.stepResult(step, index)
	r.Empty = boolPtr(d.slots[0].IsEmpty())
	return r, nil
}

// -=-= equal0 =-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-

type equal0Command struct{}

func (equal0Command) Run(d *Driver, step Step, index int) (Result, error) {
	arg, err := d.operand(step)
	if err != nil {
		return Result{}, err
	}
	// superset: slot0 covers arg (arg ⊆ slot0); subset: slot0 ⊆ arg. Equal
	// iff both hold.
	superset, err := bcl.IsSubset(d.slots[0], arg)
	if err != nil {
		return Result{}, err
	}
	subset, err := bcl.IsSubset(arg, d.slots[0])
	if err != nil {
		return Result{}, err
	}
	r := d.stepResult(step, index)
	r.Superset = boolPtr(superset)
	r.Subset = boolPtr(subset)
	return r, nil
}

// -=-= exchange0 =-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=

type exchange0Command struct{}

func (exchange0Command) Run(d *Driver, step Step, index int) (Result, error) {
	other := d.clampSlot(step.Slot)
	d.slots[0], d.slots[other] = d.slots[other], d.slots[0]
	return d.stepResult(step, index), nil
}

// -=-= copy0 =-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=

type copy0Command struct{}

func (copy0Command) Run(d *Driver, step Step, index int) (Result, error) {
	other := d.clampSlot(step.Slot)
	d.slots[other] = bcl.NewListFromList(d.slots[0])
	return d.stepResult(step, index), nil
}
