package bcl

// Context is the problem-wide shared state: the variable count, a handful
// of fixed global cubes, the per-variable split-variable counters used by
// cofactor/tautology, the temporary-cube scope stack, and (for the
// expression front-end) the variable-name map. A Context is never shared
// between goroutines; each caller that needs concurrent cube algebra
// allocates its own.
type Context struct {
	varCnt uint

	// Global cubes at fixed roles.
	illegal   *Cube
	allZero   *Cube
	allOne    *Cube
	universal *Cube

	// Split-variable occurrence counters. Reused across calls via
	// ResetCounters rather than reallocated, mirroring the original's reuse
	// of scratch cube slots -- but as plain counter slices: counter storage
	// as cubes was a size optimization in the original, not a contract.
	zeroCnt []int
	oneCnt  []int

	// Temporary-cube arena: scratchList is a bump allocator (a List used as
	// a stack), depth tracks nested StartFrame calls.
	scratchList *List
	depth       int
	maxDepth    int
	tautDepth   int // not updated: IsTautology passes its recursion depth as an argument
	maxTaut     int

	// Variable-name <-> index map, populated by the expression front-end.
	nameToIdx map[string]uint
	idxToName []string

	Log *Log
}

// defaultScopeCap bounds Context.StartFrame nesting.
const defaultScopeCap = 64

// defaultTautologyCap is the recursion-depth safety cap for IsTautology.
// ComplementByCofactor does not check it.
const defaultTautologyCap = 2000

// NewContext allocates a Context for problems over n variables.
func NewContext(n uint) *Context {
	c := &Context{
		varCnt:    n,
		zeroCnt:   make([]int, n),
		oneCnt:    make([]int, n),
		maxDepth:  defaultScopeCap,
		maxTaut:   defaultTautologyCap,
		nameToIdx: make(map[string]uint),
		Log:       NewLog(),
	}
	c.illegal = NewCube(n)
	for i := uint(0); i < n; i++ {
		c.illegal.SetVar(i, FieldIllegal)
	}
	c.allZero = NewCube(n)
	for i := uint(0); i < n; i++ {
		c.allZero.SetVar(i, FieldZero)
	}
	c.allOne = NewCube(n)
	for i := uint(0); i < n; i++ {
		c.allOne.SetVar(i, FieldOne)
	}
	c.universal = NewCube(n) // NewCube already clears to all-dc
	return c
}

// VarCnt returns the problem's variable count.
func (ctx *Context) VarCnt() uint { return ctx.varCnt }

// Illegal, AllZero, AllOne, Universal return references to the context's
// fixed global cubes. Callers must not mutate the returned cube; Copy a
// fresh one if mutation is needed.
func (ctx *Context) Illegal() *Cube   { return ctx.illegal }
func (ctx *Context) AllZero() *Cube   { return ctx.allZero }
func (ctx *Context) AllOne() *Cube    { return ctx.allOne }
func (ctx *Context) Universal() *Cube { return ctx.universal }

// NewCube allocates a fresh all-don't-care cube sized for this context.
func (ctx *Context) NewCube() *Cube { return NewCube(ctx.varCnt) }

// ResetCounters zeroes the per-variable split-variable counters ahead of a
// fresh CalcSplitVariableCounts pass (cofactor.go).
func (ctx *Context) ResetCounters() {
	for i := range ctx.zeroCnt {
		ctx.zeroCnt[i] = 0
		ctx.oneCnt[i] = 0
	}
}

// --- variable name map (expression front-end, C10) ---

// InternName returns the index for name, allocating a fresh index if name
// has not been seen before. The context's variable count is not changed;
// FinalizeVarCnt sizes it to the interned names.
func (ctx *Context) InternName(name string) uint {
	if idx, ok := ctx.nameToIdx[name]; ok {
		return idx
	}
	idx := uint(len(ctx.idxToName))
	ctx.nameToIdx[name] = idx
	ctx.idxToName = append(ctx.idxToName, name)
	return idx
}

// NameOf returns the variable name for index i, or "" if none was interned
// (e.g. the context was built directly from a variable count rather than an
// expression).
func (ctx *Context) NameOf(i uint) string {
	if int(i) < len(ctx.idxToName) {
		return ctx.idxToName[i]
	}
	return ""
}

// FinalizeVarCnt must be called once all expressions have been parsed and
// all identifiers interned, sizing the context's cubes to the accumulated
// variable count.
func (ctx *Context) FinalizeVarCnt() {
	n := uint(len(ctx.idxToName))
	if n < ctx.varCnt {
		n = ctx.varCnt
	}
	names, idx, log := ctx.idxToName, ctx.nameToIdx, ctx.Log
	*ctx = *NewContext(n)
	ctx.idxToName, ctx.nameToIdx, ctx.Log = names, idx, log
}
