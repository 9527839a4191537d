package bcl

// Scope implements the per-context temporary-cube arena: a bump allocator
// over a scratch List, with StartFrame/GetTemp/EndFrame replaced by the
// idiomatic Go shape of Context.StartFrame() returning a guard whose End()
// method performs the truncation -- callers are expected to
// `defer scope.End()`, dropping temporaries automatically at scope exit.
type Scope struct {
	ctx       *Context
	savedLen  int
	ended     bool
}

// StartFrame pushes a new scope frame and returns its guard. Panics with a
// ScopeError if nesting exceeds Context.maxDepth ("fatal abort,
// programming error").
func (ctx *Context) StartFrame() *Scope {
	if ctx.depth >= ctx.maxDepth {
		panic(ScopeError{Op: "overflow"})
	}
	if ctx.scratchList == nil {
		ctx.scratchList = NewList(ctx)
	}
	ctx.depth++
	return &Scope{ctx: ctx, savedLen: ctx.scratchList.Cap()}
}

// GetTemp appends a fresh don't-care cube to the current frame's scratch
// list and returns it. The cube is valid only until the owning Scope ends.
func (s *Scope) GetTemp() *Cube {
	return s.ctx.scratchList.AddCube()
}

// End truncates the scratch list back to this frame's saved length and pops
// the frame. Panics with a ScopeError if called twice or when no frame is
// open ("fatal abort"). Ending frames out of LIFO order is not detected.
func (s *Scope) End() {
	if s.ended {
		panic(ScopeError{Op: "underflow"})
	}
	if s.ctx.depth <= 0 {
		panic(ScopeError{Op: "underflow"})
	}
	s.ended = true
	s.ctx.depth--
	list := s.ctx.scratchList
	list.cubes = list.cubes[:s.savedLen]
	list.flags = list.flags[:s.savedLen]
}
