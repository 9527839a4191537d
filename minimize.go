package bcl

// Minimize implements the full two-level minimization pipeline: SCC,
// complement (by subtract), offset-guided expand, SCC, MCC. It is a
// heuristic minimizer -- it does not invent primes beyond what expand
// discovers and does not attempt global cover selection.
func Minimize(l *List) error {
	l.DoSCC()
	off, err := ComplementBySubtract(l)
	if err != nil {
		return err
	}
	l.ExpandWithOffset(off)
	l.DoSCC()
	return l.DoMCC()
}
