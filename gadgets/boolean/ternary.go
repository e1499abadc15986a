package boolean

// Ternary returns ifTrue when cond is set and ifFalse otherwise, using the
// identity cond * (ifTrue - ifFalse) = out - ifFalse. A constant condition
// selects its branch for free.
func Ternary(cond, ifTrue, ifFalse Bit) Bit {
	if cond.IsConstant() {
		if cond.Value() {
			return ifTrue
		}
		return ifFalse
	}
	v := ifFalse.Value()
	if cond.Value() {
		v = ifTrue.Value()
	}
	out, outLC := witness(cond.s, v)
	cond.s.Enforce(cond.lc, ifTrue.lc.Sub(ifFalse.lc), outLC.Sub(ifFalse.lc))
	return out
}
