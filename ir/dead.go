package ir

// Dead reports whether the variable can be eliminated: it is never written
// (and so holds no meaningful value), or it is never read and nothing outside
// the program observes it through an out slot.
//
// The counters feeding this check are maintained during resolution and by
// node destruction; passes running on a resolved tree treat them as fixed
// input rather than recomputing them.
func (d *VariableData) Dead() bool {
	if d.WriteCount == 0 {
		return true
	}
	return d.ReadCount == 0 && !d.Modifiers.Has(ModifierOut)
}

// Unused reports whether the variable is written but never read.
func (d *VariableData) Unused() bool {
	return d.ReadCount == 0
}

// DeadVariables walks a resolved tree and collects every variable
// declaration whose payload is flagged dead.
func DeadVariables(root *Node) []*Node {
	var dead []*Node
	var walk func(n *Node)
	walk = func(n *Node) {
		if n.Kind() == KindVariable {
			if PayloadAs[*VariableData](n).Dead() {
				dead = append(dead, n)
			}
		}
		n.VisitChildren(walk)
	}
	walk(root)
	return dead
}
