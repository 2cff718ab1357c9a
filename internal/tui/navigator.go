package tui

// Navigator turns changes of the chosen identifier into route transitions.
// It is edge-triggered: it fires once each time the observed value changes
// to a different non-empty identifier, never for repeats or for clearing.
type Navigator struct {
	last string
}

// Observe records next and reports whether it should trigger navigation.
func (n *Navigator) Observe(next string) (string, bool) {
	prev := n.last
	n.last = next
	if next == "" || next == prev {
		return "", false
	}
	return next, true
}
