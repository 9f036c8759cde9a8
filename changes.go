package countvec

// Tracking reports whether change tracking is enabled.
func (v *Vector) Tracking() bool {
	v.mustOpen()
	return v.changes != nil
}

// Changed returns the logical ranges touched by successful mutations since
// construction or the last ResetChanges, ascending and coalesced.
// It returns nil when change tracking is disabled or nothing changed.
//
// A slot counts as changed even when the mutation left its value as it was
// (for example multiplying by one).
func (v *Vector) Changed() []Range {
	v.mustOpen()
	if v.changes == nil {
		return nil
	}
	runs := v.changes.Runs()
	if len(runs) == 0 {
		return nil
	}
	out := make([]Range, len(runs))
	for i, r := range runs {
		out[i] = Range{From: v.base + int(r.Lo), To: v.base + int(r.Hi)}
	}
	return out
}

// ResetChanges forgets all recorded changes.
func (v *Vector) ResetChanges() {
	v.mustOpen()
	if v.changes != nil {
		v.changes.Clear()
	}
}
