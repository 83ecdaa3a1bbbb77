package grammar

// ArrayChain builds the states for a bounded repeating field, per spec §4.3:
// "Array fields are represented in the grammar by a chain of states Si ->
// Si+1, each offering 'START of next occurrence' or 'END of element'. The
// interpreter enforces the schema maximum by refusing to append past the
// per-field bound."
//
// It returns maxOccurs+1 states meant to be appended into a type's Table at
// absolute index base: state base+i (for i < maxOccurs) offers an
// occurrence-i transition to base+i+1, plus END to next; the final state
// (base+maxOccurs) offers only END, so a maxOccurs+1'th occurrence is
// unrepresentable rather than silently accepted.
//
// simple marks the occurrence transitions as carrying a scalar (rather than
// nested complex-type) payload, so the interpreter consumes the per-field
// deviation-terminator bit after each occurrence (spec §4.3 point 4).
//
// The bound is only enforced structurally on decode: a (maxOccurs+1)'th
// occurrence has no event code of its own, since the final state's only
// code (0) selects END, and any other code there is rejected with
// UnknownEventCode. On encode, present/decodeItem/encodeItem are only
// ever invoked for indices < maxOccurs, so a caller holding a longer slice
// than the bound allows would have the excess silently dropped rather than
// rejected; callers own a slice must check its length against the bound
// themselves before calling Encode.
func ArrayChain(base, maxOccurs, next int, simple bool, present func(i int) bool, decodeItem func(r BitSource, i int) error, encodeItem func(w BitSink, i int) error) []State {
	states := make([]State, maxOccurs+1)
	for i := 0; i <= maxOccurs; i++ {
		var transitions []Transition
		if i < maxOccurs {
			idx := i
			transitions = append(transitions, Transition{
				Kind:   EventStart,
				Next:   base + idx + 1,
				Simple: simple,
				Present: func() bool {
					return present(idx)
				},
				Decode: func(r BitSource) error {
					return decodeItem(r, idx)
				},
				Encode: func(w BitSink) error {
					return encodeItem(w, idx)
				},
			})
		}
		transitions = append(transitions, Transition{Kind: EventEnd, Next: next})
		states[i] = State{Transitions: transitions}
	}
	return states
}
