package grammar

import (
	"github.com/v2g-exi/codec/bitio"
	"github.com/v2g-exi/codec/v2gerr"
)

// BitSource is the read side of the bitstream the interpreter drives.
type BitSource = *bitio.Reader

// BitSink is the write side of the bitstream the interpreter drives.
type BitSink = *bitio.Writer

// Decode walks table starting at start, reading one event code per state and
// following the matching transition until an END transition whose Next is
// EEOnly (or the shared EEOnly terminal) completes the type; an END
// transition whose Next is a state of the table continues from that state.
// It is the generic decode half of
// Component C; every complex type's decoder builds a bound Table and calls
// this function.
func Decode(r BitSource, table Table, start int) error {
	state := start
	for {
		if state == EEOnly {
			ec, err := r.ReadBits(1)
			if err != nil {
				return err
			}
			if ec != 0 {
				return v2gerr.New(v2gerr.DeviantsNotSupported, nil, "deviation at universal terminal state")
			}
			return nil
		}

		if state < 0 || state >= len(table) {
			return v2gerr.New(v2gerr.UnknownGrammarID, nil, "grammar state id not present in type table")
		}

		st := table[state]
		width := CodeWidth(len(st.Transitions))
		ec, err := r.ReadBits(width)
		if err != nil {
			return err
		}
		if ec >= len(st.Transitions) {
			return v2gerr.New(v2gerr.UnknownEventCode, nil, "event code exceeds transition count")
		}
		tr := st.Transitions[ec]

		if tr.Kind == EventEnd {
			if tr.Next == EEOnly {
				return nil
			}
			state = tr.Next
			continue
		}

		if tr.Decode != nil {
			if err := tr.Decode(r); err != nil {
				return err
			}
		}
		if tr.Simple {
			devBit, err := r.ReadBits(1)
			if err != nil {
				return err
			}
			if devBit != 0 {
				return v2gerr.New(v2gerr.DeviantsNotSupported, nil, "deviation at simple-typed field terminator")
			}
		}

		state = tr.Next
	}
}

// Encode walks table starting at start, choosing at each state the
// transition whose Present predicate is true (or the END transition when
// none is), emitting its event code and payload, until the type completes.
// It is the generic encode half of Component C.
func Encode(w BitSink, table Table, start int) error {
	state := start
	for {
		if state == EEOnly {
			return w.WriteBits(0, 1)
		}

		if state < 0 || state >= len(table) {
			return v2gerr.New(v2gerr.UnknownGrammarID, nil, "grammar state id not present in type table")
		}

		st := table[state]
		idx := selectTransition(st.Transitions)
		if idx < 0 {
			return v2gerr.New(v2gerr.UnsupportedSubEvent, nil, "no transition present to encode and state has no END transition")
		}
		width := CodeWidth(len(st.Transitions))
		if err := w.WriteBits(idx, width); err != nil {
			return err
		}
		tr := st.Transitions[idx]

		if tr.Kind == EventEnd {
			if tr.Next == EEOnly {
				return nil
			}
			state = tr.Next
			continue
		}

		if tr.Encode != nil {
			if err := tr.Encode(w); err != nil {
				return err
			}
		}
		if tr.Simple {
			if err := w.WriteBits(0, 1); err != nil {
				return err
			}
		}

		state = tr.Next
	}
}

// selectTransition picks the first transition whose field/variant is live,
// falling back to the END transition if none of the non-END transitions are
// present (spec §4.3: "for an 'all'/optional-sequence the table enumerates
// the remaining options plus END"). Returns -1 if neither applies: a
// mandatory choice state whose value has no live variant and no END
// transition of its own. Callers must treat -1 as an error, not an index.
func selectTransition(transitions []Transition) int {
	endIdx := -1
	for i, tr := range transitions {
		if tr.Kind == EventEnd {
			endIdx = i
			continue
		}
		if tr.Present == nil || tr.Present() {
			return i
		}
	}
	return endIdx
}
