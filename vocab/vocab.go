package vocab

import "strconv"

// ID is the dense integer id a Vocabulary assigns to a name.
type ID = uint32

// Vocabulary is a bidirectional map from unique, non-empty strings to dense
// ids in [0,n). It is built once (via repeated Insert) then frozen with
// BuildReverse; after freezing, Translate is O(1) and the Vocabulary is
// safe for concurrent reads (no further mutation is permitted).
//
// Numeric mode is a load-time optimization: the caller promises every name
// is already a dense, canonical non-negative integer, so Insert parses the
// name and uses the parsed value directly as the id instead of issuing a
// sequential one. The two modes must never be mixed on the same instance.
type Vocabulary struct {
	numeric bool

	byName map[string]ID
	byID   []string // valid only after BuildReverse
	frozen bool
	next   ID // next sequential id to issue, assigned mode only
}

// New returns an empty Vocabulary in assigned-id mode.
func New() *Vocabulary {
	return &Vocabulary{byName: make(map[string]ID)}
}

// NewNumeric returns an empty Vocabulary in numeric-id mode: every inserted
// name must parse as a canonical non-negative decimal integer, and that
// integer becomes the id.
func NewNumeric() *Vocabulary {
	return &Vocabulary{byName: make(map[string]ID), numeric: true}
}

// Len returns the number of distinct names inserted so far.
func (v *Vocabulary) Len() int { return len(v.byName) }

// Numeric reports whether this Vocabulary is running in numeric-id mode.
func (v *Vocabulary) Numeric() bool { return v.numeric }

// Insert returns the id for name, assigning a new one if name is unseen.
// In numeric mode, name must round-trip exactly through
// strconv.ParseUint -> strconv.FormatUint (rejecting "007", "+3", "-1",
// leading/trailing whitespace); otherwise ErrNotNumeric is returned.
//
// Complexity: O(1) amortized (hash lookup, optional insert).
func (v *Vocabulary) Insert(name string) (ID, error) {
	if name == "" {
		return 0, ErrEmptyName
	}
	if id, ok := v.byName[name]; ok {
		return id, nil
	}

	var id ID
	if v.numeric {
		parsed, err := strconv.ParseUint(name, 10, 32)
		if err != nil || strconv.FormatUint(parsed, 10) != name {
			return 0, wrapf("Insert", ErrNotNumeric)
		}
		id = ID(parsed)
	} else {
		id = v.next
		v.next++
	}
	v.byName[name] = id
	return id, nil
}

// Get returns the id for name and true, or (0, false) if name was never
// inserted.
//
// Complexity: O(1).
func (v *Vocabulary) Get(name string) (ID, bool) {
	id, ok := v.byName[name]
	return id, ok
}

// Translate returns the name for id. Valid only after BuildReverse has
// succeeded; returns ErrNotDense if called beforehand (the reverse array
// does not exist yet).
//
// Complexity: O(1).
func (v *Vocabulary) Translate(id ID) (string, error) {
	if !v.frozen {
		return "", wrapf("Translate", ErrNotDense)
	}
	if int(id) >= len(v.byID) {
		return "", wrapf("Translate", ErrNotDense)
	}
	return v.byID[id], nil
}

// BuildReverse freezes the Vocabulary: it must be called exactly once,
// after all Insert calls, before any Translate call. It fails if the id
// set is not exactly [0,n) — either a hole (assigned mode should never
// produce one, but numeric mode can) or two names colliding in the same
// reverse slot.
//
// Complexity: O(n) time, O(n) space for the reverse array.
func (v *Vocabulary) BuildReverse() error {
	n := len(v.byName)
	rev := make([]string, n)
	seen := make([]bool, n)
	for name, id := range v.byName {
		if int(id) >= n {
			return wrapf("BuildReverse", ErrNotDense)
		}
		if seen[id] {
			return wrapf("BuildReverse", ErrReverseCollision)
		}
		seen[id] = true
		rev[id] = name
	}
	v.byID = rev
	v.frozen = true
	return nil
}
