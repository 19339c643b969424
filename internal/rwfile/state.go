package rwfile

// access is the class of access a guard holds.
type access int

const (
	accessRead access = iota
	accessWrite
)

// String returns the access class name used in logs and errors.
func (a access) String() string {
	if a == accessWrite {
		return "write"
	}
	return "read"
}

// State is a snapshot of the admission state of a File.
//
// Writing implies Readers == 0. The zero value is the idle state.
type State struct {
	// Readers is the number of outstanding read guards.
	Readers int `json:"readers"`
	// Writing is true while a write guard is outstanding.
	Writing bool `json:"writing"`
}

// Idle reports whether no guard of either kind is outstanding.
func (s State) Idle() bool {
	return s.Readers == 0 && !s.Writing
}

// Valid reports whether the state satisfies the reader/writer exclusion
// invariant.
func (s State) Valid() bool {
	if s.Readers < 0 {
		return false
	}
	return !s.Writing || s.Readers == 0
}

// admits reports whether a guard of class a may be issued from this state.
func (s State) admits(a access) bool {
	if a == accessWrite {
		return !s.Writing && s.Readers == 0
	}
	return !s.Writing
}

// Stats holds cumulative counters for a File.
type Stats struct {
	// Reads is the number of read guards issued.
	Reads uint64 `json:"reads"`
	// Writes is the number of write guards issued.
	Writes uint64 `json:"writes"`
	// Rollbacks counts reservations undone because the handle failed to open.
	Rollbacks uint64 `json:"rollbacks"`
	// Spins counts admission checks that failed and were retried.
	Spins uint64 `json:"spins"`
	// Reclaimed counts guards released by the garbage collector because
	// they were dropped without Close.
	Reclaimed uint64 `json:"reclaimed"`
}
