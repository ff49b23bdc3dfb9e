package game

// snapshot is a full copy of the mutable board contents.
type snapshot struct {
	cells []Cell
	turn  Side
}

// history holds the initial snapshot followed by one snapshot per move.
type history struct {
	snapshots []snapshot
}

func newHistory(initial snapshot) *history {
	return &history{snapshots: []snapshot{initial}}
}

func (h *history) commit(s snapshot) {
	h.snapshots = append(h.snapshots, s)
}

// undo drops the latest snapshot and returns the one before it. It does
// nothing when only the initial snapshot is left.
func (h *history) undo() (snapshot, bool) {
	if len(h.snapshots) < 2 {
		return snapshot{}, false
	}
	h.snapshots = h.snapshots[:len(h.snapshots)-1]
	return h.snapshots[len(h.snapshots)-1], true
}

func (h *history) moves() int {
	return len(h.snapshots) - 1
}

func (h *history) reset(s snapshot) {
	h.snapshots = []snapshot{s}
}
