package tui

import "sort"

// heldKeys turns a terminal's press-only key stream into press/release
// transitions. A key counts as held while presses (including auto-repeat)
// keep arriving; it is released holdMs after the last one.
type heldKeys struct {
	holdMs   uint64
	lastSeen map[string]uint64
}

func newHeldKeys(holdMs uint64) *heldKeys {
	return &heldKeys{holdMs: holdMs, lastSeen: make(map[string]uint64)}
}

// press records a press at now and reports whether the key was not held.
func (h *heldKeys) press(name string, now uint64) bool {
	_, held := h.lastSeen[name]
	h.lastSeen[name] = now
	return !held
}

// expire releases keys whose last press is at least holdMs old and
// returns them sorted by name.
func (h *heldKeys) expire(now uint64) []string {
	var released []string
	for name, seen := range h.lastSeen {
		if now >= seen+h.holdMs {
			released = append(released, name)
		}
	}
	for _, name := range released {
		delete(h.lastSeen, name)
	}
	sort.Strings(released)
	return released
}

// held reports whether the key is currently held.
func (h *heldKeys) held(name string) bool {
	_, ok := h.lastSeen[name]
	return ok
}
