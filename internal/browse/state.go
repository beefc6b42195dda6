package browse

import "path/filepath"

// State is the navigation state for the directory browser: the directory
// being shown, the stack of ancestors walked through to reach it, its
// listing, and the cursor position. All transitions are synchronous and
// no-ops outside their guards, so the UI loop can apply them blindly.
type State struct {
	Path    string
	Entries []string
	Cursor  int

	history []string
}

// NewState starts a browse session rooted at root. The root is never
// popped; Back at depth zero is a no-op.
func NewState(root string) *State {
	return &State{
		Path:    root,
		Entries: Subdirs(root),
	}
}

func (s *State) MoveUp() {
	if len(s.Entries) > 0 && s.Cursor > 0 {
		s.Cursor--
	}
}

func (s *State) MoveDown() {
	if len(s.Entries) > 0 && s.Cursor < len(s.Entries)-1 {
		s.Cursor++
	}
}

// Enter descends into the selected entry. Directories with no visible
// subdirectories are leaf projects: they cannot be entered, only confirmed
// from the listing they appear in.
func (s *State) Enter() {
	if len(s.Entries) == 0 {
		return
	}
	candidate := filepath.Join(s.Path, s.Entries[s.Cursor])
	children := Subdirs(candidate)
	if len(children) == 0 {
		return
	}
	s.history = append(s.history, s.Path)
	s.Path = candidate
	s.Entries = children
	s.Cursor = 0
}

// Back ascends to the parent the browser came from.
func (s *State) Back() {
	if len(s.history) == 0 {
		return
	}
	s.Path = s.history[len(s.history)-1]
	s.history = s.history[:len(s.history)-1]
	s.Entries = Subdirs(s.Path)
	s.Cursor = 0
}

// Selected returns the absolute path of the entry under the cursor. The
// second return is false when the listing is empty.
func (s *State) Selected() (string, bool) {
	if len(s.Entries) == 0 {
		return "", false
	}
	return filepath.Join(s.Path, s.Entries[s.Cursor]), true
}

// Depth is how many levels below the root the browser currently sits.
func (s *State) Depth() int {
	return len(s.history)
}
