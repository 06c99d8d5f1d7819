package browse

import (
	"path/filepath"

	"skim/internal/fs"
	"skim/internal/log"
)

// Navigator owns the current directory and the back/forward history stacks.
// It decides whether a navigation happens; reloading the directory is the
// caller's job after any method returns true.
type Navigator struct {
	current string
	back    []string
	forward []string
	exists  func(string) bool
}

// NewNavigator creates a Navigator rooted at start.
func NewNavigator(start string) *Navigator {
	return &Navigator{
		current: filepath.Clean(start),
		exists:  fs.DirExists,
	}
}

// SetExistsFunc overrides the directory existence check, for tests.
func (n *Navigator) SetExistsFunc(f func(string) bool) {
	n.exists = f
}

// Current returns the current directory.
func (n *Navigator) Current() string { return n.current }

// Navigate moves to target. A missing target is a silent no-op. When
// addToHistory is set the current directory is pushed onto the back stack
// and the forward stack is cleared.
func (n *Navigator) Navigate(target string, addToHistory bool) bool {
	target = filepath.Clean(target)
	if !n.exists(target) {
		log.LogWithFields(log.F("target", target)).Debug("navigation target missing")
		return false
	}
	if addToHistory {
		n.back = append(n.back, n.current)
		n.forward = nil
	}
	n.current = target
	return true
}

// Back pops the back stack, pushing the current directory onto the forward
// stack. No-op when the back stack is empty.
func (n *Navigator) Back() bool {
	if len(n.back) == 0 {
		return false
	}
	target := n.back[len(n.back)-1]
	n.back = n.back[:len(n.back)-1]
	n.forward = append(n.forward, n.current)
	n.current = target
	return true
}

// Forward is symmetric to Back.
func (n *Navigator) Forward() bool {
	if len(n.forward) == 0 {
		return false
	}
	target := n.forward[len(n.forward)-1]
	n.forward = n.forward[:len(n.forward)-1]
	n.back = append(n.back, n.current)
	n.current = target
	return true
}

// Up navigates to the parent directory with history tracking. At the
// filesystem root it is a no-op.
func (n *Navigator) Up() bool {
	parent := filepath.Dir(n.current)
	if parent == n.current {
		return false
	}
	return n.Navigate(parent, true)
}

// CanBack reports whether Back would do anything.
func (n *Navigator) CanBack() bool { return len(n.back) > 0 }

// CanForward reports whether Forward would do anything.
func (n *Navigator) CanForward() bool { return len(n.forward) > 0 }

// CanUp reports whether the current directory has a parent.
func (n *Navigator) CanUp() bool {
	return filepath.Dir(n.current) != n.current
}
