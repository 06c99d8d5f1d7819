package browse

// ClipMode says whether a paste copies or moves.
type ClipMode int

const (
	ClipCopy ClipMode = iota
	ClipCut
)

func (m ClipMode) String() string {
	if m == ClipCut {
		return "cut"
	}
	return "copy"
}

// Clipboard is the explicit copy/cut state owned by whichever component
// mediates paste requests. The most recent Set decides what a paste does;
// a successful cut-paste calls Clear, dropping back to copy mode.
type Clipboard struct {
	paths []string
	mode  ClipMode
}

// Set records paths with the given mode, replacing any previous contents.
func (c *Clipboard) Set(paths []string, mode ClipMode) {
	c.paths = append([]string(nil), paths...)
	c.mode = mode
}

// Clear empties the clipboard and resets the mode to copy.
func (c *Clipboard) Clear() {
	c.paths = nil
	c.mode = ClipCopy
}

// Paths returns the held paths.
func (c *Clipboard) Paths() []string { return c.paths }

// Mode returns the held mode.
func (c *Clipboard) Mode() ClipMode { return c.mode }

// Empty reports whether there is anything to paste.
func (c *Clipboard) Empty() bool { return len(c.paths) == 0 }
