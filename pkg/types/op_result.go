package types

// OpResult reports the outcome of one file operation item.
// Err is nil on success; otherwise it is a kinded error from internal/errors.
type OpResult struct {
	Source string
	Target string
	Err    error
}

// OK reports whether the item succeeded.
func (r OpResult) OK() bool { return r.Err == nil }
