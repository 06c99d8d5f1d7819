// Package messages defines the tea.Msg types passed between the model and
// its background commands.
package messages

import (
	"skim/internal/watch"
	"skim/pkg/types"
)

// ScanCompleteMsg carries a finished directory read. Token identifies the
// navigation that requested it; results from older navigations are dropped.
type ScanCompleteMsg struct {
	Token   int
	Dir     string
	Entries []types.Entry
}

// OpCompleteMsg reports a finished file operation batch.
type OpCompleteMsg struct {
	Verb    string
	Results []types.OpResult
}

// WatchEventMsg wraps a filesystem change in the current directory.
type WatchEventMsg struct {
	Event watch.Event
}

type ErrorMsg struct {
	Err error
}
