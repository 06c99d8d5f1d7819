package browse_test

import (
	"testing"
	"time"

	"skim/internal/browse"
	"skim/pkg/types"

	"github.com/stretchr/testify/assert"
)

func TestComputeStatus(t *testing.T) {
	now := time.Now()
	entries := []types.Entry{
		entry("Photos", true, 0, now),
		entry("a.txt", false, 1000, now),
		entry("b.txt", false, 500, now),
	}

	s := browse.ComputeStatus(entries, 0)
	assert.Equal(t, 3, s.Items)
	assert.Equal(t, int64(1500), s.TotalBytes, "directories excluded from the size total")
	assert.Equal(t, "3 items · 1.5 kB", s.Summary())
}

func TestStatusSelectionTakesPrecedence(t *testing.T) {
	s := browse.ComputeStatus([]types.Entry{entry("a.txt", false, 10, time.Now())}, 2)
	assert.Equal(t, "2 selected", s.Summary())
}

func TestStatusSingularItem(t *testing.T) {
	s := browse.ComputeStatus([]types.Entry{entry("a.txt", false, 0, time.Now())}, 0)
	assert.Equal(t, "1 item · 0 B", s.Summary())
}
