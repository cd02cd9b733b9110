package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFrameMonitorReportsDrops(t *testing.T) {
	start := time.Unix(1000, 0)
	m := NewFrameMonitor(55, start)

	var drops []int
	for i := 1; i <= 140; i++ {
		if m.Frame(start.Add(time.Duration(i) * 100 * time.Millisecond)) {
			drops = append(drops, i)
		}
	}

	// 10 TPS: nothing during warm-up, then once per cooldown
	assert.Equal(t, []int{30, 130}, drops)
	assert.InDelta(t, 10, m.TPS(), 0.01)
}

func TestFrameMonitorHealthyRate(t *testing.T) {
	start := time.Unix(1000, 0)
	m := NewFrameMonitor(55, start)

	for i := 1; i <= 500; i++ {
		assert.False(t, m.Frame(start.Add(time.Duration(i)*10*time.Millisecond)))
	}
	assert.InDelta(t, 100, m.TPS(), 0.01)
}

func TestNewProfilerCreatesDir(t *testing.T) {
	dir := t.TempDir() + "/profiles"
	p, err := NewProfiler(dir)
	assert.NoError(t, err)
	assert.DirExists(t, dir)
	assert.False(t, p.IsProfiling())
}
