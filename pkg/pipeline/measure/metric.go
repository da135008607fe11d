package measure

import (
	"sync"
	"time"
)

// SnapshotInfo accumulates the time spent copying one attribute out of the store.
type SnapshotInfo struct {
	Elapsed time.Duration
	total   int64
}

type DefaultMetric struct {
	allSnapshots map[string]*SnapshotInfo
	mu           *sync.Mutex
	EndDuration  time.Duration
	rowsElapsed  time.Duration
	total        int64
	concurrent   int
}

func (mt *DefaultMetric) AddDuration(elapsed time.Duration) {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	mt.total++
	mt.rowsElapsed += elapsed
}

func (mt *DefaultMetric) Rows() int64 {
	mt.mu.Lock()
	defer mt.mu.Unlock()

	return mt.total
}

func (mt *DefaultMetric) SetTotalDuration(endDuration time.Duration) {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	mt.EndDuration = endDuration
}

func (mt *DefaultMetric) GetTotalDuration() time.Duration {
	mt.mu.Lock()
	defer mt.mu.Unlock()

	return mt.EndDuration
}

func (mt *DefaultMetric) AddSnapshotDuration(attribute string, elapsed time.Duration) {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	if mt.allSnapshots[attribute] == nil {
		mt.allSnapshots[attribute] = &SnapshotInfo{}
	}
	info := mt.allSnapshots[attribute]
	info.Elapsed += elapsed
	info.total++
}

// AVGDuration is the mean time spent computing one row.
func (mt *DefaultMetric) AVGDuration() time.Duration {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	if mt.total == 0 {
		return time.Duration(0)
	}

	return round(time.Duration(float64(mt.rowsElapsed) / float64(mt.total)))
}

// AVGSnapshotDuration is the mean snapshot time per attribute, divided by the step concurrency.
func (mt *DefaultMetric) AVGSnapshotDuration() map[string]time.Duration {
	mt.mu.Lock()
	defer mt.mu.Unlock()

	res := make(map[string]time.Duration, len(mt.allSnapshots))
	for name, info := range mt.allSnapshots {
		if info.total == 0 {
			res[name] = 0

			continue
		}
		res[name] = round(time.Duration(float64(info.Elapsed) / float64(info.total) / float64(mt.concurrent)))
	}

	return res
}

func (mt *DefaultMetric) AllSnapshots() map[string]*SnapshotInfo {
	mt.mu.Lock()
	defer mt.mu.Unlock()

	res := make(map[string]*SnapshotInfo, len(mt.allSnapshots))
	for name, info := range mt.allSnapshots {
		cp := *info
		res[name] = &cp
	}

	return res
}

func round(d time.Duration) time.Duration {
	switch {
	case d > time.Hour:
		d = d.Round(time.Minute)
	case d > time.Minute:
		d = d.Round(time.Second)
	case d > time.Second:
		d = d.Round(time.Millisecond)
	case d > time.Millisecond:
		d = d.Round(time.Microsecond)
	}

	return d
}
