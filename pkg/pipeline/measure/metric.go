package measure

import (
	"sync"
	"time"
)

// TransportInfo aggregates the pulls of one upstream node.
type TransportInfo struct {
	Elapsed time.Duration
	Total   int64
}

// DefaultMetric is safe for concurrent use.
type DefaultMetric struct {
	allTransports map[string]*TransportInfo
	mu            sync.Mutex
	elapsed       time.Duration
	total         int64
}

func (mt *DefaultMetric) AddDuration(elapsed time.Duration) {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	mt.total++
	mt.elapsed += elapsed
}

func (mt *DefaultMetric) AddTransportDuration(upstream string, elapsed time.Duration) {
	mt.mu.Lock()
	defer mt.mu.Unlock()

	if mt.allTransports[upstream] == nil {
		mt.allTransports[upstream] = &TransportInfo{}
	}

	info := mt.allTransports[upstream]
	info.Elapsed += elapsed
	info.Total++
}

func (mt *DefaultMetric) AVGDuration() time.Duration {
	mt.mu.Lock()
	defer mt.mu.Unlock()

	if mt.total == 0 {
		return time.Duration(0)
	}

	return round(time.Duration(float64(mt.elapsed) / float64(mt.total)))
}

func (mt *DefaultMetric) AVGTransportDuration() map[string]*TransportInfo {
	mt.mu.Lock()
	defer mt.mu.Unlock()

	avg := make(map[string]*TransportInfo, len(mt.allTransports))

	for name, info := range mt.allTransports {
		if info.Total == 0 {
			continue
		}

		avg[name] = &TransportInfo{
			Elapsed: round(time.Duration(float64(info.Elapsed) / float64(info.Total))),
			Total:   info.Total,
		}
	}

	return avg
}

func (mt *DefaultMetric) AllTransports() map[string]*TransportInfo {
	mt.mu.Lock()
	defer mt.mu.Unlock()

	all := make(map[string]*TransportInfo, len(mt.allTransports))
	for name, info := range mt.allTransports {
		all[name] = &TransportInfo{Elapsed: info.Elapsed, Total: info.Total}
	}

	return all
}

func (mt *DefaultMetric) Count() int64 {
	mt.mu.Lock()
	defer mt.mu.Unlock()

	return mt.total
}

func round(d time.Duration) time.Duration {
	switch {
	case d > time.Hour:
		d = d.Round(time.Hour)
	case d > time.Minute:
		d = d.Round(time.Minute)
	case d > time.Second:
		d = d.Round(time.Second)
	case d > time.Millisecond:
		d = d.Round(time.Millisecond)
	case d > time.Microsecond:
		d = d.Round(time.Microsecond)
	}

	return d
}
